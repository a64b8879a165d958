package landgrid

import (
	"fmt"
	"io"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"github.com/tidwall/gjson"

	"github.com/legaldesc/go-plss-georeference/plss"
)

// Land-grid dataset property names. One GeoJSON Feature per section, keyed by
// the plss:* properties; corner coordinates, when surveyed, are carried as a
// {label: [lon, lat]} object.
const (
	PROPERTY_MERIDIAN string = "plss:meridian"
	PROPERTY_TOWNSHIP string = "plss:township"
	PROPERTY_RANGE    string = "plss:range"
	PROPERTY_SECTION  string = "plss:section"
	PROPERTY_CORNERS  string = "plss:corners"
)

// parseDataset decodes one state's land-grid document in to an immutable index.
func parseDataset(state string, r io.Reader) (*stateIndex, error) {

	body, err := io.ReadAll(r)

	if err != nil {
		return nil, fmt.Errorf("Failed to read dataset body, %w", err)
	}

	// Sniff the envelope before paying for a full decode.

	type_rsp := gjson.GetBytes(body, "type")

	if type_rsp.String() != "FeatureCollection" {
		return nil, fmt.Errorf("Unexpected dataset envelope '%s'", type_rsp.String())
	}

	count_rsp := gjson.GetBytes(body, "features.#")

	if count_rsp.Int() == 0 {
		return nil, fmt.Errorf("Dataset contains no features")
	}

	fc, err := geojson.UnmarshalFeatureCollection(body)

	if err != nil {
		return nil, fmt.Errorf("Failed to unmarshal feature collection, %w", err)
	}

	idx := &stateIndex{
		state:    state,
		sections: make(map[string]*plss.SectionGeometry, len(fc.Features)),
	}

	for i, f := range fc.Features {

		key, err := featureKey(f)

		if err != nil {
			return nil, fmt.Errorf("Failed to derive key for feature %d, %w", i, err)
		}

		centroid, _ := planar.CentroidArea(f.Geometry)

		geom := &plss.SectionGeometry{
			Bound:    f.Geometry.Bound(),
			Centroid: centroid,
			Corners:  featureCorners(f),
		}

		idx.sections[key] = geom
	}

	return idx, nil
}

// featureKey derives the composite section key from a feature's plss:* properties.
func featureKey(f *geojson.Feature) (string, error) {

	meridian := f.Properties.MustString(PROPERTY_MERIDIAN, "")

	township, township_dir, err := splitTRS(f.Properties.MustString(PROPERTY_TOWNSHIP, ""))

	if err != nil {
		return "", fmt.Errorf("Failed to parse township, %w", err)
	}

	rng, range_dir, err := splitTRS(f.Properties.MustString(PROPERTY_RANGE, ""))

	if err != nil {
		return "", fmt.Errorf("Failed to parse range, %w", err)
	}

	section := f.Properties.MustInt(PROPERTY_SECTION, 0)

	if section < 1 || section > 36 {
		return "", fmt.Errorf("Section %d out of range", section)
	}

	return plss.Key(meridian, township, township_dir, rng, range_dir, section), nil
}

// splitTRS splits a "14N" or "75W" style value in to its number and direction.
func splitTRS(raw string) (int, string, error) {

	if len(raw) < 2 {
		return 0, "", fmt.Errorf("Invalid township/range value '%s'", raw)
	}

	dir := raw[len(raw)-1:]

	n, err := strconv.Atoi(raw[:len(raw)-1])

	if err != nil {
		return 0, "", fmt.Errorf("Invalid township/range value '%s', %w", raw, err)
	}

	return n, dir, nil
}

// featureCorners extracts surveyed corner coordinates, when present. A missing
// or partial corner set simply yields fewer entries; the resolver downgrades
// the anchor's accuracy class accordingly.
func featureCorners(f *geojson.Feature) map[plss.Corner]orb.Point {

	raw, ok := f.Properties[PROPERTY_CORNERS]

	if !ok {
		return nil
	}

	enc, ok := raw.(map[string]interface{})

	if !ok {
		return nil
	}

	corners := make(map[plss.Corner]orb.Point)

	for label, v := range enc {

		pair, ok := v.([]interface{})

		if !ok || len(pair) != 2 {
			continue
		}

		lon, lon_ok := pair[0].(float64)
		lat, lat_ok := pair[1].(float64)

		if !lon_ok || !lat_ok {
			continue
		}

		// Cardinal corners and named monuments alike are preserved under
		// their dataset labels.
		corners[plss.Corner(label)] = orb.Point{lon, lat}
	}

	if len(corners) == 0 {
		return nil
	}

	return corners
}
