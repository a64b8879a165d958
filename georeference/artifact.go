package georeference

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/tidwall/sjson"

	georef "github.com/legaldesc/go-plss-georeference"
	"github.com/legaldesc/go-plss-georeference/plss"
)

// Bounds is the artifact bounding box.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLon float64 `json:"max_lon"`
}

// Coordinates is a lat/lon pair as persisted in artifacts.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// AnchorInfo describes the anchor a polygon is referenced to.
type AnchorInfo struct {
	PLSSReference       string             `json:"plss_reference"`
	ResolvedCoordinates Coordinates        `json:"resolved_coordinates"`
	POBCoordinates      Coordinates        `json:"pob_coordinates"`
	Accuracy            plss.AccuracyClass `json:"accuracy"`
}

// ProjectionMetadata records how vertex coordinates were computed.
type ProjectionMetadata struct {
	Method          string `json:"method"`
	CoordinateCount int    `json:"coordinate_count"`
}

// ArtifactValidation is the flat validation summary persisted with an artifact.
type ArtifactValidation struct {
	Verdict      Verdict `json:"verdict"`
	ClosureError float64 `json:"closure_error"`
	PrecisionOK  bool    `json:"precision_ok"`
}

// Artifact is the persisted boundary shape consumed by the presentation layer:
// a GeoJSON polygon ring, its bounds, anchor metadata and a flat validation
// summary.
type Artifact struct {
	GeographicPolygon  *geojson.Geometry  `json:"geographic_polygon"`
	Bounds             Bounds             `json:"bounds"`
	AnchorInfo         AnchorInfo         `json:"anchor_info"`
	ProjectionMetadata ProjectionMetadata `json:"projection_metadata"`
	Validation         ArtifactValidation `json:"validation"`
}

// NewArtifact assembles the persisted artifact for 'p' and 'report'.
func NewArtifact(p *GeoreferencedPolygon, report *ValidationReport) *Artifact {

	poly := orb.Polygon{p.Ring}

	a := &Artifact{
		GeographicPolygon: geojson.NewGeometry(poly),
		Bounds: Bounds{
			MinLat: p.Bound.Min.Lat(),
			MaxLat: p.Bound.Max.Lat(),
			MinLon: p.Bound.Min.Lon(),
			MaxLon: p.Bound.Max.Lon(),
		},
		AnchorInfo: AnchorInfo{
			PLSSReference: p.Anchor.Reference.String(),
			ResolvedCoordinates: Coordinates{
				Lat: p.Anchor.Point.Lat(),
				Lon: p.Anchor.Point.Lon(),
			},
			POBCoordinates: Coordinates{
				Lat: p.POB.Point.Lat(),
				Lon: p.POB.Point.Lon(),
			},
			Accuracy: p.POB.Accuracy,
		},
		ProjectionMetadata: ProjectionMetadata{
			Method:          georef.PROJECTION_METHOD,
			CoordinateCount: len(p.Ring),
		},
		Validation: ArtifactValidation{
			Verdict:      report.Verdict,
			ClosureError: report.ClosureError,
			PrecisionOK:  report.PrecisionOK,
		},
	}

	return a
}

// MarshalArtifact encodes 'a' as the persisted JSON document.
func MarshalArtifact(a *Artifact) ([]byte, error) {

	body, err := json.Marshal(a)

	if err != nil {
		return nil, fmt.Errorf("Failed to marshal artifact, %w", err)
	}

	return body, nil
}

// AttachValidation rewrites the validation summary on an already-encoded
// artifact. Validation can be re-run without recomputing geometry, so the
// geometry bytes are left untouched.
func AttachValidation(body []byte, report *ValidationReport) ([]byte, error) {

	var err error

	body, err = sjson.SetBytes(body, "validation.verdict", string(report.Verdict))

	if err != nil {
		return nil, fmt.Errorf("Failed to assign verdict, %w", err)
	}

	body, err = sjson.SetBytes(body, "validation.closure_error", report.ClosureError)

	if err != nil {
		return nil, fmt.Errorf("Failed to assign closure error, %w", err)
	}

	body, err = sjson.SetBytes(body, "validation.precision_ok", report.PrecisionOK)

	if err != nil {
		return nil, fmt.Errorf("Failed to assign precision flag, %w", err)
	}

	return body, nil
}
