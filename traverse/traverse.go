package traverse

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/legaldesc/go-plss-georeference/geodesy"
	"github.com/legaldesc/go-plss-georeference/survey"
)

// Vertex is one computed traverse vertex: a geographic coordinate plus the
// local planar offsets from the point of beginning, in meters, retained for
// precision diagnostics.
type Vertex struct {
	// Point is the vertex coordinate (lon, lat), WGS84.
	Point orb.Point `json:"point"`
	// Easting is the accumulated local offset east of the POB, meters.
	Easting float64 `json:"easting"`
	// Northing is the accumulated local offset north of the POB, meters.
	Northing float64 `json:"northing"`
}

// Result holds the computed traverse: every vertex (the POB first, one per leg
// after) and its closure diagnostics. Results are fresh values; nothing is
// shared between traverses.
type Result struct {
	// Vertices is the open vertex list: Vertices[0] is the POB.
	Vertices []Vertex `json:"vertices"`
	// ClosureError is the geodesic distance, meters, between the last vertex
	// and the POB. Zero indicates a perfectly closed polygon.
	ClosureError float64 `json:"closure_error"`
	// ClosureRatio is ClosureError over the total traverse length. The
	// professional closure standard is 1:10,000 (a ratio below 0.0001).
	ClosureRatio float64 `json:"closure_ratio"`
	// TotalDistance is the sum of all leg distances, meters.
	TotalDistance float64 `json:"total_distance"`
	// Perimeter is TotalDistance plus the closure gap, meters.
	Perimeter float64 `json:"perimeter"`
	// Area is the polygon area from the local planar offsets (shoelace
	// formula), square meters. A diagnostic, not a survey-grade area.
	Area float64 `json:"area"`
	// AreaAcres is Area expressed in acres, the unit deeds quote.
	AreaAcres float64 `json:"area_acres"`
}

// Compute walks 'legs' geodesically from 'start'. Each vertex is the Vincenty
// forward projection of its predecessor; no other state is involved, so
// identical inputs always produce bit-identical vertices. Fails with
// `InvalidLegError` when a leg's bearing is not finite or its distance is not
// positive; never fails for non-closure.
func Compute(start orb.Point, legs []Leg) (*Result, error) {

	for i, leg := range legs {

		az := leg.Bearing.Azimuth()

		if math.IsNaN(az) || math.IsInf(az, 0) {
			return nil, &InvalidLegError{Index: i, Reason: "bearing does not resolve to a finite azimuth"}
		}

		d := leg.Distance.Meters()

		if math.IsNaN(d) || d <= 0.0 {
			return nil, &InvalidLegError{Index: i, Reason: "distance is not positive"}
		}
	}

	vertices := make([]Vertex, 0, len(legs)+1)

	vertices = append(vertices, Vertex{Point: start})

	current := start
	easting := 0.0
	northing := 0.0
	total := 0.0

	for _, leg := range legs {

		az := leg.Bearing.Azimuth()
		d := leg.Distance.Meters()

		current = geodesy.Forward(current, az, d)

		theta := az * math.Pi / 180.0
		easting += d * math.Sin(theta)
		northing += d * math.Cos(theta)
		total += d

		vertices = append(vertices, Vertex{
			Point:    current,
			Easting:  easting,
			Northing: northing,
		})
	}

	closure, _ := geodesy.Inverse(current, start)

	ratio := 0.0

	if total > 0.0 {
		ratio = closure / total
	}

	area := localArea(vertices)

	result := &Result{
		Vertices:      vertices,
		ClosureError:  closure,
		ClosureRatio:  ratio,
		TotalDistance: total,
		Perimeter:     total + closure,
		Area:          area,
		AreaAcres:     area / survey.SQUARE_METERS_PER_ACRE,
	}

	return result, nil
}

// localArea computes the shoelace area over the local planar offsets, treating
// the vertex list as a closed ring.
func localArea(vertices []Vertex) float64 {

	n := len(vertices)

	if n < 3 {
		return 0.0
	}

	area := 0.0

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += vertices[i].Easting * vertices[j].Northing
		area -= vertices[j].Easting * vertices[i].Northing
	}

	return math.Abs(area) / 2.0
}
