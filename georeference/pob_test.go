package georeference

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb"

	"github.com/legaldesc/go-plss-georeference/geodesy"
	"github.com/legaldesc/go-plss-georeference/plss"
	"github.com/legaldesc/go-plss-georeference/survey"
)

func testAnchor(t *testing.T) *plss.AnchorPoint {

	t.Helper()

	ref, err := plss.NewReference("WY", "06", 14, "N", 75, "W", 2, "")

	if err != nil {
		t.Fatalf("Failed to create reference, %v", err)
	}

	bound := orb.Bound{
		Min: orb.Point{-105.740013, 41.690007},
		Max: orb.Point{-105.720711, 41.704487},
	}

	return &plss.AnchorPoint{
		Point:           bound.Center(),
		Datum:           "WGS84",
		Accuracy:        plss.AccuracyCornerExact,
		Reference:       ref,
		Bound:           bound,
		SectionCentroid: bound.Center(),
		Corners: map[plss.Corner]orb.Point{
			plss.CornerNE: {-105.720711, 41.704487},
			plss.CornerNW: {-105.740013, 41.704487},
			plss.CornerSE: {-105.720711, 41.690007},
			plss.CornerSW: {-105.740013, 41.690007},
		},
	}
}

func TestResolvePOBNoTie(t *testing.T) {

	ctx := context.Background()
	anchor := testAnchor(t)

	pob, err := ResolvePOB(ctx, anchor, nil)

	if err != nil {
		t.Fatalf("Failed to resolve POB, %v", err)
	}

	if !pob.Point.Equal(anchor.Point) {
		t.Fatalf("Expected POB to equal the anchor point exactly")
	}

	if pob.Accuracy != anchor.Accuracy {
		t.Fatalf("Expected accuracy '%s' but got '%s'", anchor.Accuracy, pob.Accuracy)
	}
}

func TestResolvePOBTie(t *testing.T) {

	ctx := context.Background()
	anchor := testAnchor(t)

	b, _ := survey.ParseBearing("S 45° W")

	tie := &Tie{
		Corner:   "NE",
		Bearing:  b,
		Distance: survey.Distance{Value: 100.0, Unit: survey.Feet},
	}

	pob, err := ResolvePOB(ctx, anchor, tie)

	if err != nil {
		t.Fatalf("Failed to resolve POB, %v", err)
	}

	if pob.Corner != plss.CornerNE {
		t.Fatalf("Expected NE corner but got '%s'", pob.Corner)
	}

	d, az := geodesy.Inverse(anchor.Corners[plss.CornerNE], pob.Point)

	if math.Abs(d-30.48) > 0.001 {
		t.Fatalf("Expected POB 30.48 m from the NE corner but got %f m", d)
	}

	if math.Abs(az-225.0) > 0.01 {
		t.Fatalf("Expected azimuth 225 from the NE corner but got %f", az)
	}
}

func TestResolvePOBReciprocalTie(t *testing.T) {

	// "from which the NE corner bears N 45° E" is the same tie phrased from the
	// POB; the projection reverses it.

	ctx := context.Background()
	anchor := testAnchor(t)

	forward_b, _ := survey.ParseBearing("S 45° W")
	reciprocal_b, _ := survey.ParseBearing("N 45° E")

	forward_tie := &Tie{
		Corner:   "northeast corner of Section 2",
		Bearing:  forward_b,
		Distance: survey.Distance{Value: 100.0, Unit: survey.Feet},
	}

	reciprocal_tie := &Tie{
		Corner:     "NE",
		Bearing:    reciprocal_b,
		Distance:   survey.Distance{Value: 100.0, Unit: survey.Feet},
		Reciprocal: true,
	}

	forward_pob, err := ResolvePOB(ctx, anchor, forward_tie)

	if err != nil {
		t.Fatalf("Failed to resolve forward POB, %v", err)
	}

	reciprocal_pob, err := ResolvePOB(ctx, anchor, reciprocal_tie)

	if err != nil {
		t.Fatalf("Failed to resolve reciprocal POB, %v", err)
	}

	if !forward_pob.Point.Equal(reciprocal_pob.Point) {
		t.Fatalf("Expected identical POBs but got %v and %v", forward_pob.Point, reciprocal_pob.Point)
	}
}

func TestResolvePOBBoundingBoxFallback(t *testing.T) {

	ctx := context.Background()
	anchor := testAnchor(t)
	anchor.Corners = nil
	anchor.Accuracy = plss.AccuracySectionCentroid

	b, _ := survey.ParseBearing("S 45° W")

	tie := &Tie{
		Corner:   "NE",
		Bearing:  b,
		Distance: survey.Distance{Value: 100.0, Unit: survey.Feet},
	}

	pob, err := ResolvePOB(ctx, anchor, tie)

	if err != nil {
		t.Fatalf("Failed to resolve POB, %v", err)
	}

	if pob.Accuracy != plss.AccuracyBoundingBoxApprox {
		t.Fatalf("Expected bounding-box-approx but got '%s'", pob.Accuracy)
	}
}

func TestResolvePOBAmbiguousCorner(t *testing.T) {

	ctx := context.Background()
	anchor := testAnchor(t)

	b, _ := survey.ParseBearing("S 45° W")

	tie := &Tie{
		Corner:   "the old stone monument",
		Bearing:  b,
		Distance: survey.Distance{Value: 100.0, Unit: survey.Feet},
	}

	_, err := ResolvePOB(ctx, anchor, tie)

	if err == nil {
		t.Fatalf("Expected an unresolvable corner to fail")
	}

	var corner_err *AmbiguousCornerError

	if !errors.As(err, &corner_err) {
		t.Fatalf("Expected AmbiguousCornerError but got %T", err)
	}
}

func TestResolvePOBNamedMonument(t *testing.T) {

	// Monument labels present in the dataset resolve without fallback.

	ctx := context.Background()
	anchor := testAnchor(t)
	anchor.Corners["US Mineral Monument 112"] = orb.Point{-105.7301, 41.6951}

	b, _ := survey.ParseBearing("N 10° E")

	tie := &Tie{
		Corner:   "US Mineral Monument 112",
		Bearing:  b,
		Distance: survey.Distance{Value: 2.0, Unit: survey.Chains},
	}

	pob, err := ResolvePOB(ctx, anchor, tie)

	if err != nil {
		t.Fatalf("Failed to resolve POB, %v", err)
	}

	if pob.Accuracy != plss.AccuracyCornerExact {
		t.Fatalf("Expected corner-exact but got '%s'", pob.Accuracy)
	}

	d, _ := geodesy.Inverse(anchor.Corners["US Mineral Monument 112"], pob.Point)

	if math.Abs(d-2.0*20.1168) > 0.001 {
		t.Fatalf("Expected POB %f m from the monument but got %f m", 2.0*20.1168, d)
	}
}

func TestResolvePOBDegenerateGeometry(t *testing.T) {

	ctx := context.Background()
	anchor := testAnchor(t)
	anchor.Bound.Max = anchor.Bound.Min

	_, err := ResolvePOB(ctx, anchor, nil)

	if err == nil {
		t.Fatalf("Expected degenerate geometry to fail")
	}

	var geom_err *DegenerateGeometryError

	if !errors.As(err, &geom_err) {
		t.Fatalf("Expected DegenerateGeometryError but got %T", err)
	}
}

func TestResolvePOBNegativeTieDistance(t *testing.T) {

	ctx := context.Background()
	anchor := testAnchor(t)

	b, _ := survey.ParseBearing("S 45° W")

	tie := &Tie{
		Corner:   "NE",
		Bearing:  b,
		Distance: survey.Distance{Value: -100.0, Unit: survey.Feet},
	}

	_, err := ResolvePOB(ctx, anchor, tie)

	if err == nil {
		t.Fatalf("Expected a negative tie distance to fail")
	}

	var tie_err *InvalidTieError

	if !errors.As(err, &tie_err) {
		t.Fatalf("Expected InvalidTieError but got %T", err)
	}

	if tie_err.Field != "distance" {
		t.Fatalf("Expected a distance error but got '%s'", tie_err.Field)
	}
}
