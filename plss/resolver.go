package plss

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/paulmach/orb"

	georef "github.com/legaldesc/go-plss-georeference"
)

// SectionIndex is the read-only land-grid lookup the resolver consumes. The
// landgrid package provides the production implementation; tests provide fakes.
type SectionIndex interface {
	// Section returns the geometry indexed under 'ref', or an error: a
	// `landgrid.NotFoundError` when the state's dataset is absent locally, an
	// `InvalidReferenceError` when the section does not exist in the dataset.
	Section(ctx context.Context, ref *Reference) (*SectionGeometry, error)
}

// Resolver resolves PLSS references into anchor points against a section index.
type Resolver struct {
	index SectionIndex
}

// NewResolver returns a `Resolver` reading from 'index'.
func NewResolver(index SectionIndex) *Resolver {
	return &Resolver{index: index}
}

// Resolve looks up 'ref' and derives its anchor point. Quarter subdivisions are
// derived from the section bound by proportional splitting, never re-queried.
// The accuracy class is downgraded from corner-exact to section-centroid
// whenever true corner geometry is unavailable for the exact key.
func (r *Resolver) Resolve(ctx context.Context, ref *Reference) (*AnchorPoint, error) {

	logger := slog.Default()
	logger = logger.With("reference", ref.String())

	geom, err := r.index.Section(ctx, ref)

	if err != nil {
		return nil, err
	}

	accuracy := AccuracySectionCentroid

	if hasAllCorners(geom.Corners) {
		accuracy = AccuracyCornerExact
	}

	bound := geom.Bound
	point := geom.Centroid
	corners := geom.Corners

	if ref.Quarter != "" {

		sub_bound, err := SubdivideBound(bound, ref.Quarter)

		if err != nil {
			return nil, &InvalidReferenceError{Field: "quarter", Value: ref.Quarter}
		}

		// Quarter corners are derived, never surveyed; the accuracy class
		// reflects that and the corner set is dropped so corner ties resolve
		// through the flagged bound-corner fallback instead of passing derived
		// points off as surveyed ones.

		bound = sub_bound
		point = bound.Center()
		accuracy = AccuracySectionCentroid
		corners = nil

		logger.Debug("Derived quarter subdivision", "quarter", ref.Quarter, "accuracy", accuracy)
	}

	anchor := &AnchorPoint{
		Point:           point,
		Datum:           georef.DATUM_WGS84,
		Accuracy:        accuracy,
		Reference:       ref,
		Bound:           bound,
		SectionCentroid: geom.Centroid,
		Corners:         corners,
	}

	logger.Debug("Resolved anchor", "lat", fmt.Sprintf("%.6f", point.Lat()), "lon", fmt.Sprintf("%.6f", point.Lon()), "accuracy", accuracy)

	return anchor, nil
}

func hasAllCorners(corners map[Corner]orb.Point) bool {

	if corners == nil {
		return false
	}

	for _, c := range []Corner{CornerNE, CornerNW, CornerSE, CornerSW} {

		if _, ok := corners[c]; !ok {
			return false
		}
	}

	return true
}
