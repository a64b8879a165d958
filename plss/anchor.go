package plss

import (
	"github.com/paulmach/orb"
)

// AccuracyClass is a tagged accuracy variant so that callers must handle
// degraded-accuracy anchors explicitly rather than branching on booleans.
type AccuracyClass string

const (
	// AccuracyCornerExact means the anchor derives from surveyed corner geometry.
	AccuracyCornerExact AccuracyClass = "corner-exact"
	// AccuracySectionCentroid means the anchor derives from section (or derived
	// quarter) geometry without surveyed corners.
	AccuracySectionCentroid AccuracyClass = "section-centroid"
	// AccuracyBoundingBoxApprox means a corner was approximated from the section
	// bounding box. Never assigned silently; it is surfaced in results.
	AccuracyBoundingBoxApprox AccuracyClass = "bounding-box-approx"
)

// Corner labels the four section corners.
type Corner string

const (
	CornerNE Corner = "NE"
	CornerNW Corner = "NW"
	CornerSE Corner = "SE"
	CornerSW Corner = "SW"
)

// SectionGeometry is the read-only geometry record a land-grid index yields for
// one section: its bound, centroid and, where surveyed, corner coordinates.
type SectionGeometry struct {
	// Bound is the section's geographic bounding box.
	Bound orb.Bound
	// Centroid is the section centroid (lon, lat).
	Centroid orb.Point
	// Corners holds surveyed corner coordinates keyed by label. Nil or partial
	// when the dataset carries no corner geometry for the section.
	Corners map[Corner]orb.Point
}

// AnchorPoint is a resolved geographic anchor: the location a reference resolves
// to, its accuracy class and the geometry needed to resolve ties against it.
// Anchor points are never mutated after resolution.
type AnchorPoint struct {
	// Point is the resolved anchor coordinate (lon, lat).
	Point orb.Point `json:"point"`
	// Datum is the datum identifier, always WGS84 for the current datasets.
	Datum string `json:"datum"`
	// Accuracy is the accuracy class of the resolution.
	Accuracy AccuracyClass `json:"accuracy"`
	// Reference is the PLSS reference the anchor was resolved from.
	Reference *Reference `json:"reference"`
	// Bound is the geographic bound of the (possibly quarter-subdivided) section.
	Bound orb.Bound `json:"-"`
	// SectionCentroid is the centroid of the full section, before any quarter
	// subdivision, used for boundary-compliance validation.
	SectionCentroid orb.Point `json:"-"`
	// Corners holds the corner coordinates available for tie resolution.
	Corners map[Corner]orb.Point `json:"-"`
}

// BoundCorner approximates corner 'c' from a bound. Used as a flagged fallback
// when surveyed corner geometry is unavailable.
func BoundCorner(bound orb.Bound, c Corner) orb.Point {

	switch c {
	case CornerNE:
		return orb.Point{bound.Max.Lon(), bound.Max.Lat()}
	case CornerNW:
		return orb.Point{bound.Min.Lon(), bound.Max.Lat()}
	case CornerSE:
		return orb.Point{bound.Max.Lon(), bound.Min.Lat()}
	default: // CornerSW
		return orb.Point{bound.Min.Lon(), bound.Min.Lat()}
	}
}
