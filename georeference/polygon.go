package georeference

import (
	"github.com/paulmach/orb"

	"github.com/legaldesc/go-plss-georeference/plss"
	"github.com/legaldesc/go-plss-georeference/traverse"
)

// GeoreferencedPolygon is the computed output artifact for one legal
// description: a closed ring of traverse vertices with its bound, origin and
// diagnostics. It is created once per successful orchestration run and never
// mutated; the validator reads it but does not alter it.
type GeoreferencedPolygon struct {
	// Ring is the closed polygon ring (first point repeated last).
	Ring orb.Ring `json:"ring"`
	// Bound is the ring's geographic bounding box.
	Bound orb.Bound `json:"bound"`
	// Anchor is the resolved anchor the polygon is referenced to.
	Anchor *plss.AnchorPoint `json:"anchor"`
	// POB is the resolved point of beginning.
	POB *POB `json:"pob"`
	// Diagnostics carries the traverse result: per-leg vertices, closure
	// error and derived measurements.
	Diagnostics *traverse.Result `json:"diagnostics"`
}

// newPolygon closes the traverse vertex list in to a ring and derives its bound.
func newPolygon(anchor *plss.AnchorPoint, pob *POB, result *traverse.Result) *GeoreferencedPolygon {

	ring := make(orb.Ring, 0, len(result.Vertices)+1)

	for _, v := range result.Vertices {
		ring = append(ring, v.Point)
	}

	// Close the ring on the POB; the closure gap is reported in diagnostics,
	// not baked in to the geometry.

	if len(ring) > 0 && !ring[0].Equal(ring[len(ring)-1]) {
		ring = append(ring, ring[0])
	}

	p := &GeoreferencedPolygon{
		Ring:        ring,
		Bound:       ring.Bound(),
		Anchor:      anchor,
		POB:         pob,
		Diagnostics: result,
	}

	return p
}
