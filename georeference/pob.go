package georeference

import (
	"context"
	"log/slog"
	"strings"

	"github.com/paulmach/orb"

	"github.com/legaldesc/go-plss-georeference/geodesy"
	"github.com/legaldesc/go-plss-georeference/plss"
)

// POB is a resolved point of beginning.
type POB struct {
	// Point is the POB coordinate (lon, lat), WGS84.
	Point orb.Point `json:"point"`
	// Accuracy is the accuracy class of the resolution. It is the anchor's
	// class unless corner resolution fell back to a bounding-box
	// approximation, which is flagged here, never silently accepted.
	Accuracy plss.AccuracyClass `json:"accuracy"`
	// Corner is the resolved reference corner the tie was applied from, if any.
	Corner plss.Corner `json:"corner,omitempty"`
}

var corner_aliases = map[string]plss.Corner{
	"NE": plss.CornerNE, "NORTHEAST": plss.CornerNE,
	"NW": plss.CornerNW, "NORTHWEST": plss.CornerNW,
	"SE": plss.CornerSE, "SOUTHEAST": plss.CornerSE,
	"SW": plss.CornerSW, "SOUTHWEST": plss.CornerSW,
}

// normalizeCorner maps a deed corner label ("NE", "northeast corner of Section
// 12") on to a corner key, preserving named monuments verbatim.
func normalizeCorner(label string) plss.Corner {

	s := strings.ToUpper(strings.TrimSpace(label))

	for _, noise := range []string{"CORNER", "COR.", "COR"} {
		s = strings.ReplaceAll(s, noise, " ")
	}

	// "northeast corner of Section 12" keeps only the direction word.
	if idx := strings.Index(s, " OF "); idx != -1 {
		s = s[:idx]
	}

	s = strings.TrimSpace(s)

	if c, ok := corner_aliases[s]; ok {
		return c
	}

	return plss.Corner(strings.TrimSpace(label))
}

// ResolvePOB combines an anchor with an optional tie-to-corner to produce the
// point of beginning. With no tie the POB is the anchor point itself. With a
// tie, the named corner is resolved from the anchor's corner set — falling
// back, flagged, to a bounding-box corner when no surveyed geometry exists —
// and the tie vector is projected geodesically from it.
func ResolvePOB(ctx context.Context, anchor *plss.AnchorPoint, tie *Tie) (*POB, error) {

	logger := slog.Default()
	logger = logger.With("reference", anchor.Reference.String())

	// Guard against corrupt dataset geometry before any math.

	if anchor.Bound.Min.Lon() >= anchor.Bound.Max.Lon() || anchor.Bound.Min.Lat() >= anchor.Bound.Max.Lat() {
		return nil, &DegenerateGeometryError{Reference: anchor.Reference.String()}
	}

	if tie == nil {

		pob := &POB{
			Point:    anchor.Point,
			Accuracy: anchor.Accuracy,
		}

		return pob, nil
	}

	if tie.Distance.Value < 0 {
		return nil, &InvalidTieError{Field: "distance", Value: tie.Distance.Value}
	}

	corner := normalizeCorner(tie.Corner)

	accuracy := anchor.Accuracy

	corner_pt, ok := anchor.Corners[corner]

	if !ok {

		switch corner {
		case plss.CornerNE, plss.CornerNW, plss.CornerSE, plss.CornerSW:
			// Documented approximation: substitute the bounding-box corner and
			// flag the degraded accuracy in the result.
			corner_pt = plss.BoundCorner(anchor.Bound, corner)
			accuracy = plss.AccuracyBoundingBoxApprox

			logger.Warn("Corner geometry unavailable, approximating from bounding box", "corner", corner)

		default:
			return nil, &AmbiguousCornerError{Corner: tie.Corner}
		}
	}

	// Units convert to meters before projection, using exact constants.

	pt := geodesy.Forward(corner_pt, tie.azimuth(), tie.Distance.Meters())

	logger.Debug("Resolved POB from tie", "tie", tie.String(), "accuracy", accuracy)

	pob := &POB{
		Point:    pt,
		Accuracy: accuracy,
		Corner:   corner,
	}

	return pob, nil
}
