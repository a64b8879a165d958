package georeference

import (
	"context"
	"log/slog"

	"github.com/legaldesc/go-plss-georeference/plss"
	"github.com/legaldesc/go-plss-georeference/traverse"
)

// Options configures a `Georeference` run.
type Options struct {
	// Resolver is the PLSS anchor resolver to resolve references against.
	Resolver *plss.Resolver
	// Validation tunes the validator; nil selects the defaults.
	Validation *ValidateOptions
}

// Georeference converts one legal description — a PLSS reference, an optional
// tie to a named corner and an ordered list of traverse legs — in to a
// georeferenced polygon and its validation report.
//
// The stages run strictly in sequence (anchor, POB, traverse, validation) and
// each consumes only its predecessor's output. Structural errors (NotFound,
// InvalidReference, AmbiguousCorner, DegenerateGeometry, InvalidLeg) are
// returned verbatim, not wrapped. Whenever geometry computation succeeds a
// validation report is returned, including "advisory" and "fail" grades: a
// polygon that fails to close is a result to surface, not an error.
func Georeference(ctx context.Context, opts *Options, ref *plss.Reference, tie *Tie, legs []traverse.Leg) (*GeoreferencedPolygon, *ValidationReport, error) {

	logger := slog.Default()
	logger = logger.With("action", "georeference")
	logger = logger.With("reference", ref.String())

	logger.Debug("Resolve anchor")

	anchor, err := opts.Resolver.Resolve(ctx, ref)

	if err != nil {
		return nil, nil, err
	}

	logger.Debug("Resolve point of beginning", "accuracy", anchor.Accuracy)

	pob, err := ResolvePOB(ctx, anchor, tie)

	if err != nil {
		return nil, nil, err
	}

	logger.Debug("Compute traverse", "legs", len(legs))

	result, err := traverse.Compute(pob.Point, legs)

	if err != nil {
		return nil, nil, err
	}

	polygon := newPolygon(anchor, pob, result)

	// Copy before defaulting so one description's native unit never leaks in
	// to the next run's options.

	validate_opts := ValidateOptions{}

	if opts.Validation != nil {
		validate_opts = *opts.Validation
	}

	if validate_opts.ClosureUnit == "" && len(legs) > 0 {
		// Closure is reported in the traverse's native unit.
		validate_opts.ClosureUnit = legs[0].Distance.Unit
	}

	report := Validate(polygon, &validate_opts)

	logger.Debug("Validated polygon", "verdict", report.Verdict, "closure", report.ClosureError)

	return polygon, report, nil
}
