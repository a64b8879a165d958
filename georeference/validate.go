package georeference

import (
	"fmt"
	"math"

	georef "github.com/legaldesc/go-plss-georeference"
	"github.com/legaldesc/go-plss-georeference/geodesy"
	"github.com/legaldesc/go-plss-georeference/plss"
	"github.com/legaldesc/go-plss-georeference/survey"
)

// Verdict grades a validation report.
type Verdict string

const (
	VerdictPass     Verdict = "pass"
	VerdictAdvisory Verdict = "advisory"
	VerdictFail     Verdict = "fail"
)

// ValidationReport is the outcome of validating a georeferenced polygon.
// Validation never fails; a failing report is a normal, expected outcome.
// Reports are attached to, but logically separate from, the polygon so
// validation can be re-run without recomputing geometry.
type ValidationReport struct {
	// Verdict is the overall grade.
	Verdict Verdict `json:"verdict"`
	// ClosureError is the traverse misclosure in the traverse's native unit.
	ClosureError float64 `json:"closure_error"`
	// ClosureTolerance is the tolerance the closure was checked against, in
	// the same unit.
	ClosureTolerance float64 `json:"closure_tolerance"`
	// ClosureUnit names the native unit of the two closure figures.
	ClosureUnit survey.Unit `json:"closure_unit"`
	// ClosureRatio is misclosure over total traverse length (1:10,000
	// standard is a ratio below 0.0001).
	ClosureRatio float64 `json:"closure_ratio"`
	// ClosureOK reports whether closure fell within tolerance.
	ClosureOK bool `json:"closure_ok"`
	// BoundaryDistance is the geodesic distance, meters, between the POB and
	// the claimed section's centroid.
	BoundaryDistance float64 `json:"boundary_distance"`
	// BoundaryOK reports whether the polygon is plausibly anchored to the
	// section it claims.
	BoundaryOK bool `json:"boundary_ok"`
	// PrecisionOK reports whether every emitted coordinate carries at least
	// six decimal-degree places of precision.
	PrecisionOK bool `json:"precision_ok"`
	// Issues carries human-readable advisories.
	Issues []string `json:"issues,omitempty"`
}

// ValidateOptions tunes the validator. Zero values select the defaults.
type ValidateOptions struct {
	// ClosureTolerance is the closure tolerance in ClosureUnit units
	// (default 1.0).
	ClosureTolerance float64
	// ClosureUnit is the traverse's native distance unit (default feet).
	ClosureUnit survey.Unit
	// BoundaryTolerance is the advisory boundary-compliance distance in
	// meters (default 2000).
	BoundaryTolerance float64
	// FailMargin is the distance past BoundaryTolerance, meters, after which
	// the verdict is fail rather than advisory (default one statute mile).
	FailMargin float64
}

func (o *ValidateOptions) defaults() {

	if o.ClosureTolerance == 0.0 {
		o.ClosureTolerance = georef.DEFAULT_CLOSURE_TOLERANCE
	}

	if o.ClosureUnit == "" {
		o.ClosureUnit = survey.Feet
	}

	if o.BoundaryTolerance == 0.0 {
		o.BoundaryTolerance = georef.DEFAULT_BOUNDARY_TOLERANCE_M
	}

	if o.FailMargin == 0.0 {
		o.FailMargin = georef.BOUNDARY_FAIL_MARGIN_M
	}
}

// Validate checks 'p' against surveying standards: closure within tolerance,
// boundary compliance against the claimed section, and coordinate precision.
// It always returns a report; transcribed historical descriptions frequently
// fail to close exactly and that is surfaced, not rejected.
func Validate(p *GeoreferencedPolygon, opts *ValidateOptions) *ValidationReport {

	if opts == nil {
		opts = &ValidateOptions{}
	}

	opts.defaults()

	report := &ValidationReport{
		ClosureTolerance: opts.ClosureTolerance,
		ClosureUnit:      opts.ClosureUnit,
		Issues:           make([]string, 0),
	}

	// Closure, in the traverse's native unit.

	closure_m := survey.Distance{Value: p.Diagnostics.ClosureError, Unit: survey.Meters}
	report.ClosureError = closure_m.In(opts.ClosureUnit)
	report.ClosureRatio = p.Diagnostics.ClosureRatio
	report.ClosureOK = report.ClosureError <= opts.ClosureTolerance

	if !report.ClosureOK {
		report.Issues = append(report.Issues,
			fmt.Sprintf("Traverse does not close within tolerance: %.2f %s misclosure", report.ClosureError, opts.ClosureUnit))
	}

	// Boundary compliance: the POB must lie within a small geodesic tolerance
	// of the section geometry it claims. This catches gross bearing and unit
	// errors, for example feet read as chains.

	d, _ := geodesy.Inverse(p.POB.Point, p.Anchor.SectionCentroid)
	report.BoundaryDistance = d
	report.BoundaryOK = d <= opts.BoundaryTolerance

	if !report.BoundaryOK {
		report.Issues = append(report.Issues,
			fmt.Sprintf("Point of beginning lies %.0f m from the claimed section centroid", d))
	}

	// Coordinate precision: fewer than six decimal places indicates
	// truncation upstream.

	report.PrecisionOK = ringPrecisionOK(p)

	if !report.PrecisionOK {
		report.Issues = append(report.Issues, "Coordinates appear truncated below six decimal places")
	}

	approximated := p.POB.Accuracy == plss.AccuracyBoundingBoxApprox

	if approximated {
		report.Issues = append(report.Issues, "Reference corner was approximated from the section bounding box")
	}

	switch {
	case d > opts.BoundaryTolerance+opts.FailMargin:
		report.Verdict = VerdictFail
	case report.ClosureOK && report.BoundaryOK && report.PrecisionOK && !approximated:
		report.Verdict = VerdictPass
	default:
		report.Verdict = VerdictAdvisory
	}

	return report
}

// ringPrecisionOK reports whether every ring coordinate carries at least six
// decimal-degree places. A vertex whose longitude and latitude are both
// exactly representable at five decimals is indistinguishable from a truncated
// one, so a single such vertex flags the whole ring.
func ringPrecisionOK(p *GeoreferencedPolygon) bool {

	if len(p.Ring) == 0 {
		return false
	}

	places := georef.MIN_COORDINATE_DECIMALS - 1

	for _, pt := range p.Ring {

		if truncatedTo(pt.Lon(), places) && truncatedTo(pt.Lat(), places) {
			return false
		}
	}

	return true
}

// truncatedTo reports whether 'v' is exactly representable with 'places'
// decimal places.
func truncatedTo(v float64, places int) bool {

	scale := math.Pow(10.0, float64(places))
	scaled := v * scale

	return math.Abs(scaled-math.Round(scaled)) < 1e-6
}
