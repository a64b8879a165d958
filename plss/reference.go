// Package plss models Public Land Survey System references and resolves them
// into geographic anchor points against an indexed land-grid dataset.
package plss

import (
	"fmt"
)

// InvalidReferenceError signals a PLSS reference whose fields are outside their
// legal ranges, or one whose section is absent from the indexed dataset. The
// offending field is identified so callers can surface it verbatim.
type InvalidReferenceError struct {
	Field string
	Value any
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("Invalid PLSS reference: field '%s' has value '%v'", e.Field, e.Value)
}

// Reference is an immutable Township/Range/Section reference, optionally narrowed
// to a quarter-section subdivision. Construct with `NewReference` which enforces
// the field invariants.
type Reference struct {
	// State is the two-letter U.S. state code the land grid is indexed under.
	State string `json:"state"`
	// Meridian is the principal meridian key, matched exactly against the dataset.
	Meridian string `json:"meridian"`
	// Township is the township number, a positive integer.
	Township int `json:"township"`
	// TownshipDirection is "N" or "S".
	TownshipDirection string `json:"township_direction"`
	// Range is the range number, a positive integer.
	Range int `json:"range"`
	// RangeDirection is "E" or "W".
	RangeDirection string `json:"range_direction"`
	// Section is the section number, 1-36.
	Section int `json:"section"`
	// Quarter is an optional quarter-section subdivision string, for example
	// "NE", "NENW" (NE quarter of the NW quarter) or "N2" (north half).
	Quarter string `json:"quarter,omitempty"`
}

// NewReference constructs a validated `Reference`. Township and range must be
// positive, directions cardinal (N/S for township, E/W for range) and section
// within 1-36; violations return an `InvalidReferenceError` naming the field.
func NewReference(state string, meridian string, township int, township_dir string, rng int, range_dir string, section int, quarter string) (*Reference, error) {

	if state == "" {
		return nil, &InvalidReferenceError{Field: "state", Value: state}
	}

	if township <= 0 {
		return nil, &InvalidReferenceError{Field: "township", Value: township}
	}

	if township_dir != "N" && township_dir != "S" {
		return nil, &InvalidReferenceError{Field: "township_direction", Value: township_dir}
	}

	if rng <= 0 {
		return nil, &InvalidReferenceError{Field: "range", Value: rng}
	}

	if range_dir != "E" && range_dir != "W" {
		return nil, &InvalidReferenceError{Field: "range_direction", Value: range_dir}
	}

	if section < 1 || section > 36 {
		return nil, &InvalidReferenceError{Field: "section", Value: section}
	}

	if quarter != "" {

		_, err := parseQuarter(quarter)

		if err != nil {
			return nil, &InvalidReferenceError{Field: "quarter", Value: quarter}
		}
	}

	ref := &Reference{
		State:             state,
		Meridian:          meridian,
		Township:          township,
		TownshipDirection: township_dir,
		Range:             rng,
		RangeDirection:    range_dir,
		Section:           section,
		Quarter:           quarter,
	}

	return ref, nil
}

// Key derives the composite lookup key for the section index. The key
// deliberately excludes the quarter subdivision: quarter corners are not
// independently surveyed and are always derived from section geometry.
func Key(meridian string, township int, township_dir string, rng int, range_dir string, section int) string {
	return fmt.Sprintf("%s:T%d%s:R%d%s:S%d", meridian, township, township_dir, rng, range_dir, section)
}

// Key returns the section index lookup key for 'r'.
func (r *Reference) Key() string {
	return Key(r.Meridian, r.Township, r.TownshipDirection, r.Range, r.RangeDirection, r.Section)
}

func (r *Reference) String() string {

	str_ref := fmt.Sprintf("T%d%s R%d%s Sec %d", r.Township, r.TownshipDirection, r.Range, r.RangeDirection, r.Section)

	if r.Quarter != "" {
		str_ref = fmt.Sprintf("%s %s", r.Quarter, str_ref)
	}

	return fmt.Sprintf("%s, %s PM, %s", str_ref, r.Meridian, r.State)
}
