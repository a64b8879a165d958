package survey

import (
	"fmt"
	"strings"
)

// Unit is a distance unit found in legal land descriptions.
type Unit string

const (
	Feet   Unit = "feet"
	Meters Unit = "meters"
	Chains Unit = "chains"
	Rods   Unit = "rods"
	Links  Unit = "links"
	Yards  Unit = "yards"
)

// Exact conversion constants. Everything except meters is defined in terms of
// the international foot (1 ft = 0.3048 m exactly); 1 chain = 66 ft, 1 rod = 16.5 ft,
// 1 link = 0.66 ft, 1 yard = 3 ft.
const (
	FEET_TO_METERS float64 = 0.3048
	FEET_PER_CHAIN float64 = 66.0
	FEET_PER_ROD   float64 = 16.5
	FEET_PER_LINK  float64 = 0.66
	FEET_PER_YARD  float64 = 3.0
)

// SQUARE_METERS_PER_ACRE derives from the exact definition of one acre as
// 43560 square (international) feet.
const SQUARE_METERS_PER_ACRE float64 = 43560.0 * FEET_TO_METERS * FEET_TO_METERS

var unit_aliases = map[string]Unit{
	"feet": Feet, "foot": Feet, "ft": Feet,
	"meters": Meters, "meter": Meters, "metres": Meters, "metre": Meters, "m": Meters,
	"chains": Chains, "chain": Chains, "ch": Chains,
	"rods": Rods, "rod": Rods,
	"links": Links, "link": Links, "lk": Links,
	"yards": Yards, "yard": Yards, "yd": Yards,
}

// ParseUnit derives a `Unit` from 'raw', accepting the singular, plural and
// abbreviated spellings that appear in transcribed deeds.
func ParseUnit(raw string) (Unit, error) {

	u, ok := unit_aliases[strings.ToLower(strings.TrimSpace(raw))]

	if !ok {
		return "", fmt.Errorf("Unsupported distance unit '%s'", raw)
	}

	return u, nil
}

// feetPer returns the number of (international) feet in one 'u'.
func feetPer(u Unit) float64 {

	switch u {
	case Feet:
		return 1.0
	case Chains:
		return FEET_PER_CHAIN
	case Rods:
		return FEET_PER_ROD
	case Links:
		return FEET_PER_LINK
	case Yards:
		return FEET_PER_YARD
	default: // Meters
		return 1.0 / FEET_TO_METERS
	}
}

// Distance is an immutable distance value with its recorded unit.
type Distance struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// Meters returns 'd' converted to meters using exact conversion constants.
func (d Distance) Meters() float64 {

	if d.Unit == Meters {
		return d.Value
	}

	return d.Value * feetPer(d.Unit) * FEET_TO_METERS
}

// Feet returns 'd' converted to (international) feet.
func (d Distance) Feet() float64 {

	if d.Unit == Meters {
		return d.Value / FEET_TO_METERS
	}

	return d.Value * feetPer(d.Unit)
}

// In returns 'd' converted to unit 'u'.
func (d Distance) In(u Unit) float64 {

	if u == Meters {
		return d.Meters()
	}

	return d.Feet() / feetPer(u)
}

func (d Distance) String() string {
	return fmt.Sprintf("%g %s", d.Value, d.Unit)
}
