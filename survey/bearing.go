package survey

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Bearing is a direction of travel expressed as an azimuth in decimal degrees,
// clockwise from true north, normalized to [0, 360). Bearings are immutable and
// always resolve to a finite azimuth.
type Bearing struct {
	azimuth float64
	raw     string
}

// quadrant_re matches surveyor quadrant notation after normalization, for example
// "N 45°30'00\" E", "S 87 35 W" or "N4W". Minute and second marks are optional
// because transcriptions frequently drop them.
var quadrant_re = regexp.MustCompile(`^([NS])\s*([0-9]+(?:\.[0-9]+)?)\s*°?\s*(?:([0-9]+(?:\.[0-9]+)?)\s*[''′]?)?\s*(?:([0-9]+(?:\.[0-9]+)?)\s*["″]?)?\s*([EW])$`)

var letter_period_re = regexp.MustCompile(`([NSEW°'"])\.`)

var cardinal_azimuths = map[string]float64{
	"N": 0.0,
	"E": 90.0,
	"S": 180.0,
	"W": 270.0,
}

// NewBearing returns a `Bearing` for an azimuth in decimal degrees clockwise from
// north. Values outside [0, 360) are normalized; non-finite values are an error.
func NewBearing(azimuth float64) (Bearing, error) {

	if math.IsNaN(azimuth) || math.IsInf(azimuth, 0) {
		return Bearing{}, fmt.Errorf("Bearing does not resolve to a finite azimuth")
	}

	azimuth = math.Mod(azimuth, 360.0)

	if azimuth < 0 {
		azimuth += 360.0
	}

	return Bearing{azimuth: azimuth}, nil
}

// ParseBearing derives a `Bearing` from 'raw', which may be a plain azimuth
// ("225", "45.5") or surveyor quadrant notation ("N45°30'E", "S. 87°35'W.",
// "NORTH 4 DEGREES 00' WEST"). Quadrant bearings convert to azimuth by the
// standard quadrant-offset rules (NE: a, SE: 180-a, SW: 180+a, NW: 360-a).
func ParseBearing(raw string) (Bearing, error) {

	if az, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {

		b, err := NewBearing(az)

		if err != nil {
			return Bearing{}, err
		}

		b.raw = raw
		return b, nil
	}

	normalized := normalizeBearing(raw)

	if normalized == "" {
		return Bearing{}, fmt.Errorf("Could not parse bearing from empty string")
	}

	if az, ok := cardinal_azimuths[normalized]; ok {
		b, _ := NewBearing(az)
		b.raw = raw
		return b, nil
	}

	if az, err := strconv.ParseFloat(normalized, 64); err == nil {

		b, err := NewBearing(az)

		if err != nil {
			return Bearing{}, err
		}

		b.raw = raw
		return b, nil
	}

	m := quadrant_re.FindStringSubmatch(normalized)

	if m == nil {
		return Bearing{}, fmt.Errorf("Could not parse bearing '%s'", raw)
	}

	deg, _ := strconv.ParseFloat(m[2], 64)

	var minutes float64
	var seconds float64

	if m[3] != "" {
		minutes, _ = strconv.ParseFloat(m[3], 64)
	}

	if m[4] != "" {
		seconds, _ = strconv.ParseFloat(m[4], 64)
	}

	angle := deg + minutes/60.0 + seconds/3600.0

	if angle > 90.0 {
		return Bearing{}, fmt.Errorf("Quadrant bearing angle %g° exceeds 90°", angle)
	}

	var az float64

	switch m[1] + m[5] {
	case "NE":
		az = angle
	case "SE":
		az = 180.0 - angle
	case "SW":
		az = 180.0 + angle
	case "NW":
		az = 360.0 - angle
	}

	b, err := NewBearing(az)

	if err != nil {
		return Bearing{}, err
	}

	b.raw = raw
	return b, nil
}

// normalizeBearing rewrites 'raw' into the compact form the quadrant pattern
// expects: spelled-out directions and degree words collapsed, punctuation and
// repeated whitespace stripped.
func normalizeBearing(raw string) string {

	s := strings.ToUpper(strings.TrimSpace(raw))

	replacements := [][2]string{
		{"º", "°"},
		{"DEGREES", "°"},
		{"DEGREE", "°"},
		{"DEG", "°"},
		{"MINUTES", "'"},
		{"MINUTE", "'"},
		{"SECONDS", `"`},
		{"SECOND", `"`},
		{"NORTH", "N"},
		{"SOUTH", "S"},
		{"EAST", "E"},
		{"WEST", "W"},
		{"DUE ", ""},
		{",", " "},
	}

	for _, r := range replacements {
		s = strings.ReplaceAll(s, r[0], r[1])
	}

	// Strip the periods surveyors write after quadrant letters ("N. 45° E.")
	// without touching decimal points inside numbers.
	s = letter_period_re.ReplaceAllString(s, "$1 ")
	s = strings.TrimSuffix(strings.TrimSpace(s), ".")

	s = strings.Join(strings.Fields(s), " ")
	return s
}

// Azimuth returns the bearing in decimal degrees clockwise from north, in [0, 360).
func (b Bearing) Azimuth() float64 {
	return b.azimuth
}

// Quadrant returns the bearing in surveyor quadrant form: a north/south letter,
// an angle in [0, 90] and an east/west letter.
func (b Bearing) Quadrant() (string, float64, string) {

	az := b.azimuth

	switch {
	case az <= 90.0:
		return "N", az, "E"
	case az <= 180.0:
		return "S", 180.0 - az, "E"
	case az <= 270.0:
		return "S", az - 180.0, "W"
	default:
		return "N", 360.0 - az, "W"
	}
}

// String formats the bearing in quadrant DMS notation, for example `N45°30'00"E`.
func (b Bearing) String() string {

	ns, angle, ew := b.Quadrant()

	deg := math.Floor(angle)
	rem := (angle - deg) * 60.0
	min := math.Floor(rem)
	sec := math.Round((rem - min) * 60.0)

	if sec >= 60.0 {
		sec -= 60.0
		min += 1.0
	}

	if min >= 60.0 {
		min -= 60.0
		deg += 1.0
	}

	return fmt.Sprintf("%s%d°%02d'%02d\"%s", ns, int(deg), int(min), int(sec), ew)
}

func (b Bearing) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.azimuth)
}

func (b *Bearing) UnmarshalJSON(body []byte) error {

	var az float64

	if err := json.Unmarshal(body, &az); err == nil {

		new_b, err := NewBearing(az)

		if err != nil {
			return err
		}

		*b = new_b
		return nil
	}

	var raw string

	if err := json.Unmarshal(body, &raw); err != nil {
		return fmt.Errorf("Failed to unmarshal bearing, %w", err)
	}

	new_b, err := ParseBearing(raw)

	if err != nil {
		return err
	}

	*b = new_b
	return nil
}
