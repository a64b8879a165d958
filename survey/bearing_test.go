package survey

import (
	"math"
	"testing"
)

func TestParseBearingQuadrant(t *testing.T) {

	tests := map[string]float64{
		"N45°30'E":                   45.5,
		"N 45° 30' 00\" E":           45.5,
		"S. 87°35'W.":                267.0 + 35.0/60.0,
		"S 87 35 W":                  267.0 + 35.0/60.0,
		"NORTH 4 DEGREES 00' WEST":   356.0,
		"N4W":                        356.0,
		"S 12°30' E":                 167.5,
		"SOUTH 45 DEGREES 15' EAST":  134.75,
		"N 0° E":                     0.0,
		"S 90° W":                    270.0,
	}

	for raw, expected := range tests {

		b, err := ParseBearing(raw)

		if err != nil {
			t.Fatalf("Failed to parse bearing '%s', %v", raw, err)
		}

		if math.Abs(b.Azimuth()-expected) > 1e-9 {
			t.Fatalf("Unexpected azimuth for '%s'. Expected %f but got %f", raw, expected, b.Azimuth())
		}
	}
}

func TestParseBearingAzimuth(t *testing.T) {

	tests := map[string]float64{
		"225":   225.0,
		"45.5":  45.5,
		"0":     0.0,
		"359.9": 359.9,
		"-90":   270.0,
		"450":   90.0,
	}

	for raw, expected := range tests {

		b, err := ParseBearing(raw)

		if err != nil {
			t.Fatalf("Failed to parse bearing '%s', %v", raw, err)
		}

		if math.Abs(b.Azimuth()-expected) > 1e-9 {
			t.Fatalf("Unexpected azimuth for '%s'. Expected %f but got %f", raw, expected, b.Azimuth())
		}
	}
}

func TestParseBearingCardinal(t *testing.T) {

	tests := map[string]float64{
		"NORTH":    0.0,
		"due east": 90.0,
		"South":    180.0,
		"W":        270.0,
	}

	for raw, expected := range tests {

		b, err := ParseBearing(raw)

		if err != nil {
			t.Fatalf("Failed to parse bearing '%s', %v", raw, err)
		}

		if b.Azimuth() != expected {
			t.Fatalf("Unexpected azimuth for '%s'. Expected %f but got %f", raw, expected, b.Azimuth())
		}
	}
}

func TestParseBearingInvalid(t *testing.T) {

	invalid := []string{
		"",
		"N 95° E",
		"QX 45 W",
		"thence along the creek",
	}

	for _, raw := range invalid {

		_, err := ParseBearing(raw)

		if err == nil {
			t.Fatalf("Expected '%s' to fail to parse", raw)
		}
	}
}

func TestNewBearingNormalizes(t *testing.T) {

	b, err := NewBearing(-45.0)

	if err != nil {
		t.Fatalf("Failed to create bearing, %v", err)
	}

	if b.Azimuth() != 315.0 {
		t.Fatalf("Expected 315 but got %f", b.Azimuth())
	}

	_, err = NewBearing(math.NaN())

	if err == nil {
		t.Fatalf("Expected NaN azimuth to fail")
	}
}

func TestBearingQuadrantRoundTrip(t *testing.T) {

	azimuths := []float64{0.0, 45.5, 90.0, 134.75, 180.0, 225.0, 267.583333, 315.0}

	for _, az := range azimuths {

		b, _ := NewBearing(az)
		ns, angle, ew := b.Quadrant()

		var back float64

		switch ns + ew {
		case "NE":
			back = angle
		case "SE":
			back = 180.0 - angle
		case "SW":
			back = 180.0 + angle
		case "NW":
			back = 360.0 - angle
		}

		back = math.Mod(back, 360.0)

		if math.Abs(back-az) > 1e-9 {
			t.Fatalf("Quadrant round trip for %f yielded %f", az, back)
		}
	}
}

func TestBearingString(t *testing.T) {

	tests := map[float64]string{
		45.5:   `N45°30'00"E`,
		225.0:  `S45°00'00"W`,
		356.0:  `N4°00'00"W`,
		167.51: `S12°29'24"E`,
	}

	for az, expected := range tests {

		b, _ := NewBearing(az)

		if b.String() != expected {
			t.Fatalf("Unexpected string for %f. Expected '%s' but got '%s'", az, expected, b.String())
		}
	}
}
