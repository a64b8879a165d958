package georeference

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/legaldesc/go-plss-georeference/survey"
)

func TestParseRequest(t *testing.T) {

	fixture_path, err := filepath.Abs("../../fixtures/requests/square.json")

	if err != nil {
		t.Fatalf("Failed to derive absolute path, %v", err)
	}

	body, err := os.ReadFile(fixture_path)

	if err != nil {
		t.Fatalf("Failed to read fixture, %v", err)
	}

	req, err := ParseRequest(body)

	if err != nil {
		t.Fatalf("Failed to parse request, %v", err)
	}

	if req.Reference.Key() != "06:T14N:R75W:S2" {
		t.Fatalf("Unexpected reference key '%s'", req.Reference.Key())
	}

	if req.Tie == nil {
		t.Fatalf("Expected a tie")
	}

	if req.Tie.Corner != "NE" {
		t.Fatalf("Unexpected tie corner '%s'", req.Tie.Corner)
	}

	if math.Abs(req.Tie.Bearing.Azimuth()-225.0) > 1e-9 {
		t.Fatalf("Unexpected tie azimuth %f", req.Tie.Bearing.Azimuth())
	}

	if len(req.Legs) != 4 {
		t.Fatalf("Expected 4 legs but got %d", len(req.Legs))
	}

	// Quadrant strings and plain azimuth numbers both parse.

	if req.Legs[0].Bearing.Azimuth() != 0.0 {
		t.Fatalf("Unexpected azimuth for leg 0, got %f", req.Legs[0].Bearing.Azimuth())
	}

	if req.Legs[1].Bearing.Azimuth() != 90.0 {
		t.Fatalf("Unexpected azimuth for leg 1, got %f", req.Legs[1].Bearing.Azimuth())
	}

	if req.Legs[2].Distance.Unit != survey.Feet || req.Legs[2].Distance.Value != 200.0 {
		t.Fatalf("Unexpected distance for leg 2, got %s", req.Legs[2].Distance)
	}

	if req.Legs[0].SourceText != "thence North 200 feet" {
		t.Fatalf("Unexpected source text '%s'", req.Legs[0].SourceText)
	}

	if req.Legs[0].Confidence != 0.98 {
		t.Fatalf("Unexpected confidence %f", req.Legs[0].Confidence)
	}
}

func TestParseRequestNoTie(t *testing.T) {

	body := []byte(`{
		"reference": {
			"state": "WY",
			"meridian": "06",
			"township": 14,
			"township_direction": "N",
			"range": 75,
			"range_direction": "W",
			"section": 2,
			"quarter": "NENW"
		},
		"legs": [
			{"bearing": "N 45 E", "distance": 5, "units": "chains"}
		]
	}`)

	req, err := ParseRequest(body)

	if err != nil {
		t.Fatalf("Failed to parse request, %v", err)
	}

	if req.Tie != nil {
		t.Fatalf("Expected no tie")
	}

	if req.Reference.Quarter != "NENW" {
		t.Fatalf("Unexpected quarter '%s'", req.Reference.Quarter)
	}

	if req.Legs[0].Distance.Unit != survey.Chains {
		t.Fatalf("Unexpected unit '%s'", req.Legs[0].Distance.Unit)
	}
}

func TestParseRequestInvalid(t *testing.T) {

	invalid := map[string]string{
		"missing reference": `{"legs": []}`,
		"bad section":       `{"reference": {"state": "WY", "meridian": "06", "township": 14, "township_direction": "N", "range": 75, "range_direction": "W", "section": 37}}`,
		"bad bearing":       `{"reference": {"state": "WY", "meridian": "06", "township": 14, "township_direction": "N", "range": 75, "range_direction": "W", "section": 2}, "legs": [{"bearing": "sideways", "distance": 5, "units": "feet"}]}`,
		"bad unit":          `{"reference": {"state": "WY", "meridian": "06", "township": 14, "township_direction": "N", "range": 75, "range_direction": "W", "section": 2}, "legs": [{"bearing": 90, "distance": 5, "units": "furlongs"}]}`,
	}

	for name, body := range invalid {

		_, err := ParseRequest([]byte(body))

		if err == nil {
			t.Fatalf("Expected '%s' to fail", name)
		}
	}
}
