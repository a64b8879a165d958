package plss

import (
	"errors"
	"testing"
)

func TestNewReference(t *testing.T) {

	ref, err := NewReference("WY", "06", 14, "N", 75, "W", 2, "")

	if err != nil {
		t.Fatalf("Failed to create reference, %v", err)
	}

	expected_key := "06:T14N:R75W:S2"

	if ref.Key() != expected_key {
		t.Fatalf("Unexpected key. Expected '%s' but got '%s'", expected_key, ref.Key())
	}

	expected_str := "T14N R75W Sec 2, 06 PM, WY"

	if ref.String() != expected_str {
		t.Fatalf("Unexpected string. Expected '%s' but got '%s'", expected_str, ref.String())
	}
}

func TestNewReferenceWithQuarter(t *testing.T) {

	ref, err := NewReference("WY", "06", 14, "N", 75, "W", 2, "NENW")

	if err != nil {
		t.Fatalf("Failed to create reference, %v", err)
	}

	// The quarter never participates in the lookup key.

	if ref.Key() != "06:T14N:R75W:S2" {
		t.Fatalf("Unexpected key, got '%s'", ref.Key())
	}

	expected_str := "NENW T14N R75W Sec 2, 06 PM, WY"

	if ref.String() != expected_str {
		t.Fatalf("Unexpected string. Expected '%s' but got '%s'", expected_str, ref.String())
	}
}

func TestNewReferenceInvalid(t *testing.T) {

	type args struct {
		state       string
		meridian    string
		township    int
		townshipDir string
		rng         int
		rangeDir    string
		section     int
		quarter     string
	}

	tests := map[string]args{
		"state":              {"", "06", 14, "N", 75, "W", 2, ""},
		"township":           {"WY", "06", 0, "N", 75, "W", 2, ""},
		"township_direction": {"WY", "06", 14, "E", 75, "W", 2, ""},
		"range":              {"WY", "06", 14, "N", -1, "W", 2, ""},
		"range_direction":    {"WY", "06", 14, "N", 75, "N", 2, ""},
		"section":            {"WY", "06", 14, "N", 75, "W", 37, ""},
		"quarter":            {"WY", "06", 14, "N", 75, "W", 2, "XX"},
	}

	for field, a := range tests {

		_, err := NewReference(a.state, a.meridian, a.township, a.townshipDir, a.rng, a.rangeDir, a.section, a.quarter)

		if err == nil {
			t.Fatalf("Expected invalid %s to fail", field)
		}

		var invalid_err *InvalidReferenceError

		if !errors.As(err, &invalid_err) {
			t.Fatalf("Expected InvalidReferenceError for %s but got %T", field, err)
		}

		if invalid_err.Field != field {
			t.Fatalf("Unexpected field. Expected '%s' but got '%s'", field, invalid_err.Field)
		}
	}
}
