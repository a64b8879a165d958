package plss

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"
)

// quarterToken is one subdivision step: a quarter ("NE") or a half ("N2").
type quarterToken string

var quarter_tokens = map[string]quarterToken{
	"NE": "NE", "NW": "NW", "SE": "SE", "SW": "SW",
	"N2": "N2", "S2": "S2", "E2": "E2", "W2": "W2",
}

// parseQuarter tokenizes a quarter-subdivision string. Tokens are applied
// right-to-left: "NENW" reads "NE quarter of the NW quarter", so the NW
// subdivision is taken first. Connective noise ("OF", "1/4", "¼") is ignored.
func parseQuarter(quarter string) ([]quarterToken, error) {

	s := strings.ToUpper(quarter)

	for _, noise := range []string{"OF", "THE", "¼", "½", "1/4", "1/2", "/4", "/2", ",", "."} {
		s = strings.ReplaceAll(s, noise, " ")
	}

	s = strings.Join(strings.Fields(s), "")

	if s == "" {
		return nil, fmt.Errorf("Empty quarter subdivision")
	}

	tokens := make([]quarterToken, 0, 2)

	for len(s) > 0 {

		if len(s) < 2 {
			return nil, fmt.Errorf("Invalid quarter subdivision '%s'", quarter)
		}

		t, ok := quarter_tokens[s[0:2]]

		if !ok {
			return nil, fmt.Errorf("Invalid quarter subdivision '%s'", quarter)
		}

		tokens = append(tokens, t)
		s = s[2:]
	}

	return tokens, nil
}

// SubdivideBound applies 'quarter' to a section bound by simple proportional
// splitting (halves and quarters). Quarter-section corners are not
// independently surveyed in the land-grid dataset and must be derived.
func SubdivideBound(bound orb.Bound, quarter string) (orb.Bound, error) {

	tokens, err := parseQuarter(quarter)

	if err != nil {
		return bound, err
	}

	// Rightmost token names the largest subdivision; apply it first.

	for i := len(tokens) - 1; i >= 0; i-- {
		bound = applyQuarterToken(bound, tokens[i])
	}

	return bound, nil
}

func applyQuarterToken(bound orb.Bound, t quarterToken) orb.Bound {

	mid_lon := (bound.Min.Lon() + bound.Max.Lon()) / 2.0
	mid_lat := (bound.Min.Lat() + bound.Max.Lat()) / 2.0

	min_lon := bound.Min.Lon()
	min_lat := bound.Min.Lat()
	max_lon := bound.Max.Lon()
	max_lat := bound.Max.Lat()

	if strings.Contains(string(t), "N") {
		min_lat = mid_lat
	}

	if strings.Contains(string(t), "S") {
		max_lat = mid_lat
	}

	if strings.Contains(string(t), "E") {
		min_lon = mid_lon
	}

	if strings.Contains(string(t), "W") {
		max_lon = mid_lon
	}

	return orb.Bound{
		Min: orb.Point{min_lon, min_lat},
		Max: orb.Point{max_lon, max_lat},
	}
}
