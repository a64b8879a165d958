// Package georeference sequences anchor resolution, point-of-beginning
// resolution, traverse computation and validation for a single legal
// description, and assembles the persisted output artifact.
package georeference

import (
	"fmt"

	"github.com/legaldesc/go-plss-georeference/survey"
)

// Tie is an optional bearing+distance offset connecting the point of beginning
// to a named reference corner.
type Tie struct {
	// Corner is the reference corner label: "NE", "SW", a spelled-out
	// "northeast corner", or a named monument present in the dataset.
	Corner string `json:"corner"`
	// Bearing is the tie direction.
	Bearing survey.Bearing `json:"bearing"`
	// Distance is the tie length; must be >= 0.
	Distance survey.Distance `json:"distance"`
	// Reciprocal indicates the deed phrases the tie as the corner bearing
	// from the POB ("from which the NE corner bears N45°E"); the tie vector
	// is reversed (azimuth + 180°) before projection.
	Reciprocal bool `json:"reciprocal,omitempty"`
}

func (t *Tie) String() string {
	return fmt.Sprintf("%s %s from %s corner", t.Bearing, t.Distance, t.Corner)
}

// azimuth returns the projection azimuth for the tie, with the reciprocal
// correction applied when the deed phrases the bearing corner-from-POB.
func (t *Tie) azimuth() float64 {

	az := t.Bearing.Azimuth()

	if t.Reciprocal {
		az = az + 180.0

		if az >= 360.0 {
			az -= 360.0
		}
	}

	return az
}
