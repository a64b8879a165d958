// Package traverse walks ordered bearing/distance courses geodesically from a
// point of beginning, producing polygon vertices and closure diagnostics.
package traverse

import (
	"fmt"

	"github.com/legaldesc/go-plss-georeference/survey"
)

// InvalidLegError signals a traverse leg that is structurally unusable: a
// bearing that does not resolve to a 0-360 azimuth or a non-positive distance.
// Non-closure is never an error; it is reported as a metric.
type InvalidLegError struct {
	// Index is the zero-based position of the offending leg.
	Index int
	// Reason describes what made the leg invalid.
	Reason string
}

func (e *InvalidLegError) Error() string {
	return fmt.Sprintf("Invalid traverse leg at index %d: %s", e.Index, e.Reason)
}

// Leg is one immutable course of a traverse: a bearing and a distance, plus
// optional traceability fields carried through from upstream text extraction.
type Leg struct {
	// Bearing is the course direction.
	Bearing survey.Bearing `json:"bearing"`
	// Distance is the course length in its recorded unit.
	Distance survey.Distance `json:"distance"`
	// SourceText is the raw deed text the leg was extracted from, when known.
	SourceText string `json:"source_text,omitempty"`
	// Confidence is an upstream extraction confidence score; it is carried
	// through, never computed here.
	Confidence float64 `json:"confidence,omitempty"`
}

func (l Leg) String() string {
	return fmt.Sprintf("%s %s", l.Bearing, l.Distance)
}
