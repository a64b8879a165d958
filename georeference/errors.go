package georeference

import (
	"fmt"
)

// AmbiguousCornerError signals a tie whose named corner cannot be resolved from
// the anchor's geometry.
type AmbiguousCornerError struct {
	Corner string
}

func (e *AmbiguousCornerError) Error() string {
	return fmt.Sprintf("Tie references corner '%s' which is not resolvable from the anchor geometry", e.Corner)
}

// InvalidTieError signals a tie-to-corner whose named field carries a value no
// deed could record, for example a negative distance.
type InvalidTieError struct {
	Field string
	Value any
}

func (e *InvalidTieError) Error() string {
	return fmt.Sprintf("Invalid tie %s '%v'", e.Field, e.Value)
}

// DegenerateGeometryError signals an anchor whose section bounds are zero-area,
// which only happens when the land-grid dataset is corrupt.
type DegenerateGeometryError struct {
	Reference string
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("Section geometry for %s is degenerate (zero area)", e.Reference)
}
