package fgbuilder

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewVariables is returned when a topology needs more variables
	// than requested (e.g. a chain of fewer than 2, a grid with fewer than
	// 2 rows or cols).
	ErrTooFewVariables = errors.New("fgbuilder: too few variables for this topology")

	// ErrEmptyClause is returned when a sum-of-products clause lists no
	// input indices.
	ErrEmptyClause = errors.New("fgbuilder: clause must reference at least one input")

	// ErrInputIndexRange is returned when a clause references an input
	// index outside [0, numInputs).
	ErrInputIndexRange = errors.New("fgbuilder: clause input index out of range")
)

func fgbuilderErrorf(fn string, err error) error {
	return fmt.Errorf("fgbuilder: %s: %w", fn, err)
}
