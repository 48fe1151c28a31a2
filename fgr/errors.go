package fgr

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Compile. Callers should branch with errors.Is;
// none of these are wrapped at the definition site, only at call sites via
// fgrErrorf.
var (
	// ErrUnknownVariableGroup is returned when a factor references a
	// variable group name that was not supplied to Compile.
	ErrUnknownVariableGroup = errors.New("fgr: unknown variable group")

	// ErrVariableIndexRange is returned when a factor references a local
	// variable index outside its group's bounds.
	ErrVariableIndexRange = errors.New("fgr: variable index out of range")

	// ErrDuplicateEdge is returned when a single factor connects to the
	// same variable through more than one slot.
	ErrDuplicateEdge = errors.New("fgr: duplicate edge in factor")

	// ErrShapeMismatch is returned when a log-potential table's length
	// does not match the shape implied by its factor's connected
	// variables (pairwise k1×k2, enumerated product-of-sizes).
	ErrShapeMismatch = errors.New("fgr: log-potential shape mismatch")

	// ErrVariableShapeConflict is returned when a pairwise group's
	// factors do not share one uniform (k1,k2) shape.
	ErrVariableShapeConflict = errors.New("fgr: inconsistent variable shape within group")

	// ErrNotBinary is returned when an OR or AND factor connects to a
	// variable with more than 2 states.
	ErrNotBinary = errors.New("fgr: OR/AND factors require binary variables")

	// ErrTooFewParents is returned when an OR or AND factor has fewer
	// than one parent plus one child (arity < 2).
	ErrTooFewParents = errors.New("fgr: OR/AND factor needs at least one parent")

	// ErrUnsupportedFactorType is returned when a FactorGroup carries a
	// FactorKind with no registered kernel.
	ErrUnsupportedFactorType = errors.New("fgr: unsupported factor type")
)

// fgrErrorf wraps err with the compiling group/factor context.
func fgrErrorf(group string, factor int, err error) error {
	return fmt.Errorf("fgr: compile(group=%q, factor=%d): %w", group, factor, err)
}
