package arena

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownVariableGroup is returned when an evidence update
	// references a variable group absent from the compiled graph.
	ErrUnknownVariableGroup = errors.New("arena: unknown variable group")

	// ErrUnknownFactorGroup is returned when a log-potential update
	// references a factor group absent from the compiled graph.
	ErrUnknownFactorGroup = errors.New("arena: unknown factor group")

	// ErrShapeMismatch is returned when an evidence or log-potential
	// update array's length does not match the declared shape.
	ErrShapeMismatch = errors.New("arena: shape mismatch")

	// ErrNoOverride is returned when a log-potential update targets a
	// KindOR/KindAND group, whose implicit -inf structure cannot be
	// overridden with an explicit table.
	ErrNoOverride = errors.New("arena: OR/AND factor groups have no overridable log-potential table")
)

func arenaErrorf(method, group string, err error) error {
	return fmt.Errorf("arena: %s(group=%q): %w", method, group, err)
}
