package bpd

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Run. Callers should
// branch with errors.Is; each is wrapped at the call site via bpdErrorf.
var (
	// ErrBadTemperature is returned when Temperature is negative.
	ErrBadTemperature = errors.New("bpd: temperature must be >= 0")

	// ErrBadDamping is returned when Damping is outside [0,1).
	ErrBadDamping = errors.New("bpd: damping must be in [0,1)")

	// ErrBadMaxIterations is returned when MaxIterations is <= 0.
	ErrBadMaxIterations = errors.New("bpd: max iterations must be > 0")

	// ErrNotConverged is returned by Run when the message delta has not
	// fallen below Tolerance after MaxIterations, and FailOnNonConvergence
	// is set.
	ErrNotConverged = errors.New("bpd: did not converge within max iterations")
)

func bpdErrorf(method string, err error) error {
	return fmt.Errorf("bpd: %s: %w", method, err)
}
