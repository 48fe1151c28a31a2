package sdlpd

import (
	"errors"
	"fmt"
)

var (
	// ErrBadTemperature is returned when Temperature is negative.
	ErrBadTemperature = errors.New("sdlpd: temperature must be >= 0")

	// ErrMissingStepSize is returned when Run is called without
	// WithStepSize: spec §9 leaves the default step size an open
	// question, so this package requires callers to choose one rather
	// than silently picking an unvalidated default.
	ErrMissingStepSize = errors.New("sdlpd: step size is required, see WithStepSize/DefaultStepSize")

	// ErrBadStepSize is returned when StepSize is <= 0.
	ErrBadStepSize = errors.New("sdlpd: step size must be > 0")

	// ErrBadMaxIterations is returned when MaxIterations is <= 0.
	ErrBadMaxIterations = errors.New("sdlpd: max iterations must be > 0")
)

func sdlpdErrorf(method string, err error) error {
	return fmt.Errorf("sdlpd: %s: %w", method, err)
}
