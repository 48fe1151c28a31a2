package sdlpd

import "go.uber.org/zap"

// Option configures a Run via functional options, resolved once into an
// immutable config (spec §4.5).
type Option func(*config)

type config struct {
	temperature   float64
	stepSize      float64
	stepSizeSet   bool
	maxIterations int
	tolerance     float64
	logger        *zap.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		temperature:   1.0,
		maxIterations: 200,
		tolerance:     1e-6,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithTemperature sets the entropy-smoothing temperature (spec §4.2); must
// be >= 0. At T==0 the dual is not differentiable: the kernels fall back to
// max reductions and each step is a subgradient step, with no guarantee that
// the objective decreases monotonically.
func WithTemperature(t float64) Option {
	return func(c *config) { c.temperature = t }
}

// WithStepSize sets the Nesterov gradient step eta. Required: spec §9
// leaves the "right" default open, so callers must pick one explicitly,
// e.g. via DefaultStepSize.
func WithStepSize(eta float64) Option {
	return func(c *config) {
		c.stepSize = eta
		c.stepSizeSet = true
	}
}

// WithMaxIterations bounds the number of gradient steps.
func WithMaxIterations(n int) Option {
	return func(c *config) { c.maxIterations = n }
}

// WithTolerance sets the gradient-norm convergence threshold.
func WithTolerance(tol float64) Option {
	return func(c *config) { c.tolerance = tol }
}

// WithLogger attaches a structured logger for per-iteration diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func (c config) validate() error {
	if c.temperature < 0 {
		return sdlpdErrorf("Run", ErrBadTemperature)
	}
	if !c.stepSizeSet {
		return sdlpdErrorf("Run", ErrMissingStepSize)
	}
	if c.stepSize <= 0 {
		return sdlpdErrorf("Run", ErrBadStepSize)
	}
	if c.maxIterations <= 0 {
		return sdlpdErrorf("Run", ErrBadMaxIterations)
	}
	return nil
}

// Result summarizes one Run.
type Result struct {
	Iterations int
	Converged  bool
	GradNorm   float64
}
