package bpd

import "go.uber.org/zap"

// Option configures a Run via functional options (spec §4.4), resolved once
// into an immutable config at the start of Run.
type Option func(*config)

type config struct {
	temperature          float64
	damping              float64
	maxIterations        int
	tolerance            float64
	failOnNonConvergence bool
	detectNumerical      bool
	logger               *zap.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		temperature:   1.0,
		damping:       0,
		maxIterations: 100,
		tolerance:     1e-6,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithTemperature sets the smoothing temperature: > 0 for sum-product,
// exactly 0 for max-product (spec §4.3).
func WithTemperature(t float64) Option {
	return func(c *config) { c.temperature = t }
}

// WithDamping sets the message damping coefficient in [0,1) (spec §4.4).
func WithDamping(d float64) Option {
	return func(c *config) { c.damping = d }
}

// WithMaxIterations bounds the number of synchronous update rounds.
func WithMaxIterations(n int) Option {
	return func(c *config) { c.maxIterations = n }
}

// WithTolerance sets the max-abs message-delta convergence threshold.
func WithTolerance(tol float64) Option {
	return func(c *config) { c.tolerance = tol }
}

// WithFailOnNonConvergence makes Run return ErrNotConverged instead of
// silently returning the last iterate when Tolerance is never reached.
func WithFailOnNonConvergence() Option {
	return func(c *config) { c.failOnNonConvergence = true }
}

// WithNumericalDetection enables arena.ArenaState.CheckFinite after every
// iteration, surfacing a NumericalWarning (spec §7) via the logger rather
// than failing the run.
func WithNumericalDetection() Option {
	return func(c *config) { c.detectNumerical = true }
}

// WithLogger attaches a structured logger for per-iteration diagnostics.
// Defaults to zap.NewNop() (silent).
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func (c config) validate() error {
	if c.temperature < 0 {
		return bpdErrorf("Run", ErrBadTemperature)
	}
	if c.damping < 0 || c.damping >= 1 {
		return bpdErrorf("Run", ErrBadDamping)
	}
	if c.maxIterations <= 0 {
		return bpdErrorf("Run", ErrBadMaxIterations)
	}
	return nil
}
