package facade

import (
	"context"

	"go.uber.org/zap"

	"github.com/arcbelief/pgmcore/arena"
	"github.com/arcbelief/pgmcore/bpd"
	"github.com/arcbelief/pgmcore/fgr"
	"github.com/arcbelief/pgmcore/sdlpd"
)

// Backend selects which driver an Inferer runs (spec §4.6).
type Backend int

const (
	// BackendBP runs loopy belief propagation (package bpd).
	BackendBP Backend = iota
	// BackendSDLP runs Smooth Dual LP descent (package sdlpd).
	BackendSDLP
)

// Config holds the union of bpd/sdlpd tuning knobs relevant to whichever
// Backend is selected; fields irrelevant to the chosen backend are ignored.
type Config struct {
	Temperature   float64
	Damping       float64 // bpd only
	StepSize      float64 // sdlpd only; 0 means "use sdlpd.DefaultStepSize"
	MaxIterations int
	Tolerance     float64
	Logger        *zap.Logger
}

// Inferer runs one inference backend to completion (or MaxIterations) and
// exposes its resulting arena.ArenaState for dec's decode/marginal/energy
// helpers, which work identically regardless of which backend produced the
// arena.
type Inferer interface {
	Run(ctx context.Context) error
	Arena() *arena.ArenaState

	// Point returns the per-edge array dec's decode/marginal helpers
	// should read variable beliefs from: F2V for BP, Mu for SDLP. Both
	// satisfy belief_v = evidence_v + sum of incident Point()[x].
	Point() []float64
}

// BuildInferer compiles a fresh arena from f/evidence/logPotentials and
// wraps it with the selected Backend's driver.
func BuildInferer(f *fgr.FGR, evidence, logPotentials map[string][]float64, backend Backend, cfg Config) (Inferer, error) {
	switch backend {
	case BackendBP:
		a, err := bpd.Init(f, evidence, logPotentials)
		if err != nil {
			return nil, facadeErrorf("BuildInferer", err)
		}
		opts := []bpd.Option{
			bpd.WithTemperature(cfg.Temperature),
			bpd.WithDamping(cfg.Damping),
		}
		if cfg.MaxIterations > 0 {
			opts = append(opts, bpd.WithMaxIterations(cfg.MaxIterations))
		}
		if cfg.Tolerance > 0 {
			opts = append(opts, bpd.WithTolerance(cfg.Tolerance))
		}
		if cfg.Logger != nil {
			opts = append(opts, bpd.WithLogger(cfg.Logger))
		}
		return &bpInferer{a: a, opts: opts}, nil

	case BackendSDLP:
		a, err := sdlpd.Init(f, evidence, logPotentials)
		if err != nil {
			return nil, facadeErrorf("BuildInferer", err)
		}
		stepSize := cfg.StepSize
		if stepSize <= 0 {
			stepSize = sdlpd.DefaultStepSize(f, cfg.Temperature)
		}
		opts := []sdlpd.Option{
			sdlpd.WithTemperature(cfg.Temperature),
			sdlpd.WithStepSize(stepSize),
		}
		if cfg.MaxIterations > 0 {
			opts = append(opts, sdlpd.WithMaxIterations(cfg.MaxIterations))
		}
		if cfg.Tolerance > 0 {
			opts = append(opts, sdlpd.WithTolerance(cfg.Tolerance))
		}
		if cfg.Logger != nil {
			opts = append(opts, sdlpd.WithLogger(cfg.Logger))
		}
		return &sdlpInferer{a: a, opts: opts}, nil

	default:
		return nil, facadeErrorf("BuildInferer", ErrUnknownBackend)
	}
}

type bpInferer struct {
	a    *arena.ArenaState
	opts []bpd.Option
}

func (b *bpInferer) Run(ctx context.Context) error {
	_, err := bpd.Run(ctx, b.a, b.opts...)
	return err
}

func (b *bpInferer) Arena() *arena.ArenaState { return b.a }
func (b *bpInferer) Point() []float64         { return b.a.F2V }

type sdlpInferer struct {
	a    *arena.ArenaState
	opts []sdlpd.Option
}

func (s *sdlpInferer) Run(ctx context.Context) error {
	_, err := sdlpd.Run(ctx, s.a, s.opts...)
	return err
}

func (s *sdlpInferer) Arena() *arena.ArenaState { return s.a }
func (s *sdlpInferer) Point() []float64         { return s.a.Mu }

// RunWithObjVals runs this inferer's SDLP driver like Run, additionally
// returning the per-iteration primal upper bound sequence. Not part of the
// Inferer interface since bpd has no equivalent notion of an objective
// sequence; callers outside this package that built a BackendSDLP Inferer
// reach it by type-asserting the Inferer to an interface declaring
// RunWithObjVals(context.Context) ([]float64, error).
func (s *sdlpInferer) RunWithObjVals(ctx context.Context) ([]float64, error) {
	_, objVals, err := sdlpd.RunWithObjVals(ctx, s.a, s.opts...)
	return objVals, err
}
