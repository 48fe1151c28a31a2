package bpd

import (
	"context"
	"math"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/arcbelief/pgmcore/arena"
	"github.com/arcbelief/pgmcore/fgr"
	"github.com/arcbelief/pgmcore/kern"
)

// Init allocates a fresh arena.ArenaState for a BP run (spec §4.2); it is a
// thin re-export so callers only need to import bpd for the whole BP
// workflow.
func Init(f *fgr.FGR, evidence, logPotentials map[string][]float64) (*arena.ArenaState, error) {
	return arena.Init(f, evidence, logPotentials)
}

// Result summarizes one Run.
type Result struct {
	Iterations int
	Converged  bool
	MaxDelta   float64
}

// Run executes synchronous damped loopy BP to convergence or MaxIterations
// (spec §4.4). Each iteration: every factor group's f→v kernel runs
// concurrently (groups touch disjoint edge ranges so this is race-free),
// then a single type-agnostic variable pass runs, itself split across
// GOMAXPROCS disjoint variable ranges via errgroup.
func Run(ctx context.Context, a *arena.ArenaState, opts ...Option) (Result, error) {
	cfg := newConfig(opts...)
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}

	prevF := make([]float64, len(a.F2V))
	prevV := make([]float64, len(a.V2F))
	var iter int
	var maxDelta float64

	for iter = 0; iter < cfg.maxIterations; iter++ {
		copy(prevF, a.F2V)
		copy(prevV, a.V2F)

		eg, egCtx := errgroup.WithContext(ctx)
		for gi := range a.FGR.Groups {
			gi := gi
			eg.Go(func() error {
				select {
				case <-egCtx.Done():
					return egCtx.Err()
				default:
				}
				return kern.UpdateF2V(a, gi, cfg.temperature, cfg.damping)
			})
		}
		if err := eg.Wait(); err != nil {
			return Result{}, bpdErrorf("Run", err)
		}

		if err := parallelUpdateVariables(ctx, a, cfg.damping); err != nil {
			return Result{}, bpdErrorf("Run", err)
		}

		// Comparing F2V alone lags one round behind V2F: a factor kind whose
		// zero-input message is its own fixed point (OR/AND at T<=0 with no
		// incident pairwise factor) can leave F2V unchanged on an iteration
		// where V2F just picked up fresh evidence, reporting convergence
		// before that evidence ever reaches F2V. Comparing both catches it.
		maxDelta = math.Max(maxAbsDelta(a.F2V, prevF), maxAbsDelta(a.V2F, prevV))
		cfg.logger.Debug("bp iteration", zap.Int("iteration", iter), zap.Float64("max_delta", maxDelta))

		if cfg.detectNumerical && !a.CheckFinite() {
			cfg.logger.Warn("bp numerical warning: non-finite message detected", zap.Int("iteration", iter))
		}

		if maxDelta < cfg.tolerance {
			return Result{Iterations: iter + 1, Converged: true, MaxDelta: maxDelta}, nil
		}
	}

	if cfg.failOnNonConvergence {
		return Result{Iterations: iter, Converged: false, MaxDelta: maxDelta}, bpdErrorf("Run", ErrNotConverged)
	}
	return Result{Iterations: iter, Converged: false, MaxDelta: maxDelta}, nil
}

// parallelUpdateVariables splits the variable pass into GOMAXPROCS disjoint
// id ranges and runs them concurrently.
func parallelUpdateVariables(ctx context.Context, a *arena.ArenaState, damping float64) error {
	n := a.FGR.NumVars
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		kern.UpdateVariableRange(a, damping, 0, n)
		return nil
	}

	chunk := (n + workers - 1) / workers
	eg, egCtx := errgroup.WithContext(ctx)
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		lo, hi := lo, hi
		eg.Go(func() error {
			select {
			case <-egCtx.Done():
				return egCtx.Err()
			default:
			}
			kern.UpdateVariableRange(a, damping, lo, hi)
			return nil
		})
	}
	return eg.Wait()
}

func maxAbsDelta(a, b []float64) float64 {
	m := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > m {
			m = d
		}
	}
	return m
}

// GetBeliefs returns the raw (unnormalized) log-belief vector for every
// variable, flat and addressed via fgr.FGR.VarOffset, same layout as
// ArenaState.Evidence: belief_v = evidence_v + sum of incident f2v.
func GetBeliefs(a *arena.ArenaState) []float64 {
	f := a.FGR
	out := make([]float64, f.VarTotal)
	copy(out, a.Evidence)
	for v := 0; v < f.NumVars; v++ {
		lo, hi := f.VarOffset[v], f.VarOffset[v+1]
		for _, e := range f.IncidentEdges(v) {
			seg := a.F2V[e.EdgeOffset : e.EdgeOffset+(hi-lo)]
			for i, val := range seg {
				out[lo+i] += val
			}
		}
	}
	return out
}
