package sdlpd

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/arcbelief/pgmcore/arena"
	"github.com/arcbelief/pgmcore/fgr"
	"github.com/arcbelief/pgmcore/kern"
)

// Init allocates a fresh arena.ArenaState for an SDLP run.
func Init(f *fgr.FGR, evidence, logPotentials map[string][]float64) (*arena.ArenaState, error) {
	return arena.Init(f, evidence, logPotentials)
}

// DefaultStepSize implements this package's resolution of spec §9's open
// step-size question: eta = temperature / MaxDegree, the largest constant
// step the smoothed dual's Lipschitz constant (bounded by the graph's max
// degree over temperature) guarantees is non-increasing in the smoothed
// dual's descent direction. Callers remain free to pass any other value via
// WithStepSize; this is a documented default, not the only legal choice.
func DefaultStepSize(f *fgr.FGR, temperature float64) float64 {
	if f.MaxDegree == 0 {
		return temperature
	}
	return temperature / float64(f.MaxDegree)
}

// Run executes Nesterov accelerated-gradient descent on the entropy-smoothed
// LP-MAP dual L that PrimalUpperBound evaluates (spec §4.2, §4.5).
// kern.Gradient yields -dL/dmu, so stepping along +g lowers L:
//
//	g_t      = Gradient(nu_t)
//	mu_{t+1} = nu_t + eta*g_t
//	beta_t   = (t-1)/(t+2)
//	nu_{t+1} = mu_{t+1} + beta_t*(mu_{t+1} - mu_t)
//
// nu (the lookahead point) is what the gradient is evaluated at; mu is the
// actual iterate sequence. Both are stored in a.Lookahead/a.Mu so callers
// can resume a Run across calls by reusing the same ArenaState.
func Run(ctx context.Context, a *arena.ArenaState, opts ...Option) (Result, error) {
	cfg := newConfig(opts...)
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}

	var iter int
	var gradNorm float64
	for iter = 0; iter < cfg.maxIterations; iter++ {
		select {
		case <-ctx.Done():
			return Result{Iterations: iter}, sdlpdErrorf("Run", ctx.Err())
		default:
		}

		kern.Gradient(a, a.Lookahead, cfg.temperature)

		copy(a.MuPrev, a.Mu)
		for i := range a.Mu {
			a.Mu[i] = a.Lookahead[i] + cfg.stepSize*a.Grad[i]
		}

		a.Step++
		beta := float64(a.Step-1) / float64(a.Step+2)
		for i := range a.Lookahead {
			a.Lookahead[i] = a.Mu[i] + beta*(a.Mu[i]-a.MuPrev[i])
		}

		gradNorm = l2Norm(a.Grad)
		cfg.logger.Debug("sdlp iteration", zap.Int("iteration", iter), zap.Float64("grad_norm", gradNorm))

		if gradNorm < cfg.tolerance {
			return Result{Iterations: iter + 1, Converged: true, GradNorm: gradNorm}, nil
		}
	}

	return Result{Iterations: iter, Converged: false, GradNorm: gradNorm}, nil
}

// RunWithObjVals runs the same Nesterov loop as Run, additionally recording
// PrimalUpperBound(a, temperature) after every iteration (spec §6's
// run_with_objvals). The returned sequence is what the §8 SDLP-monotonicity
// property is checked against: under a step size within the smoothed dual's
// descent region it is non-increasing.
func RunWithObjVals(ctx context.Context, a *arena.ArenaState, opts ...Option) (Result, []float64, error) {
	cfg := newConfig(opts...)
	if err := cfg.validate(); err != nil {
		return Result{}, nil, err
	}

	objVals := make([]float64, 0, cfg.maxIterations)

	var iter int
	var gradNorm float64
	for iter = 0; iter < cfg.maxIterations; iter++ {
		select {
		case <-ctx.Done():
			return Result{Iterations: iter}, objVals, sdlpdErrorf("RunWithObjVals", ctx.Err())
		default:
		}

		kern.Gradient(a, a.Lookahead, cfg.temperature)

		copy(a.MuPrev, a.Mu)
		for i := range a.Mu {
			a.Mu[i] = a.Lookahead[i] + cfg.stepSize*a.Grad[i]
		}

		a.Step++
		beta := float64(a.Step-1) / float64(a.Step+2)
		for i := range a.Lookahead {
			a.Lookahead[i] = a.Mu[i] + beta*(a.Mu[i]-a.MuPrev[i])
		}

		objVals = append(objVals, PrimalUpperBound(a, cfg.temperature))

		gradNorm = l2Norm(a.Grad)
		cfg.logger.Debug("sdlp iteration", zap.Int("iteration", iter), zap.Float64("grad_norm", gradNorm))

		if gradNorm < cfg.tolerance {
			return Result{Iterations: iter + 1, Converged: true, GradNorm: gradNorm}, objVals, nil
		}
	}

	return Result{Iterations: iter, Converged: false, GradNorm: gradNorm}, objVals, nil
}

func l2Norm(x []float64) float64 {
	s := 0.0
	for _, v := range x {
		s += v * v
	}
	return math.Sqrt(s)
}
