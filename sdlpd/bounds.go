package sdlpd

import (
	"github.com/arcbelief/pgmcore/arena"
	"github.com/arcbelief/pgmcore/dec"
	"github.com/arcbelief/pgmcore/kern"
)

// PrimalUpperBound evaluates the smoothed Lagrangian dual (spec §4.5) at
// a.Mu:
//
//	L(mu) = sum_v LogSumExp_T(evidence_v + sum_{f ni v} mu_{f->v})
//	      + sum_f LogSumExp_T(theta_f(x_f) - sum_{v in f} mu_{f->v}(x_v))
//
// which upper-bounds the true MAP value for any mu (weak duality), tight
// exactly at a stationary point of sdlpd.Run's gradient.
func PrimalUpperBound(a *arena.ArenaState, temperature float64) float64 {
	total := 0.0

	belief := kern.VariableLogBelief(a, a.Mu)
	f := a.FGR
	for v := 0; v < f.NumVars; v++ {
		lo, hi := f.VarOffset[v], f.VarOffset[v+1]
		total += kern.LogSumExp(belief[lo:hi], temperature)
	}

	for gi, g := range f.Groups {
		for fi := 0; fi < g.NumFactors; fi++ {
			total += kern.FactorDualMax(a, gi, fi, a.Mu, temperature)
		}
	}
	return total
}

// DecodePrimalUnaries decodes a per-variable state assignment (spec §4.5)
// by taking the deterministic lowest-index argmax of each variable's
// current log-belief under a.Mu, the same tie-break rule BP's kernels use.
func DecodePrimalUnaries(a *arena.ArenaState) []int {
	belief := kern.VariableLogBelief(a, a.Mu)
	f := a.FGR
	states := make([]int, f.NumVars)
	for v := 0; v < f.NumVars; v++ {
		lo, hi := f.VarOffset[v], f.VarOffset[v+1]
		states[v] = kern.ArgMax(belief[lo:hi])
	}
	return states
}

// MapLowerBound evaluates the total log-potential of a decoded assignment
// (spec §4.5): a valid lower bound on the true MAP value for any feasible
// assignment, so the gap PrimalUpperBound-MapLowerBound bounds sdlpd's
// current suboptimality. dec.ComputeEnergy returns the negated (lower-is-
// better) total, so it is negated back here to the raw maximization total
// PrimalUpperBound is scaled against.
func MapLowerBound(a *arena.ArenaState, states []int) float64 {
	return -dec.ComputeEnergy(a, states)
}
