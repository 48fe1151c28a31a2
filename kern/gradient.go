package kern

import "github.com/arcbelief/pgmcore/arena"

// Gradient evaluates the SDLP dual gradient (spec §4.3 "SDLP gradient") at
// an arbitrary per-edge reparameterization point (same flat shape as
// a.F2V/a.V2F), writing the result into a.Grad:
//
//	grad_e(x) = p_factor_e(x) - p_variable_e(x)
//
// p_factor_e is the marginal, under point, of the factor incident on edge e
// restricted to e's variable; p_variable_e is the marginal of e's variable
// under the sum of every edge's reparameterization incident on it. With the
// dual as sdlpd.PrimalUpperBound writes it (variable terms add point, factor
// terms subtract it), grad is the negative of that dual's derivative with
// respect to point, so a step along +grad lowers the dual. The two
// agree (grad==0) exactly where point is a reparameterization fixed point,
// which is the dual optimality condition this gradient drives toward zero.
func Gradient(a *arena.ArenaState, point []float64, temperature float64) {
	pf := make([]float64, len(point))
	pv := make([]float64, len(point))
	factorMarginals(a, point, temperature, pf)
	variableMarginals(a, point, temperature, pv)
	for i := range a.Grad {
		a.Grad[i] = pf[i] - pv[i]
	}
}

// variableMarginals fills out, at every edge's slot, the softmax_T marginal
// of that edge's variable under its evidence plus the sum of point over
// every edge incident on it — the same belief computation UpdateVariable
// performs, but read-only and against an arbitrary point rather than F2V.
func variableMarginals(a *arena.ArenaState, point []float64, temp float64, out []float64) {
	f := a.FGR
	belief := make([]float64, 0, 16)
	probs := make([]float64, 0, 16)
	for v := 0; v < f.NumVars; v++ {
		lo, hi := f.VarOffset[v], f.VarOffset[v+1]
		k := hi - lo
		if cap(belief) < k {
			belief = make([]float64, k)
			probs = make([]float64, k)
		}
		belief = belief[:k]
		probs = probs[:k]
		copy(belief, a.Evidence[lo:hi])

		edges := f.IncidentEdges(v)
		for _, e := range edges {
			seg := point[e.EdgeOffset : e.EdgeOffset+k]
			for i := 0; i < k; i++ {
				belief[i] += seg[i]
			}
		}

		Softmax(belief, temp, probs)
		for _, e := range edges {
			copy(out[e.EdgeOffset:e.EdgeOffset+k], probs)
		}
	}
}
