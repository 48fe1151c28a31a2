package dec

import (
	"github.com/arcbelief/pgmcore/arena"
	"github.com/arcbelief/pgmcore/kern"
)

// DecodeMapStates returns one state index per variable, the deterministic
// lowest-index argmax of each variable's log-belief under point (spec
// §4.6, sharing the tie-break rule kern.ArgMax uses throughout BP/SDLP).
func DecodeMapStates(a *arena.ArenaState, point []float64) []int {
	belief := kern.VariableLogBelief(a, point)
	f := a.FGR
	states := make([]int, f.NumVars)
	for v := 0; v < f.NumVars; v++ {
		lo, hi := f.VarOffset[v], f.VarOffset[v+1]
		states[v] = kern.ArgMax(belief[lo:hi])
	}
	return states
}

// GetMarginals returns the temperature-T softmax-normalized per-variable
// belief distribution (spec §4.6): GetMarginals(a,point,0) degenerates to
// a one-hot vector at each variable's MAP state.
func GetMarginals(a *arena.ArenaState, point []float64, temperature float64) [][]float64 {
	belief := kern.VariableLogBelief(a, point)
	f := a.FGR
	out := make([][]float64, f.NumVars)
	for v := 0; v < f.NumVars; v++ {
		lo, hi := f.VarOffset[v], f.VarOffset[v+1]
		probs := make([]float64, hi-lo)
		kern.Softmax(belief[lo:hi], temperature, probs)
		out[v] = probs
	}
	return out
}

// ComputeEnergy sums every factor's log-potential under a fully decoded
// assignment, then negates it (spec §4.7): energy is lower-is-better, the
// sign convention used throughout §8's end-to-end scenarios.
func ComputeEnergy(a *arena.ArenaState, states []int) float64 {
	total := 0.0
	f := a.FGR
	for v, x := range states {
		lo := f.VarOffset[v]
		total += a.Evidence[lo+x]
	}
	for gi, g := range f.Groups {
		for fi := 0; fi < g.NumFactors; fi++ {
			lo, hi := g.Slots(fi)
			assignment := make([]int, hi-lo)
			for s := range assignment {
				assignment[s] = states[g.VarIDs[lo+s]]
			}
			total += kern.FactorScore(a, gi, fi, assignment)
		}
	}
	return -total
}
