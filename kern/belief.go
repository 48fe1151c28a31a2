package kern

import "github.com/arcbelief/pgmcore/arena"

// VariableLogBelief returns the flat per-variable log-belief vector (same
// layout as a.Evidence) for an arbitrary per-edge reparameterization point:
// belief_v = evidence_v + sum over incident edges of point. Shared by
// sdlpd's bounds and primal decoding and by dec's decoders, so all of them
// read the same "what does this variable currently believe" quantity.
func VariableLogBelief(a *arena.ArenaState, point []float64) []float64 {
	f := a.FGR
	out := make([]float64, f.VarTotal)
	copy(out, a.Evidence)
	for v := 0; v < f.NumVars; v++ {
		lo, hi := f.VarOffset[v], f.VarOffset[v+1]
		for _, e := range f.IncidentEdges(v) {
			seg := point[e.EdgeOffset : e.EdgeOffset+(hi-lo)]
			for i, val := range seg {
				out[lo+i] += val
			}
		}
	}
	return out
}
