package kern

import (
	"gonum.org/v1/gonum/floats"

	"github.com/arcbelief/pgmcore/arena"
)

// UpdateVariable performs the type-agnostic variable-side update (spec
// §4.3 "Variable update (type-agnostic)") for every variable in one pass:
//
//	belief_v     = evidence_v + sum over incident edges e of f2v_e
//	v2f_e        = belief_v - f2v_e                      (extrinsic info)
//	v2f_e       -= max(v2f_e)                            (numerical hygiene)
//
// The max-shift is a permitted additive shift per edge (spec §3: messages
// are equivalence classes modulo an additive constant) and keeps message
// magnitudes bounded across iterations. damping mixes the freshly computed
// value with the edge's previous v2f value in place.
func UpdateVariable(a *arena.ArenaState, damping float64) {
	UpdateVariableRange(a, damping, 0, a.FGR.NumVars)
}

// UpdateVariableRange runs UpdateVariable's per-variable update restricted
// to the half-open variable-id range [lo, hi). Disjoint ranges touch
// disjoint F2V/V2F segments, so callers may run several ranges
// concurrently to data-parallelize the variable pass across goroutines.
func UpdateVariableRange(a *arena.ArenaState, damping float64, lo, hi int) {
	f := a.FGR
	belief := make([]float64, 0, 16)
	raw := make([]float64, 0, 16)
	for v := lo; v < hi; v++ {
		vlo, vhi := f.VarOffset[v], f.VarOffset[v+1]
		k := vhi - vlo
		if cap(belief) < k {
			belief = make([]float64, k)
			raw = make([]float64, k)
		}
		belief = belief[:k]
		raw = raw[:k]
		copy(belief, a.Evidence[vlo:vhi])

		edges := f.IncidentEdges(v)
		for _, e := range edges {
			seg := a.F2V[e.EdgeOffset : e.EdgeOffset+k]
			floats.Add(belief, seg)
		}

		for _, e := range edges {
			segF := a.F2V[e.EdgeOffset : e.EdgeOffset+k]
			segV := a.V2F[e.EdgeOffset : e.EdgeOffset+k] // holds the *old* v2f until overwritten below
			for i := 0; i < k; i++ {
				raw[i] = belief[i] - segF[i]
			}
			shift := floats.Max(raw)
			floats.AddConst(-shift, raw)
			if damping > 0 {
				for i := 0; i < k; i++ {
					raw[i] = (1-damping)*raw[i] + damping*segV[i]
				}
			}
			copy(segV, raw)
		}
	}
}
