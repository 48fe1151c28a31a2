package kern

import "github.com/arcbelief/pgmcore/arena"

// updatePairwiseF2V implements the pairwise factor→variable update (spec
// §4.3 "Pairwise factor f→v update"), the hot path for grid MRFs: a direct
// k1×k2 matrix operation batched over every factor in the group.
//
//	M[a,b]    = log_pot[a,b] + v2f_0[a] + v2f_1[b]
//	f2v_0[a]  = reduce_b (M[a,b] - v2f_0[a])
//	f2v_1[b]  = reduce_a (M[a,b] - v2f_1[b])
func updatePairwiseF2V(a *arena.ArenaState, groupIdx int, temperature, damping float64) {
	g := &a.FGR.Groups[groupIdx]
	lp := a.LogPotentials[groupIdx]
	k0, k1 := g.PairwiseK0, g.PairwiseK1

	row := make([]float64, k1)
	col := make([]float64, k0)

	for fi := 0; fi < g.NumFactors; fi++ {
		lo, _ := g.Slots(fi)
		e0, e1 := g.EdgeOffset[lo], g.EdgeOffset[lo+1]
		v2f0 := a.V2F[e0 : e0+k0]
		v2f1 := a.V2F[e1 : e1+k1]
		table := lp[fi*k0*k1 : (fi+1)*k0*k1]

		f2v0 := a.F2V[e0 : e0+k0]
		for ai := 0; ai < k0; ai++ {
			tableRow := table[ai*k1 : ai*k1+k1]
			for bi := 0; bi < k1; bi++ {
				row[bi] = tableRow[bi] + v2f1[bi]
			}
			newVal := LogSumExp(row, temperature) - v2f0[ai]
			f2v0[ai] = damp(newVal, f2v0[ai], damping)
		}

		f2v1 := a.F2V[e1 : e1+k1]
		for bi := 0; bi < k1; bi++ {
			for ai := 0; ai < k0; ai++ {
				col[ai] = table[ai*k1+bi] + v2f0[ai]
			}
			newVal := LogSumExp(col, temperature) - v2f1[bi]
			f2v1[bi] = damp(newVal, f2v1[bi], damping)
		}
	}
}

// damp mixes a freshly computed message value with its previous value
// (spec §4.4: "new <- (1-d)*computed + d*old").
func damp(newVal, old, damping float64) float64 {
	if damping <= 0 {
		return newVal
	}
	return (1-damping)*newVal + damping*old
}
