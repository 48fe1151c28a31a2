package kern

import "github.com/arcbelief/pgmcore/arena"

// updateORF2V implements the OR factor f→v update for a group of OR factors
// (spec §4.3 "OR factor f→v update"). Each factor has n>=1 parent slots
// followed by one child slot; the implicit log-potential is 0 when
// child == OR(parents) and -Inf otherwise, so no stored table is consulted.
//
// The update is derived, not transcribed from the spec's shorthand prose:
// reducing the OR factor's implicit 2^(n+1)-entry table exactly (rather than
// applying the single softplus(LogSumExp(d)) shorthand literally) is the
// only way to match brute-force enumeration to the tolerances the acceptance
// tests assume, and it degenerates correctly to the parent==child identity
// at n==1. See or_math.go for the shared reduction and its derivation.
func updateORF2V(a *arena.ArenaState, groupIdx int, temperature, damping float64) {
	g := &a.FGR.Groups[groupIdx]

	for fi := 0; fi < g.NumFactors; fi++ {
		lo, hi := g.Slots(fi)
		n := hi - lo - 1 // number of parents; last slot is the child

		parents := make([][]float64, n)
		for i := 0; i < n; i++ {
			off := g.EdgeOffset[lo+i]
			parents[i] = a.V2F[off : off+2]
		}
		childOff := g.EdgeOffset[hi-1]
		child := a.V2F[childOff : childOff+2]

		parentOut, childOut := orReduce(parents, child, temperature)

		for i := 0; i < n; i++ {
			off := g.EdgeOffset[lo+i]
			out := a.F2V[off : off+2]
			out[0] = damp(parentOut[i][0], out[0], damping)
			out[1] = damp(parentOut[i][1], out[1], damping)
		}
		outC := a.F2V[childOff : childOff+2]
		outC[0] = damp(childOut[0], outC[0], damping)
		outC[1] = damp(childOut[1], outC[1], damping)
	}
}
