package kern

import "github.com/arcbelief/pgmcore/arena"

// updateANDF2V implements the AND factor f→v update (spec §4.3 "AND factor
// f→v update") by De Morgan duality with OR: AND(x_1..x_n) = NOT(OR(NOT
// x_1, .., NOT x_n)). Swapping the [0],[1] slots of every incident v2f
// message before calling orReduce, then swapping the result back, reuses
// the OR derivation exactly instead of re-deriving an independent AND
// closed form.
func updateANDF2V(a *arena.ArenaState, groupIdx int, temperature, damping float64) {
	g := &a.FGR.Groups[groupIdx]

	for fi := 0; fi < g.NumFactors; fi++ {
		lo, hi := g.Slots(fi)
		n := hi - lo - 1

		parents := make([][]float64, n)
		for i := 0; i < n; i++ {
			off := g.EdgeOffset[lo+i]
			v := a.V2F[off : off+2]
			parents[i] = []float64{v[1], v[0]} // NOT: swap on/off
		}
		childOff := g.EdgeOffset[hi-1]
		v := a.V2F[childOff : childOff+2]
		child := []float64{v[1], v[0]}

		parentOut, childOut := orReduce(parents, child, temperature)

		for i := 0; i < n; i++ {
			off := g.EdgeOffset[lo+i]
			out := a.F2V[off : off+2]
			out[0] = damp(parentOut[i][1], out[0], damping) // NOT back
			out[1] = damp(parentOut[i][0], out[1], damping)
		}
		outC := a.F2V[childOff : childOff+2]
		outC[0] = damp(childOut[1], outC[0], damping)
		outC[1] = damp(childOut[0], outC[1], damping)
	}
}
