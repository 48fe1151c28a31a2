package kern

import "github.com/arcbelief/pgmcore/arena"

// updateEnumeratedF2V implements the generic enumerated factor→variable
// update (spec §4.3 "Enumerated factor f→v update") for a factor connecting
// an arbitrary ordered tuple of variables:
//
//	score[c]       = log_potential[c] + sum_i v2f_{e_i}[c_i]
//	f2v_{e_s}[x]   = reduce_{c: c_s=x} (score[c]) - v2f_{e_s}[x]
//
// Configuration index c is a mixed-radix encoding over the factor's slot
// sizes with slot 0 varying slowest, matching the row-major layout of
// fgr.FactorGroup.LogPotentials.
func updateEnumeratedF2V(a *arena.ArenaState, groupIdx int, temperature, damping float64) {
	f := a.FGR
	g := &f.Groups[groupIdx]
	lp := a.LogPotentials[groupIdx]

	for fi := 0; fi < g.NumFactors; fi++ {
		lo, hi := g.Slots(fi)
		n := hi - lo
		sizes := make([]int, n)
		v2f := make([][]float64, n)
		for s := 0; s < n; s++ {
			id := g.VarIDs[lo+s]
			sizes[s] = f.VarSize(id)
			off := g.EdgeOffset[lo+s]
			v2f[s] = a.V2F[off : off+sizes[s]]
		}

		clo, chi := g.ConfigRange(fi)
		configCount := chi - clo
		configs := lp[clo:chi]

		configIdx := make([][]int, configCount)
		score := make([]float64, configCount)
		for c := 0; c < configCount; c++ {
			idx := make([]int, n)
			unrankMixedRadix(c, sizes, idx)
			configIdx[c] = idx

			s := configs[c]
			for i := 0; i < n; i++ {
				s += v2f[i][idx[i]]
			}
			score[c] = s
		}

		bucket := make([]float64, 0, configCount)
		for s := 0; s < n; s++ {
			off := g.EdgeOffset[lo+s]
			out := a.F2V[off : off+sizes[s]]
			for x := 0; x < sizes[s]; x++ {
				bucket = bucket[:0]
				for c := 0; c < configCount; c++ {
					if configIdx[c][s] == x {
						bucket = append(bucket, score[c])
					}
				}
				newVal := LogSumExp(bucket, temperature) - v2f[s][x]
				out[x] = damp(newVal, out[x], damping)
			}
		}
	}
}

// unrankMixedRadix decodes configuration index c into per-slot values,
// with sizes[0] varying slowest (most significant) and sizes[n-1] varying
// fastest, writing into out (len(out) == len(sizes)).
func unrankMixedRadix(c int, sizes []int, out []int) {
	for i := len(sizes) - 1; i >= 0; i-- {
		out[i] = c % sizes[i]
		c /= sizes[i]
	}
}
