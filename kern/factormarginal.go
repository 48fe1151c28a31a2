package kern

import (
	"github.com/arcbelief/pgmcore/arena"
	"github.com/arcbelief/pgmcore/fgr"
)

// factorMarginals fills out, at every edge's slot, the softmax_T marginal
// that edge's factor induces on its own variable, under the reparameterized
// weights in point (same flat shape as a.F2V/a.V2F). Dispatches by kind the
// same way the f→v kernels do, reusing their reductions in log-space and
// normalizing with Softmax instead of taking a LogSumExp message.
func factorMarginals(a *arena.ArenaState, point []float64, temp float64, out []float64) {
	for gi := range a.FGR.Groups {
		g := &a.FGR.Groups[gi]
		switch g.Kind {
		case fgr.KindPairwise:
			pairwiseMarginals(a, gi, point, temp, out)
		case fgr.KindEnumerated:
			enumeratedMarginals(a, gi, point, temp, out)
		case fgr.KindOR:
			orMarginals(a, gi, point, temp, out, false)
		case fgr.KindAND:
			orMarginals(a, gi, point, temp, out, true)
		}
	}
}

func pairwiseMarginals(a *arena.ArenaState, groupIdx int, point []float64, temp float64, out []float64) {
	g := &a.FGR.Groups[groupIdx]
	lp := a.LogPotentials[groupIdx]
	k0, k1 := g.PairwiseK0, g.PairwiseK1

	row := make([]float64, k1)
	col := make([]float64, k0)
	logw0 := make([]float64, k0)
	logw1 := make([]float64, k1)

	for fi := 0; fi < g.NumFactors; fi++ {
		lo, _ := g.Slots(fi)
		e0, e1 := g.EdgeOffset[lo], g.EdgeOffset[lo+1]
		p0 := point[e0 : e0+k0]
		p1 := point[e1 : e1+k1]
		table := lp[fi*k0*k1 : (fi+1)*k0*k1]

		for ai := 0; ai < k0; ai++ {
			tableRow := table[ai*k1 : ai*k1+k1]
			for bi := 0; bi < k1; bi++ {
				row[bi] = tableRow[bi] + p1[bi]
			}
			logw0[ai] = LogSumExp(row, temp)
		}
		Softmax(logw0, temp, out[e0:e0+k0])

		for bi := 0; bi < k1; bi++ {
			for ai := 0; ai < k0; ai++ {
				col[ai] = table[ai*k1+bi] + p0[ai]
			}
			logw1[bi] = LogSumExp(col, temp)
		}
		Softmax(logw1, temp, out[e1:e1+k1])
	}
}

func enumeratedMarginals(a *arena.ArenaState, groupIdx int, point []float64, temp float64, out []float64) {
	f := a.FGR
	g := &f.Groups[groupIdx]
	lp := a.LogPotentials[groupIdx]

	for fi := 0; fi < g.NumFactors; fi++ {
		lo, hi := g.Slots(fi)
		n := hi - lo
		sizes := make([]int, n)
		p := make([][]float64, n)
		for s := 0; s < n; s++ {
			id := g.VarIDs[lo+s]
			sizes[s] = f.VarSize(id)
			off := g.EdgeOffset[lo+s]
			p[s] = point[off : off+sizes[s]]
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
				s += p[i][idx[i]]
			}
			score[c] = s
		}

		bucket := make([]float64, 0, configCount)
		for s := 0; s < n; s++ {
			off := g.EdgeOffset[lo+s]
			logw := make([]float64, sizes[s])
			for x := 0; x < sizes[s]; x++ {
				bucket = bucket[:0]
				for c := 0; c < configCount; c++ {
					if configIdx[c][s] == x {
						bucket = append(bucket, score[c])
					}
				}
				logw[x] = LogSumExp(bucket, temp)
			}
			Softmax(logw, temp, out[off:off+sizes[s]])
		}
	}
}

// orMarginals computes factor marginals for OR (and, via De Morgan when
// and==true, AND) factor groups by reusing orReduce's log-weight pairs and
// normalizing each edge's pair with Softmax.
func orMarginals(a *arena.ArenaState, groupIdx int, point []float64, temp float64, out []float64, and bool) {
	g := &a.FGR.Groups[groupIdx]

	for fi := 0; fi < g.NumFactors; fi++ {
		lo, hi := g.Slots(fi)
		n := hi - lo - 1

		parents := make([][]float64, n)
		for i := 0; i < n; i++ {
			off := g.EdgeOffset[lo+i]
			v := point[off : off+2]
			if and {
				parents[i] = []float64{v[1], v[0]}
			} else {
				parents[i] = []float64{v[0], v[1]}
			}
		}
		childOff := g.EdgeOffset[hi-1]
		cv := point[childOff : childOff+2]
		var child []float64
		if and {
			child = []float64{cv[1], cv[0]}
		} else {
			child = []float64{cv[0], cv[1]}
		}

		parentOut, childOut := orReduce(parents, child, temp)

		for i := 0; i < n; i++ {
			off := g.EdgeOffset[lo+i]
			if and {
				Softmax([]float64{parentOut[i][1], parentOut[i][0]}, temp, out[off:off+2])
			} else {
				Softmax(parentOut[i], temp, out[off:off+2])
			}
		}
		if and {
			Softmax([]float64{childOut[1], childOut[0]}, temp, out[childOff:childOff+2])
		} else {
			Softmax(childOut[:], temp, out[childOff:childOff+2])
		}
	}
}
