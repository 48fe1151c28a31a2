package kern

import (
	"github.com/arcbelief/pgmcore/arena"
	"github.com/arcbelief/pgmcore/fgr"
)

// negInf stands in for the OR/AND factors' implicit -Inf log-potential
// entries, which are never materialized (spec §2: "conceptually present
// but never stored").
const negInf = -1e300

// FactorScore returns the log-potential a single factor contributes to a
// full assignment (spec §4.5's energy/bound helpers share this routine
// rather than re-deriving per-kind scoring). assignment holds one state
// index per slot, in the factor's own slot order.
func FactorScore(a *arena.ArenaState, groupIdx, factorIdx int, assignment []int) float64 {
	g := &a.FGR.Groups[groupIdx]
	lo, hi := g.Slots(factorIdx)

	switch g.Kind {
	case fgr.KindPairwise:
		k1 := g.PairwiseK1
		table := a.LogPotentials[groupIdx][factorIdx*g.PairwiseK0*k1 : (factorIdx+1)*g.PairwiseK0*k1]
		return table[assignment[0]*k1+assignment[1]]

	case fgr.KindEnumerated:
		clo, _ := g.ConfigRange(factorIdx)
		sizes := make([]int, hi-lo)
		for s := range sizes {
			sizes[s] = a.FGR.VarSize(g.VarIDs[lo+s])
		}
		c := rankMixedRadix(assignment, sizes)
		return a.LogPotentials[groupIdx][clo+c]

	case fgr.KindOR:
		n := len(assignment) - 1
		anyOn := false
		for i := 0; i < n; i++ {
			if assignment[i] == 1 {
				anyOn = true
			}
		}
		if (assignment[n] == 1) == anyOn {
			return 0
		}
		return negInf

	case fgr.KindAND:
		n := len(assignment) - 1
		allOn := true
		for i := 0; i < n; i++ {
			if assignment[i] == 0 {
				allOn = false
			}
		}
		if (assignment[n] == 1) == allOn {
			return 0
		}
		return negInf

	default:
		return negInf
	}
}

// FactorDualMax returns LogSumExp_T over every configuration x_f of a
// single factor of (FactorScore(x_f) - sum_i point[e_i][x_i]), the
// "factor term" of the smoothed Lagrangian dual (spec §4.5): sdlpd.Run
// drives mu (point) to minimize this plus the matching variable term,
// which VariableLogBelief computes with the opposite sign on point.
// Configurations are enumerated directly; factor arities in this package's
// scope (pairwise, low-arity enumerated, OR/AND) keep this cheap.
func FactorDualMax(a *arena.ArenaState, groupIdx, factorIdx int, point []float64, temp float64) float64 {
	g := &a.FGR.Groups[groupIdx]
	lo, hi := g.Slots(factorIdx)
	n := hi - lo

	sizes := make([]int, n)
	offs := make([]int, n)
	total := 1
	for s := 0; s < n; s++ {
		sizes[s] = a.FGR.VarSize(g.VarIDs[lo+s])
		offs[s] = g.EdgeOffset[lo+s]
		total *= sizes[s]
	}

	assignment := make([]int, n)
	scores := make([]float64, total)
	for c := 0; c < total; c++ {
		unrankMixedRadix(c, sizes, assignment)
		s := FactorScore(a, groupIdx, factorIdx, assignment)
		for i := 0; i < n; i++ {
			s -= point[offs[i]+assignment[i]]
		}
		scores[c] = s
	}
	return LogSumExp(scores, temp)
}

// rankMixedRadix is the inverse of unrankMixedRadix: encodes per-slot
// values back into a single configuration index, slot 0 most significant.
func rankMixedRadix(idx, sizes []int) int {
	c := 0
	for i := 0; i < len(sizes); i++ {
		c = c*sizes[i] + idx[i]
	}
	return c
}
