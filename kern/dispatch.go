package kern

import (
	"github.com/arcbelief/pgmcore/arena"
	"github.com/arcbelief/pgmcore/fgr"
)

// UpdateF2V runs the factor→variable update for one compiled factor group,
// dispatching on its FactorKind (spec §4.3). fgr.Compile already rejects
// any kind outside the four recognized tags, so the default case here is
// unreachable in practice and exists only to fail loudly if that invariant
// is ever violated.
func UpdateF2V(a *arena.ArenaState, groupIdx int, temperature, damping float64) error {
	switch a.FGR.Groups[groupIdx].Kind {
	case fgr.KindPairwise:
		updatePairwiseF2V(a, groupIdx, temperature, damping)
	case fgr.KindEnumerated:
		updateEnumeratedF2V(a, groupIdx, temperature, damping)
	case fgr.KindOR:
		updateORF2V(a, groupIdx, temperature, damping)
	case fgr.KindAND:
		updateANDF2V(a, groupIdx, temperature, damping)
	default:
		return fgr.ErrUnsupportedFactorType
	}
	return nil
}
