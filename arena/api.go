package arena

import "github.com/arcbelief/pgmcore/fgr"

// Init builds a fresh ArenaState from a compiled FGR plus evidence and
// log-potential overrides keyed by group name. It is pure with respect to
// the FGR (spec §4.2): the same FGR may back any number of independently
// Init'd arenas.
//
// evidenceUpdates maps a variable group name to a flat array of length
// sum(k) over that group's variables (each variable's k-slice
// concatenated in group order). Groups not present default to all-zero
// evidence.
//
// logPotentialUpdates maps a factor group name to a replacement flat
// table of the same shape/length as that group's compiled baseline.
// Groups not present keep the compiled baseline. KindOR/KindAND groups
// have no overridable table (ErrNoOverride).
func Init(f *fgr.FGR, evidenceUpdates map[string][]float64, logPotentialUpdates map[string][]float64) (*ArenaState, error) {
	a := &ArenaState{
		FGR:      f,
		F2V:      make([]float64, f.EdgeTotal),
		V2F:      make([]float64, f.EdgeTotal),
		Evidence: make([]float64, f.VarTotal),
	}

	for name, vals := range evidenceUpdates {
		if err := a.applyEvidence(name, vals); err != nil {
			return nil, err
		}
	}

	a.LogPotentials = make([][]float64, len(f.Groups))
	for gi, g := range f.Groups {
		if g.Kind == fgr.KindOR || g.Kind == fgr.KindAND {
			continue
		}
		baseline := make([]float64, len(g.LogPotentials))
		copy(baseline, g.LogPotentials)
		a.LogPotentials[gi] = baseline
	}
	for name, vals := range logPotentialUpdates {
		if err := a.applyLogPotentials(name, vals); err != nil {
			return nil, err
		}
	}

	a.Mu = make([]float64, f.EdgeTotal)
	a.MuPrev = make([]float64, f.EdgeTotal)
	a.Lookahead = make([]float64, f.EdgeTotal)
	a.Grad = make([]float64, f.EdgeTotal)

	return a, nil
}

func (a *ArenaState) applyEvidence(group string, vals []float64) error {
	start, ok := a.FGR.GroupVarStart[group]
	if !ok {
		return arenaErrorf("Init", group, ErrUnknownVariableGroup)
	}
	count := a.FGR.GroupVarCount[group]
	lo := a.FGR.VarOffset[start]
	hi := a.FGR.VarOffset[start+count]
	if len(vals) != hi-lo {
		return arenaErrorf("Init", group, ErrShapeMismatch)
	}
	copy(a.Evidence[lo:hi], vals)
	return nil
}

func (a *ArenaState) applyLogPotentials(group string, vals []float64) error {
	gi, ok := a.FGR.GroupIdx[group]
	if !ok {
		return arenaErrorf("Init", group, ErrUnknownFactorGroup)
	}
	g := a.FGR.Groups[gi]
	if g.Kind == fgr.KindOR || g.Kind == fgr.KindAND {
		return arenaErrorf("Init", group, ErrNoOverride)
	}
	if len(vals) != len(g.LogPotentials) {
		return arenaErrorf("Init", group, ErrShapeMismatch)
	}
	replacement := make([]float64, len(vals))
	copy(replacement, vals)
	a.LogPotentials[gi] = replacement
	return nil
}

// CheckFinite reports whether every value in F2V and V2F is finite: it
// returns false as soon as it meets a NaN or a value whose magnitude exceeds
// 1e300 (which covers +/-Inf). Detection is off by default (spec §7
// NumericalWarning is non-fatal and opt-in); bpd calls this only when its
// WithNumericalDetection option is set.
func (a *ArenaState) CheckFinite() bool {
	for _, v := range a.F2V {
		if v != v || v > maxFinite || v < -maxFinite {
			return false
		}
	}
	for _, v := range a.V2F {
		if v != v || v > maxFinite || v < -maxFinite {
			return false
		}
	}
	return true
}

const maxFinite = 1.0e300
