package fgr

import "sort"

// Compile assigns dense variable ids (contiguous per group, in the order
// variableGroups is given), validates and flattens every factor group, and
// builds the reverse (variable -> incident edge) CSR table.
//
// Execution order within every subsequent BP/SDLP iteration is fixed by
// group index then factor index (spec §3: "execution order within an
// iteration is fixed ... and deterministic"); that order is exactly the
// order Compile assigns here, so no separate scheduling pass is needed.
//
// Empty factor groups (no factors) are accepted and kept, with
// NumFactors == 0, so later lookups by name still succeed; kernels skip
// them naturally.
func Compile(variableGroups []VariableGroup, factorGroups []FactorGroup) (*FGR, error) {
	f := &FGR{
		GroupVarStart: make(map[string]int, len(variableGroups)),
		GroupVarCount: make(map[string]int, len(variableGroups)),
		GroupIdx:      make(map[string]int, len(factorGroups)),
	}

	if err := f.assignVariableIDs(variableGroups); err != nil {
		return nil, err
	}

	f.Groups = make([]CompiledGroup, len(factorGroups))
	for gi, fg := range factorGroups {
		f.GroupIdx[fg.Name] = gi
		cg, err := f.compileGroup(fg)
		if err != nil {
			return nil, err
		}
		f.Groups[gi] = cg
	}

	f.buildIncidence()

	return f, nil
}

// assignVariableIDs lays out dense ids group-by-group and builds VarOffset.
func (f *FGR) assignVariableIDs(variableGroups []VariableGroup) error {
	for _, vg := range variableGroups {
		f.GroupVarStart[vg.Name] = f.NumVars
		f.GroupVarCount[vg.Name] = len(vg.NumStates)
		f.NumVars += len(vg.NumStates)
	}

	f.VarOffset = make([]int, f.NumVars+1)
	offset := 0
	id := 0
	for _, vg := range variableGroups {
		for _, k := range vg.NumStates {
			if k < 2 {
				return fgrErrorf(vg.Name, id, ErrShapeMismatch)
			}
			f.VarOffset[id] = offset
			offset += k
			id++
		}
	}
	f.VarOffset[f.NumVars] = offset
	f.VarTotal = offset

	return nil
}

// compileGroup flattens one FactorGroup into a CompiledGroup, validating
// shapes, binary-ness (OR/AND) and uniform pairwise shape as it goes.
func (f *FGR) compileGroup(fg FactorGroup) (CompiledGroup, error) {
	switch fg.Kind {
	case KindEnumerated, KindPairwise, KindOR, KindAND:
	default:
		return CompiledGroup{}, fgrErrorf(fg.Name, -1, ErrUnsupportedFactorType)
	}

	cg := CompiledGroup{
		Name:             fg.Name,
		Kind:             fg.Kind,
		NumFactors:       len(fg.Edges),
		FactorSlotOffset: make([]int, len(fg.Edges)+1),
	}
	if fg.Kind == KindEnumerated {
		cg.FactorConfigOffset = make([]int, len(fg.Edges)+1)
	}

	slotCursor := 0
	configCursor := 0
	havePairwiseShape := false

	for fi, refs := range fg.Edges {
		ids := make([]int, len(refs))
		seen := make(map[int]bool, len(refs))
		for s, ref := range refs {
			id, err := f.VariableID(ref.Group, ref.Index)
			if err != nil {
				return CompiledGroup{}, fgrErrorf(fg.Name, fi, err)
			}
			if seen[id] {
				return CompiledGroup{}, fgrErrorf(fg.Name, fi, ErrDuplicateEdge)
			}
			seen[id] = true
			ids[s] = id
		}

		switch fg.Kind {
		case KindPairwise:
			if len(ids) != 2 {
				return CompiledGroup{}, fgrErrorf(fg.Name, fi, ErrShapeMismatch)
			}
			k0, k1 := f.VarSize(ids[0]), f.VarSize(ids[1])
			if !havePairwiseShape {
				cg.PairwiseK0, cg.PairwiseK1 = k0, k1
				havePairwiseShape = true
			} else if cg.PairwiseK0 != k0 || cg.PairwiseK1 != k1 {
				return CompiledGroup{}, fgrErrorf(fg.Name, fi, ErrVariableShapeConflict)
			}
			need := (fi + 1) * k0 * k1
			if len(fg.LogPotentials) < need {
				return CompiledGroup{}, fgrErrorf(fg.Name, fi, ErrShapeMismatch)
			}

		case KindEnumerated:
			configCount := 1
			for _, id := range ids {
				configCount *= f.VarSize(id)
			}
			if configCursor+configCount > len(fg.LogPotentials) {
				return CompiledGroup{}, fgrErrorf(fg.Name, fi, ErrShapeMismatch)
			}
			cg.FactorConfigOffset[fi] = configCursor
			configCursor += configCount
			cg.FactorConfigOffset[fi+1] = configCursor

		case KindOR, KindAND:
			if len(ids) < 2 {
				return CompiledGroup{}, fgrErrorf(fg.Name, fi, ErrTooFewParents)
			}
			for _, id := range ids {
				if f.VarSize(id) != 2 {
					return CompiledGroup{}, fgrErrorf(fg.Name, fi, ErrNotBinary)
				}
			}
		}

		for _, id := range ids {
			cg.VarIDs = append(cg.VarIDs, id)
			cg.EdgeOffset = append(cg.EdgeOffset, f.EdgeTotal)
			f.EdgeTotal += f.VarSize(id)
		}
		slotCursor += len(ids)
		cg.FactorSlotOffset[fi+1] = slotCursor
	}

	switch fg.Kind {
	case KindPairwise:
		if len(fg.LogPotentials) != cg.NumFactors*cg.PairwiseK0*cg.PairwiseK1 {
			return CompiledGroup{}, fgrErrorf(fg.Name, -1, ErrShapeMismatch)
		}
		cg.LogPotentials = fg.LogPotentials[:cg.NumFactors*cg.PairwiseK0*cg.PairwiseK1]
	case KindEnumerated:
		if len(fg.LogPotentials) != configCursor {
			return CompiledGroup{}, fgrErrorf(fg.Name, -1, ErrShapeMismatch)
		}
		cg.LogPotentials = fg.LogPotentials[:configCursor]
	}

	return cg, nil
}

// buildIncidence constructs the CSR reverse mapping from variable id to
// incident (group, factor, slot) edges, in deterministic group-then-factor-
// then-slot order, and computes MaxDegree.
func (f *FGR) buildIncidence() {
	degree := make([]int, f.NumVars)
	for gi := range f.Groups {
		g := &f.Groups[gi]
		for _, id := range g.VarIDs {
			degree[id]++
		}
	}

	f.IncidenceOffset = make([]int, f.NumVars+1)
	for v := 0; v < f.NumVars; v++ {
		f.IncidenceOffset[v+1] = f.IncidenceOffset[v] + degree[v]
	}
	f.Incidence = make([]IncidentEdge, f.IncidenceOffset[f.NumVars])

	cursor := make([]int, f.NumVars)
	copy(cursor, f.IncidenceOffset[:f.NumVars])

	for gi := range f.Groups {
		g := &f.Groups[gi]
		for fi := 0; fi < g.NumFactors; fi++ {
			lo, hi := g.Slots(fi)
			for slot := lo; slot < hi; slot++ {
				v := g.VarIDs[slot]
				f.Incidence[cursor[v]] = IncidentEdge{
					GroupIdx:   gi,
					FactorIdx:  fi,
					Slot:       slot - lo,
					EdgeOffset: g.EdgeOffset[slot],
				}
				cursor[v]++
			}
		}
	}

	maxDeg := 0
	for v := 0; v < f.NumVars; v++ {
		if d := f.Degree(v); d > maxDeg {
			maxDeg = d
		}
	}
	f.MaxDegree = maxDeg
}

// sortedGroupNames returns factor group names in sorted order, for
// enumerating groups without relying on map iteration order.
func (f *FGR) sortedGroupNames() []string {
	names := make([]string, 0, len(f.GroupIdx))
	for name := range f.GroupIdx {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
