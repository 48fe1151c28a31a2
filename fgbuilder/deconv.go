package fgbuilder

import "github.com/arcbelief/pgmcore/fgr"

// SOPNetwork builds a two-layer sum-of-products binary logic network (spec
// §8 scenario 4's AND+OR composition): numInputs binary input variables,
// one AND factor per clause (each clause a list of input indices whose
// conjunction produces one "clause" variable), and a single OR factor
// combining every clause variable into one binary output variable. This
// exercises an AND factor and an OR factor wired together in the same
// graph, the combination the closed-form kernels in package kern must
// agree on independently and in series.
func SOPNetwork(numInputs int, clauses [][]int) (*fgr.FGR, error) {
	if numInputs < 1 {
		return nil, fgbuilderErrorf("SOPNetwork", ErrTooFewVariables)
	}
	if len(clauses) < 1 {
		return nil, fgbuilderErrorf("SOPNetwork", ErrEmptyClause)
	}
	for _, clause := range clauses {
		if len(clause) == 0 {
			return nil, fgbuilderErrorf("SOPNetwork", ErrEmptyClause)
		}
		for _, idx := range clause {
			if idx < 0 || idx >= numInputs {
				return nil, fgbuilderErrorf("SOPNetwork", ErrInputIndexRange)
			}
		}
	}

	inputStates := make([]int, numInputs)
	for i := range inputStates {
		inputStates[i] = 2
	}
	clauseStates := make([]int, len(clauses))
	for i := range clauseStates {
		clauseStates[i] = 2
	}

	andEdges := make([][]fgr.VarRef, len(clauses))
	for ci, clause := range clauses {
		edge := make([]fgr.VarRef, 0, len(clause)+1)
		for _, idx := range clause {
			edge = append(edge, fgr.VarRef{Group: "input", Index: idx})
		}
		edge = append(edge, fgr.VarRef{Group: "clause", Index: ci})
		andEdges[ci] = edge
	}

	orEdge := make([]fgr.VarRef, 0, len(clauses)+1)
	for ci := range clauses {
		orEdge = append(orEdge, fgr.VarRef{Group: "clause", Index: ci})
	}
	orEdge = append(orEdge, fgr.VarRef{Group: "output", Index: 0})

	return fgr.Compile(
		[]fgr.VariableGroup{
			{Name: "input", NumStates: inputStates},
			{Name: "clause", NumStates: clauseStates},
			{Name: "output", NumStates: []int{2}},
		},
		[]fgr.FactorGroup{
			{Name: "clauses", Kind: fgr.KindAND, Edges: andEdges},
			{Name: "disjunction", Kind: fgr.KindOR, Edges: [][]fgr.VarRef{orEdge}},
		},
	)
}
