package fgbuilder

import "github.com/arcbelief/pgmcore/fgr"

// Chain builds an n-variable pairwise chain x_0 - x_1 - ... - x_{n-1}
// (spec §8 scenario 1 at n==2), every variable with k states and every
// consecutive pair sharing the same k×k log-potential table.
func Chain(n, k int, logPotentials []float64) (*fgr.FGR, error) {
	if n < 2 {
		return nil, fgbuilderErrorf("Chain", ErrTooFewVariables)
	}
	if len(logPotentials) != k*k {
		return nil, fgbuilderErrorf("Chain", fgr.ErrShapeMismatch)
	}

	states := make([]int, n)
	for i := range states {
		states[i] = k
	}

	edges := make([][]fgr.VarRef, n-1)
	table := make([]float64, 0, (n-1)*k*k)
	for i := 0; i < n-1; i++ {
		edges[i] = []fgr.VarRef{{Group: "x", Index: i}, {Group: "x", Index: i + 1}}
		table = append(table, logPotentials...)
	}

	return fgr.Compile(
		[]fgr.VariableGroup{{Name: "x", NumStates: states}},
		[]fgr.FactorGroup{{Name: "chain", Kind: fgr.KindPairwise, Edges: edges, LogPotentials: table}},
	)
}
