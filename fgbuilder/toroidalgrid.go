package fgbuilder

import "github.com/arcbelief/pgmcore/fgr"

// ToroidalGrid builds a rows×cols grid of k-state variables with
// wraparound pairwise factors on both axes (spec §8 scenarios 2/5/6): each
// cell is connected to its right and below neighbor, wrapping around each
// axis, so every variable has exactly 4 incident edges and the graph has
// no boundary. Horizontal and vertical edges are compiled as separate
// factor groups ("grid_h"/"grid_v") since fgr requires one uniform shape
// per group but both axes already share k×k here, so the split is purely
// for readability, not a shape requirement.
func ToroidalGrid(rows, cols, k int, logPotentials []float64) (*fgr.FGR, error) {
	if rows < 2 || cols < 2 {
		return nil, fgbuilderErrorf("ToroidalGrid", ErrTooFewVariables)
	}
	if len(logPotentials) != k*k {
		return nil, fgbuilderErrorf("ToroidalGrid", fgr.ErrShapeMismatch)
	}

	n := rows * cols
	states := make([]int, n)
	for i := range states {
		states[i] = k
	}
	idx := func(r, c int) int { return r*cols + c }

	var hEdges, vEdges [][]fgr.VarRef
	var hTable, vTable []float64
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			right := idx(r, (c+1)%cols)
			hEdges = append(hEdges, []fgr.VarRef{{Group: "cell", Index: idx(r, c)}, {Group: "cell", Index: right}})
			hTable = append(hTable, logPotentials...)

			down := idx((r+1)%rows, c)
			vEdges = append(vEdges, []fgr.VarRef{{Group: "cell", Index: idx(r, c)}, {Group: "cell", Index: down}})
			vTable = append(vTable, logPotentials...)
		}
	}

	return fgr.Compile(
		[]fgr.VariableGroup{{Name: "cell", NumStates: states}},
		[]fgr.FactorGroup{
			{Name: "grid_h", Kind: fgr.KindPairwise, Edges: hEdges, LogPotentials: hTable},
			{Name: "grid_v", Kind: fgr.KindPairwise, Edges: vEdges, LogPotentials: vTable},
		},
	)
}
