package fgr_test

import (
	"testing"

	"github.com/arcbelief/pgmcore/fgr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoVarChain() ([]fgr.VariableGroup, []fgr.FactorGroup) {
	vars := []fgr.VariableGroup{
		{Name: "ab", NumStates: []int{2, 2}},
	}
	factors := []fgr.FactorGroup{
		{
			Name: "pairwise",
			Kind: fgr.KindPairwise,
			Edges: [][]fgr.VarRef{
				{{Group: "ab", Index: 0}, {Group: "ab", Index: 1}},
			},
			LogPotentials: []float64{1, -1, -1, 1},
		},
	}
	return vars, factors
}

func TestCompile_TwoVarChain(t *testing.T) {
	vars, factors := twoVarChain()
	g, err := fgr.Compile(vars, factors)
	require.NoError(t, err)

	assert.Equal(t, 2, g.NumVars)
	assert.Equal(t, 4, g.VarTotal)
	assert.Equal(t, 4, g.EdgeTotal) // 2 edges * k=2 each
	assert.Equal(t, 1, g.Degree(0))
	assert.Equal(t, 1, g.Degree(1))
	assert.Equal(t, 1, g.MaxDegree)
}

func TestCompile_UnknownVariableGroup(t *testing.T) {
	_, factors := twoVarChain()
	vars := []fgr.VariableGroup{{Name: "other", NumStates: []int{2, 2}}}
	_, err := fgr.Compile(vars, factors)
	require.Error(t, err)
	assert.ErrorIs(t, err, fgr.ErrUnknownVariableGroup)
}

func TestCompile_DuplicateEdge(t *testing.T) {
	vars := []fgr.VariableGroup{{Name: "ab", NumStates: []int{2, 2}}}
	factors := []fgr.FactorGroup{
		{
			Name: "bad",
			Kind: fgr.KindPairwise,
			Edges: [][]fgr.VarRef{
				{{Group: "ab", Index: 0}, {Group: "ab", Index: 0}},
			},
			LogPotentials: []float64{1, -1, -1, 1},
		},
	}
	_, err := fgr.Compile(vars, factors)
	require.Error(t, err)
	assert.ErrorIs(t, err, fgr.ErrDuplicateEdge)
}

func TestCompile_ORFactorRequiresBinary(t *testing.T) {
	vars := []fgr.VariableGroup{{Name: "v", NumStates: []int{3, 2}}}
	factors := []fgr.FactorGroup{
		{
			Name: "or1",
			Kind: fgr.KindOR,
			Edges: [][]fgr.VarRef{
				{{Group: "v", Index: 0}, {Group: "v", Index: 1}},
			},
		},
	}
	_, err := fgr.Compile(vars, factors)
	require.Error(t, err)
	assert.ErrorIs(t, err, fgr.ErrNotBinary)
}

func TestCompile_EmptyFactorGroupIsSkippedNotRejected(t *testing.T) {
	vars := []fgr.VariableGroup{{Name: "v", NumStates: []int{2}}}
	factors := []fgr.FactorGroup{
		{Name: "empty", Kind: fgr.KindEnumerated, Edges: nil},
	}
	g, err := fgr.Compile(vars, factors)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Groups[g.GroupIdx["empty"]].NumFactors)
}

func TestCompile_EnumeratedConfigOffsets(t *testing.T) {
	vars := []fgr.VariableGroup{{Name: "v", NumStates: []int{2, 3}}}
	factors := []fgr.FactorGroup{
		{
			Name: "enum",
			Kind: fgr.KindEnumerated,
			Edges: [][]fgr.VarRef{
				{{Group: "v", Index: 0}, {Group: "v", Index: 1}},
			},
			LogPotentials: []float64{0, 1, 2, 3, 4, 5},
		},
	}
	g, err := fgr.Compile(vars, factors)
	require.NoError(t, err)
	cg := g.Groups[g.GroupIdx["enum"]]
	lo, hi := cg.ConfigRange(0)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 6, hi)
}
