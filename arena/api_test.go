package arena_test

import (
	"testing"

	"github.com/arcbelief/pgmcore/arena"
	"github.com/arcbelief/pgmcore/fgr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chainFGR(t *testing.T) *fgr.FGR {
	t.Helper()
	vars := []fgr.VariableGroup{{Name: "ab", NumStates: []int{2, 2}}}
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
	g, err := fgr.Compile(vars, factors)
	require.NoError(t, err)
	return g
}

func TestInit_DefaultsAndOverrides(t *testing.T) {
	g := chainFGR(t)

	a, err := arena.Init(g, map[string][]float64{"ab": {0.1, 0, 0, 0.2}}, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0, 0, 0.2}, a.Evidence)
	assert.Len(t, a.F2V, g.EdgeTotal)
	assert.Len(t, a.V2F, g.EdgeTotal)

	gi := g.GroupIdx["pairwise"]
	assert.Equal(t, []float64{1, -1, -1, 1}, a.LogPotentials[gi])

	a2, err := arena.Init(g, nil, map[string][]float64{"pairwise": {0, 0, 0, 0}})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, a2.LogPotentials[gi])
}

func TestInit_UnknownGroupErrors(t *testing.T) {
	g := chainFGR(t)
	_, err := arena.Init(g, map[string][]float64{"nope": {1, 2}}, nil)
	require.ErrorIs(t, err, arena.ErrUnknownVariableGroup)

	_, err = arena.Init(g, nil, map[string][]float64{"nope": {1, 2}})
	require.ErrorIs(t, err, arena.ErrUnknownFactorGroup)
}

func TestInit_ShapeMismatch(t *testing.T) {
	g := chainFGR(t)
	_, err := arena.Init(g, map[string][]float64{"ab": {0.1}}, nil)
	require.ErrorIs(t, err, arena.ErrShapeMismatch)
}

func TestTable_RoundTrip(t *testing.T) {
	tbl, err := arena.NewTable(2, 2)
	require.NoError(t, err)
	require.NoError(t, tbl.Set(0, 0, 1))
	require.NoError(t, tbl.Set(0, 1, -1))
	require.NoError(t, tbl.Set(1, 0, -1))
	require.NoError(t, tbl.Set(1, 1, 1))
	assert.Equal(t, []float64{1, -1, -1, 1}, tbl.Flatten())
}
