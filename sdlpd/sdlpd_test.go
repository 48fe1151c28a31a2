package sdlpd_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcbelief/pgmcore/fgr"
	"github.com/arcbelief/pgmcore/sdlpd"
)

func twoVarChain(t *testing.T) *fgr.FGR {
	t.Helper()
	f, err := fgr.Compile(
		[]fgr.VariableGroup{{Name: "x", NumStates: []int{2, 2}}},
		[]fgr.FactorGroup{{
			Name: "pair", Kind: fgr.KindPairwise,
			Edges:         [][]fgr.VarRef{{{Group: "x", Index: 0}, {Group: "x", Index: 1}}},
			LogPotentials: []float64{1, -1, -1, 1},
		}},
	)
	require.NoError(t, err)
	return f
}

func TestRun_RequiresStepSize(t *testing.T) {
	f := twoVarChain(t)
	a, err := sdlpd.Init(f, nil, nil)
	require.NoError(t, err)

	_, err = sdlpd.Run(context.Background(), a)
	require.ErrorIs(t, err, sdlpd.ErrMissingStepSize)
}

func TestRun_BoundsBracketDecodedEnergy(t *testing.T) {
	f := twoVarChain(t)
	a, err := sdlpd.Init(f, nil, nil)
	require.NoError(t, err)

	eta := sdlpd.DefaultStepSize(f, 0.5)
	res, err := sdlpd.Run(context.Background(), a, sdlpd.WithTemperature(0.5), sdlpd.WithStepSize(eta), sdlpd.WithMaxIterations(100))
	require.NoError(t, err)
	require.GreaterOrEqual(t, res.Iterations, 1)

	upper := sdlpd.PrimalUpperBound(a, 0.5)
	states := sdlpd.DecodePrimalUnaries(a)
	lower := sdlpd.MapLowerBound(a, states)
	require.GreaterOrEqual(t, upper, lower-1e-6)
	// The symmetric table's true MAP value is 1 (agree on either state).
	require.InDelta(t, 1.0, lower, 1e-9)
}

func TestRunWithObjVals_ReturnsOnePerIteration(t *testing.T) {
	f := twoVarChain(t)
	a, err := sdlpd.Init(f, nil, nil)
	require.NoError(t, err)

	eta := sdlpd.DefaultStepSize(f, 0.5)
	res, objVals, err := sdlpd.RunWithObjVals(context.Background(), a, sdlpd.WithTemperature(0.5), sdlpd.WithStepSize(eta), sdlpd.WithMaxIterations(100))
	require.NoError(t, err)
	require.Len(t, objVals, res.Iterations)

	states := sdlpd.DecodePrimalUnaries(a)
	lower := sdlpd.MapLowerBound(a, states)
	for _, v := range objVals {
		require.GreaterOrEqual(t, v, lower-1e-6)
	}
}
