package facade_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcbelief/pgmcore/facade"
	"github.com/arcbelief/pgmcore/fgr"
)

func chain(t *testing.T) *fgr.FGR {
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

func TestBuildInferer_BP(t *testing.T) {
	f := chain(t)
	inf, err := facade.BuildInferer(f, nil, nil, facade.BackendBP, facade.Config{Temperature: 1.0, MaxIterations: 20})
	require.NoError(t, err)
	require.NoError(t, inf.Run(context.Background()))
	require.NotNil(t, inf.Arena())
}

func TestBuildInferer_SDLP(t *testing.T) {
	f := chain(t)
	inf, err := facade.BuildInferer(f, nil, nil, facade.BackendSDLP, facade.Config{Temperature: 0.5, MaxIterations: 20})
	require.NoError(t, err)
	require.NoError(t, inf.Run(context.Background()))
	require.NotNil(t, inf.Arena())
}

func TestBuildInferer_UnknownBackend(t *testing.T) {
	f := chain(t)
	_, err := facade.BuildInferer(f, nil, nil, facade.Backend(99), facade.Config{})
	require.ErrorIs(t, err, facade.ErrUnknownBackend)
}
