package dec_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcbelief/pgmcore/bpd"
	"github.com/arcbelief/pgmcore/dec"
	"github.com/arcbelief/pgmcore/fgr"
)

func antiChain(t *testing.T) *fgr.FGR {
	t.Helper()
	f, err := fgr.Compile(
		[]fgr.VariableGroup{{Name: "x", NumStates: []int{2, 2}}},
		[]fgr.FactorGroup{{
			Name: "pair", Kind: fgr.KindPairwise,
			Edges:         [][]fgr.VarRef{{{Group: "x", Index: 0}, {Group: "x", Index: 1}}},
			LogPotentials: []float64{-1, 1, 1, -1}, // favors disagreement
		}},
	)
	require.NoError(t, err)
	return f
}

func TestDecodeMapStates_PrefersDisagreement(t *testing.T) {
	f := antiChain(t)
	// A zero-evidence antichain is symmetric under swapping both variables'
	// states, so synchronous BP ties forever and never picks a side. A
	// slight bias toward x0=0 breaks the symmetry without changing which
	// joint assignment is optimal: the tie-break plus the disagreement-
	// favoring table both settle on (x0=0, x1=1).
	a, err := bpd.Init(f, map[string][]float64{"x": {0.1, 0, 0, 0}}, nil)
	require.NoError(t, err)
	_, err = bpd.Run(context.Background(), a, bpd.WithTemperature(0), bpd.WithMaxIterations(20))
	require.NoError(t, err)

	states := dec.DecodeMapStates(a, a.F2V)
	require.NotEqual(t, states[0], states[1])

	energy := dec.ComputeEnergy(a, states)
	require.InDelta(t, -1.1, energy, 1e-9)
}

func TestGetMarginals_SumToOne(t *testing.T) {
	f := antiChain(t)
	a, err := bpd.Init(f, nil, nil)
	require.NoError(t, err)
	_, err = bpd.Run(context.Background(), a, bpd.WithTemperature(1.0), bpd.WithMaxIterations(20))
	require.NoError(t, err)

	marg := dec.GetMarginals(a, a.F2V, 1.0)
	require.Len(t, marg, 2)
	for _, m := range marg {
		sum := 0.0
		for _, p := range m {
			sum += p
		}
		require.InDelta(t, 1.0, sum, 1e-9)
	}
}
