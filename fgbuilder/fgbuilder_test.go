package fgbuilder_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcbelief/pgmcore/bpd"
	"github.com/arcbelief/pgmcore/dec"
	"github.com/arcbelief/pgmcore/fgbuilder"
)

func TestChain_TooFewVariables(t *testing.T) {
	_, err := fgbuilder.Chain(1, 2, []float64{1, -1, -1, 1})
	require.ErrorIs(t, err, fgbuilder.ErrTooFewVariables)
}

func TestChain_BuildsAndRuns(t *testing.T) {
	f, err := fgbuilder.Chain(5, 2, []float64{1, -1, -1, 1})
	require.NoError(t, err)
	require.Equal(t, 5, f.NumVars)

	a, err := bpd.Init(f, nil, nil)
	require.NoError(t, err)
	_, err = bpd.Run(context.Background(), a, bpd.WithTemperature(1.0), bpd.WithMaxIterations(50))
	require.NoError(t, err)
}

func TestToroidalGrid_RejectsDegenerateSize(t *testing.T) {
	_, err := fgbuilder.ToroidalGrid(1, 3, 2, []float64{1, -1, -1, 1})
	require.ErrorIs(t, err, fgbuilder.ErrTooFewVariables)
}

func TestToroidalGrid_EveryCellHasDegreeFour(t *testing.T) {
	f, err := fgbuilder.ToroidalGrid(3, 3, 2, []float64{1, -1, -1, 1})
	require.NoError(t, err)
	require.Equal(t, 9, f.NumVars)
	for v := 0; v < f.NumVars; v++ {
		require.Equal(t, 4, f.Degree(v))
	}
}

func TestSOPNetwork_DecodesExpectedOutput(t *testing.T) {
	// (in0 AND in1) OR (in2 AND in3); with strong evidence in0=in1=1,
	// in2=in3=0, the decoded output must be 1.
	f, err := fgbuilder.SOPNetwork(4, [][]int{{0, 1}, {2, 3}})
	require.NoError(t, err)

	evidence := map[string][]float64{
		"input": {-5, 5, -5, 5, 5, -5, 5, -5},
	}
	a, err := bpd.Init(f, evidence, nil)
	require.NoError(t, err)
	_, err = bpd.Run(context.Background(), a, bpd.WithTemperature(0), bpd.WithMaxIterations(50))
	require.NoError(t, err)

	states := dec.DecodeMapStates(a, a.F2V)
	// variable order: input(4), clause(2), output(1)
	require.Equal(t, 1, states[6])
}
