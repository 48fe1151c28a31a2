package kern

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcbelief/pgmcore/arena"
	"github.com/arcbelief/pgmcore/fgr"
)

func chainArena(t *testing.T) *arena.ArenaState {
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
	a, err := arena.Init(f, nil, nil)
	require.NoError(t, err)
	return a
}

func TestUpdatePairwiseF2V_Symmetric(t *testing.T) {
	a := chainArena(t)
	require.NoError(t, UpdateF2V(a, 0, 1.0, 0))
	// Symmetric table and zero incoming v2f => the two outgoing messages
	// for each edge must themselves be symmetric (m[0] == m[1] negated
	// relative to each other is not required, but the two edges must match
	// since the table is symmetric under swapping variables).
	require.InDelta(t, a.F2V[0], a.F2V[2], 1e-9)
	require.InDelta(t, a.F2V[1], a.F2V[3], 1e-9)
}

func orAndArena(t *testing.T, kind fgr.FactorKind) *arena.ArenaState {
	t.Helper()
	f, err := fgr.Compile(
		[]fgr.VariableGroup{{Name: "p", NumStates: []int{2, 2, 2}}, {Name: "c", NumStates: []int{2}}},
		[]fgr.FactorGroup{{
			Name: "g", Kind: kind,
			Edges: [][]fgr.VarRef{{
				{Group: "p", Index: 0}, {Group: "p", Index: 1}, {Group: "p", Index: 2},
				{Group: "c", Index: 0},
			}},
		}},
	)
	require.NoError(t, err)
	a, err := arena.Init(f, nil, nil)
	require.NoError(t, err)
	return a
}

// bruteForceMessage recomputes the f→v message for slot s of a factor with
// the given kind by enumerating every configuration directly, as an
// independent check on the closed-form kernels.
func bruteForceMessage(kind fgr.FactorKind, v2f [][2]float64, s int, temp float64) [2]float64 {
	n := len(v2f)
	var out [2]float64
	for x := 0; x < 2; x++ {
		var bucket []float64
		for c := 0; c < (1 << n); c++ {
			bits := make([]int, n)
			for i := 0; i < n; i++ {
				bits[i] = (c >> i) & 1
			}
			if bits[s] != x {
				continue
			}
			satisfied := false
			if kind == fgr.KindOR {
				any := false
				for i := 0; i < n-1; i++ {
					if bits[i] == 1 {
						any = true
					}
				}
				satisfied = (bits[n-1] == 1) == any
			} else {
				all := true
				for i := 0; i < n-1; i++ {
					if bits[i] == 0 {
						all = false
					}
				}
				satisfied = (bits[n-1] == 1) == all
			}
			if !satisfied {
				continue
			}
			score := 0.0
			for i := 0; i < n; i++ {
				score += v2f[i][bits[i]]
			}
			bucket = append(bucket, score)
		}
		out[x] = LogSumExp(bucket, temp) - v2f[s][x]
	}
	return out
}

func TestOR_MatchesBruteForce(t *testing.T) {
	for _, temp := range []float64{0, 1.0} {
		a := orAndArena(t, fgr.KindOR)
		v2f := [][2]float64{{0.2, 0.7}, {-0.3, 0.1}, {0.05, -0.4}, {-0.1, 0.3}}
		for i, m := range v2f {
			a.V2F[i*2] = m[0]
			a.V2F[i*2+1] = m[1]
		}
		require.NoError(t, UpdateF2V(a, 0, temp, 0))

		for s := 0; s < 4; s++ {
			want := bruteForceMessage(fgr.KindOR, v2f, s, temp)
			require.InDelta(t, want[0], a.F2V[s*2], 1e-5, "slot %d state 0 temp %v", s, temp)
			require.InDelta(t, want[1], a.F2V[s*2+1], 1e-5, "slot %d state 1 temp %v", s, temp)
		}
	}
}

func TestAND_MatchesBruteForce(t *testing.T) {
	for _, temp := range []float64{0, 1.0} {
		a := orAndArena(t, fgr.KindAND)
		v2f := [][2]float64{{0.2, 0.7}, {-0.3, 0.1}, {0.05, -0.4}, {-0.1, 0.3}}
		for i, m := range v2f {
			a.V2F[i*2] = m[0]
			a.V2F[i*2+1] = m[1]
		}
		require.NoError(t, UpdateF2V(a, 0, temp, 0))

		for s := 0; s < 4; s++ {
			want := bruteForceMessage(fgr.KindAND, v2f, s, temp)
			require.InDelta(t, want[0], a.F2V[s*2], 1e-5, "slot %d state 0 temp %v", s, temp)
			require.InDelta(t, want[1], a.F2V[s*2+1], 1e-5, "slot %d state 1 temp %v", s, temp)
		}
	}
}

func TestOR_SingleParentIsIdentity(t *testing.T) {
	f, err := fgr.Compile(
		[]fgr.VariableGroup{{Name: "p", NumStates: []int{2}}, {Name: "c", NumStates: []int{2}}},
		[]fgr.FactorGroup{{
			Name: "g", Kind: fgr.KindOR,
			Edges: [][]fgr.VarRef{{{Group: "p", Index: 0}, {Group: "c", Index: 0}}},
		}},
	)
	require.NoError(t, err)
	a, err := arena.Init(f, nil, nil)
	require.NoError(t, err)
	a.V2F[0], a.V2F[1] = 0.3, -0.9
	a.V2F[2], a.V2F[3] = 1.2, -0.2
	require.NoError(t, UpdateF2V(a, 0, 0.5, 0))
	require.InDelta(t, a.V2F[2], a.F2V[0], 1e-9)
	require.InDelta(t, a.V2F[3], a.F2V[1], 1e-9)
	require.InDelta(t, a.V2F[0], a.F2V[2], 1e-9)
	require.InDelta(t, a.V2F[1], a.F2V[3], 1e-9)
}

func TestArgMax_TieBreaksLowestIndex(t *testing.T) {
	require.Equal(t, 1, ArgMax([]float64{0, 5, 5, -1}))
}

func TestLogSumExp_MaxProductLimit(t *testing.T) {
	x := []float64{1, 4, 2}
	require.InDelta(t, 4, LogSumExp(x, 0), 1e-12)
}

func TestSoftplus_LimitsMatchMax0AndSmoothAtT1(t *testing.T) {
	require.InDelta(t, 3.0, Softplus(3, 0), 1e-12)
	require.InDelta(t, 0.0, Softplus(-3, 0), 1e-12)
	require.Greater(t, Softplus(0, 1), 0.0)
}

func TestGradient_ZeroAtEqualMarginals(t *testing.T) {
	a := chainArena(t)
	// At the all-zero reparameterization point with zero evidence, both
	// rows and both columns of the symmetric table reduce to the same
	// log-sum-exp, so the factor marginals are uniform, as are the variable
	// marginals: the two agree everywhere and the gradient is 0.
	point := make([]float64, len(a.F2V))
	Gradient(a, point, 1.0)
	require.Len(t, a.Grad, len(point))
	for _, g := range a.Grad {
		require.False(t, math.IsNaN(g))
		require.InDelta(t, 0, g, 1e-12)
	}
}
