package arena

import "github.com/arcbelief/pgmcore/fgr"

// ArenaState is the mutable runtime container for one inference session:
// messages, evidence, and log-potential overrides, plus SDLP's auxiliary
// momentum buffers. All arrays are flat and addressed through the shared
// *fgr.FGR's offset tables.
type ArenaState struct {
	FGR *fgr.FGR

	// F2V/V2F are the factor->variable and variable->factor message
	// arrays, each of length FGR.EdgeTotal. Edge e's message spans
	// [off, off+k) where off/k come from the FGR's edge-offset tables.
	F2V []float64
	V2F []float64

	// Evidence holds per-variable log-domain unaries, length
	// FGR.VarTotal, addressed via FGR.VarOffset.
	Evidence []float64

	// LogPotentials holds one slice per compiled factor group (indexed
	// by FGR group index), defaulting to the group's compiled baseline
	// and overridable per-group at Init. nil for KindOR/KindAND groups.
	LogPotentials [][]float64

	// SDLP auxiliary state (spec §4.2), one value per edge:
	//   Mu        the dual variables (the "current" messages, edge-indexed)
	//   MuPrev    mu from the previous iteration (for the momentum term)
	//   Lookahead the Nesterov lookahead point nu = mu + beta*(mu-muPrev)
	//   Grad      the most recently computed gradient of the smoothed dual
	Mu        []float64
	MuPrev    []float64
	Lookahead []float64
	Grad      []float64

	// Step counts completed SDLP iterations; used to compute the
	// Nesterov momentum coefficient beta_t = (t-1)/(t+2).
	Step int
}
