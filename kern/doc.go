// Package kern implements the per-factor-kind message-update kernels (spec
// §4.3): the type-agnostic variable-side update, and factor-side updates
// for enumerated, pairwise, OR and AND factors, plus the SDLP gradient
// that shares the same reductions. Every kernel reads arena.ArenaState
// through the offsets precomputed by fgr.FGR and writes its results back
// into the same arena, applying damping in place.
//
// All reductions go through LogSumExp/ArgMax so that the "subtract max"
// stabilization and the lowest-index tie-break rule (spec §4.3, §8) are
// implemented exactly once and shared by every kernel.
package kern
