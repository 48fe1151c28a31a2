// Package bpd drives loopy belief propagation (spec §4) over a compiled
// fgr.FGR: synchronous, damped message passing to either sum-product
// (temperature > 0) or max-product (temperature == 0) fixed points.
//
// Each iteration runs every factor group's f→v kernel, then the single
// type-agnostic variable update. The f→v kernels read only the V2F
// messages left by the previous iteration, so no factor reads a message
// updated earlier in the same iteration; the variable update then reads
// the F2V messages those kernels just wrote.
// Independent factor groups are updated concurrently via
// golang.org/x/sync/errgroup, mirroring the controlled-concurrency
// fan-out pattern used elsewhere in this codebase's ancestry.
package bpd
