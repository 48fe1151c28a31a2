// Package fgr compiles a heterogeneous factor graph — categorical variables
// plus enumerated, pairwise, OR and AND factors — into a flat, index-based
// representation suitable for branch-free, vectorized message-passing
// kernels.
//
// A *FGR is built once, from a static description of variable groups and
// factor groups, and is immutable afterwards: every run of belief
// propagation or smooth dual LP shares the same *FGR and mutates only its
// own arena.ArenaState (see the arena package).
//
// Variable identifiers are dense integers assigned per-group, in group
// order, per the flat id-allocation scheme recommended in spec.md's
// REDESIGN FLAGS section: each VariableGroup owns a contiguous id range and
// all user-facing addressing (group name, local index) is translated to a
// dense id exactly once, at Compile time.
//
// Factor groups are likewise compiled into CompiledGroup values keyed by a
// small FactorKind tag rather than dispatched through an interface; kern's
// per-kind kernels index directly into a CompiledGroup's flat slices.
package fgr
