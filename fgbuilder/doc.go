// Package fgbuilder provides deterministic, parameter-driven constructors
// for the small family of factor graph topologies this codebase's test
// suites and examples exercise (spec §8's scenarios): a pairwise chain, a
// toroidal (wraparound) pairwise grid, and a sum-of-products binary logic
// network built from AND/OR factors. Every constructor is pure — same
// arguments, same compiled fgr.FGR — mirroring the deterministic topology
// builders this codebase's ancestry uses for fixture graphs.
package fgbuilder
