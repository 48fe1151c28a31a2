// Package pgmcore is the root of an approximate-inference engine for
// discrete probabilistic graphical models (factor graphs): loopy belief
// propagation and Smooth Dual LP, sharing one flat, compiled graph
// representation and kernel set.
//
//	fgr/      — compiles a factor graph into flat id ranges and CSR incidence
//	arena/    — per-run mutable message/evidence/gradient buffers
//	kern/     — per-factor-kind message and gradient kernels
//	bpd/      — loopy belief propagation driver
//	sdlpd/    — Smooth Dual LP (Nesterov) driver
//	facade/   — one Inferer interface over both drivers
//	dec/      — MAP decode, marginals, energy
//	fgbuilder/ — deterministic topology constructors for tests and examples
//	cmd/pgminfer/ — CLI front-end reading a YAML run description
//
// A factor graph is compiled once (fgr.Compile) and may back any number of
// independently run arena.ArenaState sessions; nothing below fgr mutates
// the compiled graph itself.
package pgmcore
