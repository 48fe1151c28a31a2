// Package arena owns the mutable numeric state of one inference session:
// factor->variable and variable->factor messages, per-variable evidence,
// per-group log-potential overrides, and the auxiliary buffers SDLP's
// accelerated gradient descent needs (lookahead, previous mu, gradient).
//
// An ArenaState is created once, from a shared, immutable *fgr.FGR plus
// user-supplied evidence and log-potential overrides (Init), is mutated in
// place by exactly one driver (bpd or sdlpd) for the lifetime of one
// inference call, and is then read by dec's decoders. It is not safe for
// concurrent mutation by more than one driver at a time (spec §5).
package arena
