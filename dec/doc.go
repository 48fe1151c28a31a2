// Package dec decodes inference results (spec §4.6): MAP state assignment,
// per-variable marginal distributions, and total assignment energy. Every
// function here works identically regardless of which backend (bpd or
// sdlpd) produced the arena.ArenaState, reading only the flat per-edge
// "point" array (facade.Inferer.Point()) that both backends keep in the
// same belief_v = evidence_v + sum(point) shape.
package dec
