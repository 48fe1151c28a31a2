// Package sdlpd implements Smooth Dual LP inference (spec §4.2, §4.5):
// Nesterov accelerated-gradient descent on the entropy-smoothed dual of the
// LP-MAP relaxation, sharing the arena.ArenaState and kern reduction
// kernels with bpd. Where bpd fixed-points BP's message equations, sdlpd
// takes explicit gradient steps on the per-edge dual variables (Mu),
// driven by kern.Gradient, with a provable upper bound on the true MAP
// value available at every iteration via PrimalUpperBound.
package sdlpd
