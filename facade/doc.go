// Package facade unifies bpd and sdlpd behind one Inferer interface (spec
// §4.6, §6), so callers (and cmd/pgminfer) can select an inference backend
// at configuration time without branching on it throughout their own code.
package facade
