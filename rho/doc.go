// Package rho implements the per-contributor Rho proof: a proof of
// knowledge that an SRS element was multiplied by a fresh witness
// scalar, optionally chained to the previous contributor's proof so a
// batch transcript forms a chain rather than a list of independent
// proofs.
package rho
