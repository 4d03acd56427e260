// Package batch implements the append-only batch transcript of Rho
// proofs collected across a ceremony: phase-1 triples and phase-2
// singles, with a naive (per-proof) verifier and a batched verifier
// that checks the whole transcript with a constant number of pairing
// equations via randomised linear combination.
package batch
