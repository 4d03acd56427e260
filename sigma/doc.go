// Package sigma implements the Dlog sigma protocol: a non-interactive
// proof of knowledge of a scalar w given the commitment (w*G, w*H),
// made non-interactive via Fiat-Shamir over a random oracle that
// hashes the commitment into G1.
package sigma
