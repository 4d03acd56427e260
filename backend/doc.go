// Package backend defines the curve façade that every layer of the
// ceremony above it is written against: scalar and point constructors,
// scalar multiplication, point addition, pairing, group-membership
// checks, hash-to-G1, constant-time equality, and canonical byte
// encodings.
//
// There is a single production implementation, BLS12381, backed by
// github.com/consensys/gnark-crypto. Higher packages depend on the
// Backend interface rather than on BLS12381 or gnark-crypto directly,
// so a second implementation (a mock, or a different curve library)
// can be substituted without touching sigma, rho, srs, batch, or
// ceremony.
package backend
