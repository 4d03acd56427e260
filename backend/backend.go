package backend

import (
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Backend is the uniform curve façade every higher package (sigma,
// rho, srs, batch, ceremony) is written against. It replaces the
// macro-based primitive access of the original source with ordinary
// interface dispatch; the single production implementation is
// BLS12381.
//
// Scalars are represented as *big.Int reduced modulo the scalar field
// order rather than as a dedicated field-element type, matching how
// scalars are threaded through this codebase's other packages.
type Backend interface {
	// Scalar construction and arithmetic, all reduced mod the scalar
	// field order.
	ScalarZero() *big.Int
	ScalarOne() *big.Int
	ScalarFromUint64(v uint64) *big.Int
	RandomScalar(reader io.Reader) (*big.Int, error)
	ScalarAdd(a, b *big.Int) *big.Int
	ScalarMul(a, b *big.Int) *big.Int
	ScalarInv(a *big.Int) *big.Int
	ScalarPow(base *big.Int, exp uint64) *big.Int

	// G1 group operations.
	G1Zero() bls12381.G1Affine
	G1Gen() bls12381.G1Affine
	G1Add(a, b bls12381.G1Affine) bls12381.G1Affine
	G1ScalarMul(p bls12381.G1Affine, s *big.Int) bls12381.G1Affine
	G1InSubgroup(p bls12381.G1Affine) bool
	G1Bytes(p bls12381.G1Affine) []byte

	// G2 group operations.
	G2Zero() bls12381.G2Affine
	G2Gen() bls12381.G2Affine
	G2Add(a, b bls12381.G2Affine) bls12381.G2Affine
	G2ScalarMul(p bls12381.G2Affine, s *big.Int) bls12381.G2Affine
	G2InSubgroup(p bls12381.G2Affine) bool
	G2Bytes(p bls12381.G2Affine) []byte

	// Pairing and the target group.
	Pair(p bls12381.G1Affine, q bls12381.G2Affine) (bls12381.GT, error)
	GTOne() bls12381.GT
	GTMul(a, b bls12381.GT) bls12381.GT
	GTEqual(a, b bls12381.GT) bool

	// HashG1 maps arbitrary bytes to a point in the G1 subgroup via
	// SHA-512 -> reduce mod scalar order -> multiply the generator.
	// Deterministic, not a uniform hash-to-curve; sufficient as the
	// Fiat-Shamir challenge base for the sigma protocol.
	HashG1(msg []byte) bls12381.G1Affine

	// Constant-time equality. Every comparison that touches the
	// trapdoor or a per-contributor witness, and every SRS/Rho point
	// comparison during verification, must go through these instead
	// of reflect.DeepEqual or ==.
	CtEqScalar(a, b *big.Int) bool
	CtEqG1(a, b bls12381.G1Affine) bool
	CtEqG2(a, b bls12381.G2Affine) bool
	CtEqGT(a, b bls12381.GT) bool
}
