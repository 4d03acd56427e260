package sigma

import (
	"errors"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/anupsv/snarky-ceremonies/backend"
)

// ErrDlogFailure is the error value for a sigma proof whose
// verification pairing equations do not hold. Verify reports that
// outcome as a bool and does not return this error.
var ErrDlogFailure = errors.New("sigma: dlog verification failed")

// Commitment is the pair (A, B) = (w*G, w*H) asserted to share the
// discrete log w.
type Commitment struct {
	A bls12381.G1Affine
	B bls12381.G2Affine
}

// Bytes returns the canonical encoding bytes1(A) || bytes2(B), the
// input to the random oracle.
func (c Commitment) Bytes(b backend.Backend) []byte {
	out := make([]byte, 0, 48+96)
	out = append(out, b.G1Bytes(c.A)...)
	out = append(out, b.G2Bytes(c.B)...)
	return out
}

// RndOracle is the Fiat-Shamir random oracle: hashG1(bytes1(A) ||
// bytes2(B)).
func RndOracle(b backend.Backend, c Commitment) bls12381.G1Affine {
	return b.HashG1(c.Bytes(b))
}

// Prove computes the sigma proof pi = w*R for commitment c = (w*G,
// w*H), where R = RndOracle(c).
func Prove(b backend.Backend, c Commitment, w *big.Int) bls12381.G1Affine {
	R := RndOracle(b, c)
	return b.G1ScalarMul(R, w)
}

// Verify returns true iff e(A, H) = e(G, B) and e(pi, H) = e(R, B),
// where R = RndOracle(c). The first equation establishes that A and B
// share a discrete log; the second establishes knowledge of it under
// the random oracle model.
func Verify(b backend.Backend, c Commitment, pi bls12381.G1Affine) bool {
	G := b.G1Gen()
	H := b.G2Gen()

	lhs1, err1 := b.Pair(c.A, H)
	rhs1, err2 := b.Pair(G, c.B)
	if err1 != nil || err2 != nil {
		return false
	}
	eq1 := b.CtEqGT(lhs1, rhs1)

	R := RndOracle(b, c)
	lhs2, err3 := b.Pair(pi, H)
	rhs2, err4 := b.Pair(R, c.B)
	if err3 != nil || err4 != nil {
		return false
	}
	eq2 := b.CtEqGT(lhs2, rhs2)

	return eq1 && eq2
}
