package rho

import (
	"errors"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/anupsv/snarky-ceremonies/backend"
	"github.com/anupsv/snarky-ceremonies/sigma"
)

// ErrRhoFailure is returned when the inner Dlog proof fails, or when
// the chain equation to the previous contributor's Rho fails.
var ErrRhoFailure = errors.New("rho: proof verification failed")

// Proof bundles (aux, commitment, sigma) for one contributor's update
// to a single SRS element.
type Proof struct {
	Aux        bls12381.G1Affine
	Commitment sigma.Commitment
	Sigma      bls12381.G1Affine
}

// Create builds a Rho proof for witness w applied to the pre-update
// SRS element base: aux = w*base, commitment = (w*G, w*H), sigma =
// Dlog.Prove(commitment, w).
func Create(b backend.Backend, base bls12381.G1Affine, w *big.Int) Proof {
	commitment := sigma.Commitment{
		A: b.G1ScalarMul(b.G1Gen(), w),
		B: b.G2ScalarMul(b.G2Gen(), w),
	}
	return Proof{
		Aux:        b.G1ScalarMul(base, w),
		Commitment: commitment,
		Sigma:      sigma.Prove(b, commitment, w),
	}
}

// Verify checks the inner Dlog proof and, if previous is non-nil,
// the chain equation e(aux, H) = e(previous.Aux, commitment.B) that
// ties this contributor's aux to the prior one via the current
// commitment's G2 half. previous == nil is valid for the very first
// contributor, whose base is drawn from the initial SRS rather than a
// prior Rho.
func (p Proof) Verify(b backend.Backend, previous *Proof) error {
	if !sigma.Verify(b, p.Commitment, p.Sigma) {
		return ErrRhoFailure
	}

	if previous == nil {
		return nil
	}

	H := b.G2Gen()
	lhs, err1 := b.Pair(p.Aux, H)
	rhs, err2 := b.Pair(previous.Aux, p.Commitment.B)
	if err1 != nil || err2 != nil || !b.CtEqGT(lhs, rhs) {
		return ErrRhoFailure
	}
	return nil
}
