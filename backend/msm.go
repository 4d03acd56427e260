package backend

import (
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/anupsv/snarky-ceremonies/internal/common"
)

// MultiScalarMulG1 computes sum(points[i] * scalars[i]) in G1.
// ceremony.Verify builds its G1 aggregates (the U0 chain sums, the U1
// scaling sums, the S2/S3 specialisation sums) with it rather than
// re-accumulating them by hand; the batch package's chain and sigma
// sums are accumulated directly with G1Add.
func MultiScalarMulG1(points []bls12381.G1Affine, scalars []*big.Int) (bls12381.G1Affine, error) {
	if len(points) != len(scalars) {
		return bls12381.G1Affine{}, common.ErrMismatchedLengths
	}
	if len(points) == 0 {
		return bls12381.G1Affine{}, nil
	}

	frScalars := make([]fr.Element, len(scalars))
	for i, s := range scalars {
		if s == nil {
			return bls12381.G1Affine{}, fmt.Errorf("nil scalar at index %d", i)
		}
		frScalars[i].SetBigInt(s)
	}

	var result bls12381.G1Jac
	for i := range points {
		if frScalars[i].IsZero() || points[i].IsInfinity() {
			continue
		}
		var scalarBig big.Int
		frScalars[i].ToBigIntRegular(&scalarBig)

		var tmp bls12381.G1Jac
		tmp.FromAffine(&points[i])
		tmp.ScalarMultiplication(&tmp, &scalarBig)
		result.AddAssign(&tmp)
	}

	var resultAffine bls12381.G1Affine
	resultAffine.FromJacobian(&result)
	return resultAffine, nil
}

// MultiScalarMulG2 is MultiScalarMulG1's G2 counterpart, used by the
// batched verifier's G2-side aggregates (the D, E sums over U1's
// (a, b)-scaled H-components).
func MultiScalarMulG2(points []bls12381.G2Affine, scalars []*big.Int) (bls12381.G2Affine, error) {
	if len(points) != len(scalars) {
		return bls12381.G2Affine{}, common.ErrMismatchedLengths
	}
	if len(points) == 0 {
		return bls12381.G2Affine{}, nil
	}

	frScalars := make([]fr.Element, len(scalars))
	for i, s := range scalars {
		if s == nil {
			return bls12381.G2Affine{}, fmt.Errorf("nil scalar at index %d", i)
		}
		frScalars[i].SetBigInt(s)
	}

	var result bls12381.G2Jac
	for i := range points {
		if frScalars[i].IsZero() || points[i].IsInfinity() {
			continue
		}
		var scalarBig big.Int
		frScalars[i].ToBigIntRegular(&scalarBig)

		var tmp bls12381.G2Jac
		tmp.FromAffine(&points[i])
		tmp.ScalarMultiplication(&tmp, &scalarBig)
		result.AddAssign(&tmp)
	}

	var resultAffine bls12381.G2Affine
	resultAffine.FromJacobian(&result)
	return resultAffine, nil
}
