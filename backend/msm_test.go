package backend

import (
	"math/big"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/stretchr/testify/require"
)

func TestMultiScalarMulG1MatchesSequentialSum(t *testing.T) {
	b := New()
	G := b.G1Gen()

	scalars := []*big.Int{b.ScalarFromUint64(3), b.ScalarFromUint64(5), b.ScalarFromUint64(7)}
	bases := []bls12381.G1Affine{
		b.G1ScalarMul(G, b.ScalarFromUint64(2)),
		b.G1ScalarMul(G, b.ScalarFromUint64(4)),
		b.G1ScalarMul(G, b.ScalarFromUint64(6)),
	}

	want := b.G1Zero()
	for i, s := range scalars {
		want = b.G1Add(want, b.G1ScalarMul(bases[i], s))
	}

	got, err := MultiScalarMulG1(bases, scalars)
	require.NoError(t, err)
	require.True(t, b.CtEqG1(got, want))
}

func TestMultiScalarMulG1EmptyReturnsZero(t *testing.T) {
	b := New()
	got, err := MultiScalarMulG1(nil, nil)
	require.NoError(t, err)
	require.True(t, b.CtEqG1(got, b.G1Zero()))
}

func TestMultiScalarMulG1MismatchedLengthsErrors(t *testing.T) {
	b := New()
	_, err := MultiScalarMulG1([]bls12381.G1Affine{b.G1Gen()}, nil)
	require.Error(t, err)
}

func TestMultiScalarMulG2MatchesSequentialSum(t *testing.T) {
	b := New()
	H := b.G2Gen()

	scalars := []*big.Int{b.ScalarFromUint64(2), b.ScalarFromUint64(9)}
	bases := []bls12381.G2Affine{
		b.G2ScalarMul(H, b.ScalarFromUint64(1)),
		b.G2ScalarMul(H, b.ScalarFromUint64(3)),
	}

	want := b.G2Zero()
	for i, s := range scalars {
		want = b.G2Add(want, b.G2ScalarMul(bases[i], s))
	}

	got, err := MultiScalarMulG2(bases, scalars)
	require.NoError(t, err)
	require.True(t, b.CtEqG2(got, want))
}
