package backend

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalarZeroOne(t *testing.T) {
	b := New()
	require.Equal(t, big.NewInt(0), b.ScalarZero())
	require.Equal(t, big.NewInt(1), b.ScalarOne())
}

func TestScalarPow(t *testing.T) {
	b := New()
	cases := []struct {
		base, exp uint64
		want      uint64
	}{
		{0, 0, 1}, {1, 0, 1}, {2, 0, 1}, {3, 0, 1}, {7, 0, 1},
		{0, 1, 0}, {1, 1, 1}, {2, 1, 2}, {3, 1, 3}, {7, 1, 7},
		{0, 2, 0}, {1, 2, 1}, {2, 2, 4}, {3, 2, 9}, {7, 2, 49},
		{2, 10, 1024}, {7, 3, 343},
	}
	for _, c := range cases {
		got := b.ScalarPow(b.ScalarFromUint64(c.base), c.exp)
		require.Equal(t, b.ScalarFromUint64(c.want), got)
	}
}

func TestG1ScalarMulHomomorphism(t *testing.T) {
	b := New()
	G := b.G1Gen()

	require.True(t, b.CtEqG1(b.G1ScalarMul(G, b.ScalarZero()), b.G1Zero()))
	require.True(t, b.CtEqG1(b.G1ScalarMul(G, b.ScalarOne()), G))

	k := b.ScalarFromUint64(3)
	j := b.ScalarFromUint64(4)
	kG := b.G1ScalarMul(G, k)
	jG := b.G1ScalarMul(G, j)
	sum := b.G1Add(kG, jG)
	kj := b.G1ScalarMul(G, b.ScalarAdd(k, j))
	require.True(t, b.CtEqG1(sum, kj))
}

func TestPairingBilinearity(t *testing.T) {
	b := New()
	G := b.G1Gen()
	H := b.G2Gen()

	left, err := b.Pair(b.G1ScalarMul(G, b.ScalarFromUint64(7)), b.G2ScalarMul(H, b.ScalarFromUint64(9)))
	require.NoError(t, err)

	right, err := b.Pair(G, b.G2ScalarMul(H, b.ScalarFromUint64(63)))
	require.NoError(t, err)

	require.True(t, b.CtEqGT(left, right))
}

func TestHashG1Deterministic(t *testing.T) {
	b := New()
	msg := []byte("snarky ceremonies")
	h1 := b.HashG1(msg)
	h2 := b.HashG1(msg)
	require.True(t, b.CtEqG1(h1, h2))
	require.True(t, b.G1InSubgroup(h1))

	other := b.HashG1([]byte("different message"))
	require.False(t, b.CtEqG1(h1, other))
}

func TestGroupMembership(t *testing.T) {
	b := New()
	G := b.G1Gen()
	H := b.G2Gen()
	for _, f := range []uint64{0, 1, 2, 7, 11, 666} {
		s := b.ScalarFromUint64(f)
		require.True(t, b.G1InSubgroup(b.G1ScalarMul(G, s)))
		require.True(t, b.G2InSubgroup(b.G2ScalarMul(H, s)))
	}
}

func TestCtEqScalar(t *testing.T) {
	b := New()
	require.True(t, b.CtEqScalar(big.NewInt(42), big.NewInt(42)))
	require.False(t, b.CtEqScalar(big.NewInt(42), big.NewInt(43)))
}
