package sigma

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anupsv/snarky-ceremonies/backend"
)

func TestDlogHonestVerifies(t *testing.T) {
	b := backend.New()
	w, err := b.RandomScalar(nil)
	require.NoError(t, err)

	c := Commitment{A: b.G1ScalarMul(b.G1Gen(), w), B: b.G2ScalarMul(b.G2Gen(), w)}
	pi := Prove(b, c, w)

	require.True(t, Verify(b, c, pi))
}

func TestDlogMutatedCommitmentFails(t *testing.T) {
	b := backend.New()
	w, err := b.RandomScalar(nil)
	require.NoError(t, err)

	c := Commitment{A: b.G1ScalarMul(b.G1Gen(), w), B: b.G2ScalarMul(b.G2Gen(), w)}
	pi := Prove(b, c, w)

	tampered := c
	tampered.A = b.G1Add(c.A, b.G1Gen())
	require.False(t, Verify(b, tampered, pi))
}

func TestDlogMutatedWitnessFails(t *testing.T) {
	b := backend.New()
	w, err := b.RandomScalar(nil)
	require.NoError(t, err)
	wrong, err := b.RandomScalar(nil)
	require.NoError(t, err)

	c := Commitment{A: b.G1ScalarMul(b.G1Gen(), w), B: b.G2ScalarMul(b.G2Gen(), w)}
	pi := Prove(b, c, wrong)

	require.False(t, Verify(b, c, pi))
}
