package rho

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anupsv/snarky-ceremonies/backend"
)

func TestRhoChainVerifies(t *testing.T) {
	b := backend.New()
	base0 := b.G1Gen()

	w1, _ := b.RandomScalar(nil)
	p1 := Create(b, base0, w1)
	require.NoError(t, p1.Verify(b, nil))

	w2, _ := b.RandomScalar(nil)
	p2 := Create(b, p1.Aux, w2)
	require.NoError(t, p2.Verify(b, &p1))

	w3, _ := b.RandomScalar(nil)
	p3 := Create(b, p2.Aux, w3)
	require.NoError(t, p3.Verify(b, &p2))
}

func TestRhoTamperedAuxFailsChain(t *testing.T) {
	b := backend.New()
	base0 := b.G1Gen()

	w1, _ := b.RandomScalar(nil)
	p1 := Create(b, base0, w1)

	w2, _ := b.RandomScalar(nil)
	p2 := Create(b, p1.Aux, w2)

	tampered := p1
	tampered.Aux = b.G1Add(p1.Aux, b.G1Gen())
	require.Error(t, p2.Verify(b, &tampered))
}

func TestRhoTamperedSigmaFails(t *testing.T) {
	b := backend.New()
	base0 := b.G1Gen()
	w1, _ := b.RandomScalar(nil)
	p1 := Create(b, base0, w1)

	p1.Sigma = b.G1Add(p1.Sigma, b.G1Gen())
	require.Error(t, p1.Verify(b, nil))
}
