package srs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anupsv/snarky-ceremonies/backend"
	"github.com/anupsv/snarky-ceremonies/qap"
)

func TestSetupWithUnitTrapdoorPassesShapeChecks(t *testing.T) {
	bk := backend.New()
	q, err := qap.CreateDefault(5, 4, 3)
	require.NoError(t, err)

	td := NewUnitTrapdoor(bk)
	s, err := SetupWithTrapdoor(bk, q, td)
	require.NoError(t, err)

	require.True(t, s.CheckU(bk, q))
	require.True(t, s.CheckS(bk, q))
}

func TestSetupFixedTrapdoorDeterministic(t *testing.T) {
	bk := backend.New()
	q, err := qap.CreateDefault(5, 4, 3)
	require.NoError(t, err)

	td1 := NewTrapdoorFromUint64(bk, 1, 2, 3, 4)
	s1, err := SetupWithTrapdoor(bk, q, td1)
	require.NoError(t, err)

	td2 := NewTrapdoorFromUint64(bk, 1, 2, 3, 4)
	s2, err := SetupWithTrapdoor(bk, q, td2)
	require.NoError(t, err)

	require.True(t, bk.CtEqG1(s1.S.S0, s2.S.S0))
	require.True(t, bk.CtEqG1(s1.U.U0[1].G1, s2.U.U0[1].G1))
}

func TestPhase1ThenPhase2UpdatePreservesShape(t *testing.T) {
	bk := backend.New()
	q, err := qap.CreateDefault(5, 4, 3)
	require.NoError(t, err)

	td := NewUnitTrapdoor(bk)
	s, err := SetupWithTrapdoor(bk, q, td)
	require.NoError(t, err)

	a, _ := bk.RandomScalar(nil)
	b, _ := bk.RandomScalar(nil)
	x, _ := bk.RandomScalar(nil)
	s.UpdatePhase1(bk, q, Phase1Witness{A: a, B: b, X: x})
	require.True(t, s.CheckU(bk, q))

	d, _ := bk.RandomScalar(nil)
	s.UpdatePhase2(bk, Phase2Witness{D: d})
	require.True(t, s.CheckS(bk, q))
}

func TestCheckErrVariantsAgreeWithBool(t *testing.T) {
	bk := backend.New()
	q, err := qap.CreateDefault(5, 4, 3)
	require.NoError(t, err)

	td := NewUnitTrapdoor(bk)
	s, err := SetupWithTrapdoor(bk, q, td)
	require.NoError(t, err)

	require.NoError(t, s.CheckUErr(bk, q))
	require.NoError(t, s.CheckSErr(bk, q))

	s.U.U1 = s.U.U1[:len(s.U.U1)-1]
	require.False(t, s.CheckU(bk, q))
	require.ErrorIs(t, s.CheckUErr(bk, q), ErrShape)

	s.S.S2 = nil
	require.False(t, s.CheckS(bk, q))
	require.ErrorIs(t, s.CheckSErr(bk, q), ErrShape)
}
