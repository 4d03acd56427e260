package batch

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anupsv/snarky-ceremonies/backend"
	"github.com/anupsv/snarky-ceremonies/qap"
	"github.com/anupsv/snarky-ceremonies/rho"
	"github.com/anupsv/snarky-ceremonies/srs"
)

func buildPhase1Transcript(t *testing.T, bk backend.Backend, s *srs.SRS, q *qap.QAP, rounds int) *BatchProof {
	t.Helper()
	bp := New()

	var prevAG, prevBG, prevU1 *rho.Proof
	for r := 0; r < rounds; r++ {
		a, _ := bk.RandomScalar(nil)
		b, _ := bk.RandomScalar(nil)
		x, _ := bk.RandomScalar(nil)

		pAG := rho.Create(bk, s.U.U1[0].AG, a)
		pBG := rho.Create(bk, s.U.U1[0].BG, b)
		pU1 := rho.Create(bk, s.U.U0[1].G1, x)

		require.NoError(t, pAG.Verify(bk, prevAG))
		require.NoError(t, pBG.Verify(bk, prevBG))
		require.NoError(t, pU1.Verify(bk, prevU1))

		s.UpdatePhase1(bk, q, srs.Phase1Witness{A: a, B: b, X: x})
		bp.AppendPhase1(Phase1Triple{pAG, pBG, pU1})

		prevAG, prevBG, prevU1 = &pAG, &pBG, &pU1
	}
	return bp
}

func TestVerifyNaivePhase1Honest(t *testing.T) {
	bk := backend.New()
	q, err := qap.CreateDefault(5, 4, 3)
	require.NoError(t, err)

	td := srs.NewUnitTrapdoor(bk)
	s, err := srs.SetupWithTrapdoor(bk, q, td)
	require.NoError(t, err)

	bp := buildPhase1Transcript(t, bk, s, q, 3)

	ok, err := bp.VerifyNaive(bk, s, Phase1)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyNaivePhase1TamperedCommitmentFails(t *testing.T) {
	bk := backend.New()
	q, err := qap.CreateDefault(5, 4, 3)
	require.NoError(t, err)

	td := srs.NewUnitTrapdoor(bk)
	s, err := srs.SetupWithTrapdoor(bk, q, td)
	require.NoError(t, err)

	bp := buildPhase1Transcript(t, bk, s, q, 2)
	bp.Phase1[0][0].Commitment.A = bk.G1Add(bp.Phase1[0][0].Commitment.A, bk.G1Gen())

	ok, err := bp.VerifyNaive(bk, s, Phase1)
	require.Error(t, err)
	require.False(t, ok)
}

func TestNaiveAndBatchedAgree(t *testing.T) {
	bk := backend.New()
	q, err := qap.CreateDefault(5, 4, 3)
	require.NoError(t, err)

	td := srs.NewUnitTrapdoor(bk)
	s, err := srs.SetupWithTrapdoor(bk, q, td)
	require.NoError(t, err)

	bp := buildPhase1Transcript(t, bk, s, q, 4)

	scalars := make([]*big.Int, len(bp.Phase1)+1)
	for i := range scalars {
		v, _ := bk.RandomScalar(nil)
		scalars[i] = v
	}

	naiveOK, _ := bp.VerifyNaive(bk, s, Phase1)
	batchedOK, _ := bp.Verify(bk, s, scalars, Phase1)
	require.Equal(t, naiveOK, batchedOK)
	require.True(t, naiveOK)

	// Tamper and confirm both agree on failure too.
	bp.Phase1[1][2].Aux = bk.G1Add(bp.Phase1[1][2].Aux, bk.G1Gen())
	naiveOK2, _ := bp.VerifyNaive(bk, s, Phase1)
	batchedOK2, _ := bp.Verify(bk, s, scalars, Phase1)
	require.Equal(t, naiveOK2, batchedOK2)
	require.False(t, naiveOK2)
}
