package ceremony

import (
	"github.com/anupsv/snarky-ceremonies/backend"
	"github.com/anupsv/snarky-ceremonies/batch"
	"github.com/anupsv/snarky-ceremonies/internal/common"
	"github.com/anupsv/snarky-ceremonies/qap"
	"github.com/anupsv/snarky-ceremonies/srs"
)

func and(a, b bool) bool { return a && b }

// VerifyNaive checks the full transcript and SRS against qap with one
// pairing-equation evaluation per index rather than a randomised
// linear-combination batch, following §4.6's eight canonical steps.
// Every sub-check is computed unconditionally before being combined,
// so verification timing does not depend on which check (if any)
// fails.
func VerifyNaive(bk backend.Backend, q *qap.QAP, s *srs.SRS, bp *batch.BatchProof) Verification {
	m, n, l := q.Shape()
	u, v, w, t := q.Collections()
	G := bk.G1Gen()
	H := bk.G2Gen()
	log := common.Logger()

	errA := s.CheckUErr(bk, q)
	outA := errA == nil
	if errA != nil {
		log.Warn().Err(errA).Msg("SRSShapeError: check_u failed")
	}

	outB, errB := bp.VerifyNaive(bk, s, batch.Phase1)
	if errB != nil {
		log.Warn().Err(errB).Msg("BatchFailure: phase-1 naive verification failed")
	}

	outC := backend.ParallelReduce(2*n-2, true, and, func(idx int) bool {
		i := idx + 1
		lhs1, _ := bk.Pair(s.U.U0[i].G1, H)
		rhs1, _ := bk.Pair(G, s.U.U0[i].G2)
		lhs2, _ := bk.Pair(s.U.U0[i].G1, H)
		rhs2, _ := bk.Pair(s.U.U0[i-1].G1, s.U.U0[1].G2)
		return bk.CtEqGT(lhs1, rhs1) && bk.CtEqGT(lhs2, rhs2)
	})

	outD := backend.ParallelReduce(n, true, and, func(i int) bool {
		lhs1, _ := bk.Pair(s.U.U1[i].AG, H)
		rhs1, _ := bk.Pair(G, s.U.U1[i].AH)
		lhs2, _ := bk.Pair(s.U.U1[i].AG, H)
		rhs2, _ := bk.Pair(s.U.U0[i].G1, s.U.U1[0].AH)
		lhs3, _ := bk.Pair(s.U.U1[i].BG, H)
		rhs3, _ := bk.Pair(G, s.U.U1[i].BH)
		lhs4, _ := bk.Pair(s.U.U1[i].BG, H)
		rhs4, _ := bk.Pair(s.U.U0[i].G1, s.U.U1[0].BH)
		return bk.CtEqGT(lhs1, rhs1) && bk.CtEqGT(lhs2, rhs2) &&
			bk.CtEqGT(lhs3, rhs3) && bk.CtEqGT(lhs4, rhs4)
	})

	errE := s.CheckSErr(bk, q)
	outE := errE == nil
	if errE != nil {
		log.Warn().Err(errE).Msg("SRSShapeError: check_s failed")
	}

	outF, errF := bp.VerifyNaive(bk, s, batch.Phase2)
	if errF != nil {
		log.Warn().Err(errF).Msg("BatchFailure: phase-2 naive verification failed")
	}

	outG := backend.ParallelReduce(m-l, true, and, func(i int) bool {
		k := l + 1 + i
		acc := bk.G1Zero()
		for j := 0; j < n; j++ {
			term := bk.G1Add(
				bk.G1ScalarMul(s.U.U1[j].BG, u[k].Coeff(j)),
				bk.G1Add(
					bk.G1ScalarMul(s.U.U1[j].AG, v[k].Coeff(j)),
					bk.G1ScalarMul(s.U.U0[j].G1, w[k].Coeff(j)),
				),
			)
			acc = bk.G1Add(acc, term)
		}
		lhs, _ := bk.Pair(s.S.S2[i], s.S.S1)
		rhs, _ := bk.Pair(acc, H)
		return bk.CtEqGT(lhs, rhs)
	})

	Gt := bk.G1Zero()
	for j := 0; j <= n && j < len(s.U.U0); j++ {
		Gt = bk.G1Add(Gt, bk.G1ScalarMul(s.U.U0[j].G1, t.Coeff(j)))
	}
	outH := backend.ParallelReduce(n-1, true, and, func(i int) bool {
		lhs, _ := bk.Pair(s.S.S3[i], s.S.S1)
		rhs, _ := bk.Pair(Gt, s.U.U0[i].G2)
		return bk.CtEqGT(lhs, rhs)
	})

	return FromBool(allTrue(outA, outB, outC, outD, outE, outF, outG, outH))
}

// Verify checks the full transcript and SRS against qap with a
// constant number of pairing equations via randomised linear
// combination, following §4.6's eight canonical steps batched per
// §4.5. It samples its own fresh random scalars, one per transcript
// and per-index aggregate, reused across every aggregate check so the
// whole run costs one random-scalar vector rather than one per check.
func Verify(bk backend.Backend, q *qap.QAP, s *srs.SRS, bp *batch.BatchProof) Verification {
	m, n, l := q.Shape()
	u, v, w, t := q.Collections()
	G := bk.G1Gen()
	H := bk.G2Gen()
	log := common.Logger()

	errA := s.CheckUErr(bk, q)
	outA := errA == nil
	if errA != nil {
		log.Warn().Err(errA).Msg("SRSShapeError: check_u failed")
	}

	max := 2*n - 2
	if m > max {
		max = m
	}
	if len(bp.Phase1) > max {
		max = len(bp.Phase1)
	}
	if len(bp.Phase2) > max {
		max = len(bp.Phase2)
	}
	scalars := backend.GetScalarSlice()
	defer backend.PutScalarSlice(scalars)
	for i := 0; i <= max; i++ {
		scalar, err := bk.RandomScalar(nil)
		if err != nil {
			log.Error().Err(err).Msg("failed to sample verifier randomness")
			return Failure
		}
		scalars = append(scalars, scalar)
	}

	outB, errB := bp.Verify(bk, s, scalars, batch.Phase1)
	if errB != nil {
		log.Warn().Err(errB).Msg("BatchFailure: phase-1 batched verification failed")
	}

	// step 7: chain-of-powers consistency over U0.
	u0Tail := backend.GetG1Slice()
	defer backend.PutG1Slice(u0Tail)
	u0TailG2 := backend.GetG2Slice()
	defer backend.PutG2Slice(u0TailG2)
	u0Lead := backend.GetG1Slice()
	defer backend.PutG1Slice(u0Lead)
	chainScalars := scalars[1 : 2*n-1]
	for i := 1; i < 2*n-1; i++ {
		u0Tail = append(u0Tail, s.U.U0[i].G1)
		u0TailG2 = append(u0TailG2, s.U.U0[i].G2)
		u0Lead = append(u0Lead, s.U.U0[i-1].G1)
	}
	A, _ := backend.MultiScalarMulG1(u0Tail, chainScalars)
	B, _ := backend.MultiScalarMulG2(u0TailG2, chainScalars)
	C, _ := backend.MultiScalarMulG1(u0Lead, chainScalars)
	lhsC1, _ := bk.Pair(A, H)
	rhsC1, _ := bk.Pair(G, B)
	rhsC2, _ := bk.Pair(C, s.U.U0[1].G2)
	outC := bk.CtEqGT(lhsC1, rhsC1) && bk.CtEqGT(lhsC1, rhsC2)

	// step 8: (a, b)-scaling consistency over U1.
	u0Head := backend.GetG1Slice()
	defer backend.PutG1Slice(u0Head)
	u1AG := backend.GetG1Slice()
	defer backend.PutG1Slice(u1AG)
	u1BG := backend.GetG1Slice()
	defer backend.PutG1Slice(u1BG)
	u1AH := backend.GetG2Slice()
	defer backend.PutG2Slice(u1AH)
	u1BH := backend.GetG2Slice()
	defer backend.PutG2Slice(u1BH)
	for i := 0; i < n; i++ {
		u0Head = append(u0Head, s.U.U0[i].G1)
		u1AG = append(u1AG, s.U.U1[i].AG)
		u1BG = append(u1BG, s.U.U1[i].BG)
		u1AH = append(u1AH, s.U.U1[i].AH)
		u1BH = append(u1BH, s.U.U1[i].BH)
	}
	scaleScalars := scalars[:n]
	Aa, _ := backend.MultiScalarMulG1(u0Head, scaleScalars)
	Bb, _ := backend.MultiScalarMulG1(u1AG, scaleScalars)
	Cc, _ := backend.MultiScalarMulG1(u1BG, scaleScalars)
	Dd, _ := backend.MultiScalarMulG2(u1AH, scaleScalars)
	Ee, _ := backend.MultiScalarMulG2(u1BH, scaleScalars)
	lhsD1, _ := bk.Pair(Bb, H)
	rhsD1, _ := bk.Pair(G, Dd)
	rhsD2, _ := bk.Pair(Aa, s.U.U1[0].AH)
	lhsD2, _ := bk.Pair(Cc, H)
	rhsD3, _ := bk.Pair(G, Ee)
	rhsD4, _ := bk.Pair(Aa, s.U.U1[0].BH)
	outD := bk.CtEqGT(lhsD1, rhsD1) && bk.CtEqGT(lhsD1, rhsD2) &&
		bk.CtEqGT(lhsD2, rhsD3) && bk.CtEqGT(lhsD2, rhsD4)

	errE := s.CheckSErr(bk, q)
	outE := errE == nil
	if errE != nil {
		log.Warn().Err(errE).Msg("SRSShapeError: check_s failed")
	}

	outF, errF := bp.Verify(bk, s, scalars, batch.Phase2)
	if errF != nil {
		log.Warn().Err(errF).Msg("BatchFailure: phase-2 batched verification failed")
	}

	// step 13: specialisation of S2 against the QAP's u, v, w.
	specScalars := scalars[:m-l]
	specSums := backend.GetG1Slice()
	defer backend.PutG1Slice(specSums)
	for i := 0; i < m-l; i++ {
		k := l + 1 + i
		sum := bk.G1Zero()
		for j := 0; j < n; j++ {
			term := bk.G1Add(
				bk.G1ScalarMul(s.U.U1[j].BG, u[k].Coeff(j)),
				bk.G1Add(
					bk.G1ScalarMul(s.U.U1[j].AG, v[k].Coeff(j)),
					bk.G1ScalarMul(s.U.U0[j].G1, w[k].Coeff(j)),
				),
			)
			sum = bk.G1Add(sum, term)
		}
		specSums = append(specSums, sum)
	}
	Ag, _ := backend.MultiScalarMulG1(s.S.S2[:m-l], specScalars)
	Bg, _ := backend.MultiScalarMulG1(specSums, specScalars)
	lhsG, _ := bk.Pair(Ag, s.S.S1)
	rhsG, _ := bk.Pair(Bg, H)
	outG := bk.CtEqGT(lhsG, rhsG)

	// step 14: specialisation of S3 against the vanishing polynomial t.
	Gt := bk.G1Zero()
	for j := 0; j <= n && j < len(s.U.U0); j++ {
		Gt = bk.G1Add(Gt, bk.G1ScalarMul(s.U.U0[j].G1, t.Coeff(j)))
	}
	vanishScalars := scalars[:n-1]
	u0Evens := backend.GetG2Slice()
	defer backend.PutG2Slice(u0Evens)
	for i := 0; i < n-1; i++ {
		u0Evens = append(u0Evens, s.U.U0[i].G2)
	}
	Ah, _ := backend.MultiScalarMulG1(s.S.S3[:n-1], vanishScalars)
	Bh, _ := backend.MultiScalarMulG2(u0Evens, vanishScalars)
	lhsH, _ := bk.Pair(Ah, s.S.S1)
	rhsH, _ := bk.Pair(Gt, Bh)
	outH := bk.CtEqGT(lhsH, rhsH)

	return FromBool(allTrue(outA, outB, outC, outD, outE, outF, outG, outH))
}
