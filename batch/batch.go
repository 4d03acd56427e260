package batch

import (
	"errors"
	"math/big"

	"github.com/anupsv/snarky-ceremonies/backend"
	"github.com/anupsv/snarky-ceremonies/rho"
	"github.com/anupsv/snarky-ceremonies/sigma"
	"github.com/anupsv/snarky-ceremonies/srs"
)

// ErrBatchFailure is returned when any contained Rho proof fails, or
// a terminal aux-equals-SRS / aux-non-zero check fails.
var ErrBatchFailure = errors.New("batch: transcript verification failed")

// Phase selects which half of the transcript an operation applies to.
type Phase int

const (
	Phase1 Phase = 1
	Phase2 Phase = 2
)

// Phase1Triple bundles the three Rho proofs one phase-1 contributor
// produces, one per updated base: U1[0].AG, U1[0].BG, and U0[1].G1, in
// that order.
type Phase1Triple [3]rho.Proof

// BatchProof is the ordered, append-only transcript of Rho proofs for
// both phases of one ceremony.
type BatchProof struct {
	Phase1 []Phase1Triple
	Phase2 []rho.Proof
}

// New returns an empty batch transcript.
func New() *BatchProof {
	return &BatchProof{}
}

// AppendPhase1 appends one contributor's phase-1 triple.
func (bp *BatchProof) AppendPhase1(t Phase1Triple) {
	bp.Phase1 = append(bp.Phase1, t)
}

// AppendPhase2 appends one contributor's phase-2 proof.
func (bp *BatchProof) AppendPhase2(p rho.Proof) {
	bp.Phase2 = append(bp.Phase2, p)
}

// VerifyNaive verifies every proof in the given phase's list against
// its predecessor, then checks that the transcript's last aux values
// tie back into the current SRS.
func (bp *BatchProof) VerifyNaive(bk backend.Backend, s *srs.SRS, phase Phase) (bool, error) {
	switch phase {
	case Phase1:
		return bp.verifyNaivePhase1(bk, s)
	case Phase2:
		return bp.verifyNaivePhase2(bk, s)
	default:
		return false, ErrBatchFailure
	}
}

func (bp *BatchProof) verifyNaivePhase1(bk backend.Backend, s *srs.SRS) (bool, error) {
	ok := true
	for i, triple := range bp.Phase1 {
		for k := 0; k < 3; k++ {
			var prev *rho.Proof
			if i > 0 {
				p := bp.Phase1[i-1][k]
				prev = &p
			}
			if err := triple[k].Verify(bk, prev); err != nil {
				ok = false
			}
		}
	}

	n := len(bp.Phase1)
	if n > 0 {
		last := bp.Phase1[n-1]
		zero := bk.G1Zero()
		ok = ok &&
			bk.CtEqG1(s.U.U1[0].AG, last[0].Aux) && !bk.CtEqG1(last[0].Aux, zero) &&
			bk.CtEqG1(s.U.U1[0].BG, last[1].Aux) && !bk.CtEqG1(last[1].Aux, zero) &&
			bk.CtEqG1(s.U.U0[1].G1, last[2].Aux) && !bk.CtEqG1(last[2].Aux, zero)
	}

	if !ok {
		return false, ErrBatchFailure
	}
	return true, nil
}

func (bp *BatchProof) verifyNaivePhase2(bk backend.Backend, s *srs.SRS) (bool, error) {
	ok := true
	for i, p := range bp.Phase2 {
		var prev *rho.Proof
		if i > 0 {
			pr := bp.Phase2[i-1]
			prev = &pr
		}
		if err := p.Verify(bk, prev); err != nil {
			ok = false
		}
	}

	n := len(bp.Phase2)
	if n > 0 {
		last := bp.Phase2[n-1]
		zero := bk.G1Zero()
		ok = ok && bk.CtEqG1(s.S.S0, last.Aux) && !bk.CtEqG1(last.Aux, zero)

		lhs, err1 := bk.Pair(s.S.S0, bk.G2Gen())
		rhs, err2 := bk.Pair(bk.G1Gen(), s.S.S1)
		ok = ok && err1 == nil && err2 == nil && bk.CtEqGT(lhs, rhs)
	}

	if !ok {
		return false, ErrBatchFailure
	}
	return true, nil
}

// Verify is the batched variant: it samples no randomness itself
// (the caller supplies fresh scalars s, one per transcript entry, so
// that the same scalars can be reused across the several aggregate
// checks the full ceremony verifier performs) and checks the whole
// phase's transcript with a constant number of pairing equations.
func (bp *BatchProof) Verify(bk backend.Backend, s *srs.SRS, scalars []*big.Int, phase Phase) (bool, error) {
	switch phase {
	case Phase1:
		return bp.verifyBatchedPhase1(bk, s, scalars)
	case Phase2:
		return bp.verifyBatchedPhase2(bk, s, scalars)
	default:
		return false, ErrBatchFailure
	}
}

func (bp *BatchProof) verifyBatchedPhase1(bk backend.Backend, s *srs.SRS, scalars []*big.Int) (bool, error) {
	n := len(bp.Phase1)
	if n == 0 {
		return true, nil
	}
	if len(scalars) < n {
		return false, ErrBatchFailure
	}

	ok := true
	for k := 0; k < 3; k++ {
		col := make([]rho.Proof, n)
		for i := range bp.Phase1 {
			col[i] = bp.Phase1[i][k]
		}
		if !verifyChainAndSigmaBatched(bk, col, scalars) {
			ok = false
		}
	}

	last := bp.Phase1[n-1]
	zero := bk.G1Zero()
	ok = ok &&
		bk.CtEqG1(s.U.U1[0].AG, last[0].Aux) && !bk.CtEqG1(last[0].Aux, zero) &&
		bk.CtEqG1(s.U.U1[0].BG, last[1].Aux) && !bk.CtEqG1(last[1].Aux, zero) &&
		bk.CtEqG1(s.U.U0[1].G1, last[2].Aux) && !bk.CtEqG1(last[2].Aux, zero)

	if !ok {
		return false, ErrBatchFailure
	}
	return true, nil
}

func (bp *BatchProof) verifyBatchedPhase2(bk backend.Backend, s *srs.SRS, scalars []*big.Int) (bool, error) {
	n := len(bp.Phase2)
	if n == 0 {
		return true, nil
	}
	if len(scalars) < n {
		return false, ErrBatchFailure
	}

	ok := verifyChainAndSigmaBatched(bk, bp.Phase2, scalars)

	last := bp.Phase2[n-1]
	zero := bk.G1Zero()
	ok = ok && bk.CtEqG1(s.S.S0, last.Aux) && !bk.CtEqG1(last.Aux, zero)

	lhs, err1 := bk.Pair(s.S.S0, bk.G2Gen())
	rhs, err2 := bk.Pair(bk.G1Gen(), s.S.S1)
	ok = ok && err1 == nil && err2 == nil && bk.CtEqGT(lhs, rhs)

	if !ok {
		return false, ErrBatchFailure
	}
	return true, nil
}

// verifyChainAndSigmaBatched checks one transcript's chain and sigma
// consistency with a constant number of pairing equations, following
// §4.5's batched-verify formulas:
//
//	chain:  A = sum_{k=1}^{n-1} s[k]*proofs[k].Aux
//	        B = prod_{k=1}^{n-1} e(s[k]*proofs[k-1].Aux, proofs[k].Commitment.B)
//	        require e(A, H) = B
//	sigma:  C = sum_k s[k]*proofs[k].Commitment.A
//	        D = sum_k s[k]*proofs[k].Commitment.B
//	        E = sum_k s[k]*proofs[k].Sigma
//	        F = prod_k e(s[k]*RndOracle(proofs[k].Commitment), proofs[k].Commitment.B)
//	        require e(C, H) = e(G, D) and e(E, H) = F
func verifyChainAndSigmaBatched(bk backend.Backend, proofs []rho.Proof, scalars []*big.Int) bool {
	G := bk.G1Gen()
	H := bk.G2Gen()

	chainOK := true
	if len(proofs) >= 2 {
		A := bk.G1Zero()
		B := bk.GTOne()
		for k := 1; k < len(proofs); k++ {
			A = bk.G1Add(A, bk.G1ScalarMul(proofs[k].Aux, scalars[k]))
			scaledAux := bk.G1ScalarMul(proofs[k-1].Aux, scalars[k])
			pe, err := bk.Pair(scaledAux, proofs[k].Commitment.B)
			if err != nil {
				return false
			}
			B = bk.GTMul(B, pe)
		}
		lhs, err := bk.Pair(A, H)
		chainOK = err == nil && bk.CtEqGT(lhs, B)
	}

	C := bk.G1Zero()
	D := bk.G2Zero()
	E := bk.G1Zero()
	F := bk.GTOne()
	for k, p := range proofs {
		C = bk.G1Add(C, bk.G1ScalarMul(p.Commitment.A, scalars[k]))
		D = bk.G2Add(D, bk.G2ScalarMul(p.Commitment.B, scalars[k]))
		E = bk.G1Add(E, bk.G1ScalarMul(p.Sigma, scalars[k]))

		R := sigma.RndOracle(bk, p.Commitment)
		scaledR := bk.G1ScalarMul(R, scalars[k])
		pe, err := bk.Pair(scaledR, p.Commitment.B)
		if err != nil {
			return false
		}
		F = bk.GTMul(F, pe)
	}

	lhsC, err1 := bk.Pair(C, H)
	rhsC, err2 := bk.Pair(G, D)
	sigmaOK1 := err1 == nil && err2 == nil && bk.CtEqGT(lhsC, rhsC)

	lhsE, err3 := bk.Pair(E, H)
	sigmaOK2 := err3 == nil && bk.CtEqGT(lhsE, F)

	return chainOK && sigmaOK1 && sigmaOK2
}
