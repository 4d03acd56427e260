package srs

import (
	"errors"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/anupsv/snarky-ceremonies/backend"
	"github.com/anupsv/snarky-ceremonies/internal/common"
	"github.com/anupsv/snarky-ceremonies/qap"
)

// ErrShape is returned by CheckUErr/CheckSErr when a length or
// group-membership invariant does not hold.
var ErrShape = errors.New("srs: shape or group-membership check failed")

// U0Entry is one entry of the universal powers-of-x sequence: (x^i*G,
// x^i*H).
type U0Entry struct {
	G1 bls12381.G1Affine
	G2 bls12381.G2Affine
}

// U1Entry is one entry of the (a, b)-scaled powers-of-x sequence:
// (a*x^i*G, b*x^i*G, a*x^i*H, b*x^i*H).
type U1Entry struct {
	AG bls12381.G1Affine
	BG bls12381.G1Affine
	AH bls12381.G2Affine
	BH bls12381.G2Affine
}

// U is the universal component of the SRS.
type U struct {
	U0 []U0Entry
	U1 []U1Entry
}

// S is the circuit-specific component of the SRS.
type S struct {
	S0 bls12381.G1Affine
	S1 bls12381.G2Affine
	S2 []bls12381.G1Affine
	S3 []bls12381.G1Affine
}

// SRS is the pair (U, S). The ceremony engine exclusively owns the
// mutable SRS during a run's updates; verifiers take a shared
// read-only view.
type SRS struct {
	U U
	S S
}

// Phase1Witness is the per-contributor witness consumed by a phase-1
// update: (a', b', x').
type Phase1Witness struct {
	A, B, X *big.Int
}

// Phase2Witness is the per-contributor witness consumed by a phase-2
// update: (d').
type Phase2Witness struct {
	D *big.Int
}

// Setup samples a fresh trapdoor and builds the initial SRS for qap.
func Setup(bk backend.Backend, q *qap.QAP, reader io.Reader) (*SRS, error) {
	td, err := RandomTrapdoor(bk, reader)
	if err != nil {
		return nil, err
	}
	return SetupWithTrapdoor(bk, q, td)
}

// SetupWithTrapdoor builds the initial SRS from a caller-supplied
// trapdoor (e.g. the unit trapdoor for tests, or a fixed trapdoor for
// deterministic scenarios) and destroys it before returning.
func SetupWithTrapdoor(bk backend.Backend, q *qap.QAP, td *Trapdoor) (*SRS, error) {
	defer td.Destroy()

	_, n, _ := q.Shape()
	G := bk.G1Gen()
	H := bk.G2Gen()

	u0 := make([]U0Entry, 2*n-1)
	xi := bk.ScalarOne()
	for i := 0; i < 2*n-1; i++ {
		if i > 0 {
			xi = bk.ScalarMul(xi, td.x)
		}
		u0[i] = U0Entry{G1: bk.G1ScalarMul(G, xi), G2: bk.G2ScalarMul(H, xi)}
	}

	u1 := make([]U1Entry, n)
	xi = bk.ScalarOne()
	for i := 0; i < n; i++ {
		if i > 0 {
			xi = bk.ScalarMul(xi, td.x)
		}
		axi := bk.ScalarMul(td.a, xi)
		bxi := bk.ScalarMul(td.b, xi)
		u1[i] = U1Entry{
			AG: bk.G1ScalarMul(G, axi),
			BG: bk.G1ScalarMul(G, bxi),
			AH: bk.G2ScalarMul(H, axi),
			BH: bk.G2ScalarMul(H, bxi),
		}
	}

	srsU := U{U0: u0, U1: u1}

	dInv := bk.ScalarInv(td.d)
	u, v, w, t := q.Collections()
	m, _, l := q.Shape()

	// s2/s3 borrow spare capacity from the pool, the way the batched
	// verifier's aggregate slices do; ownership transfers to the
	// returned SRS, so unlike a scratch temporary they are never put
	// back.
	s2 := backend.GetG1Slice()
	for i := l + 1; i <= m; i++ {
		val := bk.ScalarAdd(
			bk.ScalarMul(td.b, u[i].Evaluate(td.x, scalarOrder(bk))),
			bk.ScalarAdd(
				bk.ScalarMul(td.a, v[i].Evaluate(td.x, scalarOrder(bk))),
				w[i].Evaluate(td.x, scalarOrder(bk)),
			),
		)
		s2 = append(s2, bk.G1ScalarMul(G, bk.ScalarMul(dInv, val)))
	}

	s3 := backend.GetG1Slice()
	xi = bk.ScalarOne()
	for i := 0; i < n-1; i++ {
		if i > 0 {
			xi = bk.ScalarMul(xi, td.x)
		}
		val := bk.ScalarMul(xi, t.Evaluate(td.x, scalarOrder(bk)))
		s3 = append(s3, bk.G1ScalarMul(G, bk.ScalarMul(dInv, val)))
	}

	srsS := S{
		S0: bk.G1ScalarMul(G, td.d),
		S1: bk.G2ScalarMul(H, td.d),
		S2: s2,
		S3: s3,
	}

	return &SRS{U: srsU, S: srsS}, nil
}

// scalarOrder is the modulus polynomial evaluation reduces against.
func scalarOrder(backend.Backend) *big.Int {
	return common.ScalarFieldOrder
}

// CheckU returns true iff |U0| = 2n-1, |U1| = n, and every contained
// point lies in its correct subgroup.
func CheckU(bk backend.Backend, q *qap.QAP, u U) bool {
	_, n, _ := q.Shape()
	if len(u.U0) != 2*n-1 || len(u.U1) != n {
		return false
	}
	for _, e := range u.U0 {
		if !bk.G1InSubgroup(e.G1) || !bk.G2InSubgroup(e.G2) {
			return false
		}
	}
	for _, e := range u.U1 {
		if !bk.G1InSubgroup(e.AG) || !bk.G1InSubgroup(e.BG) ||
			!bk.G2InSubgroup(e.AH) || !bk.G2InSubgroup(e.BH) {
			return false
		}
	}
	return true
}

// CheckS returns true iff |S2| = m-l, |S3| = n-1, and S.0, S.1, and
// every S2[i], S3[i] lie in their correct subgroups.
func CheckS(bk backend.Backend, q *qap.QAP, s S) bool {
	m, n, l := q.Shape()
	if len(s.S2) != m-l || len(s.S3) != n-1 {
		return false
	}
	if !bk.G1InSubgroup(s.S0) || !bk.G2InSubgroup(s.S1) {
		return false
	}
	for _, p := range s.S2 {
		if !bk.G1InSubgroup(p) {
			return false
		}
	}
	for _, p := range s.S3 {
		if !bk.G1InSubgroup(p) {
			return false
		}
	}
	return true
}

// CheckU reports whether the SRS's universal component satisfies
// CheckU for q.
func (srs *SRS) CheckU(bk backend.Backend, q *qap.QAP) bool {
	return CheckU(bk, q, srs.U)
}

// CheckS reports whether the SRS's circuit-specific component
// satisfies CheckS for q.
func (srs *SRS) CheckS(bk backend.Backend, q *qap.QAP) bool {
	return CheckS(bk, q, srs.S)
}

// CheckUErr is CheckU's error-returning variant, for callers that need
// ErrShape to propagate through their own error-handling path (e.g.
// for structured logging) rather than a bare bool.
func (srs *SRS) CheckUErr(bk backend.Backend, q *qap.QAP) error {
	if !srs.CheckU(bk, q) {
		return ErrShape
	}
	return nil
}

// CheckSErr is CheckS's error-returning variant, for callers that need
// ErrShape to propagate through their own error-handling path (e.g.
// for structured logging) rather than a bare bool.
func (srs *SRS) CheckSErr(bk backend.Backend, q *qap.QAP) error {
	if !srs.CheckS(bk, q) {
		return ErrShape
	}
	return nil
}

// UpdatePhase1 rewrites U in place with fresh scalars (a', b', x'),
// then re-specialises S from the new U, unmasked (S.0 = G, S.1 = H).
// The unmasked specialisation is overwritten by any subsequent
// UpdatePhase2 call, which re-applies a fresh d' mask.
func (srs *SRS) UpdatePhase1(bk backend.Backend, q *qap.QAP, w Phase1Witness) {
	n := len(srs.U.U1)

	for i := range srs.U.U0 {
		xi := bk.ScalarPow(w.X, uint64(i))
		srs.U.U0[i] = U0Entry{
			G1: bk.G1ScalarMul(srs.U.U0[i].G1, xi),
			G2: bk.G2ScalarMul(srs.U.U0[i].G2, xi),
		}
	}
	for i := range srs.U.U1 {
		xi := bk.ScalarPow(w.X, uint64(i))
		srs.U.U1[i] = U1Entry{
			AG: bk.G1ScalarMul(srs.U.U1[i].AG, bk.ScalarMul(w.A, xi)),
			BG: bk.G1ScalarMul(srs.U.U1[i].BG, bk.ScalarMul(w.B, xi)),
			AH: bk.G2ScalarMul(srs.U.U1[i].AH, bk.ScalarMul(w.A, xi)),
			BH: bk.G2ScalarMul(srs.U.U1[i].BH, bk.ScalarMul(w.B, xi)),
		}
	}

	u, v, wPoly, t := q.Collections()
	m, _, l := q.Shape()

	s2 := backend.GetG1Slice()
	for i := l + 1; i <= m; i++ {
		acc := bk.G1Zero()
		for j := 0; j < n; j++ {
			term := bk.G1Add(
				bk.G1ScalarMul(srs.U.U1[j].BG, u[i].Coeff(j)),
				bk.G1Add(
					bk.G1ScalarMul(srs.U.U1[j].AG, v[i].Coeff(j)),
					bk.G1ScalarMul(srs.U.U0[j].G1, wPoly[i].Coeff(j)),
				),
			)
			acc = bk.G1Add(acc, term)
		}
		s2 = append(s2, acc)
	}

	s3 := backend.GetG1Slice()
	for i := 0; i < n-1; i++ {
		acc := bk.G1Zero()
		for j := 0; j <= n; j++ {
			if i+j >= len(srs.U.U0) {
				continue
			}
			acc = bk.G1Add(acc, bk.G1ScalarMul(srs.U.U0[i+j].G1, t.Coeff(j)))
		}
		s3 = append(s3, acc)
	}

	srs.S = S{S0: bk.G1Gen(), S1: bk.G2Gen(), S2: s2, S3: s3}
}

// UpdatePhase2 re-masks S in place with a fresh scalar d': S.0 ←
// d'*S.0, S.1 ← d'*S.1, S2[i] ← d'^-1*S2[i], S3[i] ← d'^-1*S3[i]. U is
// left unchanged.
func (srs *SRS) UpdatePhase2(bk backend.Backend, w Phase2Witness) {
	dInv := bk.ScalarInv(w.D)

	srs.S.S0 = bk.G1ScalarMul(srs.S.S0, w.D)
	srs.S.S1 = bk.G2ScalarMul(srs.S.S1, w.D)
	for i := range srs.S.S2 {
		srs.S.S2[i] = bk.G1ScalarMul(srs.S.S2[i], dInv)
	}
	for i := range srs.S.S3 {
		srs.S.S3[i] = bk.G1ScalarMul(srs.S.S3[i], dInv)
	}
}
