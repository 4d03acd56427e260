package qap

import (
	"fmt"
	"math/big"
)

// ShapeError is the tagged error raised at QAP construction. The
// numeric Code mirrors the sub-codes used by this repository's
// original Rust construction (circuits/src/lib.rs) and is propagated
// all the way to the CLI exit status.
type ShapeError struct {
	Code int
	Msg  string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("qap: shape error %d: %s", e.Code, e.Msg)
}

// Error codes for ShapeError.Code.
const (
	ErrCodeUnequalLengths     = 101
	ErrCodePublicInputTooLong = 102
	ErrCodeDegreeMismatch     = 103
)

func errUnequalLengths(msg string) error {
	return &ShapeError{Code: ErrCodeUnequalLengths, Msg: msg}
}

func errPublicInputTooLong(msg string) error {
	return &ShapeError{Code: ErrCodePublicInputTooLong, Msg: msg}
}

func errDegreeMismatch(msg string) error {
	return &ShapeError{Code: ErrCodeDegreeMismatch, Msg: msg}
}

// QAP is the constraint-system tuple (m, n, l, u, v, w, t) the
// ceremony engine specialises the universal SRS against. It is
// immutable once created.
type QAP struct {
	m, n, l int
	u, v, w []*Univariate
	t       *Univariate
}

// Create validates and builds a QAP from its dimensions and
// polynomial collections. u, v, w must each have m+1 entries of
// degree exactly n-1; l+1 must not exceed m.
func Create(m, n, l int, u, v, w []*Univariate, t *Univariate) (*QAP, error) {
	if len(u) != len(v) || len(v) != len(w) || len(u) != m+1 {
		return nil, errUnequalLengths(fmt.Sprintf(
			"expected m+1=%d polynomials in u, v, w; got |u|=%d |v|=%d |w|=%d",
			m+1, len(u), len(v), len(w)))
	}

	if l+1 > m {
		return nil, errPublicInputTooLong(fmt.Sprintf("l+1=%d exceeds m=%d", l+1, m))
	}

	for name, polys := range map[string][]*Univariate{"u": u, "v": v, "w": w} {
		for i, p := range polys {
			if p.Degree() != n-1 {
				return nil, errDegreeMismatch(fmt.Sprintf(
					"%s[%d] has degree %d, want %d", name, i, p.Degree(), n-1))
			}
		}
	}
	if t.Degree() != n {
		return nil, errDegreeMismatch(fmt.Sprintf("t has degree %d, want %d", t.Degree(), n))
	}

	return &QAP{m: m, n: n, l: l, u: u, v: v, w: w, t: t}, nil
}

// CreateDefault builds a fixed, deterministic QAP of the given shape,
// useful for ceremony demos and tests where the concrete circuit does
// not matter, only its dimensions.
func CreateDefault(m, n, l int) (*QAP, error) {
	mkPoly := func(degree int, seed int) *Univariate {
		coeffs := make([]*big.Int, degree+1)
		for i := range coeffs {
			coeffs[i] = big.NewInt(int64(seed + i + 1))
		}
		return NewUnivariate(coeffs)
	}

	u := make([]*Univariate, m+1)
	v := make([]*Univariate, m+1)
	w := make([]*Univariate, m+1)
	for i := 0; i <= m; i++ {
		u[i] = mkPoly(n-1, i)
		v[i] = mkPoly(n-1, i+1)
		w[i] = mkPoly(n-1, i+2)
	}
	t := mkPoly(n, 1)

	return Create(m, n, l, u, v, w, t)
}

// Shape returns (m, n, l).
func (q *QAP) Shape() (int, int, int) {
	return q.m, q.n, q.l
}

// Collections returns the (u, v, w, t) polynomial collections.
func (q *QAP) Collections() ([]*Univariate, []*Univariate, []*Univariate, *Univariate) {
	return q.u, q.v, q.w, q.t
}
