package qap

import "math/big"

// Univariate is a dense univariate polynomial over the BLS12-381
// scalar field, stored low-degree-coefficient first. Its degree is
// tracked independently of len(coeffs) because a polynomial created
// from coefficients with a zero leading term must still report the
// degree it was declared with (coeff() zero-pads past the stored
// slice rather than silently reporting a lower degree).
type Univariate struct {
	coeffs []*big.Int
	degree int
}

// NewUnivariate builds a polynomial from its coefficients (low to
// high degree). The declared degree is len(coeffs)-1; trailing zero
// coefficients are kept as supplied.
func NewUnivariate(coeffs []*big.Int) *Univariate {
	cp := make([]*big.Int, len(coeffs))
	copy(cp, coeffs)
	degree := len(cp) - 1
	if degree < 0 {
		degree = 0
	}
	return &Univariate{coeffs: cp, degree: degree}
}

// NewUnivariateFromUint64 is a convenience constructor for tests and
// fixtures.
func NewUnivariateFromUint64(coeffs []uint64) *Univariate {
	cs := make([]*big.Int, len(coeffs))
	for i, c := range coeffs {
		cs[i] = new(big.Int).SetUint64(c)
	}
	return NewUnivariate(cs)
}

// Degree returns the polynomial's declared degree.
func (p *Univariate) Degree() int {
	return p.degree
}

// Coeff returns the coefficient of x^i, zero for any i past the
// stored coefficient slice (covers the case where NewUnivariate was
// given fewer coefficients than its intended degree implies).
func (p *Univariate) Coeff(i int) *big.Int {
	if i < 0 || i >= len(p.coeffs) {
		return big.NewInt(0)
	}
	return p.coeffs[i]
}

// Evaluate computes p(x) via Horner's rule, reducing every
// intermediate value modulo order.
func (p *Univariate) Evaluate(x *big.Int, order *big.Int) *big.Int {
	result := big.NewInt(0)
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		result.Mul(result, x)
		result.Add(result, p.coeffs[i])
		result.Mod(result, order)
	}
	return result
}
