package backend

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/anupsv/snarky-ceremonies/internal/common"
)

// BLS12381 is the production Backend, backed by gnark-crypto's
// ecc/bls12-381 package. It holds no state and is safe for concurrent
// use by any number of goroutines.
type BLS12381 struct{}

// New returns the production BLS12-381 backend.
func New() *BLS12381 {
	return &BLS12381{}
}

var order = common.ScalarFieldOrder

func (BLS12381) ScalarZero() *big.Int { return big.NewInt(0) }
func (BLS12381) ScalarOne() *big.Int  { return big.NewInt(1) }

func (BLS12381) ScalarFromUint64(v uint64) *big.Int {
	return new(big.Int).SetUint64(v)
}

// RandomScalar samples uniformly from [1, order-1] using crypto/rand,
// matching the bound used throughout the rest of this codebase's
// scalar sampling.
func (BLS12381) RandomScalar(reader io.Reader) (*big.Int, error) {
	if reader == nil {
		reader = rand.Reader
	}
	max := new(big.Int).Sub(order, big.NewInt(1))
	n, err := rand.Int(reader, max)
	if err != nil {
		return nil, err
	}
	n.Add(n, big.NewInt(1))
	return n, nil
}

func (BLS12381) ScalarAdd(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Add(a, b), order)
}

func (BLS12381) ScalarMul(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Mul(a, b), order)
}

func (BLS12381) ScalarInv(a *big.Int) *big.Int {
	return new(big.Int).ModInverse(a, order)
}

func (BLS12381) ScalarPow(base *big.Int, exp uint64) *big.Int {
	return new(big.Int).Exp(base, new(big.Int).SetUint64(exp), order)
}

func (BLS12381) G1Zero() bls12381.G1Affine {
	var z bls12381.G1Affine
	return z
}

func (BLS12381) G1Gen() bls12381.G1Affine {
	_, _, g1, _ := bls12381.Generators()
	return g1
}

func (BLS12381) G1Add(a, b bls12381.G1Affine) bls12381.G1Affine {
	var res bls12381.G1Affine
	res.Add(&a, &b)
	return res
}

func (BLS12381) G1ScalarMul(p bls12381.G1Affine, s *big.Int) bls12381.G1Affine {
	var res bls12381.G1Affine
	res.ScalarMultiplication(&p, s)
	return res
}

func (BLS12381) G1InSubgroup(p bls12381.G1Affine) bool {
	return p.IsInSubGroup()
}

func (BLS12381) G1Bytes(p bls12381.G1Affine) []byte {
	b := p.Marshal()
	return b[:]
}

func (BLS12381) G2Zero() bls12381.G2Affine {
	var z bls12381.G2Affine
	return z
}

func (BLS12381) G2Gen() bls12381.G2Affine {
	_, _, _, g2 := bls12381.Generators()
	return g2
}

func (BLS12381) G2Add(a, b bls12381.G2Affine) bls12381.G2Affine {
	var res bls12381.G2Affine
	res.Add(&a, &b)
	return res
}

func (BLS12381) G2ScalarMul(p bls12381.G2Affine, s *big.Int) bls12381.G2Affine {
	var res bls12381.G2Affine
	res.ScalarMultiplication(&p, s)
	return res
}

func (BLS12381) G2InSubgroup(p bls12381.G2Affine) bool {
	return p.IsInSubGroup()
}

func (BLS12381) G2Bytes(p bls12381.G2Affine) []byte {
	b := p.Marshal()
	return b[:]
}

func (BLS12381) Pair(p bls12381.G1Affine, q bls12381.G2Affine) (bls12381.GT, error) {
	return bls12381.Pair([]bls12381.G1Affine{p}, []bls12381.G2Affine{q})
}

func (BLS12381) GTOne() bls12381.GT {
	var one bls12381.GT
	one.SetOne()
	return one
}

func (BLS12381) GTMul(a, b bls12381.GT) bls12381.GT {
	var res bls12381.GT
	res.Mul(&a, &b)
	return res
}

func (b BLS12381) GTEqual(a, c bls12381.GT) bool {
	return subtle.ConstantTimeCompare(a.Marshal(), c.Marshal()) == 1
}

// HashG1 implements the hash-to-scalar-then-multiply-generator
// construction: SHA-512(msg) -> interpret as a big-endian integer ->
// reduce mod the scalar field order -> multiply the G1 generator.
func (b BLS12381) HashG1(msg []byte) bls12381.G1Affine {
	digest := sha512.Sum512(msg)
	factor := new(big.Int).Mod(new(big.Int).SetBytes(digest[:]), order)
	return b.G1ScalarMul(b.G1Gen(), factor)
}

func (BLS12381) CtEqScalar(a, c *big.Int) bool {
	abuf := make([]byte, 32)
	cbuf := make([]byte, 32)
	a.FillBytes(abuf)
	c.FillBytes(cbuf)
	return subtle.ConstantTimeCompare(abuf, cbuf) == 1
}

func (BLS12381) CtEqG1(a, c bls12381.G1Affine) bool {
	ab := a.Marshal()
	cb := c.Marshal()
	return subtle.ConstantTimeCompare(ab[:], cb[:]) == 1
}

func (BLS12381) CtEqG2(a, c bls12381.G2Affine) bool {
	ab := a.Marshal()
	cb := c.Marshal()
	return subtle.ConstantTimeCompare(ab[:], cb[:]) == 1
}

func (b BLS12381) CtEqGT(a, c bls12381.GT) bool {
	return b.GTEqual(a, c)
}
