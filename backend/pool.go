package backend

import (
	"math/big"
	"sync"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Pool provides a memory pool for the scalar and point temporaries
// that the batched verifier (ceremony.Verify's per-round scalar vector
// and its chain/scaling/specialisation point slices) and the SRS
// update path (srs.SetupWithTrapdoor and UpdatePhase1's S2/S3 point
// slices) allocate in bulk, one *big.Int or G1Affine/G2Affine per
// transcript entry per run. Reduces GC pressure on those aggregate-
// heavy reduction paths, the way the default-pool-singleton convention
// does for the rest of this codebase's hot paths.
type Pool struct {
	bigIntPool      sync.Pool
	scalarSlicePool sync.Pool
	g1SlicePool     sync.Pool
	g2SlicePool     sync.Pool
}

// NewPool creates a new object pool.
func NewPool() *Pool {
	return &Pool{
		bigIntPool: sync.Pool{
			New: func() interface{} { return new(big.Int) },
		},
		scalarSlicePool: sync.Pool{
			New: func() interface{} { return make([]*big.Int, 0, 16) },
		},
		g1SlicePool: sync.Pool{
			New: func() interface{} { return make([]bls12381.G1Affine, 0, 16) },
		},
		g2SlicePool: sync.Pool{
			New: func() interface{} { return make([]bls12381.G2Affine, 0, 16) },
		},
	}
}

// GetBigInt returns a zeroed *big.Int from the pool.
func (p *Pool) GetBigInt() *big.Int {
	v := p.bigIntPool.Get().(*big.Int)
	v.SetInt64(0)
	return v
}

// PutBigInt returns a *big.Int to the pool.
func (p *Pool) PutBigInt(v *big.Int) {
	p.bigIntPool.Put(v)
}

// GetScalarSlice returns an empty, zero-length *big.Int slice with
// spare capacity from the pool.
func (p *Pool) GetScalarSlice() []*big.Int {
	return p.scalarSlicePool.Get().([]*big.Int)[:0]
}

// PutScalarSlice returns a scalar slice to the pool.
func (p *Pool) PutScalarSlice(s []*big.Int) {
	p.scalarSlicePool.Put(s) //nolint:staticcheck // slice header copy is intentional, pool owns capacity only
}

// GetG1Slice returns an empty, zero-length G1Affine slice with spare
// capacity from the pool.
func (p *Pool) GetG1Slice() []bls12381.G1Affine {
	return p.g1SlicePool.Get().([]bls12381.G1Affine)[:0]
}

// PutG1Slice returns a G1Affine slice to the pool.
func (p *Pool) PutG1Slice(s []bls12381.G1Affine) {
	p.g1SlicePool.Put(s)
}

// GetG2Slice returns an empty, zero-length G2Affine slice with spare
// capacity from the pool.
func (p *Pool) GetG2Slice() []bls12381.G2Affine {
	return p.g2SlicePool.Get().([]bls12381.G2Affine)[:0]
}

// PutG2Slice returns a G2Affine slice to the pool.
func (p *Pool) PutG2Slice(s []bls12381.G2Affine) {
	p.g2SlicePool.Put(s)
}

// defaultPool is the package-level pool used by the free functions
// below, mirroring the rest of this codebase's default-pool
// singleton plus wrapper-function convention.
var defaultPool = NewPool()

// GetBigInt returns a zeroed *big.Int from the default pool.
func GetBigInt() *big.Int { return defaultPool.GetBigInt() }

// PutBigInt returns a *big.Int to the default pool.
func PutBigInt(v *big.Int) { defaultPool.PutBigInt(v) }

// GetScalarSlice returns an empty scalar slice from the default pool.
func GetScalarSlice() []*big.Int { return defaultPool.GetScalarSlice() }

// PutScalarSlice returns a scalar slice to the default pool.
func PutScalarSlice(s []*big.Int) { defaultPool.PutScalarSlice(s) }

// GetG1Slice returns an empty G1Affine slice from the default pool.
func GetG1Slice() []bls12381.G1Affine { return defaultPool.GetG1Slice() }

// PutG1Slice returns a G1Affine slice to the default pool.
func PutG1Slice(s []bls12381.G1Affine) { defaultPool.PutG1Slice(s) }

// GetG2Slice returns an empty G2Affine slice from the default pool.
func GetG2Slice() []bls12381.G2Affine { return defaultPool.GetG2Slice() }

// PutG2Slice returns a G2Affine slice to the default pool.
func PutG2Slice(s []bls12381.G2Affine) { defaultPool.PutG2Slice(s) }
