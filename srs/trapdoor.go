package srs

import (
	"io"
	"math/big"

	"github.com/anupsv/snarky-ceremonies/backend"
)

// Trapdoor is the toxic waste (a, b, d, x) sampled to produce the
// initial SRS. Outside of tests it must be sampled, used exactly once
// by Setup, and discarded; it must never cross a trust boundary or be
// persisted. The fields are unexported and the type carries no way to
// copy out the scalars short of reflection, and Destroy zeroes them in
// place once Setup has consumed them. Unlike the original Rust source,
// Go cannot deny Copy on a struct; callers must simply never pass a
// *Trapdoor anywhere but Setup.
type Trapdoor struct {
	a, b, d, x *big.Int
}

// NewUnitTrapdoor returns the all-ones trapdoor (1, 1, 1, 1), used
// only for tests and debug ceremonies where the resulting SRS is
// known to be insecure but must still be internally consistent.
func NewUnitTrapdoor(bk backend.Backend) *Trapdoor {
	one := bk.ScalarOne()
	return &Trapdoor{a: one, b: one, d: one, x: one}
}

// NewTrapdoorFromUint64 builds a fixed trapdoor from known scalars,
// used by deterministic test scenarios (e.g. spec scenario S1's
// (1, 2, 3, 4)).
func NewTrapdoorFromUint64(bk backend.Backend, a, b, d, x uint64) *Trapdoor {
	return &Trapdoor{
		a: bk.ScalarFromUint64(a),
		b: bk.ScalarFromUint64(b),
		d: bk.ScalarFromUint64(d),
		x: bk.ScalarFromUint64(x),
	}
}

// RandomTrapdoor samples (a, b, d, x) uniformly at random.
func RandomTrapdoor(bk backend.Backend, reader io.Reader) (*Trapdoor, error) {
	a, err := bk.RandomScalar(reader)
	if err != nil {
		return nil, err
	}
	b, err := bk.RandomScalar(reader)
	if err != nil {
		return nil, err
	}
	d, err := bk.RandomScalar(reader)
	if err != nil {
		return nil, err
	}
	x, err := bk.RandomScalar(reader)
	if err != nil {
		return nil, err
	}
	return &Trapdoor{a: a, b: b, d: d, x: x}, nil
}

// Destroy zeroes every scalar in place. Called by Setup immediately
// after deriving the initial SRS; calling it again is a harmless
// no-op.
func (t *Trapdoor) Destroy() {
	zero := big.NewInt(0)
	if t.a != nil {
		t.a.Set(zero)
	}
	if t.b != nil {
		t.b.Set(zero)
	}
	if t.d != nil {
		t.d.Set(zero)
	}
	if t.x != nil {
		t.x.Set(zero)
	}
}
