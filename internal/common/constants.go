package common

import (
	"errors"
	"math/big"
)

// ScalarFieldOrder is the order r of the BLS12-381 scalar field, shared
// by every package that needs to reduce or bound a sampled scalar
// without importing gnark-crypto's fr package directly.
var ScalarFieldOrder, _ = new(big.Int).SetString("73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001", 16)

// ErrMismatchedLengths is the sentinel error shared by more than one
// package for mismatched-length inputs. Module-specific shape and
// proof errors live next to the type they describe.
var ErrMismatchedLengths = errors.New("mismatched lengths")