// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"math/big"

	"golang.org/x/exp/constraints"

	"github.com/ava-labs/flurry/seed"
	"github.com/ava-labs/flurry/utils"
)

var (
	_ Interval[bool]     = boolInterval{}
	_ Interval[uint64]   = uintInterval[uint64]{}
	_ Interval[int64]    = intInterval[int64]{}
	_ Interval[*big.Int] = bigInterval{}
)

// Interval is the capability a type needs to be sampled within bounds: a
// total order and a bounded draw.
//
// Leq must be reflexive, transitive, and antisymmetric. SampleRange must
// reach exactly the closed interval: when Leq(low, high), a value r must
// be returned for some source if and only if Leq(low, r) and Leq(r, high).
// The built-in instances reduce interval width to an unsigned offset and
// hand the draw to [SampleWide] or its fixed-width equivalent; a new
// numeric type only needs arithmetic that does the same.
type Interval[T any] interface {
	// Leq reports whether [a] is ordered at or before [b].
	Leq(a, b T) bool

	// SampleRange returns a value in [low, high] drawn approximately
	// uniformly from [src]. Returns ErrInvalidInterval when
	// !Leq(low, high).
	SampleRange(src seed.Source, low, high T) (T, error)
}

// Bool returns the instance for booleans, ordered false before true.
func Bool() Interval[bool] {
	return boolInterval{}
}

type boolInterval struct{}

func (boolInterval) Leq(a, b bool) bool {
	return !a || b
}

func (boolInterval) SampleRange(src seed.Source, low, high bool) (bool, error) {
	switch {
	case low && !high:
		return false, ErrInvalidInterval
	case low == high:
		return low, nil
	default:
		return src.Bits()&1 == 1, nil
	}
}

// Uint returns the instance for an unsigned integer type.
func Uint[T constraints.Unsigned]() Interval[T] {
	return uintInterval[T]{}
}

type uintInterval[T constraints.Unsigned] struct{}

func (uintInterval[T]) Leq(a, b T) bool {
	return a <= b
}

func (uintInterval[T]) SampleRange(src seed.Source, low, high T) (T, error) {
	if low > high {
		return utils.Zero[T](), ErrInvalidInterval
	}
	width := uint64(high) - uint64(low)
	return low + T(wideUint64(src, width)), nil
}

// Int returns the instance for a signed integer type.
func Int[T constraints.Signed]() Interval[T] {
	return intInterval[T]{}
}

type intInterval[T constraints.Signed] struct{}

func (intInterval[T]) Leq(a, b T) bool {
	return a <= b
}

func (intInterval[T]) SampleRange(src seed.Source, low, high T) (T, error) {
	if low > high {
		return utils.Zero[T](), ErrInvalidInterval
	}
	// Width and offset arithmetic stay in two's-complement space, so
	// intervals spanning zero can't overflow.
	width := uint64(int64(high)) - uint64(int64(low))
	v := wideUint64(src, width)
	return T(int64(uint64(int64(low)) + v)), nil
}

// Big returns the instance for arbitrary-precision integers. Restricting
// the bounds restricts the values, so non-negative intervals sample
// naturals.
func Big() Interval[*big.Int] {
	return bigInterval{}
}

type bigInterval struct{}

func (bigInterval) Leq(a, b *big.Int) bool {
	return a.Cmp(b) <= 0
}

func (bigInterval) SampleRange(src seed.Source, low, high *big.Int) (*big.Int, error) {
	if low.Cmp(high) > 0 {
		return nil, ErrInvalidInterval
	}
	bound := new(big.Int).Sub(high, low)
	bound.Add(bound, big.NewInt(1))
	v, err := SampleWide(src, bound)
	if err != nil {
		return nil, err
	}
	return v.Add(v, low), nil
}
