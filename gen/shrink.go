// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gen

import "math"

// Shrinker proposes smaller variants of a value.
type Shrinker[T any] interface {
	// Shrink returns a finite list of candidates smaller than [v] in the
	// type's own sense; there is no universal ordering. An empty result
	// means [v] is minimal. Termination of a shrink search built on the
	// candidates is the searcher's concern, not the shrinker's.
	Shrink(v T) []T
}

// ShrinkerFunc adapts a function to the Shrinker interface.
type ShrinkerFunc[T any] func(T) []T

func (f ShrinkerFunc[T]) Shrink(v T) []T {
	return f(v)
}

// ShrinkUint64 returns the shrinker for unsigned words: zero first, then
// candidates converging on the input by halving the remaining distance.
func ShrinkUint64() Shrinker[uint64] {
	return ShrinkerFunc[uint64](func(v uint64) []uint64 {
		var candidates []uint64
		for i := v; i != 0; i /= 2 {
			candidates = append(candidates, v-i)
		}
		return candidates
	})
}

// ShrinkInt64 returns the shrinker for signed words. A negative input
// first proposes its negation, then both signs converge on the input by
// halving the remaining distance to zero.
func ShrinkInt64() Shrinker[int64] {
	return ShrinkerFunc[int64](func(v int64) []int64 {
		var candidates []int64
		if v < 0 && v != math.MinInt64 {
			candidates = append(candidates, -v)
		}
		for i := v; i != 0; i /= 2 {
			candidates = append(candidates, v-i)
		}
		return candidates
	})
}

// ShrinkBool returns the shrinker for booleans: true shrinks to false,
// false is minimal.
func ShrinkBool() Shrinker[bool] {
	return ShrinkerFunc[bool](func(v bool) []bool {
		if v {
			return []bool{false}
		}
		return nil
	})
}
