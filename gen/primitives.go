// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gen

import (
	"math"

	"github.com/ava-labs/flurry/sampler"
	"github.com/ava-labs/flurry/seed"
)

// Uint64n returns the sized generator for unsigned words: at budget
// [size] it draws uniformly from [0, size]. Its metric is [Uint64Metric].
func Uint64n() SizedGenerator[uint64] {
	return SizedGeneratorFunc[uint64](func(src seed.Source, size uint64) uint64 {
		// 0 <= size always holds, so the draw can't fail.
		v, _ := sampler.Uint[uint64]().SampleRange(src, 0, size)
		return v
	})
}

// Uint64Metric returns the metric matching [Uint64n]: the value itself.
func Uint64Metric() SizeMetric[uint64] {
	return SizeMetricFunc[uint64](func(v uint64) uint64 {
		return v
	})
}

// Int64n returns the sized generator for signed words: at budget [size]
// it draws uniformly from [-size, size], saturating at the int64 extremes
// when the budget exceeds them. Its metric is [Int64Metric].
func Int64n() SizedGenerator[int64] {
	return SizedGeneratorFunc[int64](func(src seed.Source, size uint64) int64 {
		low, high := int64Interval(size)
		v, _ := sampler.Int[int64]().SampleRange(src, low, high)
		return v
	})
}

// int64Interval clamps [-size, size] to the representable range.
func int64Interval(size uint64) (low, high int64) {
	if size > math.MaxInt64 {
		return math.MinInt64, math.MaxInt64
	}
	high = int64(size)
	return -high, high
}

// Int64Metric returns the metric matching [Int64n]: the magnitude of the
// value.
func Int64Metric() SizeMetric[int64] {
	return SizeMetricFunc[int64](func(v int64) uint64 {
		if v < 0 {
			return -uint64(v)
		}
		return uint64(v)
	})
}

// Bool returns the size-independent boolean generator: a fair coin.
func Bool() Generator[bool] {
	return GeneratorFunc[bool](func(src seed.Source) bool {
		v, _ := sampler.Bool().SampleRange(src, false, true)
		return v
	})
}

// BoolSized returns the sized boolean generator: budget zero admits only
// false, any positive budget admits both values. Its metric is
// [BoolMetric].
func BoolSized() SizedGenerator[bool] {
	return SizedGeneratorFunc[bool](func(src seed.Source, size uint64) bool {
		if size == 0 {
			return false
		}
		v, _ := sampler.Bool().SampleRange(src, false, true)
		return v
	})
}

// BoolMetric returns the metric matching [BoolSized]: false is zero sized
// and true has size one.
func BoolMetric() SizeMetric[bool] {
	return SizeMetricFunc[bool](func(v bool) uint64 {
		if v {
			return 1
		}
		return 0
	})
}
