// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gen

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/flurry/seed"
)

func TestUint64nWithinBudget(t *testing.T) {
	metric := Uint64Metric()
	properties := gopter.NewProperties(nil)

	properties.Property("generated values measure at or under the budget", prop.ForAll(
		func(s int64, size uint64) string {
			v := Uint64n().GenerateSized(seed.NewRootSource(s), size)
			if metric.SizeOf(v) > size {
				return "value overflows the budget"
			}
			return ""
		},
		gen.Int64(),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

func TestUint64nBudgetZero(t *testing.T) {
	require := require.New(t)

	for s := int64(0); s < 100; s++ {
		require.Zero(Uint64n().GenerateSized(seed.NewRootSource(s), 0))
	}
}

func TestUint64nCoverage(t *testing.T) {
	require := require.New(t)

	const size = 8
	seen := make(map[uint64]struct{}, size+1)
	root := seed.NewRootSource(20240817)
	for i := 0; i < 2000; i++ {
		var src seed.Source
		src, root = root.Split()
		seen[Uint64n().GenerateSized(src, size)] = struct{}{}
	}

	for v := uint64(0); v <= size; v++ {
		require.Contains(seen, v)
	}
}

func TestInt64nWithinBudget(t *testing.T) {
	metric := Int64Metric()
	properties := gopter.NewProperties(nil)

	properties.Property("generated magnitudes stay within the budget", prop.ForAll(
		func(s int64, size uint64) string {
			v := Int64n().GenerateSized(seed.NewRootSource(s), size)
			if metric.SizeOf(v) > size {
				return "magnitude overflows the budget"
			}
			return ""
		},
		gen.Int64(),
		gen.UInt64Range(0, 100_000),
	))

	properties.TestingRun(t)
}

func TestInt64nBudgetZero(t *testing.T) {
	require := require.New(t)

	for s := int64(0); s < 100; s++ {
		require.Zero(Int64n().GenerateSized(seed.NewRootSource(s), 0))
	}
}

func TestInt64nSaturatesAtExtremes(t *testing.T) {
	require := require.New(t)

	var sawNegative, sawPositive bool
	for s := int64(0); s < 1000; s++ {
		v := Int64n().GenerateSized(seed.NewRootSource(s), math.MaxUint64)
		if v < 0 {
			sawNegative = true
		} else if v > 0 {
			sawPositive = true
		}
	}
	require.True(sawNegative)
	require.True(sawPositive)
}

func TestInt64nCoversBothSigns(t *testing.T) {
	require := require.New(t)

	seen := make(map[int64]struct{})
	root := seed.NewRootSource(42)
	for i := 0; i < 2000; i++ {
		var src seed.Source
		src, root = root.Split()
		seen[Int64n().GenerateSized(src, 3)] = struct{}{}
	}

	for v := int64(-3); v <= 3; v++ {
		require.Contains(seen, v)
	}
}

func TestBoolFair(t *testing.T) {
	require := require.New(t)

	trues := 0
	for s := int64(0); s < 10_000; s++ {
		if Bool().Generate(seed.NewRootSource(s)) {
			trues++
		}
	}

	// Expected 5000 with a standard deviation of 50.
	require.InDelta(5000, trues, 500)
}

func TestBoolSized(t *testing.T) {
	require := require.New(t)

	var sawTrue bool
	for s := int64(0); s < 1000; s++ {
		require.False(BoolSized().GenerateSized(seed.NewRootSource(s), 0))
		if BoolSized().GenerateSized(seed.NewRootSource(s), 1) {
			sawTrue = true
		}
	}
	require.True(sawTrue)
}

func TestMetrics(t *testing.T) {
	require := require.New(t)

	require.Zero(Uint64Metric().SizeOf(0))
	require.Equal(uint64(7), Uint64Metric().SizeOf(7))

	require.Zero(Int64Metric().SizeOf(0))
	require.Equal(uint64(5), Int64Metric().SizeOf(5))
	require.Equal(uint64(5), Int64Metric().SizeOf(-5))
	require.Equal(uint64(math.MaxInt64), Int64Metric().SizeOf(math.MaxInt64))
	require.Equal(uint64(1)<<63, Int64Metric().SizeOf(math.MinInt64))

	require.Zero(BoolMetric().SizeOf(false))
	require.Equal(uint64(1), BoolMetric().SizeOf(true))
}
