// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package gentest provides empirical checks of the generator contracts:
// monotonicity in the size budget and agreement with a size metric.
//
// The checks sample; they can only refute a contract, never prove it. Use
// budgets and universes small enough for the configured sample counts to
// cover every reachable value, as with finite types or tightly bounded
// numeric generators.
package gentest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/flurry/config"
	"github.com/ava-labs/flurry/gen"
	"github.com/ava-labs/flurry/seed"
)

// Check runs every check in the package against a sized generator and its
// metric with the default engine parameters. The universe must hold all
// values of size at most the default max budget.
func Check[T comparable](tb testing.TB, g gen.SizedGenerator[T], m gen.SizeMetric[T], universe []T) {
	cfg := config.Default()
	root := cfg.Root()

	sizes := make([]uint64, 0, cfg.MaxSize+1)
	for size := uint64(0); size <= cfg.MaxSize; size++ {
		sizes = append(sizes, size)
	}

	CheckZeroSucc(tb, m, universe)
	CheckMonotone(tb, g, sizes, cfg.SampleSize, root)
	CheckSizedBounded(tb, g, m, cfg.MaxSize, cfg.SampleSize, root)
	CheckSizedComplete(tb, g, m, universe, cfg.MaxSize, cfg.SampleSize, root)
}

// CheckMonotone samples [g] at each budget in [sizes] and requires every
// value seen at a budget to be seen again at every larger budget.
func CheckMonotone[T comparable](tb testing.TB, g gen.SizedGenerator[T], sizes []uint64, samples int, root seed.Source) {
	require := require.New(tb)

	seen := make([]map[T]struct{}, len(sizes))
	for i, size := range sizes {
		seen[i] = make(map[T]struct{}, samples)
		for j := 0; j < samples; j++ {
			var src seed.Source
			src, root = root.Split()
			seen[i][g.GenerateSized(src, size)] = struct{}{}
		}
	}

	for i := range sizes {
		for j := range sizes {
			if sizes[i] > sizes[j] {
				continue
			}
			for v := range seen[i] {
				require.Contains(seen[j], v,
					"value %v reachable at budget %d is gone at budget %d", v, sizes[i], sizes[j])
			}
		}
	}
}

// CheckSizedBounded requires every value [g] generates at a budget to
// measure at or under that budget.
func CheckSizedBounded[T any](tb testing.TB, g gen.SizedGenerator[T], m gen.SizeMetric[T], maxSize uint64, samples int, root seed.Source) {
	require := require.New(tb)

	for size := uint64(0); size <= maxSize; size++ {
		for i := 0; i < samples; i++ {
			var src seed.Source
			src, root = root.Split()
			v := g.GenerateSized(src, size)
			require.LessOrEqual(m.SizeOf(v), size, "value %v overflows budget %d", v, size)
		}
	}
}

// CheckSizedComplete requires every universe value measuring at or under
// a budget to be generated at that budget.
func CheckSizedComplete[T comparable](tb testing.TB, g gen.SizedGenerator[T], m gen.SizeMetric[T], universe []T, maxSize uint64, samples int, root seed.Source) {
	require := require.New(tb)

	for size := uint64(0); size <= maxSize; size++ {
		seen := make(map[T]struct{}, samples)
		for i := 0; i < samples; i++ {
			var src seed.Source
			src, root = root.Split()
			seen[g.GenerateSized(src, size)] = struct{}{}
		}

		for _, v := range universe {
			if m.SizeOf(v) > size {
				continue
			}
			require.Contains(seen, v,
				"value %v of size %d was never generated at budget %d", v, m.SizeOf(v), size)
		}
	}
}

// CheckZeroSucc validates the shape of a size metric on an explicit
// universe: size zero must be inhabited, and so must every size up to the
// universe's largest, so that raising a budget by one always admits new
// values until the universe is exhausted. With the layers non-empty, the
// budget-n set plus the size-(n+1) layer is exactly the budget-(n+1) set.
func CheckZeroSucc[T comparable](tb testing.TB, m gen.SizeMetric[T], universe []T) {
	require := require.New(tb)
	require.NotEmpty(universe)

	layers := make(map[uint64]int)
	var maxSize uint64
	for _, v := range universe {
		size := m.SizeOf(v)
		layers[size]++
		if size > maxSize {
			maxSize = size
		}
	}

	for size := uint64(0); size <= maxSize; size++ {
		require.NotZero(layers[size], "no value has size %d", size)
	}
}
