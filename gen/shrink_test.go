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
)

func TestShrinkUint64(t *testing.T) {
	tests := []struct {
		name     string
		input    uint64
		expected []uint64
	}{
		{
			name:     "zero is minimal",
			input:    0,
			expected: nil,
		},
		{
			name:     "one",
			input:    1,
			expected: []uint64{0},
		},
		{
			name:     "seven",
			input:    7,
			expected: []uint64{0, 4, 6},
		},
		{
			name:     "ten",
			input:    10,
			expected: []uint64{0, 5, 8, 9},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, ShrinkUint64().Shrink(tt.input))
		})
	}
}

func TestShrinkUint64Properties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("candidates increase strictly toward the input", prop.ForAll(
		func(v uint64) string {
			candidates := ShrinkUint64().Shrink(v)
			if v == 0 {
				if len(candidates) != 0 {
					return "zero must be minimal"
				}
				return ""
			}
			if len(candidates) == 0 || candidates[0] != 0 {
				return "first candidate must be zero"
			}
			for i, c := range candidates {
				if c >= v {
					return "candidate not smaller than the input"
				}
				if i > 0 && c <= candidates[i-1] {
					return "candidates must strictly increase"
				}
			}
			return ""
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

func TestShrinkInt64(t *testing.T) {
	tests := []struct {
		name     string
		input    int64
		expected []int64
	}{
		{
			name:     "zero is minimal",
			input:    0,
			expected: nil,
		},
		{
			name:     "positive",
			input:    10,
			expected: []int64{0, 5, 8, 9},
		},
		{
			name:     "negative proposes its negation first",
			input:    -10,
			expected: []int64{10, 0, -5, -8, -9},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, ShrinkInt64().Shrink(tt.input))
		})
	}
}

func TestShrinkInt64MinInt64(t *testing.T) {
	require := require.New(t)

	candidates := ShrinkInt64().Shrink(math.MinInt64)
	require.NotEmpty(candidates)
	require.Equal(int64(0), candidates[0])
	require.NotContains(candidates, int64(math.MinInt64))
}

func TestShrinkInt64Properties(t *testing.T) {
	magnitude := Int64Metric()
	properties := gopter.NewProperties(nil)

	properties.Property("candidates lose magnitude, except the negation", prop.ForAll(
		func(v int64) string {
			for _, c := range shrinkWithoutNegation(v) {
				if magnitude.SizeOf(c) >= magnitude.SizeOf(v) {
					return "candidate not smaller than the input"
				}
			}
			return ""
		},
		gen.Int64(),
	))

	properties.TestingRun(t)
}

// shrinkWithoutNegation strips the equal-magnitude negation candidate
// from a shrink list.
func shrinkWithoutNegation(v int64) []int64 {
	candidates := ShrinkInt64().Shrink(v)
	if v < 0 && v != math.MinInt64 {
		return candidates[1:]
	}
	return candidates
}

func TestShrinkBool(t *testing.T) {
	require := require.New(t)

	require.Equal([]bool{false}, ShrinkBool().Shrink(true))
	require.Empty(ShrinkBool().Shrink(false))
}
