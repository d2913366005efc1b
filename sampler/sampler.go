// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package sampler draws bounded pseudo-random values from splittable
// sources.
//
// Draws are approximately uniform: a bounded draw reduces one or more
// fixed-width words modulo the bound. The deviation from uniform is
// documented per operation; exact uniformity is a non-goal.
package sampler

import (
	"errors"

	"github.com/ava-labs/flurry/seed"
)

var (
	// ErrInvalidBound is returned when a sample bound is zero, negative,
	// or beyond what the operation can cover.
	ErrInvalidBound = errors.New("invalid sample bound")

	// ErrInvalidInterval is returned when an interval's low bound is
	// ordered after its high bound.
	ErrInvalidInterval = errors.New("interval low bound exceeds high bound")
)

// Sample returns a value in [0, bound-1]: one 63-bit word drawn from [src]
// and reduced modulo [bound]. With W = 2^63, every outcome has probability
// at least floor(W/bound)/W and at most (floor(W/bound)+1)/W; the
// W mod bound overweighted outcomes are each at most twice as likely as
// the others. Returns ErrInvalidBound unless 0 < bound <= 2^63.
func Sample(src seed.Source, bound uint64) (uint64, error) {
	if bound == 0 || bound > seed.MaxWord+1 {
		return 0, ErrInvalidBound
	}
	return src.Bits() % bound, nil
}
