// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"math"
	"math/big"
	"math/bits"

	"github.com/ava-labs/flurry/seed"
)

// SampleWide returns a value in [0, bound-1] for bounds of any width.
//
// Words are drawn 63 bits at a time. At every chunk boundary the source is
// split, the next word comes from the first child, and the walk continues
// in the second; the final chunk is drawn from the node the walk ends on.
// The chunks accumulate as acc = acc<<63 | word until their width covers
// the bound's bit length, and the accumulator is reduced modulo [bound].
// Outcomes carry the same floor/ceiling probability window as [Sample],
// taken over the accumulated width. Returns ErrInvalidBound unless
// bound > 0.
func SampleWide(src seed.Source, bound *big.Int) (*big.Int, error) {
	if bound == nil || bound.Sign() <= 0 {
		return nil, ErrInvalidBound
	}

	acc := new(big.Int)
	word := new(big.Int)
	for remaining := bound.BitLen(); ; remaining -= seed.WordBits {
		if remaining <= seed.WordBits {
			acc.Lsh(acc, seed.WordBits)
			acc.Or(acc, word.SetUint64(src.Bits()))
			break
		}
		next, rest := src.Split()
		acc.Lsh(acc, seed.WordBits)
		acc.Or(acc, word.SetUint64(next.Bits()))
		src = rest
	}
	return acc.Mod(acc, bound), nil
}

// wideUint64 returns a value in [0, width], where width may span the full
// uint64 range. Single-word widths reduce one draw; wider widths
// accumulate two 63-bit chunks, split the same way as [SampleWide], and
// reduce the 126-bit result.
func wideUint64(src seed.Source, width uint64) uint64 {
	if width < seed.MaxWord+1 {
		return src.Bits() % (width + 1)
	}

	next, rest := src.Split()
	hiChunk := next.Bits()
	loChunk := rest.Bits()

	// acc = hiChunk<<63 | loChunk, held as a 128-bit (hi, lo) pair.
	hi := hiChunk >> 1
	lo := hiChunk<<63 | loChunk
	if width == math.MaxUint64 {
		// Reduction modulo 2^64 is truncation.
		return lo
	}
	m := width + 1
	_, rem := bits.Div64(hi%m, lo, m)
	return rem
}
