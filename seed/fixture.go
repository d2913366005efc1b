// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package seed

// FromSplit returns a source whose Split deterministically returns exactly
// ([left], [right]) and whose word is zero. Together with FromBits it lets
// tests compose precise source trees without a PRNG.
func FromSplit(left, right Source) Source {
	return splitSource{left: left, right: right}
}

type splitSource struct {
	left  Source
	right Source
}

var _ Source = splitSource{}

func (s splitSource) Split() (Source, Source) {
	return s.left, s.right
}

func (splitSource) Bits() uint64 {
	return 0
}

// FromBits returns a source whose word is [x] masked to WordBits bits and
// whose children are dummies.
func FromBits(x uint64) Source {
	return bitsSource{word: x & MaxWord}
}

type bitsSource struct {
	word uint64
}

var _ Source = bitsSource{}

func (bitsSource) Split() (Source, Source) {
	return Dummy(), Dummy()
}

func (s bitsSource) Bits() uint64 {
	return s.word
}
