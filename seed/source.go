// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package seed provides splittable pseudo-random sources.
//
// A Source is a node of a conceptually infinite binary tree of random
// words. Splitting a source yields the two children of the node; drawing
// bits reads the word stored at the node. Sources are immutable values, so
// the two halves of a split can be consumed concurrently without
// synchronization, and the tree is never evaluated beyond the nodes that
// are actually visited.
package seed

import (
	"time"

	"gonum.org/v1/gonum/mathext/prng"
)

const (
	// WordBits is the number of random bits returned by a single call to
	// Bits.
	WordBits = 63

	// MaxWord is the largest value returned by Bits.
	MaxWord uint64 = 1<<WordBits - 1
)

// Source is an immutable node in an infinite binary tree of random words.
//
// Callers are expected to invoke at most one of [Split] and [Bits] on a
// given source during a single logical draw. Invoking both is well defined,
// but voids the independence assumption between the word and the children.
type Source interface {
	// Split returns the two children of this node. Their future outputs are
	// assumed statistically independent of each other and of this node's
	// word. Split may be called any number of times and always returns the
	// same pair.
	Split() (Source, Source)

	// Bits returns the 63-bit word stored at this node, in [0, MaxWord].
	// Bits may be called any number of times and always returns the same
	// word.
	Bits() uint64
}

// treeSource is the production Source. A node is represented by a SplitMix
// generator state, a 64-bit seed plus an odd increment (gamma), and both
// the node's word and its children are derived from that state with the
// splitmix64 mixing functions. The tree therefore exists only as the states
// reachable from the root; nothing is materialized ahead of use.
type treeSource struct {
	state uint64
	gamma uint64 // always odd
}

var _ Source = treeSource{}

func (s treeSource) Split() (Source, Source) {
	s1 := s.state + s.gamma
	s2 := s1 + s.gamma
	left := treeSource{state: s2, gamma: s.gamma}
	right := treeSource{state: mix64(s1), gamma: mixGamma(s2)}
	return left, right
}

func (s treeSource) Bits() uint64 {
	return mix64(s.state+s.gamma) & MaxWord
}

// NewRootSource returns the root of the random tree determined by [s]. The
// same seed always produces a bit-for-bit identical tree, so recording the
// seed of a run is enough to replay any source the run derived.
func NewRootSource(s int64) Source {
	u := uint64(s)
	return treeSource{
		state: mix64(u),
		gamma: mixGamma(u + goldenGamma),
	}
}

// NewSource returns a root source seeded from the wall clock. Use
// NewRootSource to reproduce a prior run; regenerating is always done by
// constructing a fresh root, never by mutating an existing one.
func NewSource() Source {
	// We don't use a cryptographically secure source of randomness here, as
	// the trees only drive test-case generation.
	scrambler := prng.NewMT19937()
	scrambler.Seed(uint64(time.Now().UnixNano()))
	return NewRootSource(int64(scrambler.Uint64()))
}

// dummySource is a constant fallback source, provided so that capabilities
// needing a default source value have a total one. Nothing in the seeding
// path ever produces it.
type dummySource struct{}

var _ Source = dummySource{}

func (dummySource) Split() (Source, Source) {
	return dummySource{}, dummySource{}
}

func (dummySource) Bits() uint64 {
	return 0
}

// Dummy returns the constant fallback source. Its word is zero and it
// splits into itself.
func Dummy() Source {
	return dummySource{}
}
