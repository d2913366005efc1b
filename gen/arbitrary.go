// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gen

// Arbitrary is the union of sized generation and shrinking. It adds no
// behavior of its own.
type Arbitrary[T any] interface {
	SizedGenerator[T]
	Shrinker[T]
}

// Combine builds the combined capability from its two halves.
func Combine[T any](g SizedGenerator[T], s Shrinker[T]) Arbitrary[T] {
	return arbitrary[T]{
		SizedGenerator: g,
		Shrinker:       s,
	}
}

type arbitrary[T any] struct {
	SizedGenerator[T]
	Shrinker[T]
}

var _ Arbitrary[bool] = arbitrary[bool]{}
