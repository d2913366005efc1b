// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package gen defines the generator capabilities of the engine: plain and
// size-indexed generation, shrinking, and their composition.
//
// The package provides the primitive layer only. Combinators for
// structured shapes (slices, maps, recursive types) are expected to be
// built on top of these capabilities by their own libraries.
package gen

import (
	"github.com/ava-labs/flurry/seed"
)

// Generator produces values of a type from a random source.
type Generator[T any] interface {
	// Generate returns one value drawn from [src]. Generation is a pure
	// mapping into the type's distribution: any randomness left in the
	// source after the draw is discarded, never returned.
	Generate(src seed.Source) T
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc[T any] func(seed.Source) T

func (f GeneratorFunc[T]) Generate(src seed.Source) T {
	return f(src)
}

// SizedGenerator produces values whose complexity is bounded by a size
// budget.
//
// Implementations must be monotone in the budget: every value producible
// at a budget stays producible at every larger budget, for any fixed
// internal complexity dial. Downstream search strategies assume generation
// only ever gets more permissive as the budget grows; a non-monotone
// generator is a programming defect to be caught by property tests, not a
// runtime failure.
type SizedGenerator[T any] interface {
	// GenerateSized returns one value drawn from [src] within the size
	// budget [size].
	GenerateSized(src seed.Source, size uint64) T
}

// SizedGeneratorFunc adapts a function to the SizedGenerator interface.
type SizedGeneratorFunc[T any] func(seed.Source, uint64) T

func (f SizedGeneratorFunc[T]) GenerateSized(src seed.Source, size uint64) T {
	return f(src, size)
}

// FromSized derives the size-independent form of a sized generator. This
// is the only coercion between the two capabilities: each Generate call
// reads the ambient budget from [budget] and delegates.
//
// If [g] produces exactly the values measuring at or under each budget,
// and is monotone, and its size metric is total and unbounded, then the
// derived generator reaches the whole type: its reachable set is the
// union of the size-bounded sets over every budget the control can
// return. Reachability of the derived generator is that consequence, and
// is never asserted independently of the sized layer.
func FromSized[T any](g SizedGenerator[T], budget func() uint64) Generator[T] {
	return GeneratorFunc[T](func(src seed.Source) T {
		return g.GenerateSized(src, budget())
	})
}

// FixedBudget returns a budget control that always allots [n].
func FixedBudget(n uint64) func() uint64 {
	return func() uint64 {
		return n
	}
}
