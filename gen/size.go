// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gen

// SizeMetric measures the complexity of values, letting tests validate a
// sized generator against an external notion of size.
//
// A metric and its generator must agree on a strictly monotone nesting of
// reachable sets: the values of size zero are exactly those reachable at
// budget zero, and raising the budget from n to n+1 admits exactly the
// values of size n+1. The contract is never enforced at runtime; the
// gentest helpers check it empirically on sampled values.
type SizeMetric[T any] interface {
	// SizeOf returns the size of [v].
	SizeOf(v T) uint64
}

// SizeMetricFunc adapts a function to the SizeMetric interface.
type SizeMetricFunc[T any] func(T) uint64

func (f SizeMetricFunc[T]) SizeOf(v T) uint64 {
	return f(v)
}
