// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package meterseed instruments sources with prometheus counters.
package meterseed

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/flurry/seed"
)

var _ seed.Source = (*source)(nil)

// source shares one metrics instance with every descendant, so the
// counters observe the whole tree hanging off the wrapped root.
type source struct {
	metrics *metrics
	inner   seed.Source
}

// New returns a source whose word draws and splits, including those of
// every source derived from it, are counted in [namespace] metrics
// registered on [registerer]. The delegated stream is unchanged.
func New(
	namespace string,
	registerer prometheus.Registerer,
	src seed.Source,
) (seed.Source, error) {
	m := &metrics{}
	if err := m.Initialize(namespace, registerer); err != nil {
		return nil, err
	}
	return &source{
		metrics: m,
		inner:   src,
	}, nil
}

func (s *source) Split() (seed.Source, seed.Source) {
	s.metrics.splits.Inc()
	left, right := s.inner.Split()
	return &source{
			metrics: s.metrics,
			inner:   left,
		}, &source{
			metrics: s.metrics,
			inner:   right,
		}
}

func (s *source) Bits() uint64 {
	s.metrics.bits.Inc()
	return s.inner.Bits()
}
