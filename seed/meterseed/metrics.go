// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package meterseed

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/flurry/utils/wrappers"
)

func newCounterMetric(namespace, name string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      name,
		Help:      fmt.Sprintf("# of times a %s occurred", name),
	})
}

type metrics struct {
	bits,
	splits prometheus.Counter
}

func (m *metrics) Initialize(
	namespace string,
	registerer prometheus.Registerer,
) error {
	m.bits = newCounterMetric(namespace, "bits")
	m.splits = newCounterMetric(namespace, "splits")

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.bits),
		registerer.Register(m.splits),
	)
	return errs.Err
}
