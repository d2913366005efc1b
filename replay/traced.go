// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package replay

import (
	"go.uber.org/zap"

	"github.com/ava-labs/flurry/seed"
	"github.com/ava-labs/flurry/utils/logging"
)

var _ seed.Source = (*traced)(nil)

// traced records like [Source] and additionally logs every operation with
// the path of the node it happened on.
type traced struct {
	log   logging.Logger
	inner *Source
}

// NewTraced returns a source that logs every Bits and Split at Verbo level,
// tagged with the split path of the node involved. Wrapping never changes
// the delegated stream, and tracing a recorder still records.
func NewTraced(log logging.Logger, src seed.Source) seed.Source {
	return &traced{
		log:   log,
		inner: New(src),
	}
}

func (t *traced) Split() (seed.Source, seed.Source) {
	left, right := t.inner.split()
	if t.log.Enabled(logging.Verbo) {
		t.log.Verbo("split source",
			zap.Stringer("path", t.inner.path),
		)
	}
	return &traced{
			log:   t.log,
			inner: left,
		}, &traced{
			log:   t.log,
			inner: right,
		}
}

func (t *traced) Bits() uint64 {
	word := t.inner.Bits()
	if t.log.Enabled(logging.Verbo) {
		t.log.Verbo("drew word",
			zap.Stringer("path", t.inner.path),
			zap.Uint64("word", word),
		)
	}
	return word
}
