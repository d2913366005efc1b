// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package replay

import (
	"bytes"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/flurry/seed"
	"github.com/ava-labs/flurry/utils/logging"
)

type memoryWriter struct {
	bytes.Buffer
}

func (*memoryWriter) Close() error {
	return nil
}

func newTraceLogger(level logging.Level) (logging.Logger, *memoryWriter) {
	mw := &memoryWriter{}
	return logging.NewLogger(
		"",
		logging.NewWrappedCore(level, mw, logging.JSONEncoder()),
	), mw
}

func TestTracedLogsOperations(t *testing.T) {
	require := require.New(t)

	log, mw := newTraceLogger(logging.Verbo)
	src := NewTraced(log, seed.NewRootSource(0))

	left, right := src.Split()
	_ = left.Bits()
	_, _ = right.Split()
	log.Stop()

	out := mw.String()
	require.Contains(out, "split source")
	require.Contains(out, "drew word")
	require.Contains(out, `"path":"L"`)
	require.Contains(out, `"path":"R"`)
	require.Contains(out, `"word":`)
}

func TestTracedGated(t *testing.T) {
	require := require.New(t)

	log, mw := newTraceLogger(logging.Info)
	src := NewTraced(log, seed.NewRootSource(0))

	left, right := src.Split()
	_ = left.Bits()
	_ = right.Bits()
	log.Stop()

	require.Empty(mw.String())
}

func TestTracedTransparent(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("wrapping never changes the stream", prop.ForAll(
		func(s int64, dirs []seed.Direction) string {
			a := seed.FollowPath(seed.Path(dirs), NewTraced(logging.NoLog{}, seed.NewRootSource(s)))
			b := seed.FollowPath(seed.Path(dirs), seed.NewRootSource(s))
			if a.Bits() != b.Bits() {
				return "stream diverged"
			}
			return ""
		},
		gen.Int64(),
		gen.SliceOf(gen.OneConstOf(seed.Left, seed.Right)),
	))

	properties.TestingRun(t)
}

func TestTracedRecords(t *testing.T) {
	require := require.New(t)

	node := seed.FollowPath(
		seed.Path{seed.Left, seed.Right},
		NewTraced(logging.NoLog{}, seed.NewRootSource(7)),
	)

	path, ok := PathOf(node)
	require.True(ok)
	require.Equal(seed.Path{seed.Left, seed.Right}, path)

	replayed := seed.FollowPath(path, seed.NewRootSource(7))
	require.Equal(replayed.Bits(), node.Bits())
}
