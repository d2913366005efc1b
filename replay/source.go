// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package replay makes draws reproducible by position.
//
// A recording source tracks the split path from the root it wraps down to
// every source derived from it. After a run, the path of the node that
// produced an interesting draw re-derives that node from the same root
// with [seed.FollowPath], without re-running whatever descent produced it.
package replay

import (
	"golang.org/x/exp/slices"

	"github.com/ava-labs/flurry/seed"
)

var _ seed.Source = (*Source)(nil)

// Source wraps a [seed.Source] and records the split path from the wrapped
// root to this node. Wrapping never changes the delegated stream.
type Source struct {
	inner seed.Source
	path  seed.Path
}

// New returns a recorder rooted at [src]. Its path is empty.
func New(src seed.Source) *Source {
	return &Source{
		inner: src,
	}
}

func (s *Source) Split() (seed.Source, seed.Source) {
	left, right := s.split()
	return left, right
}

func (s *Source) Bits() uint64 {
	return s.inner.Bits()
}

// Path returns a copy of the split path from the wrapped root to this node.
func (s *Source) Path() seed.Path {
	return slices.Clone(s.path)
}

func (s *Source) split() (*Source, *Source) {
	left, right := s.inner.Split()
	return &Source{
			inner: left,
			path:  extend(s.path, seed.Left),
		}, &Source{
			inner: right,
			path:  extend(s.path, seed.Right),
		}
}

// extend copies before appending, so sibling paths never share backing
// memory.
func extend(path seed.Path, d seed.Direction) seed.Path {
	out := make(seed.Path, len(path)+1)
	copy(out, path)
	out[len(path)] = d
	return out
}

// PathOf returns the split path recorded by a source produced by this
// package. It reports false for any other source.
func PathOf(src seed.Source) (seed.Path, bool) {
	switch s := src.(type) {
	case *Source:
		return s.Path(), true
	case *traced:
		return s.inner.Path(), true
	default:
		return nil, false
	}
}
