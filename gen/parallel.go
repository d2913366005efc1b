// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gen

import (
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/flurry/seed"
)

// Parallel splits [src] into [n] independent branches and runs [f] once
// per branch, each call on its own goroutine. Branch assignment is a pure
// function of the source: the walk peels the first child off for branch i
// and continues splitting the second, so branch i always receives the
// same sub-source for a given root, regardless of scheduling. Sources are
// immutable, so the branches need no synchronization.
//
// Parallel returns once every branch has finished and reports the first
// non-nil error; an error does not interrupt the other branches.
func Parallel(src seed.Source, n int, f func(i int, src seed.Source) error) error {
	eg := errgroup.Group{}
	for i := 0; i < n; i++ {
		var branch seed.Source
		branch, src = src.Split()

		i := i
		eg.Go(func() error {
			return f(i, branch)
		})
	}
	return eg.Wait()
}
