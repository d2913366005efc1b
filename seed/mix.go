// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package seed

import "math/bits"

// goldenGamma is 2^64 divided by the golden ratio. It is the increment used
// to expand a user-provided seed into an initial (state, gamma) pair.
const goldenGamma uint64 = 0x9e3779b97f4a7c15

// mix64 is the splitmix64 finalizer (Stafford's mix variant 13). It is a
// bijection on 64-bit words, so distinct states always yield distinct
// words.
func mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// mixGamma derives the odd increment for a split-off generator, following
// the SplitMix reference: a 64-bit avalanche, forced odd, with candidates
// whose consecutive bits flip too rarely xored with alternating bits.
func mixGamma(z uint64) uint64 {
	z = (z ^ (z >> 33)) * 0xff51afd7ed558ccd
	z = (z ^ (z >> 33)) * 0xc4ceb9fe1a85ec53
	z = (z ^ (z >> 33)) | 1
	if bits.OnesCount64(z^(z>>1)) < 24 {
		z ^= 0xaaaaaaaaaaaaaaaa
	}
	return z
}
