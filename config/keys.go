// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

// Names for the engine's configuration keys.
const (
	ConfigFileKey = "config-file"
	SeedKey       = "seed"
	NumTestsKey   = "num-tests"
	SampleSizeKey = "sample-size"
	MaxSizeKey    = "max-size"
	LogLevelKey   = "log-level"
)
