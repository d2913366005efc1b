// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"github.com/spf13/pflag"
)

// BuildFlagSet returns the engine's flag set with defaults applied.
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("flurry", pflag.ContinueOnError)
	addFlags(fs)
	return fs
}

func addFlags(fs *pflag.FlagSet) {
	fs.String(ConfigFileKey, "", "Specifies a config file")
	fs.Int64(SeedKey, 0, "Root seed for the random tree. 0 derives a seed from the clock at use time")
	fs.Int(NumTestsKey, DefaultNumTests, "Number of cases a property run attempts")
	fs.Int(SampleSizeKey, DefaultSampleSize, "Draws taken per size budget by empirical checks")
	fs.Uint64(MaxSizeKey, DefaultMaxSize, "Largest size budget exercised by empirical checks")
	fs.String(LogLevelKey, "info", "The log level. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
}
