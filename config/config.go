// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config holds the engine's tunable parameters and their command
// line and environment surface.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/ava-labs/flurry/seed"
	"github.com/ava-labs/flurry/utils/logging"
)

const (
	DefaultNumTests   = 100
	DefaultSampleSize = 2000
	DefaultMaxSize    = 8
)

var errInvalidCount = errors.New("count must be positive")

// Config holds the engine parameters.
type Config struct {
	// Seed picks the root of the random tree. Zero derives a fresh root
	// from the clock at use time instead.
	Seed int64 `json:"seed"`

	// NumTests is how many cases a property run attempts.
	NumTests int `json:"numTests"`

	// SampleSize is how many draws empirical checks take per size budget.
	SampleSize int `json:"sampleSize"`

	// MaxSize is the largest size budget empirical checks exercise.
	MaxSize uint64 `json:"maxSize"`

	// LogLevel bounds the verbosity of engine diagnostics.
	LogLevel logging.Level `json:"logLevel"`
}

// Default returns the parameters used when nothing overrides them.
func Default() Config {
	return Config{
		NumTests:   DefaultNumTests,
		SampleSize: DefaultSampleSize,
		MaxSize:    DefaultMaxSize,
		LogLevel:   logging.Info,
	}
}

// Root returns the root source the configuration selects: deterministic
// for a fixed seed, clock-derived otherwise.
func (c Config) Root() seed.Source {
	if c.Seed == 0 {
		return seed.NewSource()
	}
	return seed.NewRootSource(c.Seed)
}

// GetConfig extracts and validates the engine parameters from [v].
func GetConfig(v *viper.Viper) (Config, error) {
	c := Config{
		Seed:       v.GetInt64(SeedKey),
		NumTests:   v.GetInt(NumTestsKey),
		SampleSize: v.GetInt(SampleSizeKey),
		MaxSize:    v.GetUint64(MaxSizeKey),
	}
	if c.NumTests <= 0 {
		return Config{}, fmt.Errorf("%w: %s is %d", errInvalidCount, NumTestsKey, c.NumTests)
	}
	if c.SampleSize <= 0 {
		return Config{}, fmt.Errorf("%w: %s is %d", errInvalidCount, SampleSizeKey, c.SampleSize)
	}

	var err error
	if c.LogLevel, err = logging.ToLevel(v.GetString(LogLevelKey)); err != nil {
		return Config{}, fmt.Errorf("couldn't parse %s: %w", LogLevelKey, err)
	}
	return c, nil
}
