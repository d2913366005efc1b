// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ConsoleEncoder returns the human oriented single line encoder.
func ConsoleEncoder() zapcore.Encoder {
	return zapcore.NewConsoleEncoder(newEncoderConfig())
}

// JSONEncoder returns the machine oriented encoder.
func JSONEncoder() zapcore.Encoder {
	return zapcore.NewJSONEncoder(newEncoderConfig())
}

func newEncoderConfig() zapcore.EncoderConfig {
	config := zap.NewProductionEncoderConfig()
	config.EncodeLevel = levelEncoder
	config.EncodeTime = zapcore.ISO8601TimeEncoder
	return config
}

// levelEncoder renders the extended level range, which includes values
// zap has no name for.
func levelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Level(l).String())
}
