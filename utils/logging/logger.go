// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package logging provides structured leveled logging.
package logging

import (
	"io"

	"go.uber.org/zap"
)

// Logger defines the interface for structured diagnostics.
type Logger interface {
	// Writes pre-formatted output from collaborating tools to the
	// logger's writers unconditionally.
	io.Writer

	// Fatal logs at the highest severity. It never terminates the
	// process; shutdown stays the caller's decision.
	Fatal(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Trace(msg string, fields ...zap.Field)
	Debug(msg string, fields ...zap.Field)
	Verbo(msg string, fields ...zap.Field)

	// Enabled reports whether a record at [lvl] would be written, letting
	// callers skip expensive field construction.
	Enabled(lvl Level) bool

	// Stop flushes buffered records and closes the underlying writers.
	Stop()
}
