// Package log provides the structured logging interface used by scinum's
// numerical routines.
//
// The interface is slog-shaped so callers can plug in any backend. The
// default backend is zerolog (see NewZerologLogger); SetupLogger configures a
// log/slog JSON handler for applications that prefer the standard library
// front end.
//
// Example usage:
//
//	logger := log.GetLogger().With(log.ComponentKey, "integrate")
//	logger.Debug("quadrature finished",
//	    log.AlgorithmKey, "adaptive_simpson",
//	    log.EvaluationsKey, 1234,
//	)
package log

import (
	"context"
)

// Logger is a structured logger. Fields are alternating key/value pairs; a
// leading error value in fields is logged under the "error" key together with
// its stack trace when one is available.
type Logger interface {
	// Debug logs detailed diagnostic information, such as per-call evaluation
	// counts.
	Debug(msg string, fields ...any)

	// Info logs general operational information.
	Info(msg string, fields ...any)

	// Warn logs a condition that did not stop the computation but may have
	// degraded its accuracy, for example a recursion guard being hit.
	Warn(msg string, fields ...any)

	// Error logs a failed operation.
	//
	//	logger.Error("integration failed", err, log.OperationKey, log.OperationIntegrate)
	Error(msg string, fields ...any)

	// With returns a Logger that adds fields to every record.
	With(fields ...any) Logger

	// Enabled reports whether records at level would be emitted. Use it to
	// skip building expensive fields.
	Enabled(ctx context.Context, level Level) bool
}

// Level is a logging level with slog-compatible values.
type Level int

const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the upper-case level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider creates loggers. It exists so tests can swap the global
// provider for one that captures output.
type LoggerProvider interface {
	GetLogger() Logger
	GetLoggerWithName(name string) Logger
	SetLevel(level Level)
}
