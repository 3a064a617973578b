// Package logger wraps zerolog.Logger with the constructors and context
// helpers used across the service. Embedding zerolog.Logger keeps the full
// zerolog API available on *Logger.
package logger

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Logger struct {
	zerolog.Logger
}

// New builds the process-wide logger: JSON to stdout, a "service" field for
// filtering, and a timestamp on every entry.
func New(service string) *Logger {
	l := zerolog.New(os.Stdout).With().
		Str("service", service).
		Timestamp().
		Logger()

	return &Logger{l}
}

// Nop returns a logger that discards everything. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithContext attaches l to ctx so request-scoped code can recover it with
// FromContext.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext returns the logger stored in ctx, falling back to zerolog's
// global logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
