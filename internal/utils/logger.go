package utils

import (
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/quantmind-br/appcache-go/internal/domain"
)

// Logger is a zerolog.Logger carrying the component and target fields that
// manifest generation logs by
type Logger struct {
	zerolog.Logger
}

// LoggerOptions contains options for creating a logger
type LoggerOptions struct {
	Level   string
	Format  string // "pretty" or "json"
	Output  io.Writer
	Verbose bool // forces debug
}

// NewLogger creates a logger writing to Output, or stderr when unset.
// An empty or unknown Level logs at info.
func NewLogger(opts LoggerOptions) *Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	if opts.Format != "json" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(opts.Level)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	return &Logger{Logger: zerolog.New(out).Level(level).With().Timestamp().Logger()}
}

// NewNopLogger creates a logger that discards everything
func NewNopLogger() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// WithComponent returns a logger with a component field
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{Logger: l.With().Str("component", component).Logger()}
}

// WithTarget returns a logger with the manifest destination field
func (l *Logger) WithTarget(dest string) *Logger {
	return &Logger{Logger: l.With().Str("target", dest).Logger()}
}

// TargetFailure starts an error event for err with its kind and, for a
// *domain.TargetError, the failed target and stage
func (l *Logger) TargetFailure(err error) *zerolog.Event {
	event := l.Error().Err(err).Str("kind", domain.ErrorKind(err))

	var targetErr *domain.TargetError
	if errors.As(err, &targetErr) {
		event = event.Str("target", targetErr.Dest).Str("stage", targetErr.Stage)
	}
	return event
}
