// Package logger provides structured logging utilities.
//
// The package keeps a small printf-style API on top of a single zerolog
// logger so call sites stay terse while output remains structured.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu  sync.RWMutex
	log = zerolog.New(os.Stderr).With().Timestamp().Logger()
)

// Initialize configures the process logger.
// Development mode writes human-readable console output; otherwise JSON lines are written.
func Initialize(level string, development bool) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339

	var out io.Writer = os.Stdout
	if development {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	}

	mu.Lock()
	defer mu.Unlock()
	ctx := zerolog.New(out).Level(lvl).With().Timestamp()
	if development {
		ctx = ctx.CallerWithSkipFrameCount(zerolog.CallerSkipFrameCount + 1)
	}
	log = ctx.Logger()
	return nil
}

// SetOutput redirects log output, keeping the current level. Used by tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	log = log.Output(w)
}

func current() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := log
	return &l
}

// Info logs informational messages.
func Info(message string, args ...interface{}) {
	current().Info().Msgf(message, args...)
}

// Debug logs debug messages. Discarded unless the level is debug.
func Debug(message string, args ...interface{}) {
	current().Debug().Msgf(message, args...)
}

// Error logs error messages.
func Error(message string, args ...interface{}) {
	current().Error().Msgf(message, args...)
}

// Fatal logs fatal messages and terminates the program.
func Fatal(message string, args ...interface{}) {
	current().WithLevel(zerolog.FatalLevel).Msgf(message, args...)
	os.Exit(1)
}

// Sync flushes any buffered log entries (no-op, zerolog writes synchronously).
func Sync() {}
