// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu   sync.RWMutex
	base = zerolog.New(consoleWriter(os.Stderr)).With().Timestamp().Logger().Level(zerolog.InfoLevel)
)

func consoleWriter(w io.Writer) io.Writer {
	return zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
}

// Setup replaces the base logger. Pass a nil writer to keep stderr.
func Setup(w io.Writer, level zerolog.Level) {
	if w == nil {
		w = consoleWriter(os.Stderr)
	}
	mu.Lock()
	base = zerolog.New(w).With().Timestamp().Logger().Level(level)
	mu.Unlock()
}

// SetLevel adjusts the base logger level.
func SetLevel(level zerolog.Level) {
	mu.Lock()
	base = base.Level(level)
	mu.Unlock()
}

// Component returns a logger tagged with the given component name.
func Component(name string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base.With().Str("component", name).Logger()
}
