// Package logger builds the zerolog logger shared by every executable.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New returns a logger writing human-readable lines to w, or JSON when
// release is set. Unknown levels fall back to info.
func New(w io.Writer, level string, release bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	if !release {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Setup installs New(os.Stdout, ...) as the global logger and returns it.
func Setup(level string, release bool) zerolog.Logger {
	l := New(os.Stdout, level, release)
	log.Logger = l
	return l
}

func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
