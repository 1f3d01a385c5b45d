package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a human-readable logger writing to w. Unknown or empty
// levels fall back to info.
func New(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
