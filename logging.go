// logging.go
//
// Structured, leveled logging via zerolog, replacing the teacher's bare
// log.Printf calls (SPEC_FULL.md §2 expansion).

package lexengine

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds a console-formatted zerolog.Logger at the given level
// ("debug", "info", "warn", "error"; unrecognized values fall back to
// info).
func NewLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
