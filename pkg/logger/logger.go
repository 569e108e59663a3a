package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the process logger. The api, seed and mailworker binaries share
// one log stream, so every line carries the component that wrote it.
func New(component string, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano
	return zerolog.New(os.Stdout).
		Level(lvl).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}
