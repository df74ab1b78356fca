// internal/logging/logging.go
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Config selects the log level and rendering format.
type Config struct {
	Level  string // debug, info, warn, error; default info
	Format string // "console" (default) or "json"
}

// New builds a logger writing to w. Console format is human-oriented;
// json is one event per line for machine consumption.
func New(w io.Writer, cfg Config) (zerolog.Logger, error) {
	lvlName := cfg.Level
	if lvlName == "" {
		lvlName = "info"
	}
	level, err := zerolog.ParseLevel(lvlName)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	out := w
	switch cfg.Format {
	case "", "console":
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	case "json":
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q", cfg.Format)
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
