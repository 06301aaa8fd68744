package logger

import (
	"log/slog"
	"os"

	"github.com/matteogeraldo05/CSCI3060U-Course-Project/internal/config"
)

// NewLogger creates and configures a new slog.Logger writing JSON to
// stderr, so structured logs never interleave with the terminal's
// operator output on stdout.
func NewLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Logging.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
		// Add source code location to log output
		AddSource: level == slog.LevelDebug,
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}
