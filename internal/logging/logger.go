// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

var logLevel = new(slog.LevelVar)

// InitLogger installs a tint handler writing to w as the default logger.
// The level comes from ENTSENT_LOG_LEVEL and defaults to Info.
func InitLogger(w io.Writer) *slog.Logger {
	logLevel.Set(ParseLevel(os.Getenv("ENTSENT_LOG_LEVEL")))

	handler := tint.NewHandler(w, &tint.Options{
		Level:      logLevel,
		TimeFormat: time.Kitchen,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// SetLogLevel changes the level of the logger installed by InitLogger.
func SetLogLevel(level slog.Level) {
	logLevel.Set(level)
}

// ParseLevel maps DEBUG, WARN and ERROR to their levels; anything else is
// Info.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
