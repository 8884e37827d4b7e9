package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"weather-api/internal/config"
)

var (
	singleton *slog.Logger
	once      sync.Once
	discard   = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// ParseLevel maps a LOG_LEVEL value to a slog level. Unknown values fall back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a logger writing to w with the level and format from cfg.
// "text" selects the text handler, anything else JSON.
func New(cfg config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.LogLevel)}

	var handler slog.Handler
	if strings.EqualFold(cfg.LogFormat, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// Init initializes the process logger from the provided config.
// The first call wins; later calls return the same instance.
func Init(cfg config.Config) (*slog.Logger, error) {
	once.Do(func() {
		singleton = New(cfg, os.Stdout)
		slog.SetDefault(singleton)
	})

	return singleton, nil
}

// L returns the process logger. Before Init it returns a logger that drops everything,
// so packages can log from tests without wiring.
func L() *slog.Logger {
	if singleton == nil {
		return discard
	}
	return singleton
}
