package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-api/internal/config"
)

func TestNew_FormatSelection(t *testing.T) {
	tests := []struct {
		name       string
		logFormat  string
		expectJSON bool
	}{
		{name: "json format", logFormat: "json", expectJSON: true},
		{name: "text format", logFormat: "text", expectJSON: false},
		{name: "text format is case-insensitive", logFormat: "TEXT", expectJSON: false},
		{name: "default format (empty)", logFormat: "", expectJSON: true},
		{name: "unknown format defaults to json", logFormat: "unknown", expectJSON: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(config.Config{LogLevel: "info", LogFormat: tt.logFormat}, &buf)
			require.NotNil(t, log)

			log.Info("test message", "key", "value")

			output := buf.String()
			if tt.expectJSON {
				assert.Contains(t, output, `"msg":"test message"`)
				assert.Contains(t, output, `"key":"value"`)
			} else {
				assert.Contains(t, output, "test message")
				assert.Contains(t, output, "key=value")
				assert.NotContains(t, output, `"msg":`)
			}
		})
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.Config{LogLevel: "warn", LogFormat: "json"}, &buf)

	log.Info("hidden")
	log.Warn("shown")

	output := buf.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, "shown")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		" ERROR ": slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level for %q", in)
	}
}

func TestInit_Idempotent(t *testing.T) {
	first, err := Init(config.Config{LogLevel: "error", LogFormat: "json"})
	require.NoError(t, err)

	second, err := Init(config.Config{LogLevel: "debug", LogFormat: "text"})
	require.NoError(t, err)

	assert.Same(t, first, second, "first Init call should win")
	assert.Same(t, first, L())
}
