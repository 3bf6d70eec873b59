package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultsandbox/rsakit/internal/config"
)

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := New(&config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}, &buf)
	require.NoError(t, err)
	defer closeFn()

	logger.Debug("hidden")
	logger.Info("key generated", "modulus_bits", 255)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "key generated")
	assert.Contains(t, out, "modulus_bits=255")
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rsakit.log")
	logger, closeFn, err := New(&config.LoggerSettings{
		LogLevel:   config.LogLevelDebug,
		LogType:    config.LogTypeFile,
		FilePath:   path,
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
	}, nil)
	require.NoError(t, err)

	logger.Debug("pseudoprime found", "attempt", 3)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "pseudoprime found", entry["msg"])
	assert.Equal(t, float64(3), entry["attempt"])
}

func TestNew_InvalidSettings(t *testing.T) {
	_, _, err := New(&config.LoggerSettings{LogLevel: "verbose", LogType: config.LogTypeConsole}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{config.LogLevelDebug, slog.LevelDebug},
		{config.LogLevelInfo, slog.LevelInfo},
		{config.LogLevelWarning, slog.LevelWarn},
		{config.LogLevelError, slog.LevelError},
		{"unknown", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}
