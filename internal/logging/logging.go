// Package logging builds the slog loggers used by the rsakit CLI.
package logging

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/natefinch/lumberjack"

	"github.com/vaultsandbox/rsakit/internal/config"
)

// New returns a logger for the given settings. Console loggers write text to
// console; file loggers write JSON to a rotating file. The returned close
// function releases the file and is a no-op for console loggers.
func New(s *config.LoggerSettings, console io.Writer) (*slog.Logger, func() error, error) {
	if err := s.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(s.LogLevel)}

	switch s.LogType {
	case config.LogTypeConsole:
		return slog.New(slog.NewTextHandler(console, opts)), func() error { return nil }, nil
	case config.LogTypeFile:
		writer := &lumberjack.Logger{
			Filename:   s.FilePath,
			MaxSize:    s.MaxSize,
			MaxBackups: s.MaxBackups,
			MaxAge:     s.MaxAge,
			Compress:   true,
		}
		return slog.New(slog.NewJSONHandler(writer, opts)), writer.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported log type: %s", s.LogType)
	}
}

// ParseLevel maps a configured level name to a slog level. Unknown names map
// to info.
func ParseLevel(level string) slog.Level {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelInfo:
		return slog.LevelInfo
	case config.LogLevelWarning:
		return slog.LevelWarn
	case config.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
