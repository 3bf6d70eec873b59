package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Log level constants
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// LoggerSettings holds configuration settings for logging, including log
// level, type and file rotation.
type LoggerSettings struct {
	LogLevel   string `validate:"required,oneof=debug info warning error"`
	LogType    string `validate:"required,oneof=console file"`
	FilePath   string `validate:"required_if=LogType file"`
	MaxSize    int    `validate:"gte=0,lte=100"`
	MaxBackups int    `validate:"gte=0,lte=10"`
	MaxAge     int    `validate:"gte=0,lte=365"`
}

// Validate checks that all fields in LoggerSettings are valid.
func (s *LoggerSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}

	if s.LogType == LogTypeFile {
		if s.MaxSize < 1 {
			return fmt.Errorf("max size must be between 1 and 100 MB")
		}
		if s.MaxBackups < 1 {
			return fmt.Errorf("max backups must be between 1 and 10")
		}
		if s.MaxAge < 1 {
			return fmt.Errorf("max age must be between 1 and 365 days")
		}
	}

	return nil
}
