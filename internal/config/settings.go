package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "RSAKIT_"

// Settings configures the rsakit generator and CLI.
type Settings struct {
	Seed                string
	Concurrency         int `validate:"gte=1,lte=256"`
	MaxAttempts         int `validate:"gte=1"`
	MaxExponentAttempts int `validate:"gte=1"`
	ExtraRounds         int `validate:"gte=0"`
	MinFactors          int `validate:"gte=1"`
	MaxFactors          int `validate:"gtefield=MinFactors,lte=30"`
	ExponentBelowPhi    bool
	ProvablePrimes      bool

	Logger LoggerSettings
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		Concurrency:         1,
		MaxAttempts:         100000,
		MaxExponentAttempts: 10000,
		MinFactors:          4,
		MaxFactors:          20,
		Logger: LoggerSettings{
			LogLevel:   LogLevelWarning,
			LogType:    LogTypeConsole,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
	}
}

// Load returns the default settings overridden by RSAKIT_* environment
// variables. If envFile is non-empty it is loaded into the environment
// first; variables already set win over the file. A missing envFile is an
// error only when required is true.
func Load(envFile string, required bool) (*Settings, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if required || !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("load %s: %w", envFile, err)
			}
		}
	}

	s := Default()
	l := &s.Logger
	var errs []error
	setString(&s.Seed, "SEED")
	errs = append(errs,
		setInt(&s.Concurrency, "CONCURRENCY"),
		setInt(&s.MaxAttempts, "MAX_ATTEMPTS"),
		setInt(&s.MaxExponentAttempts, "MAX_EXPONENT_ATTEMPTS"),
		setInt(&s.ExtraRounds, "EXTRA_ROUNDS"),
		setInt(&s.MinFactors, "MIN_FACTORS"),
		setInt(&s.MaxFactors, "MAX_FACTORS"),
		setBool(&s.ExponentBelowPhi, "EXPONENT_BELOW_PHI"),
		setBool(&s.ProvablePrimes, "PROVABLE_PRIMES"),
		setInt(&l.MaxSize, "LOG_MAX_SIZE"),
		setInt(&l.MaxBackups, "LOG_MAX_BACKUPS"),
		setInt(&l.MaxAge, "LOG_MAX_AGE"),
	)
	setString(&l.LogLevel, "LOG_LEVEL")
	setString(&l.LogType, "LOG_TYPE")
	setString(&l.FilePath, "LOG_FILE")

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the settings and the nested logger settings.
func (s *Settings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for Settings: %w", err)
	}
	return s.Logger.Validate()
}

func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + name)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func setString(dst *string, name string) {
	if v, ok := lookup(name); ok {
		*dst = v
	}
}

func setInt(dst *int, name string) error {
	v, ok := lookup(name)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
	}
	*dst = n
	return nil
}

func setBool(dst *bool, name string) error {
	v, ok := lookup(name)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
	}
	*dst = b
	return nil
}
