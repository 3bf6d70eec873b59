// Command rsakit generates textbook RSA keys and primes and runs the
// underlying number theory from the command line. Results are printed as
// JSON with integers encoded as decimal strings.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vaultsandbox/rsakit"
	"github.com/vaultsandbox/rsakit/internal/config"
	"github.com/vaultsandbox/rsakit/internal/logging"
)

// Config holds the streams a run reads from and writes to.
type Config struct {
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultConfig returns a Config bound to the process streams.
func DefaultConfig() Config {
	return Config{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// app carries per-invocation state shared by the subcommands.
type app struct {
	cfg Config

	envFile     string
	seed        string
	concurrency int
	logLevel    string

	settings *config.Settings
	logger   *slog.Logger
	closeLog func() error
}

func run(args []string, cfg Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{cfg: cfg}
	root := a.rootCommand()
	root.SetArgs(args[1:])
	return root.ExecuteContext(ctx)
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "rsakit",
		Short: "Textbook RSA and primality tooling",
		Long: `rsakit generates textbook RSA keys from ~128-bit primes, produces
Miller-Rabin pseudoprimes and Lucas-certified primes, and exposes the
number theory behind them.

Settings are read from RSAKIT_* environment variables. --env-file preloads
them from a dotenv file; no file is read unless the flag is given. Flags
override the environment.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.closeLog != nil {
				return a.closeLog()
			}
			return nil
		},
	}
	root.SetOut(a.cfg.Stdout)
	root.SetErr(a.cfg.Stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", "", "dotenv file whose RSAKIT_* values are loaded into the environment")
	flags.StringVar(&a.seed, "seed", "", "seed for deterministic output")
	flags.IntVar(&a.concurrency, "concurrency", 1, "prime search workers")
	flags.StringVar(&a.logLevel, "log-level", config.LogLevelWarning, "debug, info, warning or error")

	root.AddCommand(
		a.keygenCommand(),
		a.encryptCommand(),
		a.decryptCommand(),
		a.primeCommand(),
		a.pseudoprimeCommand(),
		a.isPrimeCommand(),
		a.factorCommand(),
		a.modexpCommand(),
		a.primesCommand(),
	)
	return root
}

// setup loads settings, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	settings, err := config.Load(a.envFile, true)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if flags.Changed("seed") {
		settings.Seed = a.seed
	}
	if flags.Changed("concurrency") {
		settings.Concurrency = a.concurrency
	}
	if flags.Changed("log-level") {
		settings.Logger.LogLevel = a.logLevel
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := logging.New(&settings.Logger, a.cfg.Stderr)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}

	a.settings = settings
	a.logger = logger.With("run_id", uuid.NewString(), "command", cmd.Name())
	a.closeLog = closeLog
	return nil
}

// generator builds a Generator from the loaded settings.
func (a *app) generator() (*rsakit.Generator, error) {
	s := a.settings
	opts := []rsakit.Option{
		rsakit.WithLogger(a.logger),
		rsakit.WithMaxAttempts(s.MaxAttempts),
		rsakit.WithMaxExponentAttempts(s.MaxExponentAttempts),
		rsakit.WithExtraRounds(s.ExtraRounds),
		rsakit.WithConcurrency(s.Concurrency),
		rsakit.WithFactorCount(s.MinFactors, s.MaxFactors),
	}
	if s.Seed != "" {
		opts = append(opts, rsakit.WithSeed([]byte(s.Seed)))
	}
	if s.ExponentBelowPhi {
		opts = append(opts, rsakit.WithExponentBelowTotient())
	}
	if s.ProvablePrimes {
		opts = append(opts, rsakit.WithProvablePrimes())
	}
	return rsakit.New(opts...)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
