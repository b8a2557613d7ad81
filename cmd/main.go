// Package main provides the CLI entrypoint for revwhois.
// It wires the lookup and aggregate commands, loads configuration, and initializes logging.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"revwhois/internal/config"
	"revwhois/internal/report"
	"revwhois/pkg/logger"
	"revwhois/pkg/metrics"
	"revwhois/pkg/storage/fsstore"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds the state shared by all commands: persistent flags and the
// configuration loaded from them.
type app struct {
	cfg *config.Config

	envFile     string
	outDir      string
	metricsFile string
	verbose     bool
	csv         bool
	noColor     bool
}

// load reads the configuration, applies explicitly set flags on top of it and
// initializes logging.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return err //nolint: wrapcheck
	}
	if cmd.Flags().Changed("out-dir") {
		cfg.OutDir = a.outDir
	}
	if err := cfg.Validate(); err != nil {
		return err //nolint: wrapcheck
	}
	a.cfg = cfg

	logger.Setup(cfg.Environment, a.verbose)
	logger.Debug(cmd.Context(), "config loaded",
		zap.String("env_file", a.envFile),
		zap.String("out_dir", cfg.OutDir),
		zap.Bool("api_key", cfg.HasAPIKey()))

	return nil
}

func (a *app) store() *fsstore.FS {
	return fsstore.New(a.cfg.OutDir)
}

func (a *app) reporter(cmd *cobra.Command) *report.Reporter {
	return report.New(cmd.OutOrStdout(), a.noColor)
}

// recorder returns nil unless a metrics file was requested.
func (a *app) recorder() *metrics.Recorder {
	if a.metricsFile == "" {
		return nil
	}

	return metrics.New()
}

func (a *app) flushMetrics(ctx context.Context, rec *metrics.Recorder) {
	if rec == nil {
		return
	}
	if err := rec.WriteTextfile(a.metricsFile); err != nil {
		logger.Warn(ctx, "could not write metrics", zap.Error(err))

		return
	}
	logger.Debug(ctx, "metrics written", zap.String("path", a.metricsFile))
}

// rootCommand builds the lookup command with the persistent flags and the
// subcommands registered.
func rootCommand(a *app) *cobra.Command {
	rootCmd := lookupCommand(a)
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return a.load(cmd)
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.envFile, "env-file", ".env", "Environment or config file (.env, .yml, .json)")
	pf.StringVar(&a.outDir, "out-dir", config.DefaultOutDir, "Directory for result files and domain lists")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "Write run metrics to this Prometheus textfile")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	pf.BoolVar(&a.csv, "csv", false, "Also write domains.csv")
	pf.BoolVar(&a.noColor, "no-color", false, "Disable coloured output")

	rootCmd.AddCommand(aggregateCommand(a))

	return rootCmd
}

// run executes the CLI with args and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := rootCommand(&app{})
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return 1
	}

	return 0
}

// main executes the CLI under a signal-cancelled context.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()

			panic(p)
		}
	}()

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	logger.Sync()
	os.Exit(code) //nolint: gocritic
}
