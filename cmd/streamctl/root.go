package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kbukum/gostream/config"
	"github.com/kbukum/gostream/errors"
	"github.com/kbukum/gostream/logger"
	"github.com/kbukum/gostream/observability"
	"github.com/kbukum/gostream/validation"
	"github.com/kbukum/gostream/version"
)

const appName = "streamctl"

// app holds the state shared by every subcommand for one invocation.
type app struct {
	configFile string
	envFile    string
	runIDFlag  string
	onEndless  string
	logLevel   string

	cfg      *config.Config
	runID    string
	metrics  *observability.Metrics
	shutdown observability.ShutdownFunc
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           appName,
		Short:         "Run lazy stream pipelines",
		Long:          "streamctl builds pull-based stream pipelines over integer ranges and word lists and prints their results.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default: searched in ./cmd/streamctl, ./config and .)")
	flags.StringVar(&a.envFile, "env-file", "", ".env file to load before reading the environment")
	flags.StringVar(&a.runIDFlag, "run-id", "", "UUID attached to logs and spans (default: generated)")
	flags.StringVar(&a.onEndless, "on-endless", "", "endless violation policy: error or abort")
	flags.StringVar(&a.logLevel, "log-level", "", "log level override")

	root.AddCommand(
		newSumCmd(a),
		newStatsCmd(a),
		newPrimesCmd(a),
		newSortCmd(a),
		newCycleCmd(a),
		newCollatzCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup(ctx context.Context) error {
	if err := validation.New().
		OptionalUUID("run-id", a.runIDFlag).
		OneOf("on-endless", a.onEndless, []string{"error", "abort"}).
		Validate(); err != nil {
		return err
	}

	var opts []config.LoaderOption
	if a.configFile != "" {
		opts = append(opts, config.WithConfigFile(a.configFile))
	}
	if a.envFile != "" {
		opts = append(opts, config.WithEnvFile(a.envFile))
	}
	cfg, err := config.Load(appName, opts...)
	if err != nil {
		return err
	}
	if a.onEndless != "" {
		cfg.Stream.OnEndlessViolation = a.onEndless
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.Apply(); err != nil {
		return err
	}

	id, err := validation.ParseUUID("run-id", a.runIDFlag)
	if err != nil {
		return err
	}

	metrics, shutdown, err := observability.Setup(ctx, &cfg.Observability, cfg.Name, version.Get().Short(), cfg.Environment)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.runID = id.String()
	a.metrics = metrics
	a.shutdown = shutdown
	return nil
}

// run executes fn inside a traced run, flushes telemetry and logs the
// outcome.
func (a *app) run(cmd *cobra.Command, fn func(ctx context.Context) error) error {
	run := observability.NewRun(a.runID, cmd.Name(), a.metrics)
	ctx, span := run.Start(cmd.Context())

	log := logger.Get(appName).WithFields(logger.Fields(logger.FieldRunID, a.runID))
	log.Debug("command started", logger.Fields(logger.FieldOperation, cmd.Name()))

	err := fn(ctx)
	if err != nil && !errors.IsAppError(err) {
		err = errors.Internal(err)
	}
	run.End(ctx, span, err)
	if serr := a.shutdown(cmd.Context()); serr != nil {
		log.Warn("telemetry shutdown failed", logger.ErrorFields(cmd.Name(), serr))
	}
	if err != nil {
		log.Error("command failed", logger.ErrorFields(cmd.Name(), err))
		return err
	}
	log.Info("command finished", logger.Fields(
		logger.FieldOperation, cmd.Name(),
		"duration", run.Duration().String(),
	))
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// version needs no configuration.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := cmd.OutOrStdout().Write([]byte(version.Get().String() + "\n"))
			return err
		},
	}
}
