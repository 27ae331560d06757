package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/faizmokh/questlog/internal/config"
	"github.com/faizmokh/questlog/internal/logging"
	"github.com/faizmokh/questlog/internal/version"
)

// app carries what every command needs once flags are parsed.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *log.Logger
}

// setup loads configuration and builds the logger. Diagnostics go to the
// command's stderr so stdout only ever carries generated output.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Resolve(a.configPath)
	if err != nil {
		return err
	}
	level := cfg.Log.Level
	if a.logLevel != "" {
		level = a.logLevel
	}
	logger, err := logging.New(cmd.ErrOrStderr(), level)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

// runE logs a failing command before cobra hands the error back to Main.
func (a *app) runE(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			if a.logger != nil {
				a.logger.Error("failed", "err", err)
			}
			return err
		}
		return nil
	}
}

// NewRootCommand creates the top-level Cobra command. Run without a
// subcommand it converts --quest to HTML on stdout.
func NewRootCommand(ctx context.Context) *cobra.Command {
	a := &app{}
	var opts generateOptions

	cmd := &cobra.Command{
		Use:     "questlog --quest FILE",
		Short:   "Turn a plain-text quest log into an HTML progress tracker.",
		Version: version.Info(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: a.runE(func(cmd *cobra.Command, args []string) error {
			out, err := a.generate(cmd, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			a.logger.Info("done")
			return nil
		}),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default: $QUESTLOG_CONFIG or ~/.config/questlog/config.toml)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Diagnostics level: debug|info|warn|error (default: info)")
	opts.bind(cmd)
	_ = cmd.MarkFlagRequired("quest")

	cmd.AddCommand(
		newParseCommand(a),
		newWatchCommand(ctx, a),
		newViewCommand(ctx, a),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	cmd := NewRootCommand(ctx)
	return cmd.ExecuteContext(ctx)
}

// Main is a helper used by cmd/questlog/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
