package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vadiminshakov/micros/core/config"
	"github.com/vadiminshakov/micros/core/exercise"
	"github.com/vadiminshakov/micros/internal/logging"
	"github.com/vadiminshakov/micros/terminal"
	"github.com/vadiminshakov/micros/ui"
)

const version = "v0.1.0"

// app carries what PersistentPreRunE resolved to the subcommands.
type app struct {
	cfgFile  string
	logLevel string
	noColor  bool

	cfg    config.Config
	logger *slog.Logger
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, newRootCmd(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, root *cobra.Command, args []string) error {
	root.SetArgs(escapeNegativeArgs(args))
	return root.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "micros",
		Short: "Small number exercises: factorial, sign checks and price tiers",
		Long: `micros bundles a few beginner number exercises behind one command.

Without a subcommand it shows a menu on a terminal, or reads exercise names
and their inputs line by line from piped stdin.

Negative numbers can be passed directly (micros factorial -3). When flags
follow them, put -- before the numbers: micros verify --no-color -- -2`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.isTerminal(cmd) {
				return terminal.RunTerminal(cmd.Context(), a.cfg, a.logger, cmd.OutOrStdout())
			}
			return terminal.RunHeadless(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), a.cfg, a.logger)
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.micros/config.json)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	for _, def := range exercise.Definitions() {
		rootCmd.AddCommand(newExerciseCmd(a, def))
	}
	rootCmd.AddCommand(newManifestCmd(), newConfigCmd(a))

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.LoadConfigFrom(a.cfgFile)
	} else {
		a.cfg, err = config.LoadConfigFile()
	}
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		a.cfg.LogLevel = a.logLevel
		if err := a.cfg.Validate(); err != nil {
			return err
		}
	}
	if a.noColor {
		a.cfg.Color = false
	}

	ui.SetColor(a.cfg.Color)
	a.logger = logging.New(cmd.ErrOrStderr(), a.cfg.LogLevel, a.cfg.Color)
	slog.SetDefault(a.logger)

	a.logger.Debug("configuration loaded", "log_level", a.cfg.LogLevel, "max_attempts", a.cfg.MaxAttempts)

	return nil
}

// isTerminal is true only when the command reads the real stdin and it is a tty.
func (a *app) isTerminal(cmd *cobra.Command) bool {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); !ok || f != os.Stdin {
		return false
	}
	return ui.IsTerminal()
}

func (a *app) session(cmd *cobra.Command) (*exercise.Session, func(), error) {
	s := &exercise.Session{
		Out:      cmd.OutOrStdout(),
		Attempts: a.cfg.MaxAttempts,
		Logger:   a.logger,
	}

	if !a.isTerminal(cmd) {
		s.In = ui.NewLineReader(cmd.InOrStdin(), cmd.OutOrStdout())
		return s, func() {}, nil
	}

	console, err := ui.NewConsole(a.cfg.HistoryFile)
	if err != nil {
		return nil, nil, err
	}
	s.In = console
	return s, console.Close, nil
}
