// Package cli provides the hungrymonkey command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/giannpelle/AI-lab1-HungryMonkey/internal/logging"
)

// Version information set at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// App represents the CLI application.
type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer

	logLevel  string
	logFormat string
}

// New creates a new CLI application.
func New() *App {
	app := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	app.root = &cobra.Command{
		Use:   "hungrymonkey",
		Short: "Search planners for the hungry monkey grid world",
		Long: `hungrymonkey plans paths for a monkey collecting bananas on a 2D grid.

Worlds come from JSON files (tools/gen_worlds) or ASCII map text where '#'
blocks a cell, 'B' is a banana and 'M' the monkey. Three planners are
available: iterative deepening (ids), uniform cost (ucs) and A* (astar).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Init(logging.Config{Level: app.logLevel, Format: app.logFormat})
			// Init only takes effect once per process; the level flag
			// still applies to later invocations.
			logging.SetLevel(app.logLevel)
		},
	}

	app.root.PersistentFlags().StringVar(&app.logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	app.root.PersistentFlags().StringVar(&app.logFormat, "log-format", "console", "Log format (console or json)")

	app.root.AddCommand(
		app.newVersionCmd(),
		app.newSolveCmd(),
		app.newBenchCmd(),
	)

	return app
}

// WithOutput sets custom output writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// Execute runs the CLI application.
func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the CLI with specific arguments (useful for testing).
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

// newVersionCmd creates the version command.
func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "hungrymonkey version %s\n", Version)
			fmt.Fprintf(a.stdout, "  Git commit: %s\n", GitCommit)
			fmt.Fprintf(a.stdout, "  Build date: %s\n", BuildDate)
		},
	}
}
