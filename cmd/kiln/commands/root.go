// Package commands implements the CLI commands for kiln.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/kiln/internal/app"
	"go.trai.ch/kiln/internal/build"
	"go.trai.ch/kiln/internal/core/domain"
)

// DefaultConfigPath is the pipeline configuration read when --config is not given.
const DefaultConfigPath = "kiln.yaml"

// CLI represents the command line interface for kiln.
type CLI struct {
	app     Application
	logs    LogControl
	rootCmd *cobra.Command

	configPath string
	jsonLogs   bool
	verbose    bool
}

// Application represents the application logic interface.
type Application interface {
	Fit(ctx context.Context, opts app.FitOptions) ([]domain.EstimatorResult, error)
	Predict(ctx context.Context, opts app.PredictOptions) ([]domain.EstimatorResult, error)
	Plan(opts app.PlanOptions) ([]*domain.Task, error)
	Clean(ctx context.Context, opts app.CleanOptions) error
}

// LogControl switches the log format and level. It may be nil.
type LogControl interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application, logs LogControl) *CLI {
	rootCmd := &cobra.Command{
		Use:           "kiln",
		Short:         "Train and apply block pipelines with cached, resumable stages",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		logs:    logs,
		rootCmd: rootCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", DefaultConfigPath, "Path to the pipeline configuration")
	flags.BoolVar(&c.jsonLogs, "json", false, "Write logs as JSON")
	flags.BoolVar(&c.verbose, "verbose", false, "Enable debug logging")

	rootCmd.PersistentPreRun = func(*cobra.Command, []string) {
		if c.logs == nil {
			return
		}
		c.logs.SetJSON(c.jsonLogs)
		c.logs.SetVerbose(c.verbose)
	}

	rootCmd.AddCommand(c.newFitCmd())
	rootCmd.AddCommand(c.newPredictCmd())
	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
