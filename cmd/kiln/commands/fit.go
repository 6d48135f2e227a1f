package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/kiln/internal/app"
	"go.trai.ch/kiln/internal/core/domain"
)

func (c *CLI) newFitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fit [blocks...]",
		Short: "Train the pipeline, reusing blocks fitted by earlier runs",
		Long: "Train the named blocks and their ancestors, or every block when none is named.\n" +
			"Blocks fitted by an earlier run serve their stored output unless a parent was retrained.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, _ := cmd.Flags().GetString("data")
			noCache, _ := cmd.Flags().GetBool("no-cache")
			force, _ := cmd.Flags().GetBool("force")

			results, err := c.app.Fit(cmd.Context(), app.FitOptions{
				ConfigPath: c.configPath,
				DataPath:   data,
				Blocks:     args,
				NoCache:    noCache,
				Force:      force,
			})
			if err != nil {
				return err
			}
			printResults(cmd, results)
			return nil
		},
	}
	cmd.Flags().StringP("data", "d", "", "CSV file with the training data")
	cmd.Flags().BoolP("no-cache", "n", false, "Read every parent output back from the backend instead of memory")
	cmd.Flags().BoolP("force", "f", false, "Retrain every block even when a stored output exists")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

func printResults(cmd *cobra.Command, results []domain.EstimatorResult) {
	out := cmd.OutOrStdout()
	for _, r := range results {
		_, _ = fmt.Fprintf(out, "%s\t%s\t%d rows\n", r.Name, r.RuntimeEnv, r.Output.Rows())
	}
}
