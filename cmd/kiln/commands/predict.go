package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/kiln/internal/app"
)

func (c *CLI) newPredictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict [blocks...]",
		Short: "Apply the fitted pipeline to a dataset",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, _ := cmd.Flags().GetString("data")
			out, _ := cmd.Flags().GetString("out")
			noCache, _ := cmd.Flags().GetBool("no-cache")

			results, err := c.app.Predict(cmd.Context(), app.PredictOptions{
				ConfigPath: c.configPath,
				DataPath:   data,
				OutPath:    out,
				Blocks:     args,
				NoCache:    noCache,
			})
			if err != nil {
				return err
			}
			printResults(cmd, results)
			return nil
		},
	}
	cmd.Flags().StringP("data", "d", "", "CSV file with the inference data")
	cmd.Flags().StringP("out", "o", "", "Write the estimator outputs to this CSV file")
	cmd.Flags().BoolP("no-cache", "n", false, "Read every parent output back from the backend instead of memory")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}
