package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/kiln/internal/app"
	"go.trai.ch/kiln/internal/ui/output"
	"go.trai.ch/kiln/internal/ui/style"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan [blocks...]",
		Short: "Print the task-status table of a run without executing it",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := c.app.Plan(app.PlanOptions{ConfigPath: c.configPath, Blocks: args})
			if err != nil {
				return err
			}

			out := output.New(cmd.OutOrStdout())
			for _, t := range tasks {
				icon, color := style.Status(t.Status())
				_, _ = fmt.Fprintf(out, "%s %s\n", output.Paint(out, icon, color), t)
			}
			return nil
		},
	}
}
