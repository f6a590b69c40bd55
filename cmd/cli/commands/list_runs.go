package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ListRunsCmd creates the listRuns command
func ListRunsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listRuns",
		Short: "List saved roster generation runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Debug("listRuns command")

			runs, err := app.Database.GetGenerationRuns(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list generation runs: %w", err)
			}

			app.Logger.Info("Generation runs fetched successfully", zap.Int("count", len(runs)))

			if len(runs) == 0 {
				fmt.Println("No generation runs saved yet.")
				return nil
			}

			fmt.Printf("\n%-36s  %-10s  %-10s  %7s  %5s  %s\n", "Run ID", "From", "To", "Entries", "Unmet", "Created")
			for _, r := range runs {
				fmt.Printf("%-36s  %-10s  %-10s  %7d  %5d  %s\n", r.ID, r.PeriodStart, r.PeriodEnd, r.EntryCount, r.UnmetCount, r.CreatedAt)
			}
			fmt.Println()

			return nil
		},
	}
}
