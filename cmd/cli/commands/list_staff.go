package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ListStaffCmd creates the listStaff command
func ListStaffCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listStaff",
		Short: "List active staff",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Debug("listStaff command")

			staff, err := app.Database.ListStaff(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list staff: %w", err)
			}

			app.Logger.Info("Staff fetched successfully", zap.Int("count", len(staff)))

			fmt.Printf("\nFound %d staff:\n\n", len(staff))
			for _, s := range staff {
				fmt.Printf("- %s (%s) - %s\n", s.Name, s.ID, s.EmploymentType)
			}

			return nil
		},
	}
}
