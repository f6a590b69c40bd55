package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/duty-roster/pkg/core/services"
)

// PublishRosterCmd creates the publishRoster command
func PublishRosterCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "publishRoster <YYYY-MM>",
		Short: "Publish a month's saved roster to the roster sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := services.ParseMonth(args[0])
			if err != nil {
				return err
			}

			app.Logger.Debug("publishRoster command", zap.String("month", args[0]))

			result, err := services.PublishRoster(app.Ctx, app.Database, app.publisher(), app.Cfg, app.Logger, year, month)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Roster published to tab %q (%d staff)\n\n", result.TabTitle, len(result.Published.Rows))
			return nil
		},
	}
}
