package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/duty-roster/pkg/core/services"
)

// GenerateRosterCmd creates the generateRoster command
func GenerateRosterCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generateRoster <YYYY-MM>",
		Short: "Fill unscheduled shifts for a month and save them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := services.ParseMonth(args[0])
			if err != nil {
				return err
			}
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			asJSON, _ := cmd.Flags().GetBool("json")

			app.Logger.Debug("generateRoster command",
				zap.String("month", args[0]),
				zap.Bool("dry_run", dryRun))

			result, err := services.GenerateRoster(
				app.Ctx,
				app.Database,
				app.mailer(),
				app.Cfg,
				app.Logger,
				year,
				month,
				dryRun,
			)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(result.Result)
			}

			printGenerateResult(result, dryRun)
			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Generate without saving to the database")
	cmd.Flags().Bool("json", false, "Print the generation result as JSON")

	return cmd
}

func printGenerateResult(result *services.GenerateRosterResult, dryRun bool) {
	if dryRun {
		fmt.Printf("\n✓ Roster generated (DRY RUN - not saved)\n\n")
	} else {
		fmt.Printf("\n✓ Roster generated and saved!\n\n")
		fmt.Printf("Run ID:  %s\n", result.RunID)
	}
	fmt.Printf("Period:  %s to %s\n", result.Dates[0], result.Dates[len(result.Dates)-1])
	fmt.Printf("Entries: %d\n\n", len(result.Result.Entries))

	fmt.Printf("%-24s %-10s %-6s %5s %5s %7s\n", "Staff", "Type", "Night", "Work", "Off", "Target")
	for _, s := range result.Result.StaffSummary {
		night := ""
		if s.NightSpecialist {
			night = "yes"
		}
		target := "-"
		if s.OffTarget != nil {
			target = fmt.Sprintf("%d", *s.OffTarget)
		}
		fmt.Printf("%-24s %-10s %-6s %5d %5d %7s\n", s.Name, s.EmploymentType, night, s.WorkDays, s.OffDays, target)
	}
	fmt.Println()

	if len(result.Result.UnmetCoverage) == 0 {
		fmt.Println("All dates fully covered.")
	} else {
		fmt.Printf("⚠️  Coverage unmet on %d date(s):\n", len(result.Result.UnmetCoverage))
		for _, u := range result.Result.UnmetCoverage {
			fmt.Printf("  %s  required %d  D %d  E %d  N %d\n", u.Date, u.Required, u.AssignedD, u.AssignedE, u.AssignedN)
		}
	}

	if len(result.Result.Violations) > 0 {
		fmt.Printf("\n⚠️  %d rule violation(s) in existing data:\n", len(result.Result.Violations))
		for _, v := range result.Result.Violations {
			fmt.Printf("  %s  %s  %s: %s\n", v.Date, v.StaffID, v.Rule, v.Description)
		}
	}

	for _, recipient := range result.AlertsSent {
		fmt.Printf("  ✓ Alert sent to %s\n", recipient)
	}
	for _, fa := range result.FailedAlerts {
		fmt.Printf("  ✗ Alert to %s failed: %s\n", fa.Recipient, fa.Error)
	}
	fmt.Println()
}
