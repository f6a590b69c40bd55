package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/duty-roster/pkg/core/roster"
	"github.com/jakechorley/duty-roster/pkg/core/services"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorBlue   = "\033[34m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

// ViewRosterCmd creates the viewRoster command
func ViewRosterCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "viewRoster <YYYY-MM>",
		Short: "Show a month's saved roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := services.ParseMonth(args[0])
			if err != nil {
				return err
			}

			app.Logger.Debug("viewRoster command", zap.String("month", args[0]))

			grid, err := services.ViewRoster(app.Ctx, app.Database, app.Logger, year, month)
			if err != nil {
				return err
			}

			printRosterGrid(grid, year, month)
			return nil
		},
	}
}

const cellWidth = 4

func printRosterGrid(grid *services.RosterGrid, year int, month time.Month) {
	fmt.Printf("\nRoster for %s %d\n\n", month, year)

	nameColWidth := 20
	for _, row := range grid.Rows {
		if len(row.Name)+2 > nameColWidth {
			nameColWidth = len(row.Name) + 2
		}
	}

	fmt.Printf("%-*s", nameColWidth, "")
	for _, date := range grid.Dates {
		fmt.Printf("%-*s", cellWidth, date[len(date)-2:])
	}
	fmt.Println()
	fmt.Println(strings.Repeat("-", nameColWidth+cellWidth*len(grid.Dates)))

	for _, row := range grid.Rows {
		fmt.Printf("%-*s", nameColWidth, row.Name)
		for _, duty := range row.Duties {
			fmt.Print(colorize(fmt.Sprintf("%-*s", cellWidth, duty), dutyColor(duty)))
		}
		fmt.Println()
	}
	fmt.Println()

	printCoverageLine("Day", nameColWidth, grid.Coverage, func(c roster.Coverage) int { return c.D })
	printCoverageLine("Evening", nameColWidth, grid.Coverage, func(c roster.Coverage) int { return c.E })
	printCoverageLine("Night", nameColWidth, grid.Coverage, func(c roster.Coverage) int { return c.N })
	fmt.Println()
}

func printCoverageLine(label string, width int, coverage []roster.Coverage, count func(roster.Coverage) int) {
	fmt.Printf("%-*s", width, label)
	for _, c := range coverage {
		n := count(c)
		cell := fmt.Sprintf("%-*d", cellWidth, n)
		if n == 0 {
			cell = colorize(cell, colorYellow)
		}
		fmt.Print(cell)
	}
	fmt.Println()
}

// dutyColor picks a color for a raw duty code: nights blue, off dim
func dutyColor(duty string) string {
	switch roster.ParseDutyCode(duty) {
	case roster.ShiftNight:
		return colorBlue
	case roster.ShiftOff:
		return colorDim
	default:
		return ""
	}
}

func colorize(s, color string) string {
	if color == "" {
		return s
	}
	return color + s + colorReset
}
