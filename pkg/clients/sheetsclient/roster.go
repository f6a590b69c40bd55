package sheetsclient

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	headerRowIndex = 2 // Row 3; rows 1-2 hold the title and a gap
	notesColumn    = "Notes"
)

// PublishedRosterRow is one staff member's line in the published roster
type PublishedRosterRow struct {
	Name   string
	Duties []string // One duty code per date, "" when unassigned
}

// PublishedCoverageRow is a per-date count shown under the staff rows
type PublishedCoverageRow struct {
	Label  string
	Counts []int
}

// PublishedRoster represents the complete published roster for one month
type PublishedRoster struct {
	Ward        string
	PeriodStart string   // Format: "2006-01-02"
	Dates       []string // Format: "2006-01-02"
	Rows        []PublishedRosterRow
	Coverage    []PublishedCoverageRow
}

// PublishRoster writes the roster to a tab named after its month, e.g. "May 2024".
// An existing tab is cleared and rewritten; values in its Notes column are carried over by staff name.
func (c *Client) PublishRoster(ctx context.Context, spreadsheetID string, roster *PublishedRoster) (string, error) {
	tabTitle, err := RosterTabTitle(roster.PeriodStart)
	if err != nil {
		return "", fmt.Errorf("failed to generate tab title: %w", err)
	}

	exists, err := c.SheetExists(ctx, spreadsheetID, tabTitle)
	if err != nil {
		return "", err
	}

	notes := map[string]string{}
	if exists {
		existing, err := c.GetValues(ctx, spreadsheetID, fmt.Sprintf("'%s'!A1:ZZ", tabTitle))
		if err != nil {
			return "", fmt.Errorf("failed to read existing tab data: %w", err)
		}
		notes = extractNotes(existing)

		if err := c.ClearValues(ctx, spreadsheetID, fmt.Sprintf("'%s'!A1:ZZ", tabTitle)); err != nil {
			return "", fmt.Errorf("failed to clear existing tab: %w", err)
		}
	} else {
		if _, err := c.CreateSheet(ctx, spreadsheetID, tabTitle); err != nil {
			return "", fmt.Errorf("failed to create tab: %w", err)
		}
	}

	values, err := buildRosterValues(roster, notes)
	if err != nil {
		return "", err
	}

	if err := c.UpdateValues(ctx, spreadsheetID, fmt.Sprintf("'%s'!A1", tabTitle), values); err != nil {
		return "", fmt.Errorf("failed to write roster: %w", err)
	}

	return tabTitle, nil
}

// RosterTabTitle formats the month of periodStart, e.g. "May 2024"
func RosterTabTitle(periodStart string) (string, error) {
	start, err := time.Parse("2006-01-02", periodStart)
	if err != nil {
		return "", fmt.Errorf("invalid period start: %w", err)
	}
	return start.Format("January 2006"), nil
}

// buildRosterValues lays out the title, a gap row, the header, staff rows, a gap and coverage rows
func buildRosterValues(roster *PublishedRoster, notes map[string]string) ([][]interface{}, error) {
	header := []interface{}{"Staff"}
	for _, date := range roster.Dates {
		d, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, fmt.Errorf("invalid roster date %q: %w", date, err)
		}
		header = append(header, d.Format("Mon 02"))
	}
	header = append(header, notesColumn)

	title := "Duty roster"
	if roster.Ward != "" {
		title = fmt.Sprintf("%s duty roster", roster.Ward)
	}

	values := [][]interface{}{
		{title},
		{},
		header,
	}

	for _, row := range roster.Rows {
		sheetRow := []interface{}{row.Name}
		for i := range roster.Dates {
			duty := ""
			if i < len(row.Duties) {
				duty = row.Duties[i]
			}
			sheetRow = append(sheetRow, duty)
		}
		sheetRow = append(sheetRow, notes[row.Name])
		values = append(values, sheetRow)
	}

	if len(roster.Coverage) > 0 {
		values = append(values, []interface{}{})
	}
	for _, cov := range roster.Coverage {
		sheetRow := []interface{}{cov.Label}
		for i := range roster.Dates {
			count := 0
			if i < len(cov.Counts) {
				count = cov.Counts[i]
			}
			sheetRow = append(sheetRow, count)
		}
		values = append(values, sheetRow)
	}

	return values, nil
}

// extractNotes reads staff name to Notes cell from a previously published tab
func extractNotes(existing [][]interface{}) map[string]string {
	notes := map[string]string{}
	if len(existing) <= headerRowIndex {
		return notes
	}

	notesCol := findColumnIndex(existing[headerRowIndex], notesColumn)
	if notesCol == -1 {
		return notes
	}

	for _, row := range existing[headerRowIndex+1:] {
		if len(row) == 0 || len(row) <= notesCol {
			continue
		}
		name, ok := row[0].(string)
		if !ok || name == "" {
			continue
		}
		if note, ok := row[notesCol].(string); ok && strings.TrimSpace(note) != "" {
			notes[name] = note
		}
	}

	return notes
}

// findColumnIndex finds the index of a column by its header name
func findColumnIndex(header []interface{}, columnName string) int {
	for i, cell := range header {
		if str, ok := cell.(string); ok && str == columnName {
			return i
		}
	}
	return -1
}
