package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/duty-roster/pkg/core/roster"
	"github.com/jakechorley/duty-roster/pkg/db"
)

// RosterStore is the store access needed to read a saved roster
type RosterStore interface {
	db.StaffStore
	db.ScheduleStore
}

// RosterGridRow is one staff member's duties across the month
type RosterGridRow struct {
	StaffID string
	Name    string
	Duties  []string // Raw duty codes, "/" where nothing is scheduled
}

// RosterGrid is a staff by date view of a month's schedule
type RosterGrid struct {
	Dates    []string
	Rows     []RosterGridRow
	Coverage []roster.Coverage // Per date, parallel to Dates
}

// ViewRoster reads the saved schedule for a month as a grid
func ViewRoster(
	ctx context.Context,
	store RosterStore,
	logger *zap.Logger,
	year int,
	month time.Month,
) (*RosterGrid, error) {
	dates, err := MonthDates(year, month)
	if err != nil {
		return nil, err
	}

	logger.Debug("Fetching staff")
	staff, err := store.ListStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}

	logger.Debug("Fetching schedule entries", zap.String("from", dates[0]), zap.String("to", dates[len(dates)-1]))
	entries, err := store.GetScheduleEntries(ctx, dates[0], dates[len(dates)-1])
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule entries: %w", err)
	}

	grid := BuildRosterGrid(staff, entries, dates)
	logger.Debug("Roster grid built", zap.Int("rows", len(grid.Rows)), zap.Int("entries", len(entries)))

	return grid, nil
}

// BuildRosterGrid lays entries out by staff and date.
// Rows follow staff order by name; entries for staff not in the list get a row keyed by their id.
func BuildRosterGrid(staff []db.Staff, entries []db.ScheduleEntry, dates []string) *RosterGrid {
	dateIdx := make(map[string]int, len(dates))
	for i, d := range dates {
		dateIdx[d] = i
	}

	grid := &RosterGrid{
		Dates:    dates,
		Rows:     []RosterGridRow{},
		Coverage: make([]roster.Coverage, len(dates)),
	}

	rowIdx := map[string]int{}
	addRow := func(id, name string) int {
		duties := make([]string, len(dates))
		for i := range duties {
			duties[i] = string(roster.ShiftOff)
		}
		grid.Rows = append(grid.Rows, RosterGridRow{StaffID: id, Name: name, Duties: duties})
		rowIdx[id] = len(grid.Rows) - 1
		return rowIdx[id]
	}

	sorted := slices.Clone(staff)
	slices.SortStableFunc(sorted, func(a, b db.Staff) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	for _, s := range sorted {
		if _, seen := rowIdx[s.ID]; !seen {
			addRow(s.ID, s.Name)
		}
	}

	for _, e := range entries {
		i, ok := dateIdx[e.WorkDate]
		if !ok {
			continue
		}
		r, ok := rowIdx[e.StaffID]
		if !ok {
			r = addRow(e.StaffID, e.StaffID)
		}
		if strings.TrimSpace(e.DutyType) != "" {
			grid.Rows[r].Duties[i] = e.DutyType
		}
		grid.Coverage[i].Add(roster.ParseDutyCode(e.DutyType))
	}

	return grid
}
