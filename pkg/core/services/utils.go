package services

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/jakechorley/duty-roster/internal/config"
	"github.com/jakechorley/duty-roster/pkg/core/roster"
	"github.com/jakechorley/duty-roster/pkg/db"
)

const dateLayout = "2006-01-02"

// ParseMonth parses a "YYYY-MM" argument
func ParseMonth(s string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("month must be in YYYY-MM format, got %q", s)
	}
	return t.Year(), t.Month(), nil
}

// MonthDates returns every date of the month in order, formatted "2006-01-02"
func MonthDates(year int, month time.Month) ([]string, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := start.AddDate(0, 1, -1).Day()

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: start,
		Count:   days,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build month rule: %w", err)
	}

	occurrences := rule.All()
	dates := make([]string, len(occurrences))
	for i, t := range occurrences {
		dates[i] = t.Format(dateLayout)
	}
	return dates, nil
}

// CoverageFloors evaluates each override's RRULE over the period spanned by dates.
// When several overrides hit the same date the largest minimum wins.
func CoverageFloors(overrides []config.CoverageOverride, dates []string) (map[string]int, error) {
	floors := map[string]int{}
	if len(overrides) == 0 || len(dates) == 0 {
		return floors, nil
	}

	start, err := time.Parse(dateLayout, dates[0])
	if err != nil {
		return nil, fmt.Errorf("invalid period start: %w", err)
	}
	end, err := time.Parse(dateLayout, dates[len(dates)-1])
	if err != nil {
		return nil, fmt.Errorf("invalid period end: %w", err)
	}

	inPeriod := make(map[string]bool, len(dates))
	for _, d := range dates {
		inPeriod[d] = true
	}

	for i, override := range overrides {
		opt, err := rrule.StrToROption(override.RRule)
		if err != nil {
			return nil, fmt.Errorf("invalid rrule in coverage override %d: %w", i, err)
		}
		opt.Dtstart = start

		rule, err := rrule.NewRRule(*opt)
		if err != nil {
			return nil, fmt.Errorf("failed to build coverage override %d: %w", i, err)
		}

		for _, t := range rule.Between(start, end, true) {
			date := t.Format(dateLayout)
			if inPeriod[date] && override.MinRequired > floors[date] {
				floors[date] = override.MinRequired
			}
		}
	}

	return floors, nil
}

// RosterParams merges configured generator overrides onto the defaults
func RosterParams(cfg *config.Config) roster.Params {
	params := roster.DefaultParams()
	if cfg == nil {
		return params
	}

	g := cfg.Generator
	setInt(&params.BaseOffTarget, g.BaseOffTarget)
	setInt(&params.NightSpecialistOffTarget, g.NightSpecialistOffTarget)
	setInt(&params.MaxConsecutiveWorkDays, g.MaxConsecutiveWorkDays)
	setInt(&params.NewbornsPerStaff, g.NewbornsPerStaff)
	setFloat(&params.WeightWorkDays, g.WeightWorkDays)
	setFloat(&params.WeightConsecutive, g.WeightConsecutive)
	setFloat(&params.WeightShiftLoad, g.WeightShiftLoad)
	setFloat(&params.WeightOffUrgency, g.WeightOffUrgency)
	setFloat(&params.NightBias, g.NightBias)

	return params
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// convertStaff maps store rows to generator input, skipping rows with an unknown employment type
func convertStaff(rows []db.Staff, logger *zap.Logger) []roster.Staff {
	staff := make([]roster.Staff, 0, len(rows))
	for _, s := range rows {
		employment := roster.EmploymentType(s.EmploymentType)
		if employment != roster.FullTime && employment != roster.PartTime {
			logger.Warn("Skipping staff with unknown employment type",
				zap.String("staff_id", s.ID),
				zap.String("employment_type", s.EmploymentType))
			continue
		}
		staff = append(staff, roster.Staff{ID: s.ID, Name: s.Name, EmploymentType: employment})
	}
	return staff
}

func convertAssignments(rows []db.ScheduleEntry) []roster.ExistingAssignment {
	assignments := make([]roster.ExistingAssignment, len(rows))
	for i, e := range rows {
		assignments[i] = roster.ExistingAssignment{StaffID: e.StaffID, Date: e.WorkDate, DutyCode: e.DutyType}
	}
	return assignments
}

func convertStays(rows []db.Stay) []roster.Stay {
	stays := make([]roster.Stay, len(rows))
	for i, s := range rows {
		stays[i] = roster.Stay{CheckIn: s.CheckIn, CheckOut: s.CheckOut}
		if s.BabyCount != nil {
			stays[i].BabyCount = *s.BabyCount
		}
	}
	return stays
}

func convertLeaveRequests(rows []db.LeaveRequest) []roster.LeaveRequest {
	requests := make([]roster.LeaveRequest, len(rows))
	for i, r := range rows {
		requests[i] = roster.LeaveRequest{StaffID: r.StaffID, Date: r.Date}
	}
	return requests
}

// convertToDBEntries tags generated entries with the run that produced them
func convertToDBEntries(entries []roster.Entry, runID string) []db.ScheduleEntry {
	rows := make([]db.ScheduleEntry, len(entries))
	for i, e := range entries {
		rows[i] = db.ScheduleEntry{
			StaffID:         e.StaffID,
			WorkDate:        e.WorkDate,
			DutyType:        string(e.DutyType),
			GenerationRunID: runID,
		}
	}
	return rows
}
