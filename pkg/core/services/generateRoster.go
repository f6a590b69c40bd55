package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/duty-roster/internal/config"
	"github.com/jakechorley/duty-roster/pkg/core/roster"
	"github.com/jakechorley/duty-roster/pkg/db"
)

// GenerateRosterStore is the store access needed to generate a roster
type GenerateRosterStore interface {
	db.StaffStore
	db.ScheduleStore
	db.OccupancyStore
	db.LeaveStore
	db.RunStore
}

// Mailer sends plain text email
type Mailer interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// FailedAlert records an alert email that could not be sent
type FailedAlert struct {
	Recipient string
	Error     string
}

// GenerateRosterResult is the outcome of GenerateRoster
type GenerateRosterResult struct {
	// RunID is empty for dry runs
	RunID        string
	Dates        []string
	Result       *roster.Result
	Saved        bool
	AlertsSent   []string
	FailedAlerts []FailedAlert
}

// GenerateRoster fills the unscheduled cells of a month and, unless dryRun, saves the new entries.
// Existing schedule rows for the month are locked and left untouched.
// When coverage is unmet after a saved run, each configured alert recipient is emailed.
// mailer may be nil, in which case no alerts are sent.
func GenerateRoster(
	ctx context.Context,
	store GenerateRosterStore,
	mailer Mailer,
	cfg *config.Config,
	logger *zap.Logger,
	year int,
	month time.Month,
	dryRun bool,
) (*GenerateRosterResult, error) {
	dates, err := MonthDates(year, month)
	if err != nil {
		return nil, err
	}
	from, to := dates[0], dates[len(dates)-1]

	logger.Debug("Generating roster",
		zap.String("from", from),
		zap.String("to", to),
		zap.Bool("dry_run", dryRun))

	snapshot, err := loadSnapshot(ctx, store, cfg, logger, dates)
	if err != nil {
		return nil, err
	}

	params := RosterParams(cfg)
	result := roster.Generate(*snapshot, params)

	logger.Info("Roster generated",
		zap.Int("entries", len(result.Entries)),
		zap.Int("unmet_dates", len(result.UnmetCoverage)),
		zap.Int("violations", len(result.Violations)))

	for _, unmet := range result.UnmetCoverage {
		logger.Warn("Coverage unmet",
			zap.String("date", unmet.Date),
			zap.Int("required", unmet.Required),
			zap.Int("day", unmet.AssignedD),
			zap.Int("evening", unmet.AssignedE),
			zap.Int("night", unmet.AssignedN))
	}
	for _, v := range result.Violations {
		logger.Warn("Rule violation",
			zap.String("staff_id", v.StaffID),
			zap.String("date", v.Date),
			zap.String("rule", v.Rule),
			zap.String("description", v.Description))
	}

	out := &GenerateRosterResult{
		Dates:  dates,
		Result: result,
	}

	if dryRun {
		logger.Info("Dry run - roster not saved")
		return out, nil
	}

	run := &db.GenerationRun{
		ID:          uuid.New().String(),
		PeriodStart: from,
		PeriodEnd:   to,
		EntryCount:  len(result.Entries),
		UnmetCount:  len(result.UnmetCoverage),
	}

	logger.Debug("Recording generation run", zap.String("run_id", run.ID))
	if err := store.InsertGenerationRun(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to record generation run: %w", err)
	}

	if err := store.UpsertScheduleEntries(ctx, convertToDBEntries(result.Entries, run.ID)); err != nil {
		return nil, fmt.Errorf("failed to save schedule entries: %w", err)
	}

	out.RunID = run.ID
	out.Saved = true
	logger.Info("Roster saved", zap.String("run_id", run.ID), zap.Int("entries", len(result.Entries)))

	if len(result.UnmetCoverage) > 0 {
		out.AlertsSent, out.FailedAlerts = sendUnmetAlerts(ctx, mailer, cfg, logger, from, result.UnmetCoverage)
	}

	return out, nil
}

// loadSnapshot reads everything the generator needs for dates
func loadSnapshot(
	ctx context.Context,
	store GenerateRosterStore,
	cfg *config.Config,
	logger *zap.Logger,
	dates []string,
) (*roster.Snapshot, error) {
	from, to := dates[0], dates[len(dates)-1]

	logger.Debug("Fetching staff")
	staff, err := store.ListStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}

	logger.Debug("Fetching existing schedule entries")
	entries, err := store.GetScheduleEntries(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule entries: %w", err)
	}

	logger.Debug("Fetching stays")
	stays, err := store.GetStays(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stays: %w", err)
	}

	logger.Debug("Fetching leave requests")
	leave, err := store.GetLeaveRequests(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leave requests: %w", err)
	}

	var overrides []config.CoverageOverride
	if cfg != nil {
		overrides = cfg.CoverageOverrides
	}
	floors, err := CoverageFloors(overrides, dates)
	if err != nil {
		return nil, err
	}

	logger.Debug("Snapshot loaded",
		zap.Int("staff", len(staff)),
		zap.Int("existing_entries", len(entries)),
		zap.Int("stays", len(stays)),
		zap.Int("leave_requests", len(leave)),
		zap.Int("coverage_floors", len(floors)))

	return &roster.Snapshot{
		Staff:          convertStaff(staff, logger),
		Assignments:    convertAssignments(entries),
		Stays:          convertStays(stays),
		LeaveRequests:  convertLeaveRequests(leave),
		Dates:          dates,
		CoverageFloors: floors,
	}, nil
}

// sendUnmetAlerts emails each recipient a summary of the short dates.
// Send failures are collected rather than returned.
func sendUnmetAlerts(
	ctx context.Context,
	mailer Mailer,
	cfg *config.Config,
	logger *zap.Logger,
	periodStart string,
	unmet []roster.UnmetCoverage,
) ([]string, []FailedAlert) {
	if mailer == nil || cfg == nil || len(cfg.AlertRecipients) == 0 {
		logger.Debug("Skipping unmet coverage alert: no mailer or recipients configured")
		return nil, nil
	}

	subject, body := unmetAlertMessage(cfg.WardName, periodStart, unmet)

	var sent []string
	var failed []FailedAlert
	for _, recipient := range cfg.AlertRecipients {
		if err := mailer.SendEmail(ctx, recipient, subject, body); err != nil {
			logger.Error("Failed to send unmet coverage alert", zap.String("recipient", recipient), zap.Error(err))
			failed = append(failed, FailedAlert{Recipient: recipient, Error: err.Error()})
			continue
		}
		logger.Info("Unmet coverage alert sent", zap.String("recipient", recipient))
		sent = append(sent, recipient)
	}

	return sent, failed
}

func unmetAlertMessage(ward, periodStart string, unmet []roster.UnmetCoverage) (string, string) {
	month := periodStart
	if t, err := time.Parse(dateLayout, periodStart); err == nil {
		month = t.Format("January 2006")
	}

	subject := fmt.Sprintf("Unmet coverage: %s roster for %s", ward, month)

	var b strings.Builder
	fmt.Fprintf(&b, "The %s roster for %s could not meet coverage on %d date(s).\n\n", ward, month, len(unmet))
	for _, u := range unmet {
		fmt.Fprintf(&b, "%s: required %d, day %d, evening %d, night %d\n",
			u.Date, u.Required, u.AssignedD, u.AssignedE, u.AssignedN)
	}
	b.WriteString("\nPlease arrange cover for these shifts.\n")

	return subject, b.String()
}
