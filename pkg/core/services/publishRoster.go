package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/duty-roster/internal/config"
	"github.com/jakechorley/duty-roster/pkg/clients/sheetsclient"
)

// RosterPublisher writes a roster to a spreadsheet and returns the tab it wrote
type RosterPublisher interface {
	PublishRoster(ctx context.Context, spreadsheetID string, roster *sheetsclient.PublishedRoster) (string, error)
}

// PublishRosterResult is the outcome of PublishRoster
type PublishRosterResult struct {
	TabTitle  string
	Published *sheetsclient.PublishedRoster
}

// PublishRoster publishes the saved schedule for a month to the configured roster sheet
func PublishRoster(
	ctx context.Context,
	store RosterStore,
	publisher RosterPublisher,
	cfg *config.Config,
	logger *zap.Logger,
	year int,
	month time.Month,
) (*PublishRosterResult, error) {
	if cfg == nil || cfg.RosterSheetID == "" {
		return nil, fmt.Errorf("rosterSheetID is not configured")
	}
	if publisher == nil {
		return nil, fmt.Errorf("sheets client is not configured")
	}

	grid, err := ViewRoster(ctx, store, logger, year, month)
	if err != nil {
		return nil, err
	}

	published := buildPublishedRoster(cfg.WardName, grid)

	logger.Info("Publishing roster",
		zap.String("spreadsheet_id", cfg.RosterSheetID),
		zap.String("period_start", published.PeriodStart),
		zap.Int("rows", len(published.Rows)))

	tabTitle, err := publisher.PublishRoster(ctx, cfg.RosterSheetID, published)
	if err != nil {
		return nil, fmt.Errorf("failed to publish roster: %w", err)
	}

	logger.Info("Roster published", zap.String("tab", tabTitle))

	return &PublishRosterResult{
		TabTitle:  tabTitle,
		Published: published,
	}, nil
}

func buildPublishedRoster(ward string, grid *RosterGrid) *sheetsclient.PublishedRoster {
	published := &sheetsclient.PublishedRoster{
		Ward:  ward,
		Dates: grid.Dates,
		Rows:  make([]sheetsclient.PublishedRosterRow, len(grid.Rows)),
	}
	if len(grid.Dates) > 0 {
		published.PeriodStart = grid.Dates[0]
	}

	for i, row := range grid.Rows {
		published.Rows[i] = sheetsclient.PublishedRosterRow{Name: row.Name, Duties: row.Duties}
	}

	day := sheetsclient.PublishedCoverageRow{Label: "Day", Counts: make([]int, len(grid.Dates))}
	evening := sheetsclient.PublishedCoverageRow{Label: "Evening", Counts: make([]int, len(grid.Dates))}
	night := sheetsclient.PublishedCoverageRow{Label: "Night", Counts: make([]int, len(grid.Dates))}
	for i, cov := range grid.Coverage {
		day.Counts[i] = cov.D
		evening.Counts[i] = cov.E
		night.Counts[i] = cov.N
	}
	published.Coverage = []sheetsclient.PublishedCoverageRow{day, evening, night}

	return published
}
