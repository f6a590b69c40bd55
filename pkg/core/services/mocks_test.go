package services

import (
	"context"
	"fmt"

	"github.com/jakechorley/duty-roster/pkg/clients/sheetsclient"
	"github.com/jakechorley/duty-roster/pkg/db"
)

// mockRosterStore implements GenerateRosterStore and RosterStore for testing
type mockRosterStore struct {
	staff   []db.Staff
	entries []db.ScheduleEntry
	stays   []db.Stay
	leave   []db.LeaveRequest
	runs    []db.GenerationRun

	upserted []db.ScheduleEntry

	listStaffErr  error
	getEntriesErr error
	upsertErr     error
	insertRunErr  error

	entriesFrom string
	entriesTo   string
}

func (m *mockRosterStore) ListStaff(ctx context.Context) ([]db.Staff, error) {
	if m.listStaffErr != nil {
		return nil, m.listStaffErr
	}
	return m.staff, nil
}

func (m *mockRosterStore) GetScheduleEntries(ctx context.Context, from, to string) ([]db.ScheduleEntry, error) {
	if m.getEntriesErr != nil {
		return nil, m.getEntriesErr
	}
	m.entriesFrom, m.entriesTo = from, to
	return m.entries, nil
}

func (m *mockRosterStore) UpsertScheduleEntries(ctx context.Context, entries []db.ScheduleEntry) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upserted = append(m.upserted, entries...)
	return nil
}

func (m *mockRosterStore) GetStays(ctx context.Context, from, to string) ([]db.Stay, error) {
	return m.stays, nil
}

func (m *mockRosterStore) GetLeaveRequests(ctx context.Context, from, to string) ([]db.LeaveRequest, error) {
	return m.leave, nil
}

func (m *mockRosterStore) InsertGenerationRun(ctx context.Context, run *db.GenerationRun) error {
	if m.insertRunErr != nil {
		return m.insertRunErr
	}
	m.runs = append(m.runs, *run)
	return nil
}

func (m *mockRosterStore) GetGenerationRuns(ctx context.Context) ([]db.GenerationRun, error) {
	return m.runs, nil
}

type sentEmail struct {
	to      string
	subject string
	body    string
}

// mockMailer records sent emails; recipients in failFor return an error
type mockMailer struct {
	sent    []sentEmail
	failFor map[string]bool
}

func (m *mockMailer) SendEmail(ctx context.Context, to, subject, body string) error {
	if m.failFor[to] {
		return fmt.Errorf("gmail unavailable")
	}
	m.sent = append(m.sent, sentEmail{to: to, subject: subject, body: body})
	return nil
}

// mockPublisher records the published roster
type mockPublisher struct {
	spreadsheetID string
	published     *sheetsclient.PublishedRoster
	err           error
}

func (m *mockPublisher) PublishRoster(ctx context.Context, spreadsheetID string, roster *sheetsclient.PublishedRoster) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.spreadsheetID = spreadsheetID
	m.published = roster
	title, err := sheetsclient.RosterTabTitle(roster.PeriodStart)
	if err != nil {
		return "", err
	}
	return title, nil
}
