package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jakechorley/duty-roster/pkg/db"
)

// GetScheduleEntries returns schedule entries with work_date in [from, to]
func (d *DB) GetScheduleEntries(ctx context.Context, from, to string) ([]db.ScheduleEntry, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT staff_id, work_date, duty_type, COALESCE(generation_run_id::text, '')
		FROM schedule_entry
		WHERE work_date BETWEEN $1 AND $2
		ORDER BY work_date, staff_id
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule entries: %w", err)
	}
	defer rows.Close()

	var entries []db.ScheduleEntry
	for rows.Next() {
		var e db.ScheduleEntry
		var workDate time.Time
		if err := rows.Scan(&e.StaffID, &workDate, &e.DutyType, &e.GenerationRunID); err != nil {
			return nil, fmt.Errorf("failed to scan schedule entry: %w", err)
		}
		e.WorkDate = workDate.Format(dateLayout)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule entries: %w", err)
	}

	return entries, nil
}

// UpsertScheduleEntries writes entries in a single transaction.
// An existing row for the same staff and date is overwritten.
func (d *DB) UpsertScheduleEntries(ctx context.Context, entries []db.ScheduleEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(`
			INSERT INTO schedule_entry (staff_id, work_date, duty_type, generation_run_id)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (staff_id, work_date)
			DO UPDATE SET duty_type = EXCLUDED.duty_type, generation_run_id = EXCLUDED.generation_run_id
		`, e.StaffID, e.WorkDate, e.DutyType, nullableString(e.GenerationRunID))
	}

	results := tx.SendBatch(ctx, batch)
	for _, e := range entries {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("failed to upsert schedule entry (staff_id=%s, work_date=%s): %w", e.StaffID, e.WorkDate, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close batch results: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
