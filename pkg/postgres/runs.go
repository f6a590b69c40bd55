package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jakechorley/duty-roster/pkg/db"
)

// InsertGenerationRun records a saved generation. CreatedAt is filled from the database.
func (d *DB) InsertGenerationRun(ctx context.Context, run *db.GenerationRun) error {
	var createdAt time.Time
	err := d.pool.QueryRow(ctx, `
		INSERT INTO generation_run (id, period_start, period_end, entry_count, unmet_count)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, run.ID, run.PeriodStart, run.PeriodEnd, run.EntryCount, run.UnmetCount).Scan(&createdAt)
	if err != nil {
		return fmt.Errorf("failed to insert generation run: %w", err)
	}

	run.CreatedAt = createdAt.UTC().Format(time.RFC3339)
	return nil
}

// GetGenerationRuns returns all generation runs, newest first
func (d *DB) GetGenerationRuns(ctx context.Context) ([]db.GenerationRun, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id::text, period_start, period_end, entry_count, unmet_count, created_at
		FROM generation_run
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query generation runs: %w", err)
	}
	defer rows.Close()

	var runs []db.GenerationRun
	for rows.Next() {
		var r db.GenerationRun
		var start, end, createdAt time.Time
		if err := rows.Scan(&r.ID, &start, &end, &r.EntryCount, &r.UnmetCount, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan generation run: %w", err)
		}
		r.PeriodStart = start.Format(dateLayout)
		r.PeriodEnd = end.Format(dateLayout)
		r.CreatedAt = createdAt.UTC().Format(time.RFC3339)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating generation runs: %w", err)
	}

	return runs, nil
}
