package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jakechorley/duty-roster/pkg/db"
)

// GetStays returns stays overlapping [from, to].
// A stay occupies [check_in, check_out), so one checking out on from is excluded.
func (d *DB) GetStays(ctx context.Context, from, to string) ([]db.Stay, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, check_in, check_out, baby_count
		FROM stay
		WHERE check_in <= $2 AND check_out > $1
		ORDER BY check_in, id
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query stays: %w", err)
	}
	defer rows.Close()

	var stays []db.Stay
	for rows.Next() {
		var s db.Stay
		var checkIn, checkOut time.Time
		if err := rows.Scan(&s.ID, &checkIn, &checkOut, &s.BabyCount); err != nil {
			return nil, fmt.Errorf("failed to scan stay: %w", err)
		}
		s.CheckIn = checkIn.Format(dateLayout)
		s.CheckOut = checkOut.Format(dateLayout)
		stays = append(stays, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stays: %w", err)
	}

	return stays, nil
}

// GetLeaveRequests returns leave requests dated within [from, to]
func (d *DB) GetLeaveRequests(ctx context.Context, from, to string) ([]db.LeaveRequest, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, staff_id, leave_date
		FROM leave_request
		WHERE leave_date BETWEEN $1 AND $2
		ORDER BY leave_date, staff_id
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []db.LeaveRequest
	for rows.Next() {
		var r db.LeaveRequest
		var date time.Time
		if err := rows.Scan(&r.ID, &r.StaffID, &date); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		r.Date = date.Format(dateLayout)
		requests = append(requests, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leave requests: %w", err)
	}

	return requests, nil
}
