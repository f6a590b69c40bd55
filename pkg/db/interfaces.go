package db

import "context"

// StaffStore defines the interface for staff lookups
type StaffStore interface {
	ListStaff(ctx context.Context) ([]Staff, error)
}

// ScheduleStore defines the interface for schedule entry operations.
// Date bounds are inclusive and formatted "2006-01-02".
type ScheduleStore interface {
	GetScheduleEntries(ctx context.Context, from, to string) ([]ScheduleEntry, error)
	UpsertScheduleEntries(ctx context.Context, entries []ScheduleEntry) error
}

// OccupancyStore defines the interface for stay lookups
type OccupancyStore interface {
	// GetStays returns stays overlapping the inclusive range [from, to]
	GetStays(ctx context.Context, from, to string) ([]Stay, error)
}

// LeaveStore defines the interface for leave request lookups
type LeaveStore interface {
	GetLeaveRequests(ctx context.Context, from, to string) ([]LeaveRequest, error)
}

// RunStore defines the interface for generation run records
type RunStore interface {
	InsertGenerationRun(ctx context.Context, run *GenerationRun) error
	GetGenerationRuns(ctx context.Context) ([]GenerationRun, error)
}

// Database defines the interface for all database operations.
// postgres.DB implements this interface.
type Database interface {
	StaffStore
	ScheduleStore
	OccupancyStore
	LeaveStore
	RunStore
}
