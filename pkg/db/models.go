package db

// Staff represents a staff record
type Staff struct {
	ID             string
	Name           string
	EmploymentType string // "full-time" or "part-time"
	Active         bool
}

// ScheduleEntry represents one staff member's duty on one date.
// DutyType holds the code as entered, including overtime annotations such as "N+2".
type ScheduleEntry struct {
	StaffID         string
	WorkDate        string // Format: "2006-01-02"
	DutyType        string
	GenerationRunID string // Empty for manually entered rows
}

// Stay represents an occupancy interval [CheckIn, CheckOut)
type Stay struct {
	ID        string
	CheckIn   string
	CheckOut  string
	BabyCount *int
}

// LeaveRequest represents a requested day off
type LeaveRequest struct {
	ID      string
	StaffID string
	Date    string
}

// GenerationRun records one saved roster generation
type GenerationRun struct {
	ID          string
	PeriodStart string
	PeriodEnd   string
	EntryCount  int
	UnmetCount  int
	CreatedAt   string // RFC3339, set by the database
}
