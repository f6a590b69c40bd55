package roster

import (
	"cmp"
	"maps"
)

// EmploymentType distinguishes quota-bound permanent staff from fill-in staff
type EmploymentType string

const (
	FullTime EmploymentType = "full-time"
	PartTime EmploymentType = "part-time"
)

// Staff is a staff record as supplied by the caller
type Staff struct {
	ID             string
	Name           string
	EmploymentType EmploymentType
}

// ExistingAssignment is a schedule row that already exists for the period.
// Any row locks its (staff, date) pair, including off rows.
type ExistingAssignment struct {
	StaffID  string
	Date     string
	DutyCode string
}

// Stay is an occupancy interval [CheckIn, CheckOut)
type Stay struct {
	CheckIn  string
	CheckOut string

	// BabyCount defaults to 1 when zero or negative
	BabyCount int
}

// LeaveRequest is a requested day off
type LeaveRequest struct {
	StaffID string
	Date    string
}

// Snapshot is everything the generator needs for one period
type Snapshot struct {
	Staff         []Staff
	Assignments   []ExistingAssignment
	Stays         []Stay
	LeaveRequests []LeaveRequest

	// Dates is the ordered list of YYYY-MM-DD dates to schedule
	Dates []string

	// CoverageFloors raises the required count on specific dates (optional)
	CoverageFloors map[string]int
}

// Params holds every tunable constant of the generator
type Params struct {
	// BaseOffTarget is the minimum off days for ordinary full-time staff
	BaseOffTarget int

	// NightSpecialistOffTarget is the minimum off days for night specialists.
	// It also caps the nights a specialist can absorb: len(dates) - NightSpecialistOffTarget.
	NightSpecialistOffTarget int

	// MaxConsecutiveWorkDays is the hard cap on a run of working days
	MaxConsecutiveWorkDays int

	// NewbornsPerStaff is the staffing ratio used to derive required coverage
	NewbornsPerStaff int

	// Scoring weights (lower total score is assigned first)
	WeightWorkDays    float64
	WeightConsecutive float64
	WeightShiftLoad   float64
	WeightOffUrgency  float64
	NightBias         float64
}

// DefaultParams returns the reference configuration
func DefaultParams() Params {
	return Params{
		BaseOffTarget:            9,
		NightSpecialistOffTarget: 11,
		MaxConsecutiveWorkDays:   5,
		NewbornsPerStaff:         4,
		WeightWorkDays:           10,
		WeightConsecutive:        3,
		WeightShiftLoad:          2,
		WeightOffUrgency:         20,
		NightBias:                6,
	}
}

// Tally holds the running counters of one staff member
type Tally struct {
	WorkDays    int
	OffDays     int
	ShiftCounts map[ShiftType]int
}

func (t *Tally) record(shift ShiftType) {
	if !shift.IsWork() {
		t.OffDays++
		return
	}
	t.WorkDays++
	if t.ShiftCounts == nil {
		t.ShiftCounts = make(map[ShiftType]int)
	}
	t.ShiftCounts[shift]++
}

// StaffMember is the mutable per-run model of one staff member
type StaffMember struct {
	Staff

	// NightSpecialist is decided once per run by the rotation planner
	NightSpecialist bool

	// OffTarget is the minimum off days for this period (nil for part-time staff)
	OffTarget *int

	// WantedOff holds requested days off inside the period (full-time only)
	WantedOff map[string]bool

	// LockedDates are dates already decided outside this run
	LockedDates map[string]bool

	// Assignments maps date to shift, built up during the run
	Assignments map[string]ShiftType

	tally Tally
}

func newStaffMember(s Staff) *StaffMember {
	return &StaffMember{
		Staff:       s,
		WantedOff:   make(map[string]bool),
		LockedDates: make(map[string]bool),
		Assignments: make(map[string]ShiftType),
		tally:       Tally{ShiftCounts: make(map[ShiftType]int)},
	}
}

// IsFullTime reports whether quota and wanted-off rules apply
func (m *StaffMember) IsFullTime() bool {
	return m.EmploymentType == FullTime
}

// Tally returns a copy of the running counters
func (m *StaffMember) Tally() Tally {
	return Tally{
		WorkDays:    m.tally.WorkDays,
		OffDays:     m.tally.OffDays,
		ShiftCounts: maps.Clone(m.tally.ShiftCounts),
	}
}

// compareMembers orders staff by name, then id
func compareMembers(a, b *StaffMember) int {
	if c := cmp.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}
