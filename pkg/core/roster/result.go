package roster

// Entry is a newly decided assignment
type Entry struct {
	StaffID  string    `json:"staffId"`
	WorkDate string    `json:"workDate"`
	DutyType ShiftType `json:"dutyType"`
}

// UnmetCoverage reports a date whose D, E or N coverage fell short
type UnmetCoverage struct {
	Date      string `json:"date"`
	Required  int    `json:"required"`
	AssignedD int    `json:"assignedD"`
	AssignedE int    `json:"assignedE"`
	AssignedN int    `json:"assignedN"`
}

// StaffSummary is informational per-staff output for the run
type StaffSummary struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	EmploymentType  EmploymentType `json:"employmentType"`
	NightSpecialist bool           `json:"nightSpecialist"`
	WorkDays        int            `json:"workDays"`
	OffDays         int            `json:"offDays"`
	OffTarget       *int           `json:"offTarget"`
}

// Result is the output of a generation run
type Result struct {
	Entries       []Entry         `json:"entries"`
	UnmetCoverage []UnmetCoverage `json:"unmetCoverage"`
	StaffSummary  []StaffSummary  `json:"staffSummary"`

	// Violations lists hard-rule breaches found after the run, typically caused by locked data
	Violations []RuleViolation `json:"violations"`
}

// BuildResult assembles the output from the final state.
// Locked dates are never emitted.
func (rs *RosterState) BuildResult() *Result {
	// Initialize with empty slices (not nil) for easier consumption
	result := &Result{
		Entries:       []Entry{},
		UnmetCoverage: append([]UnmetCoverage{}, rs.Unmet...),
		StaffSummary:  make([]StaffSummary, 0, len(rs.Staff)),
	}

	for _, m := range rs.Staff {
		for _, date := range rs.Dates {
			if m.LockedDates[date] {
				continue
			}
			shift, ok := m.Assignments[date]
			if !ok {
				continue
			}
			result.Entries = append(result.Entries, Entry{
				StaffID:  m.ID,
				WorkDate: date,
				DutyType: shift,
			})
		}

		var offTarget *int
		if m.OffTarget != nil {
			target := *m.OffTarget
			offTarget = &target
		}
		result.StaffSummary = append(result.StaffSummary, StaffSummary{
			ID:              m.ID,
			Name:            m.Name,
			EmploymentType:  m.EmploymentType,
			NightSpecialist: m.NightSpecialist,
			WorkDays:        m.tally.WorkDays,
			OffDays:         m.tally.OffDays,
			OffTarget:       offTarget,
		})
	}

	result.Violations = rs.Validate()

	return result
}
