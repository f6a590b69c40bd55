package roster

// RosterState is the in-memory model of one generation run
type RosterState struct {
	// Dates being filled, in chronological order
	Dates []string

	// Staff sorted by name, then id
	Staff []*StaffMember

	// Required is the per-date target applied independently to D, E and N
	Required map[string]int

	// Params used for eligibility and scoring
	Params Params

	// Unmet collects dates whose coverage fell short
	Unmet []UnmetCoverage
}

// Member returns the staff member with the given id, or nil
func (rs *RosterState) Member(id string) *StaffMember {
	for _, m := range rs.Staff {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// Coverage counts the assignments currently recorded for a date
func (rs *RosterState) Coverage(dateIdx int) Coverage {
	date := rs.Dates[dateIdx]
	var cov Coverage
	for _, m := range rs.Staff {
		if shift, ok := m.Assignments[date]; ok {
			cov.Add(shift)
		}
	}
	return cov
}

// Assign records a shift for a staff member on a date and returns the updated counters.
// Locked dates and dates already holding an assignment are left unchanged.
func (rs *RosterState) Assign(m *StaffMember, dateIdx int, shift ShiftType) Tally {
	date := rs.Dates[dateIdx]
	if m.LockedDates[date] {
		return m.Tally()
	}
	if _, ok := m.Assignments[date]; ok {
		return m.Tally()
	}

	m.Assignments[date] = shift
	m.tally.record(shift)
	return m.Tally()
}

// countPresetAssignments adds entries that existed before the date was reached
// (locked rows and wanted-off days) to the running counters
func (rs *RosterState) countPresetAssignments(dateIdx int) {
	date := rs.Dates[dateIdx]
	for _, m := range rs.Staff {
		if shift, ok := m.Assignments[date]; ok {
			m.tally.record(shift)
		}
	}
}

// consecutiveWorkDaysBefore counts the run of working days ending the day before dateIdx
func (rs *RosterState) consecutiveWorkDaysBefore(m *StaffMember, dateIdx int) int {
	count := 0
	for i := dateIdx - 1; i >= 0; i-- {
		shift, ok := m.Assignments[rs.Dates[i]]
		if !ok || !shift.IsWork() {
			break
		}
		count++
	}
	return count
}

// presetWorkDaysAfter counts the run of already-recorded working days starting the day after dateIdx
func (rs *RosterState) presetWorkDaysAfter(m *StaffMember, dateIdx int) int {
	count := 0
	for i := dateIdx + 1; i < len(rs.Dates); i++ {
		shift, ok := m.Assignments[rs.Dates[i]]
		if !ok || !shift.IsWork() {
			break
		}
		count++
	}
	return count
}

// pools partitions staff into part-time, night specialists and ordinary full-time.
// Each pool keeps the name ordering of rs.Staff.
func (rs *RosterState) pools() (partTime, specialists, ordinary []*StaffMember) {
	for _, m := range rs.Staff {
		switch {
		case !m.IsFullTime():
			partTime = append(partTime, m)
		case m.NightSpecialist:
			specialists = append(specialists, m)
		default:
			ordinary = append(ordinary, m)
		}
	}
	return partTime, specialists, ordinary
}
