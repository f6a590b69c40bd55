package roster

import "slices"

// Normalize builds the run model from a caller snapshot.
//
// Staff are sorted by name then id. Existing rows for known staff inside the
// period lock their date. Leave requests become wanted-off days for full-time
// staff only, and unlocked wanted-off days are pre-assigned off.
// Malformed input degrades silently: unknown staff, dates outside the period
// and duplicate staff ids are ignored.
func Normalize(snapshot Snapshot, params Params) *RosterState {
	// Deduplicate dates while keeping caller order
	dates := make([]string, 0, len(snapshot.Dates))
	inPeriod := make(map[string]bool, len(snapshot.Dates))
	for _, date := range snapshot.Dates {
		if inPeriod[date] {
			continue
		}
		inPeriod[date] = true
		dates = append(dates, date)
	}

	// Build members, first record wins on duplicate ids
	byID := make(map[string]*StaffMember, len(snapshot.Staff))
	members := make([]*StaffMember, 0, len(snapshot.Staff))
	for _, s := range snapshot.Staff {
		if _, exists := byID[s.ID]; exists {
			continue
		}
		m := newStaffMember(s)
		byID[s.ID] = m
		members = append(members, m)
	}
	slices.SortStableFunc(members, compareMembers)

	// Lock configured dates
	for _, row := range snapshot.Assignments {
		m, ok := byID[row.StaffID]
		if !ok || !inPeriod[row.Date] {
			continue
		}
		m.LockedDates[row.Date] = true
		m.Assignments[row.Date] = ParseDutyCode(row.DutyCode)
	}

	// Wanted-off days (full-time staff only)
	for _, req := range snapshot.LeaveRequests {
		m, ok := byID[req.StaffID]
		if !ok || !m.IsFullTime() || !inPeriod[req.Date] {
			continue
		}
		m.WantedOff[req.Date] = true
		if !m.LockedDates[req.Date] {
			m.Assignments[req.Date] = ShiftOff
		}
	}

	required := RequiredCoverage(dates, snapshot.Stays, params.NewbornsPerStaff)
	for date, floor := range snapshot.CoverageFloors {
		if inPeriod[date] && floor > required[date] {
			required[date] = floor
		}
	}

	return &RosterState{
		Dates:    dates,
		Staff:    members,
		Required: required,
		Params:   params,
		Unmet:    []UnmetCoverage{},
	}
}

// RequiredCoverage computes ceil(newborns / newbornsPerStaff) for each date.
// A stay contributes to every date in [CheckIn, CheckOut).
func RequiredCoverage(dates []string, stays []Stay, newbornsPerStaff int) map[string]int {
	if newbornsPerStaff <= 0 {
		newbornsPerStaff = 1
	}

	required := make(map[string]int, len(dates))
	for _, date := range dates {
		newborns := 0
		for _, stay := range stays {
			if !stayCovers(stay, date) {
				continue
			}
			if stay.BabyCount > 0 {
				newborns += stay.BabyCount
			} else {
				newborns++
			}
		}
		required[date] = ceilDiv(newborns, newbornsPerStaff)
	}
	return required
}

// stayCovers compares ISO dates lexically; timestamps are cut to their date part
func stayCovers(stay Stay, date string) bool {
	return dateOnly(stay.CheckIn) <= date && date < dateOnly(stay.CheckOut)
}

func dateOnly(s string) string {
	if len(s) > len("2006-01-02") {
		return s[:len("2006-01-02")]
	}
	return s
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
