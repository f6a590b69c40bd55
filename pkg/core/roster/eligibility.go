package roster

// CanAssignShift determines whether a staff member may take a shift on a date.
//
// A candidate is rejected when:
//   - the date is locked
//   - they already work that date
//   - the date is a wanted-off day
//   - working today would make their off target unreachable
//   - they worked a night yesterday and the shift is not a night
//   - they already worked MaxConsecutiveWorkDays days in a row up to yesterday
//
// Work already recorded on later dates (locked rows) is honoured too: a shift may not
// extend a run past the cap, and a night may not be followed by recorded day work.
func (rs *RosterState) CanAssignShift(m *StaffMember, shift ShiftType, dateIdx int) bool {
	if dateIdx < 0 || dateIdx >= len(rs.Dates) {
		return false
	}
	date := rs.Dates[dateIdx]

	if m.LockedDates[date] {
		return false
	}

	if current, ok := m.Assignments[date]; ok && current.IsWork() {
		return false
	}

	if m.WantedOff[date] {
		return false
	}

	// Keep enough days back to reach the off target
	if m.IsFullTime() && m.OffTarget != nil {
		remainingAfterToday := len(rs.Dates) - dateIdx - 1
		if m.tally.OffDays+remainingAfterToday < *m.OffTarget {
			return false
		}
	}

	// A night is followed by another night or rest
	if dateIdx > 0 {
		if prev, ok := m.Assignments[rs.Dates[dateIdx-1]]; ok && prev == ShiftNight && shift != ShiftNight {
			return false
		}
	}
	if shift == ShiftNight && dateIdx+1 < len(rs.Dates) {
		if next, ok := m.Assignments[rs.Dates[dateIdx+1]]; ok && next.IsWork() && next != ShiftNight {
			return false
		}
	}

	// Consecutive working days cap
	before := rs.consecutiveWorkDaysBefore(m, dateIdx)
	if before >= rs.Params.MaxConsecutiveWorkDays {
		return false
	}
	if before+1+rs.presetWorkDaysAfter(m, dateIdx) > rs.Params.MaxConsecutiveWorkDays {
		return false
	}

	return true
}

// bestCandidate returns the lowest-scoring eligible member of the first pool
// that has one. Pools are walked in order, so an earlier pool always wins.
func (rs *RosterState) bestCandidate(pools [][]*StaffMember, shift ShiftType, dateIdx int) *StaffMember {
	for _, pool := range pools {
		var best *StaffMember
		var bestScore float64

		for _, m := range pool {
			if !rs.CanAssignShift(m, shift, dateIdx) {
				continue
			}

			// Pools are name-ordered, so strict comparison keeps the earlier name on ties
			score := rs.Score(m, shift, dateIdx)
			if best == nil || score < bestScore {
				best = m
				bestScore = score
			}
		}

		if best != nil {
			return best
		}
	}
	return nil
}
