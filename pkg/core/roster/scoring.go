package roster

// Score ranks a candidate for a shift; lower scores are assigned first.
//
//	score = workDays*WeightWorkDays
//	      + consecutiveWorkDays*WeightConsecutive
//	      + shiftLoad*WeightShiftLoad
//	      + offUrgency
//	      ± NightBias
//
// Night bias is subtracted for night specialists and added for ordinary
// full-time staff when the shift is a night. Part-time staff get none.
func (rs *RosterState) Score(m *StaffMember, shift ShiftType, dateIdx int) float64 {
	p := rs.Params

	score := float64(m.tally.WorkDays)*p.WeightWorkDays +
		float64(rs.consecutiveWorkDaysBefore(m, dateIdx))*p.WeightConsecutive +
		float64(m.tally.ShiftCounts[shift])*p.WeightShiftLoad +
		rs.offUrgency(m, dateIdx)

	if shift == ShiftNight && m.IsFullTime() {
		if m.NightSpecialist {
			score -= p.NightBias
		} else {
			score += p.NightBias
		}
	}

	return score
}

// offUrgency grows as the month runs out while off days are still owed.
// A higher value pushes the candidate back so they are saved for an off day.
func (rs *RosterState) offUrgency(m *StaffMember, dateIdx int) float64 {
	if !m.IsFullTime() || m.OffTarget == nil {
		return 0
	}

	remainingDays := len(rs.Dates) - dateIdx
	if remainingDays <= 0 {
		return 0
	}

	remainingOffNeed := max(0, *m.OffTarget-m.tally.OffDays)
	return float64(remainingOffNeed) / float64(remainingDays) * rs.Params.WeightOffUrgency
}
