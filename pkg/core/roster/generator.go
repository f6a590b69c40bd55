package roster

// Generate fills every unlocked (staff, date) pair of the snapshot period.
//
// The run is single pass and deterministic: staff are name ordered, dates are
// processed in the order given, and no state survives the call. Shortfalls are
// reported as unmet coverage rather than errors.
func Generate(snapshot Snapshot, params Params) *Result {
	state := Normalize(snapshot, params)

	// Nothing to fill
	if len(state.Staff) == 0 || len(state.Dates) == 0 {
		return state.BuildResult()
	}

	state.PlanNightRotation()

	for i := range state.Dates {
		state.FillDate(i)
	}

	return state.BuildResult()
}

// FillDate assigns shifts for one date.
//
// Nights are filled first from part-time staff, then night specialists, then
// ordinary full-time staff. Days and evenings use part-time, ordinary, then
// specialists. Remaining day/evening gaps are closed with DE (both short) or
// M (one short). Everyone left is set off, and any shortfall is recorded.
func (rs *RosterState) FillDate(dateIdx int) {
	date := rs.Dates[dateIdx]
	required := rs.Required[date]

	rs.countPresetAssignments(dateIdx)
	cov := rs.Coverage(dateIdx)

	partTime, specialists, ordinary := rs.pools()
	nightPools := [][]*StaffMember{partTime, specialists, ordinary}
	dayPools := [][]*StaffMember{partTime, ordinary, specialists}

	rs.fillShift(dateIdx, ShiftNight, nightPools, &cov, func(c Coverage) int { return c.N })
	rs.fillShift(dateIdx, ShiftDay, dayPools, &cov, func(c Coverage) int { return c.D })
	rs.fillShift(dateIdx, ShiftEvening, dayPools, &cov, func(c Coverage) int { return c.E })

	// Flexible shifts as a last resort for day and evening
	for cov.D < required || cov.E < required {
		shift := ShiftMid
		if cov.D < required && cov.E < required {
			shift = ShiftDayEvening
		}

		m := rs.bestCandidate(dayPools, shift, dateIdx)
		if m == nil {
			break
		}
		rs.Assign(m, dateIdx, shift)
		cov.Add(shift)
	}

	// Everyone unassigned is off
	for _, m := range rs.Staff {
		if _, ok := m.Assignments[date]; !ok {
			rs.Assign(m, dateIdx, ShiftOff)
		}
	}

	if !cov.Meets(required) {
		rs.Unmet = append(rs.Unmet, UnmetCoverage{
			Date:      date,
			Required:  required,
			AssignedD: cov.D,
			AssignedE: cov.E,
			AssignedN: cov.N,
		})
	}
}

// fillShift assigns a single shift type until its category reaches the date's target
// or no eligible candidate remains
func (rs *RosterState) fillShift(dateIdx int, shift ShiftType, pools [][]*StaffMember, cov *Coverage, count func(Coverage) int) {
	required := rs.Required[rs.Dates[dateIdx]]
	for count(*cov) < required {
		m := rs.bestCandidate(pools, shift, dateIdx)
		if m == nil {
			return
		}
		rs.Assign(m, dateIdx, shift)
		cov.Add(shift)
	}
}
