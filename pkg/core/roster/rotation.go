package roster

import (
	"cmp"
	"slices"
)

// SelectNightSpecialists picks the full-time staff who absorb night demand this period.
//
// The number of specialists is the night need divided by what one specialist can
// cover (len(dates) - NightSpecialistOffTarget, at least 1), capped at the number
// of full-time staff. Everyone with nights already on record is kept as a specialist
// for continuity; remaining places go to the next staff ranked by existing night
// count (descending) then name.
func (rs *RosterState) SelectNightSpecialists() map[string]bool {
	selected := make(map[string]bool)

	var fullTime []*StaffMember
	for _, m := range rs.Staff {
		if m.IsFullTime() {
			fullTime = append(fullTime, m)
		}
	}

	totalNightNeed := 0
	for _, date := range rs.Dates {
		totalNightNeed += rs.Required[date]
	}

	if totalNightNeed == 0 || len(fullTime) == 0 {
		return selected
	}

	maxNightPerSpecialist := max(1, len(rs.Dates)-rs.Params.NightSpecialistOffTarget)
	targetCount := min(max(1, ceilDiv(totalNightNeed, maxNightPerSpecialist)), len(fullTime))

	ranked := slices.Clone(fullTime)
	slices.SortStableFunc(ranked, func(a, b *StaffMember) int {
		if c := cmp.Compare(lockedNightCount(b), lockedNightCount(a)); c != 0 {
			return c
		}
		return compareMembers(a, b)
	})

	// Continuity: anyone already working nights stays on nights
	for _, m := range ranked {
		if lockedNightCount(m) > 0 {
			selected[m.ID] = true
		}
	}

	for _, m := range ranked {
		if len(selected) >= targetCount {
			break
		}
		selected[m.ID] = true
	}

	return selected
}

// PlanNightRotation applies the specialist selection and sets each full-time
// member's off target: the specialist or base baseline, raised to the number
// of wanted-off days when that is larger
func (rs *RosterState) PlanNightRotation() {
	selected := rs.SelectNightSpecialists()

	for _, m := range rs.Staff {
		m.NightSpecialist = selected[m.ID]
		if !m.IsFullTime() {
			m.OffTarget = nil
			continue
		}

		target := rs.Params.BaseOffTarget
		if m.NightSpecialist {
			target = rs.Params.NightSpecialistOffTarget
		}
		target = max(target, len(m.WantedOff))
		m.OffTarget = &target
	}
}

// lockedNightCount counts night shifts already on record for the period
func lockedNightCount(m *StaffMember) int {
	count := 0
	for date := range m.LockedDates {
		if m.Assignments[date] == ShiftNight {
			count++
		}
	}
	return count
}
