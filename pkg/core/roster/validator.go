package roster

import "fmt"

// Rule names reported in violations
const (
	RuleMissingAssignment = "MissingAssignment"
	RuleConsecutiveCap    = "ConsecutiveCap"
	RuleNightAdjacency    = "NightAdjacency"
	RuleWantedOff         = "WantedOff"
)

// RuleViolation describes a hard-rule breach for one staff member on one date
type RuleViolation struct {
	StaffID     string `json:"staffId"`
	Date        string `json:"date"`
	Rule        string `json:"rule"`
	Description string `json:"description"`
}

// Validate checks the final state against the hard rules.
// An empty slice indicates the roster is valid.
func (rs *RosterState) Validate() []RuleViolation {
	violations := []RuleViolation{}

	for _, m := range rs.Staff {
		run := 0
		for i, date := range rs.Dates {
			shift, ok := m.Assignments[date]
			if !ok {
				violations = append(violations, RuleViolation{
					StaffID:     m.ID,
					Date:        date,
					Rule:        RuleMissingAssignment,
					Description: fmt.Sprintf("%s has no assignment", m.Name),
				})
				run = 0
				continue
			}

			// Consecutive cap, reported once per run when it first exceeds the cap
			if shift.IsWork() {
				run++
				if run == rs.Params.MaxConsecutiveWorkDays+1 {
					violations = append(violations, RuleViolation{
						StaffID:     m.ID,
						Date:        date,
						Rule:        RuleConsecutiveCap,
						Description: fmt.Sprintf("%s works more than %d consecutive days", m.Name, rs.Params.MaxConsecutiveWorkDays),
					})
				}
			} else {
				run = 0
			}

			// Night must be followed by night or off
			if i > 0 && m.Assignments[rs.Dates[i-1]] == ShiftNight && shift.IsWork() && shift != ShiftNight {
				violations = append(violations, RuleViolation{
					StaffID:     m.ID,
					Date:        date,
					Rule:        RuleNightAdjacency,
					Description: fmt.Sprintf("%s works %s straight after a night", m.Name, shift),
				})
			}

			// Wanted-off days stay off unless locked
			if m.IsFullTime() && m.WantedOff[date] && !m.LockedDates[date] && shift.IsWork() {
				violations = append(violations, RuleViolation{
					StaffID:     m.ID,
					Date:        date,
					Rule:        RuleWantedOff,
					Description: fmt.Sprintf("%s works %s on a requested day off", m.Name, shift),
				})
			}
		}
	}

	return violations
}
