package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEligibilityState(t *testing.T, params Params, days int, assignments []ExistingAssignment, leave []LeaveRequest) *RosterState {
	t.Helper()
	state := Normalize(Snapshot{
		Staff: []Staff{
			{ID: "ft", Name: "Fiona", EmploymentType: FullTime},
			{ID: "pt", Name: "Paul", EmploymentType: PartTime},
		},
		Assignments:   assignments,
		LeaveRequests: leave,
		Dates:         dateRange(t, "2024-05-01", days),
	}, params)
	require.Len(t, state.Staff, 2)
	return state
}

func TestCanAssignShift_LockedDate(t *testing.T) {
	state := newEligibilityState(t, DefaultParams(), 3, []ExistingAssignment{
		{StaffID: "pt", Date: "2024-05-02", DutyCode: "/"},
	}, nil)
	paul := state.Member("pt")

	assert.True(t, state.CanAssignShift(paul, ShiftDay, 0))
	assert.False(t, state.CanAssignShift(paul, ShiftDay, 1), "locked off day is never reassigned")
}

func TestCanAssignShift_AlreadyWorking(t *testing.T) {
	state := newEligibilityState(t, DefaultParams(), 3, nil, nil)
	paul := state.Member("pt")

	state.Assign(paul, 0, ShiftDay)

	assert.False(t, state.CanAssignShift(paul, ShiftEvening, 0))
}

func TestCanAssignShift_WantedOff(t *testing.T) {
	state := newEligibilityState(t, DefaultParams(), 3, nil, []LeaveRequest{
		{StaffID: "ft", Date: "2024-05-02"},
	})
	fiona := state.Member("ft")

	assert.False(t, state.CanAssignShift(fiona, ShiftDay, 1))
	assert.True(t, state.CanAssignShift(fiona, ShiftDay, 0))
}

func TestCanAssignShift_OffQuotaFeasibility(t *testing.T) {
	state := newEligibilityState(t, DefaultParams(), 10, nil, nil)
	fiona := state.Member("ft")
	fiona.OffTarget = intPtr(9)

	// 0 off so far + 9 days left after today = 9, still reachable
	assert.True(t, state.CanAssignShift(fiona, ShiftDay, 0))
	state.Assign(fiona, 0, ShiftDay)

	// 0 off so far + 8 days left < 9
	assert.False(t, state.CanAssignShift(fiona, ShiftDay, 1))

	// Part-time staff skip the quota check
	paul := state.Member("pt")
	state.Assign(paul, 0, ShiftDay)
	assert.True(t, state.CanAssignShift(paul, ShiftDay, 1))
}

func TestCanAssignShift_NightFollowedByNightOrRest(t *testing.T) {
	state := newEligibilityState(t, DefaultParams(), 3, nil, nil)
	paul := state.Member("pt")

	state.Assign(paul, 0, ShiftNight)

	assert.True(t, state.CanAssignShift(paul, ShiftNight, 1))
	assert.False(t, state.CanAssignShift(paul, ShiftDay, 1))
	assert.False(t, state.CanAssignShift(paul, ShiftEvening, 1))
	assert.False(t, state.CanAssignShift(paul, ShiftMid, 1))
	assert.False(t, state.CanAssignShift(paul, ShiftDayEvening, 1))
}

func TestCanAssignShift_NightBeforeLockedDayWork(t *testing.T) {
	state := newEligibilityState(t, DefaultParams(), 3, []ExistingAssignment{
		{StaffID: "pt", Date: "2024-05-02", DutyCode: "D"},
	}, nil)
	paul := state.Member("pt")

	assert.False(t, state.CanAssignShift(paul, ShiftNight, 0))
	assert.True(t, state.CanAssignShift(paul, ShiftDay, 0))
}

func TestCanAssignShift_ConsecutiveCap(t *testing.T) {
	params := DefaultParams()
	params.MaxConsecutiveWorkDays = 3
	state := newEligibilityState(t, params, 6, nil, nil)
	paul := state.Member("pt")

	for i := range 3 {
		require.True(t, state.CanAssignShift(paul, ShiftDay, i))
		state.Assign(paul, i, ShiftDay)
	}

	assert.False(t, state.CanAssignShift(paul, ShiftDay, 3), "fourth day in a row exceeds the cap")

	state.Assign(paul, 3, ShiftOff)
	assert.True(t, state.CanAssignShift(paul, ShiftDay, 4), "an off day resets the run")
}

func TestCanAssignShift_ConsecutiveCapWithLockedRunAhead(t *testing.T) {
	params := DefaultParams()
	params.MaxConsecutiveWorkDays = 3
	state := newEligibilityState(t, params, 5, []ExistingAssignment{
		{StaffID: "pt", Date: "2024-05-03", DutyCode: "D"},
		{StaffID: "pt", Date: "2024-05-04", DutyCode: "E"},
	}, nil)
	paul := state.Member("pt")

	assert.True(t, state.CanAssignShift(paul, ShiftDay, 1))
	state.Assign(paul, 1, ShiftDay)

	assert.False(t, state.CanAssignShift(paul, ShiftDay, 0), "would make a run of four with the locked days")
}

func TestAssign_ReturnsUpdatedTally(t *testing.T) {
	state := newEligibilityState(t, DefaultParams(), 3, []ExistingAssignment{
		{StaffID: "pt", Date: "2024-05-03", DutyCode: "E"},
	}, nil)
	paul := state.Member("pt")

	before := paul.Tally()
	after := state.Assign(paul, 0, ShiftNight)

	assert.Equal(t, 0, before.WorkDays)
	assert.Equal(t, 1, after.WorkDays)
	assert.Equal(t, 1, after.ShiftCounts[ShiftNight])
	assert.Empty(t, before.ShiftCounts, "earlier snapshots are not mutated")

	after = state.Assign(paul, 1, ShiftOff)
	assert.Equal(t, 1, after.OffDays)

	// Locked and already-assigned dates are left alone
	assert.Equal(t, after, state.Assign(paul, 2, ShiftDay))
	assert.Equal(t, ShiftEvening, paul.Assignments["2024-05-03"])
	assert.Equal(t, after, state.Assign(paul, 0, ShiftDay))
	assert.Equal(t, ShiftNight, paul.Assignments["2024-05-01"])
}
