package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rotationStaff() []Staff {
	return []Staff{
		{ID: "dan", Name: "Dan", EmploymentType: FullTime},
		{ID: "ann", Name: "Ann", EmploymentType: FullTime},
		{ID: "cat", Name: "Cat", EmploymentType: FullTime},
		{ID: "ben", Name: "Ben", EmploymentType: FullTime},
		{ID: "pat", Name: "Pat", EmploymentType: PartTime},
	}
}

func TestSelectNightSpecialists_TargetCountByName(t *testing.T) {
	params := DefaultParams()
	dates := dateRange(t, "2024-05-01", 30)
	state := Normalize(Snapshot{
		Staff: rotationStaff(),
		Stays: []Stay{stayFor(dates, 1, params)},
		Dates: dates,
	}, params)

	// 30 nights / (30 - 11) per specialist = 2 specialists
	selected := state.SelectNightSpecialists()

	assert.Equal(t, map[string]bool{"ann": true, "ben": true}, selected)
}

func TestSelectNightSpecialists_ContinuityKeepsNightHistory(t *testing.T) {
	params := DefaultParams()
	dates := dateRange(t, "2024-05-01", 30)
	state := Normalize(Snapshot{
		Staff: rotationStaff(),
		Assignments: []ExistingAssignment{
			{StaffID: "dan", Date: "2024-05-01", DutyCode: "N"},
			{StaffID: "dan", Date: "2024-05-02", DutyCode: "N"},
			{StaffID: "cat", Date: "2024-05-01", DutyCode: "N+2"},
			{StaffID: "ben", Date: "2024-05-01", DutyCode: "D"},
		},
		Stays: []Stay{{CheckIn: "2024-05-01", CheckOut: "2024-05-06", BabyCount: 4}},
		Dates: dates,
	}, params)

	// Need is 5 nights, so one specialist would do, but both night workers stay on
	selected := state.SelectNightSpecialists()

	assert.Equal(t, map[string]bool{"dan": true, "cat": true}, selected)
}

func TestSelectNightSpecialists_NoNeedOrNoFullTime(t *testing.T) {
	params := DefaultParams()
	dates := dateRange(t, "2024-05-01", 10)

	noNeed := Normalize(Snapshot{Staff: rotationStaff(), Dates: dates}, params)
	assert.Empty(t, noNeed.SelectNightSpecialists())

	partTimeOnly := Normalize(Snapshot{
		Staff: []Staff{{ID: "pat", Name: "Pat", EmploymentType: PartTime}},
		Stays: []Stay{stayFor(dates, 1, params)},
		Dates: dates,
	}, params)
	assert.Empty(t, partTimeOnly.SelectNightSpecialists())
}

func TestSelectNightSpecialists_CappedAtFullTimeCount(t *testing.T) {
	params := DefaultParams()
	dates := dateRange(t, "2024-05-01", 12)
	state := Normalize(Snapshot{
		Staff: []Staff{
			{ID: "ann", Name: "Ann", EmploymentType: FullTime},
			{ID: "pat", Name: "Pat", EmploymentType: PartTime},
		},
		Stays: []Stay{stayFor(dates, 3, params)},
		Dates: dates,
	}, params)

	assert.Equal(t, map[string]bool{"ann": true}, state.SelectNightSpecialists())
}

func TestPlanNightRotation_SetsOffTargets(t *testing.T) {
	params := DefaultParams()
	dates := dateRange(t, "2024-05-01", 30)

	var leave []LeaveRequest
	for _, date := range dates[:10] {
		leave = append(leave, LeaveRequest{StaffID: "dan", Date: date})
	}

	state := Normalize(Snapshot{
		Staff:         rotationStaff(),
		Stays:         []Stay{stayFor(dates, 1, params)},
		LeaveRequests: leave,
		Dates:         dates,
	}, params)
	state.PlanNightRotation()

	ann := state.Member("ann")
	cat := state.Member("cat")
	dan := state.Member("dan")
	pat := state.Member("pat")
	require.NotNil(t, ann)

	assert.True(t, ann.NightSpecialist)
	require.NotNil(t, ann.OffTarget)
	assert.Equal(t, 11, *ann.OffTarget)

	assert.False(t, cat.NightSpecialist)
	require.NotNil(t, cat.OffTarget)
	assert.Equal(t, 9, *cat.OffTarget)

	require.NotNil(t, dan.OffTarget)
	assert.Equal(t, 10, *dan.OffTarget, "wanted-off count above the baseline raises the target")

	assert.False(t, pat.NightSpecialist)
	assert.Nil(t, pat.OffTarget, "part-time staff have no quota")
}
