package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_WorkloadTerms(t *testing.T) {
	state := newEligibilityState(t, DefaultParams(), 5, nil, nil)
	paul := state.Member("pt")

	assert.Equal(t, 0.0, state.Score(paul, ShiftDay, 0))

	state.Assign(paul, 0, ShiftDay)
	state.Assign(paul, 1, ShiftDay)

	// 2 work days*10 + 2 consecutive*3 + 2 day shifts*2
	assert.Equal(t, 30.0, state.Score(paul, ShiftDay, 2))
	// Same without shift load
	assert.Equal(t, 26.0, state.Score(paul, ShiftEvening, 2))
}

func TestScore_OffUrgency(t *testing.T) {
	state := newEligibilityState(t, DefaultParams(), 10, nil, nil)
	fiona := state.Member("ft")
	fiona.OffTarget = intPtr(9)

	// 9 off days owed over 10 remaining days * 20
	assert.InDelta(t, 18.0, state.Score(fiona, ShiftDay, 0), 1e-9)

	state.Assign(fiona, 0, ShiftOff)
	// 8 owed over 9 remaining * 20, no work yet
	assert.InDelta(t, 8.0/9.0*20, state.Score(fiona, ShiftDay, 1), 1e-9)
}

func TestScore_NightBias(t *testing.T) {
	params := DefaultParams()
	params.WeightOffUrgency = 0
	state := Normalize(Snapshot{
		Staff: []Staff{
			{ID: "spec", Name: "Sam", EmploymentType: FullTime},
			{ID: "ord", Name: "Olga", EmploymentType: FullTime},
			{ID: "pt", Name: "Paul", EmploymentType: PartTime},
		},
		Dates: dateRange(t, "2024-05-01", 3),
	}, params)

	sam := state.Member("spec")
	olga := state.Member("ord")
	paul := state.Member("pt")
	sam.NightSpecialist = true

	assert.Equal(t, -6.0, state.Score(sam, ShiftNight, 0), "specialists are pulled toward nights")
	assert.Equal(t, 6.0, state.Score(olga, ShiftNight, 0), "ordinary staff are pushed away from nights")
	assert.Equal(t, 0.0, state.Score(paul, ShiftNight, 0))

	assert.Equal(t, state.Score(sam, ShiftDay, 0), state.Score(olga, ShiftDay, 0), "no bias off nights")
}

func TestBestCandidate_TieBreakAndPoolOrder(t *testing.T) {
	state := Normalize(Snapshot{
		Staff: []Staff{
			{ID: "zed", Name: "Zed", EmploymentType: PartTime},
			{ID: "bea", Name: "Bea", EmploymentType: PartTime},
			{ID: "abe", Name: "Abe", EmploymentType: PartTime},
		},
		Dates: dateRange(t, "2024-05-01", 2),
	}, DefaultParams())

	zed, bea, abe := state.Member("zed"), state.Member("bea"), state.Member("abe")

	best := state.bestCandidate([][]*StaffMember{{abe, bea, zed}}, ShiftDay, 0)
	require.NotNil(t, best)
	assert.Equal(t, "abe", best.ID, "equal scores fall back to name order")

	best = state.bestCandidate([][]*StaffMember{{zed}, {abe, bea}}, ShiftDay, 0)
	require.NotNil(t, best)
	assert.Equal(t, "zed", best.ID, "an earlier pool wins regardless of score")

	state.Assign(abe, 0, ShiftDay)
	best = state.bestCandidate([][]*StaffMember{{abe, bea, zed}}, ShiftDay, 1)
	require.NotNil(t, best)
	assert.Equal(t, "bea", best.ID, "lower workload wins")

	state.Assign(bea, 0, ShiftDay)
	state.Assign(zed, 0, ShiftDay)
	assert.Nil(t, state.bestCandidate([][]*StaffMember{{abe, bea, zed}}, ShiftEvening, 0), "no eligible candidate")
}
