package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func validProject() Project {
	return Project{
		Name:         "Yishun Meadows",
		ManagerNRIC:  "T0000001M",
		Neighborhood: "Yishun",
		FlatTypes: []FlatType{
			{Kind: FlatTwoRoom, UnitsRemaining: 10, PriceSGD: 150000},
			{Kind: FlatThreeRoom, UnitsRemaining: 5, PriceSGD: 250000},
		},
		OpenDate:     date(2024, 1, 1),
		CloseDate:    date(2024, 12, 31),
		OfficerSlots: 3,
		Visible:      true,
	}
}

func TestProjectValidate(t *testing.T) {
	p := validProject()
	require.NoError(t, p.Validate())

	p = validProject()
	p.CloseDate = p.OpenDate.AddDate(0, 0, -1)
	assert.Error(t, p.Validate(), "close before open")

	p = validProject()
	p.FlatTypes = nil
	assert.Error(t, p.Validate(), "no flat types")

	p = validProject()
	p.FlatTypes = append(p.FlatTypes, FlatType{Kind: FlatTwoRoom})
	assert.Error(t, p.Validate(), "three entries")

	p = validProject()
	p.FlatTypes = []FlatType{{Kind: FlatTwoRoom}, {Kind: FlatTwoRoom}}
	assert.Error(t, p.Validate(), "duplicate kind")

	p = validProject()
	p.FlatTypes[0].UnitsRemaining = -1
	assert.Error(t, p.Validate(), "negative units")

	p = validProject()
	p.OfficerSlots = -1
	assert.Error(t, p.Validate(), "negative slots")
}

func TestIsOpenAt(t *testing.T) {
	p := validProject()

	assert.True(t, p.IsOpenAt(date(2024, 6, 1)))
	assert.False(t, p.IsOpenAt(date(2025, 1, 1)), "past close date")
	assert.False(t, p.IsOpenAt(date(2024, 12, 31)), "close date itself is not before close")

	p.Visible = false
	assert.False(t, p.IsOpenAt(date(2024, 6, 1)), "hidden project is never open")
}

func TestInApplicationPeriod(t *testing.T) {
	p := validProject()

	assert.True(t, p.InApplicationPeriod(date(2024, 1, 1)), "open date inclusive")
	assert.True(t, p.InApplicationPeriod(date(2024, 12, 31)), "close date inclusive")
	assert.False(t, p.InApplicationPeriod(date(2023, 12, 31)))
	assert.False(t, p.InApplicationPeriod(date(2025, 1, 1)))
}

func TestRangesOverlap(t *testing.T) {
	cases := []struct {
		name           string
		a1, a2, b1, b2 time.Time
		overlap        bool
	}{
		{"disjoint before", date(2024, 1, 1), date(2024, 1, 31), date(2024, 2, 1), date(2024, 2, 28), false},
		{"disjoint after", date(2024, 3, 1), date(2024, 3, 31), date(2024, 2, 1), date(2024, 2, 28), false},
		{"partial overlap", date(2024, 1, 1), date(2024, 1, 31), date(2024, 1, 15), date(2024, 2, 15), true},
		{"contained", date(2024, 1, 1), date(2024, 12, 31), date(2024, 6, 1), date(2024, 6, 30), true},
		{"touching endpoints", date(2024, 1, 1), date(2024, 1, 31), date(2024, 1, 31), date(2024, 2, 28), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlap, RangesOverlap(tc.a1, tc.a2, tc.b1, tc.b2))
			assert.Equal(t, tc.overlap, RangesOverlap(tc.b1, tc.b2, tc.a1, tc.a2), "overlap is symmetric")
		})
	}
}

func TestFlatTypeOf(t *testing.T) {
	p := validProject()
	ft := p.FlatTypeOf(FlatTwoRoom)
	require.NotNil(t, ft)
	assert.Equal(t, 10, ft.UnitsRemaining)

	only := validProject()
	only.FlatTypes = only.FlatTypes[:1]
	assert.Nil(t, only.FlatTypeOf(FlatThreeRoom))
}

func TestHasOfficer(t *testing.T) {
	p := validProject()
	p.Officers = []string{"T1111111A"}
	assert.True(t, p.HasOfficer("t1111111a"), "roster check is case-insensitive")
	assert.False(t, p.HasOfficer("S2222222B"))
}
