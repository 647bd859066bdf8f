package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/checkin/internal/constants"
	"github.com/julianstephens/checkin/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestChangeMonth(t *testing.T) {
	tests := []struct {
		name  string
		start MonthState
		delta int
		want  MonthState
	}{
		{"forward", MonthState{2024, time.March}, 1, MonthState{2024, time.April}},
		{"back", MonthState{2024, time.March}, -1, MonthState{2024, time.February}},
		{"wrap forward", MonthState{2024, time.December}, 1, MonthState{2025, time.January}},
		{"wrap back", MonthState{2024, time.January}, -1, MonthState{2023, time.December}},
		{"many", MonthState{2024, time.March}, 25, MonthState{2026, time.April}},
		{"zero", MonthState{2024, time.March}, 0, MonthState{2024, time.March}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.start.ChangeMonth(tt.delta))
		})
	}
}

func TestNewMonthState_DayOverflowDoesNotSkip(t *testing.T) {
	m := NewMonthState(day(2024, time.January, 31))
	assert.Equal(t, MonthState{2024, time.February}, m.ChangeMonth(1))
}

func TestRender_AlwaysFortyTwoCells(t *testing.T) {
	m := MonthState{2023, time.January}
	for i := 0; i < 36; i++ {
		g := Render(m, nil, day(2000, time.January, 1))
		require.Len(t, g.Cells, constants.CalendarCells, m.String())
		assert.Equal(t, g.FirstWeekday, g.Leading())
		assert.Equal(t, constants.CalendarCells-g.FirstWeekday-g.DaysInMonth, g.Trailing())
		assert.Len(t, g.Rows(), constants.CalendarRows)
		m = m.ChangeMonth(1)
	}
}

func TestRender_April2024(t *testing.T) {
	m := MonthState{2024, time.March}.ChangeMonth(1)
	g := Render(m, nil, day(2024, time.March, 15))

	assert.Equal(t, 1, g.FirstWeekday)
	assert.Equal(t, 30, g.DaysInMonth)
	assert.Equal(t, 1, g.Leading())
	assert.Equal(t, 11, g.Trailing())

	assert.Equal(t, Cell{Day: 31, Date: "2024-03-31", OtherMonth: true}, g.Cells[0])
	assert.Equal(t, "2024-04-01", g.Cells[1].Date)
	assert.Equal(t, "2024-05-01", g.Cells[31].Date)
	assert.True(t, g.Cells[31].OtherMonth)
	assert.Equal(t, 11, g.Cells[41].Day)
}

func TestRender_FebruaryLeapYear(t *testing.T) {
	g := Render(MonthState{2024, time.February}, nil, day(2024, time.February, 29))
	assert.Equal(t, 29, g.DaysInMonth)
	assert.Equal(t, 4, g.FirstWeekday)
	assert.True(t, g.Cells[4+28].IsToday)
}

func TestRender_HasCheckin(t *testing.T) {
	records := []models.CheckinRecord{
		{ID: 3, Date: "2024-04-10", Time: "10:00:00"},
		{ID: 2, Date: "2024-04-10", Time: "08:00:00"},
		{ID: 1, Date: "2024-04-02", Time: "08:00:00"},
	}
	g := Render(MonthState{2024, time.April}, records, day(2024, time.April, 2))

	marked := map[string]bool{}
	for _, c := range g.Cells {
		if c.HasCheckin {
			marked[c.Date] = true
		}
	}
	assert.Equal(t, map[string]bool{"2024-04-10": true, "2024-04-02": true}, marked)
}

func TestRender_FillerCellsNeverMarked(t *testing.T) {
	records := []models.CheckinRecord{
		{ID: 2, Date: "2024-03-31", Time: "10:00:00"},
		{ID: 1, Date: "2024-05-01", Time: "10:00:00"},
	}
	g := Render(MonthState{2024, time.April}, records, day(2024, time.March, 31))

	for _, c := range g.Cells {
		if c.OtherMonth {
			assert.False(t, c.HasCheckin, c.Date)
			assert.False(t, c.IsToday, c.Date)
		}
	}
}

func TestRender_TodayOnlyInItsMonth(t *testing.T) {
	today := day(2024, time.May, 15)

	g := Render(MonthState{2024, time.May}, nil, today)
	var todays []string
	for _, c := range g.Cells {
		if c.IsToday {
			todays = append(todays, c.Date)
		}
	}
	assert.Equal(t, []string{"2024-05-15"}, todays)

	other := Render(MonthState{2024, time.June}, nil, today)
	for _, c := range other.Cells {
		assert.False(t, c.IsToday)
	}
}

func TestLabel(t *testing.T) {
	m := MonthState{2024, time.March}
	assert.Equal(t, "March 2024", m.Label(constants.MonthLabelEnglish))
	assert.Equal(t, "2024年3月", m.Label(constants.MonthLabelChinese))
	assert.Equal(t, "2024-03", m.String())
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2025-11")
	require.NoError(t, err)
	assert.Equal(t, MonthState{2025, time.November}, m)

	_, err = ParseMonth("11/2025")
	assert.Error(t, err)
}
