package calendar

import (
	"time"

	"github.com/julianstephens/checkin/internal/constants"
	"github.com/julianstephens/checkin/internal/models"
)

// Cell is one square of the month grid.
type Cell struct {
	Day        int
	Date       string
	OtherMonth bool
	IsToday    bool
	HasCheckin bool
}

// Grid is a 6x7 month layout starting on Sunday.
type Grid struct {
	Month        MonthState
	FirstWeekday int
	DaysInMonth  int
	Cells        []Cell
}

// Leading is the number of filler cells before the 1st.
func (g Grid) Leading() int {
	return g.FirstWeekday
}

// Trailing is the number of filler cells after the last day.
func (g Grid) Trailing() int {
	return len(g.Cells) - g.FirstWeekday - g.DaysInMonth
}

// Rows splits the cells into weeks.
func (g Grid) Rows() [][]Cell {
	rows := make([][]Cell, 0, constants.CalendarRows)
	for i := 0; i < len(g.Cells); i += constants.CalendarCols {
		rows = append(rows, g.Cells[i:i+constants.CalendarCols])
	}
	return rows
}

// Render lays out month with check-in markers from records. today decides
// the IsToday cell; it is only marked when it falls inside month. Filler
// cells from the neighbouring months never carry check-in markers.
func Render(month MonthState, records []models.CheckinRecord, today time.Time) Grid {
	first := month.first(time.UTC)
	firstWeekday := int(first.Weekday())
	daysInMonth := DaysIn(month.Year, month.Month)
	prev := month.ChangeMonth(-1)
	next := month.ChangeMonth(1)
	daysInPrev := DaysIn(prev.Year, prev.Month)

	checked := make(map[string]struct{}, len(records))
	for _, r := range records {
		checked[r.Date] = struct{}{}
	}

	cells := make([]Cell, 0, constants.CalendarCells)
	for i := firstWeekday - 1; i >= 0; i-- {
		day := daysInPrev - i
		cells = append(cells, Cell{
			Day:        day,
			Date:       dateString(prev, day),
			OtherMonth: true,
		})
	}

	todayInMonth := month.Contains(today)
	for day := 1; day <= daysInMonth; day++ {
		date := dateString(month, day)
		_, has := checked[date]
		cells = append(cells, Cell{
			Day:        day,
			Date:       date,
			IsToday:    todayInMonth && today.Day() == day,
			HasCheckin: has,
		})
	}

	for day := 1; len(cells) < constants.CalendarCells; day++ {
		cells = append(cells, Cell{
			Day:        day,
			Date:       dateString(next, day),
			OtherMonth: true,
		})
	}

	return Grid{
		Month:        month,
		FirstWeekday: firstWeekday,
		DaysInMonth:  daysInMonth,
		Cells:        cells,
	}
}

func dateString(m MonthState, day int) string {
	return models.FormatDate(time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.UTC))
}

// WeekdayHeaders returns the column titles in the given label style.
func WeekdayHeaders(style constants.MonthLabelStyle) []string {
	if style == constants.MonthLabelChinese {
		return []string{"日", "一", "二", "三", "四", "五", "六"}
	}
	return []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
}
