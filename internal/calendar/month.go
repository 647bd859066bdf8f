package calendar

import (
	"fmt"
	"time"

	"github.com/julianstephens/checkin/internal/constants"
)

// MonthState is the month a calendar is showing. It carries no day so that
// stepping from the 31st never skips a short month.
type MonthState struct {
	Year  int
	Month time.Month
}

// NewMonthState returns the month containing anchor.
func NewMonthState(anchor time.Time) MonthState {
	return MonthState{Year: anchor.Year(), Month: anchor.Month()}
}

// ParseMonth reads a YYYY-MM string.
func ParseMonth(s string) (MonthState, error) {
	t, err := time.Parse(constants.MonthFormat, s)
	if err != nil {
		return MonthState{}, fmt.Errorf("invalid month %q, expected YYYY-MM", s)
	}
	return NewMonthState(t), nil
}

// ChangeMonth returns the state delta months away, wrapping across years.
func (m MonthState) ChangeMonth(delta int) MonthState {
	return NewMonthState(m.first(time.UTC).AddDate(0, delta, 0))
}

func (m MonthState) first(loc *time.Location) time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, loc)
}

// Contains reports whether t falls in this month.
func (m MonthState) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

func (m MonthState) String() string {
	return m.first(time.UTC).Format(constants.MonthFormat)
}

// Label returns the month title in the requested style.
func (m MonthState) Label(style constants.MonthLabelStyle) string {
	if style == constants.MonthLabelChinese {
		return fmt.Sprintf("%d年%d月", m.Year, int(m.Month))
	}
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// DaysIn returns the number of days in the month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
