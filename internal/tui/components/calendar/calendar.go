package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/checkin/internal/calendar"
	"github.com/julianstephens/checkin/internal/constants"
)

var (
	cellStyle = lipgloss.NewStyle().
			Width(4).
			Align(lipgloss.Right)

	headerStyle = cellStyle.
			Foreground(lipgloss.Color("245")).
			Bold(true)

	otherMonthStyle = cellStyle.
			Foreground(lipgloss.Color("238"))

	todayStyle = cellStyle.
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Underline(true)

	checkedStyle = cellStyle.
			Foreground(lipgloss.Color("42")).
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Width(7 * 4).
			Align(lipgloss.Center)

	legendStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// CheckMark follows the day number of a day with a check-in.
const CheckMark = "•"

// View draws grid as a 7 column table under a month title.
func View(grid calendar.Grid, title string, style constants.MonthLabelStyle) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("‹  " + title + "  ›"))
	b.WriteString("\n")

	headers := make([]string, 0, constants.CalendarCols)
	for _, h := range calendar.WeekdayHeaders(style) {
		headers = append(headers, headerStyle.Render(h))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, headers...))
	b.WriteString("\n")

	for _, week := range grid.Rows() {
		cells := make([]string, 0, len(week))
		for _, c := range week {
			cells = append(cells, renderCell(c))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	b.WriteString(legendStyle.Render(fmt.Sprintf("%s check-in   underlined: today", CheckMark)))
	return b.String()
}

func renderCell(c calendar.Cell) string {
	text := fmt.Sprintf("%d", c.Day)
	switch {
	case c.OtherMonth:
		return otherMonthStyle.Render(text + " ")
	case c.HasCheckin && c.IsToday:
		return todayStyle.Foreground(lipgloss.Color("42")).Render(text + CheckMark)
	case c.HasCheckin:
		return checkedStyle.Render(text + CheckMark)
	case c.IsToday:
		return todayStyle.Render(text + " ")
	}
	return cellStyle.Render(text + " ")
}
