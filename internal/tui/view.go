package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/checkin/internal/constants"
	"github.com/julianstephens/checkin/internal/surface"
	calendarview "github.com/julianstephens/checkin/internal/tui/components/calendar"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		docStyle.Render(m.viewHabit()),
		m.viewStatus(),
		m.help.View(m),
	)
	return ui
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, t := range m.tabs {
		h := t.widget.Habit()
		title := fmt.Sprintf("%s %s", h.Icon, h.Name)
		if i == m.active {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewHabit() string {
	t := m.current()
	buf := t.surface

	button, _ := buf.Get(surface.Button)
	style := buttonStyle
	if button.Pressed {
		style = pressedButtonStyle
	}

	counter, _ := buf.Get(surface.Counter)
	counterLine := fmt.Sprintf("%s: %s", counter.Text, counterStyle.Render(fmt.Sprintf("%d", counter.Count)))

	sections := []string{
		style.Render(t.widget.Habit().Icon + " " + button.Text),
		"",
		counterLine,
		"",
		m.viewToggles(),
		"",
	}

	if t.widget.State().View == constants.ViewCalendar {
		grid, ok := buf.Get(surface.CalendarGrid)
		label, _ := buf.Get(surface.MonthLabel)
		if ok && grid.Calendar != nil {
			sections = append(sections, calendarview.View(*grid.Calendar, label.Text, m.monthLabel))
		}
	} else {
		sections = append(sections, t.records.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewToggles() string {
	buf := m.current().surface
	var parts []string
	for _, id := range []surface.MountID{surface.ListToggle, surface.CalendarToggle} {
		c, ok := buf.Get(id)
		if !ok {
			continue
		}
		if c.Active {
			parts = append(parts, activeToggleStyle.Render(c.Text))
		} else {
			parts = append(parts, inactiveToggleStyle.Render(c.Text))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, joinWith(parts, "  ")...)
}

func (m Model) viewStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return dangerStyle.Render(m.status)
	}
	return statusStyle.Render(m.status)
}

func joinWith(parts []string, sep string) []string {
	if len(parts) < 2 {
		return parts
	}
	out := make([]string, 0, len(parts)*2-1)
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, p)
	}
	return out
}
