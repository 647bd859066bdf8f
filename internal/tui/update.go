package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/checkin/internal/checkin"
	"github.com/julianstephens/checkin/internal/constants"
	"github.com/julianstephens/checkin/internal/logger"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		for _, t := range m.tabs {
			t.records.SetSize(max(msg.Width-4, 0), max(msg.Height-12, 0))
		}
		return m, nil

	case refreshMsg:
		m.current().refresh()
		return m, refreshTick()

	case releaseMsg:
		if msg.tab < len(m.tabs) && m.tabs[msg.tab].pressSeq == msg.seq {
			m.tabs[msg.tab].widget.Release()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t := m.current()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.activate(m.active + 1)
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.activate(m.active - 1)
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		t.refresh()
		m.status = ""
		return m, nil

	case key.Matches(msg, m.keys.CheckIn):
		return m.checkIn()

	case key.Matches(msg, m.keys.List):
		m.switchView(constants.ViewList)
		return m, nil

	case key.Matches(msg, m.keys.Calendar):
		m.switchView(constants.ViewCalendar)
		return m, nil

	case key.Matches(msg, m.keys.PrevMonth):
		if t.widget.State().View == constants.ViewCalendar {
			t.widget.ChangeMonth(-1)
		}
		return m, nil

	case key.Matches(msg, m.keys.NextMonth):
		if t.widget.State().View == constants.ViewCalendar {
			t.widget.ChangeMonth(1)
		}
		return m, nil
	}

	if t.widget.State().View == constants.ViewList {
		var cmd tea.Cmd
		t.records, cmd = t.records.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) checkIn() (tea.Model, tea.Cmd) {
	t := m.current()
	record, err := t.widget.CheckIn()
	t.sync()

	if err != nil {
		logger.Error("Check-in failed", "habit", t.widget.Habit().Key, "error", err)
		m.status = "Check-in recorded but not saved"
		if !errors.Is(err, checkin.ErrStorageWrite) {
			m.status = err.Error()
		}
		m.statusErr = true
	} else {
		m.status = fmt.Sprintf("%s checked in at %s", t.widget.Habit().Name, record.Time)
		m.statusErr = false
	}

	t.pressSeq++
	tab, seq := m.active, t.pressSeq
	return m, tea.Tick(constants.PressFeedbackMs*time.Millisecond, func(time.Time) tea.Msg {
		return releaseMsg{tab: tab, seq: seq}
	})
}

// activate makes tab i current, wrapping around, and reloads it.
func (m *Model) activate(i int) {
	m.active = (i%len(m.tabs) + len(m.tabs)) % len(m.tabs)
	m.status = ""
	m.current().refresh()
}

func (m *Model) switchView(view constants.ViewKind) {
	if err := m.current().widget.SwitchView(view); err != nil {
		m.status = err.Error()
		m.statusErr = true
		return
	}
	m.status = ""
}
