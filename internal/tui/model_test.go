package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/checkin/internal/checkin"
	"github.com/julianstephens/checkin/internal/constants"
	"github.com/julianstephens/checkin/internal/models"
	"github.com/julianstephens/checkin/internal/storage"
	"github.com/julianstephens/checkin/internal/surface"
)

func newTestModel(t *testing.T) (Model, *storage.MemoryStore) {
	t.Helper()
	mem := storage.NewMemoryStore()
	require.NoError(t, mem.Init())
	now := func() time.Time { return time.Date(2024, time.March, 15, 9, 5, 30, 0, time.UTC) }
	m := NewModel(mem, time.UTC, Options{Now: now})
	m.Init()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	return next.(Model), mem
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel_OneTabPerHabit(t *testing.T) {
	m, _ := newTestModel(t)

	require.Len(t, m.tabs, len(models.Builtins()))
	assert.Equal(t, models.Parking.Key, m.current().widget.Habit().Key)

	view := m.View()
	assert.Contains(t, view, "Parking")
	assert.Contains(t, view, "Water")
	assert.Contains(t, view, models.Parking.EmptyMessage)
}

func TestCheckIn_PersistsAndSchedulesRelease(t *testing.T) {
	m, mem := newTestModel(t)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	require.NotNil(t, cmd)

	records, err := checkin.NewStore(mem, models.Parking, time.UTC).Read()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "09:05:30", records[0].Time)

	counter, _ := m.current().surface.Get(surface.Counter)
	assert.Equal(t, 1, counter.Count)
	assert.Equal(t, 1, m.current().records.Len())
	assert.False(t, m.statusErr)
	assert.Contains(t, m.status, "09:05:30")

	button, _ := m.current().surface.Get(surface.Button)
	assert.True(t, button.Pressed)

	next, _ := m.Update(releaseMsg{tab: 0, seq: m.current().pressSeq})
	m = next.(Model)
	button, _ = m.current().surface.Get(surface.Button)
	assert.False(t, button.Pressed)
}

func TestRelease_StaleSequenceIgnored(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	next, _ := m.Update(releaseMsg{tab: 0, seq: 1})
	m = next.(Model)
	button, _ := m.current().surface.Get(surface.Button)
	assert.True(t, button.Pressed)
}

func TestCheckIn_WriteFailureShowsError(t *testing.T) {
	m, mem := newTestModel(t)
	mem.WriteErr = storage.ErrQuotaExceeded

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})

	assert.True(t, m.statusErr)
	assert.Equal(t, "Check-in recorded but not saved", m.status)
	assert.Equal(t, 0, m.current().records.Len())
}

func TestTabSwitching(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, models.Water.Key, m.current().widget.Habit().Key)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, models.Parking.Key, m.current().widget.Habit().Key)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, models.Water.Key, m.current().widget.Habit().Key)
}

func TestCalendarView(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, runes("c"))
	assert.Equal(t, constants.ViewCalendar, m.current().widget.State().View)
	assert.Contains(t, m.View(), "March 2024")

	m, _ = press(t, m, runes("]"))
	assert.Contains(t, m.View(), "April 2024")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Contains(t, m.View(), "February 2024")

	m, _ = press(t, m, runes("l"))
	assert.Equal(t, constants.ViewList, m.current().widget.State().View)
}

func TestMonthKeysIgnoredInListView(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, runes("]"))
	assert.Equal(t, time.March, m.current().widget.State().Month.Month)
}

func TestWaterRefusesCalendar(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})

	m, _ = press(t, m, runes("c"))

	assert.Equal(t, constants.ViewList, m.current().widget.State().View)
	assert.True(t, m.statusErr)
	assert.Contains(t, m.status, "no calendar")
	assert.False(t, strings.Contains(m.viewToggles(), "Calendar"))
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := press(t, m, runes("q"))

	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestTabSwitch_ReloadsExternalCheckins(t *testing.T) {
	m, mem := newTestModel(t)
	other := checkin.NewStore(mem, models.Parking, time.UTC)
	_, err := other.Append(time.Date(2024, time.March, 15, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	counter, _ := m.current().surface.Get(surface.Counter)
	assert.Equal(t, 0, counter.Count)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})

	counter, _ = m.current().surface.Get(surface.Counter)
	assert.Equal(t, 1, counter.Count)
	assert.Equal(t, 1, m.current().records.Len())
}

func TestRefresh_ReloadsCurrentTab(t *testing.T) {
	m, mem := newTestModel(t)
	other := checkin.NewStore(mem, models.Parking, time.UTC)
	_, err := other.Append(time.Date(2024, time.March, 15, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	next, cmd := m.Update(refreshMsg{})
	m = next.(Model)
	require.NotNil(t, cmd)
	counter, _ := m.current().surface.Get(surface.Counter)
	assert.Equal(t, 1, counter.Count)

	_, err = other.Append(time.Date(2024, time.March, 15, 8, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	m, _ = press(t, m, runes("r"))
	counter, _ = m.current().surface.Get(surface.Counter)
	assert.Equal(t, 2, counter.Count)
}

func TestInit_SchedulesRefresh(t *testing.T) {
	mem := storage.NewMemoryStore()
	require.NoError(t, mem.Init())
	m := NewModel(mem, time.UTC, Options{})

	assert.NotNil(t, m.Init())
}
