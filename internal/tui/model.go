package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/checkin/internal/checkin"
	"github.com/julianstephens/checkin/internal/constants"
	"github.com/julianstephens/checkin/internal/models"
	"github.com/julianstephens/checkin/internal/storage"
	"github.com/julianstephens/checkin/internal/surface"
	"github.com/julianstephens/checkin/internal/tui/components/records"
	"github.com/julianstephens/checkin/internal/widget"
)

// releaseMsg ends the pressed look of a tab's button. seq ties it to the
// press that scheduled it so a later press is not cut short.
type releaseMsg struct {
	tab int
	seq int
}

// refreshMsg re-reads storage so check-ins from other processes and the
// date change at midnight show up.
type refreshMsg struct{}

// RefreshInterval is how often the shell re-reads storage on its own.
const RefreshInterval = 30 * time.Second

func refreshTick() tea.Cmd {
	return tea.Tick(RefreshInterval, func(time.Time) tea.Msg {
		return refreshMsg{}
	})
}

type habitTab struct {
	widget   *widget.Widget
	surface  *surface.Buffer
	records  records.Model
	pressSeq int
}

type Options struct {
	Now        func() time.Time
	MonthLabel constants.MonthLabelStyle
	Habits     []models.Habit
}

type Model struct {
	tabs       []*habitTab
	active     int
	keys       KeyMap
	help       help.Model
	monthLabel constants.MonthLabelStyle
	status     string
	statusErr  bool
	quitting   bool
	width      int
	height     int
}

func NewModel(store storage.Provider, loc *time.Location, opts Options) Model {
	habits := opts.Habits
	if len(habits) == 0 {
		habits = models.Builtins()
	}
	label := opts.MonthLabel
	if label == "" {
		label = constants.DefaultMonthLabel
	}

	tabs := make([]*habitTab, 0, len(habits))
	for _, h := range habits {
		buf := surface.NewFullBuffer()
		w := widget.New(checkin.NewStore(store, h, loc), buf, widget.Options{
			Now:        opts.Now,
			MonthLabel: label,
		})
		tabs = append(tabs, &habitTab{
			widget:  w,
			surface: buf,
			records: records.New(0, 0),
		})
	}

	return Model{
		tabs:       tabs,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		monthLabel: label,
	}
}

// Init starts every widget once and schedules the periodic refresh.
func (m Model) Init() tea.Cmd {
	for _, t := range m.tabs {
		t.widget.Init()
		t.sync()
	}
	return refreshTick()
}

func (m Model) current() *habitTab {
	return m.tabs[m.active]
}

// refresh re-reads storage for t and updates the list component.
func (t *habitTab) refresh() {
	t.widget.Refresh()
	t.sync()
}

// sync copies the rendered list from the surface into the list component.
func (t *habitTab) sync() {
	if c, ok := t.surface.Get(surface.List); ok && c.List != nil {
		t.records.SetView(*c.List)
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.CheckIn, m.keys.Tab, m.keys.Refresh, m.keys.Quit, m.keys.Help}
	if m.current().widget.Habit().Calendar {
		keys = append(keys, m.keys.Calendar, m.keys.List)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Refresh, m.keys.Quit, m.keys.Help}
	actions := []key.Binding{m.keys.CheckIn, m.keys.Up, m.keys.Down}
	var views []key.Binding
	if m.current().widget.Habit().Calendar {
		views = []key.Binding{m.keys.List, m.keys.Calendar, m.keys.PrevMonth, m.keys.NextMonth}
	}
	return [][]key.Binding{global, actions, views}
}
