package records

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/checkin/internal/checkin"
)

var placeholderStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")).
	Italic(true).
	Padding(1, 2)

type Item struct {
	Row   checkin.ListRow
	Index int
}

func (i Item) Title() string {
	return fmt.Sprintf("✓ %s", i.Row.Time)
}

func (i Item) Description() string {
	return i.Row.Date
}

func (i Item) FilterValue() string { return i.Row.Date + " " + i.Row.Time }

// Model shows a rendered record list, or its placeholder when empty.
type Model struct {
	list        list.Model
	placeholder string
	empty       bool
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetStatusBarItemName("check-in", "check-ins")
	l.SetFilteringEnabled(false)
	return Model{list: l, empty: true}
}

// SetView replaces the rows with view.
func (m *Model) SetView(view checkin.ListView) {
	m.placeholder = view.Placeholder
	m.empty = view.Empty()

	items := make([]list.Item, len(view.Rows))
	for i, r := range view.Rows {
		items[i] = Item{Row: r, Index: i}
	}
	m.list.SetItems(items)
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Len() int {
	return len(m.list.Items())
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.empty {
		return placeholderStyle.Render(m.placeholder)
	}
	return m.list.View()
}
