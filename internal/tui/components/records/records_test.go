package records

import (
	"strings"
	"testing"

	"github.com/julianstephens/checkin/internal/checkin"
)

func TestSetView_Empty(t *testing.T) {
	m := New(40, 10)
	m.SetView(checkin.RenderList(nil, "Nothing yet"))

	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}
	if !strings.Contains(m.View(), "Nothing yet") {
		t.Errorf("View() = %q, want placeholder", m.View())
	}
}

func TestSetView_Rows(t *testing.T) {
	m := New(40, 20)
	m.SetView(checkin.ListView{Rows: []checkin.ListRow{
		{ID: 2, Time: "09:00:00", Date: "2024-03-15"},
		{ID: 1, Time: "08:00:00", Date: "2024-03-14"},
	}})

	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
	out := m.View()
	if !strings.Contains(out, "09:00:00") || !strings.Contains(out, "2024-03-14") {
		t.Errorf("View() missing rows: %q", out)
	}
	if strings.Contains(out, "Nothing yet") {
		t.Error("View() shows placeholder with rows present")
	}

	m.SetView(checkin.RenderList(nil, "Nothing yet"))
	if m.Len() != 0 || !strings.Contains(m.View(), "Nothing yet") {
		t.Error("SetView did not reset to placeholder")
	}
}

func TestItem(t *testing.T) {
	i := Item{Row: checkin.ListRow{ID: 1, Time: "07:08:09", Date: "2024-01-02"}}
	if i.Title() != "✓ 07:08:09" || i.Description() != "2024-01-02" {
		t.Errorf("Item = %q / %q", i.Title(), i.Description())
	}
}
