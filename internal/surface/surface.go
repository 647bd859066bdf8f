package surface

import (
	"github.com/julianstephens/checkin/internal/calendar"
	"github.com/julianstephens/checkin/internal/checkin"
)

// MountID names a place the widget renders into.
type MountID string

const (
	Button         MountID = "button"
	Counter        MountID = "counter"
	List           MountID = "list"
	CalendarGrid   MountID = "calendar-grid"
	MonthLabel     MountID = "month-label"
	PrevMonth      MountID = "prev-month"
	NextMonth      MountID = "next-month"
	ListToggle     MountID = "list-toggle"
	CalendarToggle MountID = "calendar-toggle"
)

// Content is what a mount point can display.
type Content struct {
	Text     string
	Count    int
	Active   bool
	Pressed  bool
	List     *checkin.ListView
	Calendar *calendar.Grid
}

// Surface is the presentation target. Lookup may fail for any mount; writing
// to a missing mount is the caller's no-op.
type Surface interface {
	Mount(id MountID) (Mount, bool)
}

// Mount receives content for one mount point.
type Mount interface {
	Set(Content)
}

// Write sets content on id if s has that mount. It reports whether anything
// was written.
func Write(s Surface, id MountID, c Content) bool {
	if s == nil {
		return false
	}
	m, ok := s.Mount(id)
	if !ok || m == nil {
		return false
	}
	m.Set(c)
	return true
}
