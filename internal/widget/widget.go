package widget

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/checkin/internal/calendar"
	"github.com/julianstephens/checkin/internal/checkin"
	"github.com/julianstephens/checkin/internal/constants"
	"github.com/julianstephens/checkin/internal/logger"
	"github.com/julianstephens/checkin/internal/models"
	"github.com/julianstephens/checkin/internal/surface"
)

// ErrNoCalendar is returned when the calendar view is requested for a habit
// that has none.
var ErrNoCalendar = errors.New("habit has no calendar view")

// State is the view state of one widget.
type State struct {
	View    constants.ViewKind
	Month   calendar.MonthState
	Pressed bool
}

// Options configures a Widget.
type Options struct {
	// Now is the clock. Defaults to time.Now.
	Now        func() time.Time
	MonthLabel constants.MonthLabelStyle
}

// Widget binds a habit's record store to a presentation surface.
type Widget struct {
	store       *checkin.Store
	surface     surface.Surface
	now         func() time.Time
	monthLabel  constants.MonthLabelStyle
	state       State
	initialized bool
}

func New(store *checkin.Store, surf surface.Surface, opts Options) *Widget {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	label := opts.MonthLabel
	if label == "" {
		label = constants.DefaultMonthLabel
	}
	w := &Widget{
		store:      store,
		surface:    surf,
		now:        now,
		monthLabel: label,
	}
	w.state = State{
		View:  constants.ViewList,
		Month: calendar.NewMonthState(w.today()),
	}
	return w
}

func (w *Widget) Habit() models.Habit {
	return w.store.Habit()
}

func (w *Widget) State() State {
	return w.state
}

func (w *Widget) today() time.Time {
	return w.now().In(w.store.Location())
}

// Init renders the widget for the first time. Later calls do nothing.
func (w *Widget) Init() {
	if w.initialized {
		return
	}
	w.initialized = true
	logger.Debug("Widget initialized", "habit", w.Habit().Key)
	w.Refresh()
}

// CheckIn appends a record at the current time and redraws. The button is
// left pressed until Release. A write error is returned after the redraw.
func (w *Widget) CheckIn() (models.CheckinRecord, error) {
	record, err := w.store.Append(w.now())
	w.state.Pressed = true
	w.Refresh()
	return record, err
}

// Release clears the pressed state of the button.
func (w *Widget) Release() {
	if !w.state.Pressed {
		return
	}
	w.state.Pressed = false
	w.renderButton()
}

// SwitchView changes the active view and redraws.
func (w *Widget) SwitchView(view constants.ViewKind) error {
	switch view {
	case constants.ViewList:
	case constants.ViewCalendar:
		if !w.Habit().Calendar {
			return fmt.Errorf("%w: %s", ErrNoCalendar, w.Habit().Key)
		}
	default:
		return fmt.Errorf("unknown view %q", view)
	}
	w.state.View = view
	w.Refresh()
	return nil
}

// ChangeMonth moves the calendar delta months and redraws it.
func (w *Widget) ChangeMonth(delta int) {
	w.state.Month = w.state.Month.ChangeMonth(delta)
	if w.Habit().Calendar {
		w.renderCalendar(w.store.Load())
	}
}

// Refresh recomputes every view from the stored log.
func (w *Widget) Refresh() {
	records := w.store.Load()
	w.renderButton()
	w.renderCounter(records)
	w.renderList(records)
	w.renderToggles()
	if w.Habit().Calendar {
		w.renderCalendar(records)
	}
}

func (w *Widget) renderButton() {
	surface.Write(w.surface, surface.Button, surface.Content{
		Text:    w.Habit().ButtonLabel,
		Pressed: w.state.Pressed,
	})
}

func (w *Widget) renderCounter(records []models.CheckinRecord) {
	surface.Write(w.surface, surface.Counter, surface.Content{
		Text:  w.Habit().CounterLabel,
		Count: checkin.CountForDay(records, w.today()),
	})
}

func (w *Widget) renderList(records []models.CheckinRecord) {
	view := checkin.RenderList(records, w.Habit().EmptyMessage)
	surface.Write(w.surface, surface.List, surface.Content{
		List:   &view,
		Active: w.state.View == constants.ViewList,
	})
}

func (w *Widget) renderToggles() {
	surface.Write(w.surface, surface.ListToggle, surface.Content{
		Text:   "List",
		Active: w.state.View == constants.ViewList,
	})
	if w.Habit().Calendar {
		surface.Write(w.surface, surface.CalendarToggle, surface.Content{
			Text:   "Calendar",
			Active: w.state.View == constants.ViewCalendar,
		})
	}
}

func (w *Widget) renderCalendar(records []models.CheckinRecord) {
	surface.Write(w.surface, surface.MonthLabel, surface.Content{Text: w.state.Month.Label(w.monthLabel)})
	surface.Write(w.surface, surface.PrevMonth, surface.Content{Text: "‹"})
	surface.Write(w.surface, surface.NextMonth, surface.Content{Text: "›"})

	grid := calendar.Render(w.state.Month, records, w.today())
	surface.Write(w.surface, surface.CalendarGrid, surface.Content{
		Calendar: &grid,
		Active:   w.state.View == constants.ViewCalendar,
	})
}
