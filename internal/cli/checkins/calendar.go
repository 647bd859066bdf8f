package checkins

import (
	"fmt"

	"github.com/julianstephens/checkin/internal/calendar"
	"github.com/julianstephens/checkin/internal/cli"
	calendarview "github.com/julianstephens/checkin/internal/tui/components/calendar"
	"github.com/julianstephens/checkin/internal/widget"
)

type CalendarCmd struct {
	Habit  string `arg:"" optional:"" default:"parking" help:"Habit to draw. Only habits with a calendar are accepted."`
	Month  string `help:"Month to show as YYYY-MM. Defaults to the current month."`
	Offset int    `help:"Months to move from --month (negative for earlier)." default:"0"`
}

func (c *CalendarCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.ResolveHabit(c.Habit, "Show the calendar for which habit?")
	if err != nil {
		return err
	}
	if !habit.Calendar {
		return fmt.Errorf("%w: %s", widget.ErrNoCalendar, habit.Key)
	}

	today := ctx.Today()
	month := calendar.NewMonthState(today)
	if c.Month != "" {
		month, err = calendar.ParseMonth(c.Month)
		if err != nil {
			return err
		}
	}
	month = month.ChangeMonth(c.Offset)

	grid := calendar.Render(month, ctx.Records(habit).Load(), today)
	style := ctx.Config.MonthLabel
	ctx.Println(calendarview.View(grid, month.Label(style), style))
	return nil
}
