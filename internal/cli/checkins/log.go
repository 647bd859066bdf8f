package checkins

import (
	"fmt"

	"github.com/julianstephens/checkin/internal/checkin"
	"github.com/julianstephens/checkin/internal/cli"
)

type LogCmd struct {
	Habit string `arg:"" optional:"" help:"Habit to list. Prompts when omitted."`
	Limit int    `help:"Show at most this many check-ins (0 for all)." default:"0"`
}

func (c *LogCmd) Run(ctx *cli.Context) error {
	if c.Limit < 0 {
		return fmt.Errorf("--limit must not be negative")
	}
	habit, err := ctx.ResolveHabit(c.Habit, "Show check-ins for which habit?")
	if err != nil {
		return err
	}

	view := checkin.RenderList(ctx.Records(habit).Load(), habit.EmptyMessage)
	if view.Empty() {
		ctx.Println(view.Placeholder)
		return nil
	}

	rows := view.Rows
	if c.Limit > 0 && len(rows) > c.Limit {
		rows = rows[:c.Limit]
	}

	ctx.Printf("%s %s (%d total)\n\n", habit.Icon, habit.Name, len(view.Rows))
	for _, r := range rows {
		ctx.Printf("  ✓ %s  %s\n", r.Time, r.Date)
	}
	if len(rows) < len(view.Rows) {
		ctx.Printf("\n  … %d older check-ins not shown\n", len(view.Rows)-len(rows))
	}
	return nil
}
