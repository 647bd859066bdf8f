package checkins

import (
	"errors"
	"fmt"

	"github.com/julianstephens/checkin/internal/checkin"
	"github.com/julianstephens/checkin/internal/cli"
	"github.com/julianstephens/checkin/internal/lock"
	"github.com/julianstephens/checkin/internal/logger"
)

type AddCmd struct {
	Habit string `arg:"" optional:"" help:"Habit to check in (parking or water). Prompts when omitted."`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.ResolveHabit(c.Habit, "Check in to which habit?")
	if err != nil {
		return err
	}

	warnIfLocked(ctx)

	store := ctx.Records(habit)
	record, err := store.Append(ctx.Now())
	if err != nil {
		if errors.Is(err, checkin.ErrStorageWrite) {
			return fmt.Errorf("check-in at %s %s was not saved: %w", record.Date, record.Time, err)
		}
		return err
	}
	logger.Info("Checked in", "habit", habit.Key, "id", record.ID)

	ctx.Printf("✓ %s %s at %s on %s\n", habit.Icon, habit.ButtonLabel, record.Time, record.Date)
	ctx.Printf("  %s: %d\n", habit.CounterLabel, checkin.CountForDay(store.Load(), ctx.Today()))
	return nil
}

// warnIfLocked tells the user when a TUI session also holds the store open.
// The check-in still goes ahead.
func warnIfLocked(ctx *cli.Context) {
	holder, alive, err := lock.Inspect(ctx.Config.LockPath())
	if err != nil || !alive {
		return
	}
	ctx.Printf("⚠️  %s is also writing to this store; it will show this check-in after its next refresh.\n", holder)
}
