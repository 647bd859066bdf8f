package checkins

import (
	"github.com/julianstephens/checkin/internal/checkin"
	"github.com/julianstephens/checkin/internal/cli"
	"github.com/julianstephens/checkin/internal/models"
)

type TodayCmd struct {
	Habit string `arg:"" optional:"" help:"Habit to report. Reports every habit when omitted."`
}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	habits := models.Builtins()
	if c.Habit != "" {
		h, err := models.LookupHabit(c.Habit)
		if err != nil {
			return err
		}
		habits = []models.Habit{h}
	}

	today := ctx.Today()
	for _, h := range habits {
		count := checkin.CountForDay(ctx.Records(h).Load(), today)
		ctx.Printf("%s %s: %d\n", h.Icon, h.CounterLabel, count)
	}
	return nil
}
