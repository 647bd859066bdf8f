package checkins

import (
	"github.com/julianstephens/checkin/internal/checkin"
	"github.com/julianstephens/checkin/internal/cli"
	"github.com/julianstephens/checkin/internal/models"
)

type HabitsCmd struct{}

func (c *HabitsCmd) Run(ctx *cli.Context) error {
	today := ctx.Today()
	ctx.Printf("%-10s %-16s %-10s %-6s %s\n", "KEY", "STORAGE", "CALENDAR", "TODAY", "TOTAL")
	for _, h := range models.Builtins() {
		records := ctx.Records(h).Load()
		cal := "no"
		if h.Calendar {
			cal = "yes"
		}
		ctx.Printf("%-10s %-16s %-10s %-6d %d\n", h.Key, h.StorageKey, cal, checkin.CountForDay(records, today), len(records))
	}
	return nil
}
