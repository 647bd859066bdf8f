package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/checkin/internal/cli"
	"github.com/julianstephens/checkin/internal/lock"
	"github.com/julianstephens/checkin/internal/logger"
	"github.com/julianstephens/checkin/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	l, err := lock.Acquire(ctx.Config.LockPath())
	if err != nil {
		return err
	}
	defer func() {
		if err := l.Release(); err != nil {
			logger.Warn("Failed to release lock", "error", err)
		}
	}()

	ctx.PerformAutomaticBackup()

	model := tui.NewModel(ctx.Store, ctx.Location, tui.Options{
		Now:        ctx.Now,
		MonthLabel: ctx.Config.MonthLabel,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui exited with error: %w", err)
	}
	return nil
}
