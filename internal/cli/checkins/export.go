package checkins

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/julianstephens/checkin/internal/cli"
	"github.com/julianstephens/checkin/internal/export"
	"github.com/julianstephens/checkin/internal/utils"
)

type ExportCmd struct {
	Habit  string `arg:"" optional:"" help:"Habit to export. Prompts when omitted."`
	Format string `help:"Output format: json, yaml or ics." default:"json" short:"f"`
	Output string `help:"Write to this file instead of stdout." short:"o"`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	format, err := export.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	habit, err := ctx.ResolveHabit(c.Habit, "Export which habit?")
	if err != nil {
		return err
	}

	records, err := ctx.Records(habit).Read()
	if err != nil {
		return err
	}

	if c.Output == "" {
		return export.Write(ctx.Out, format, habit, records, ctx.Now())
	}

	path := utils.ExpandPath(c.Output)
	if filepath.Ext(path) == "" {
		path += format.Extension()
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := writeAndClose(f, func(w io.Writer) error {
		return export.Write(w, format, habit, records, ctx.Now())
	}); err != nil {
		return err
	}

	ctx.Printf("✓ Exported %d %s check-ins to %s\n", len(records), habit.Key, path)
	return nil
}

func writeAndClose(f *os.File, write func(io.Writer) error) error {
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close export file: %w", err)
	}
	return nil
}
