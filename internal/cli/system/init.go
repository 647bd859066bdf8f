package system

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/checkin/internal/cli"
	"github.com/julianstephens/checkin/internal/config"
	"github.com/julianstephens/checkin/internal/logger"
	"github.com/julianstephens/checkin/internal/storage"
)

type InitCmd struct {
	Force bool `help:"Delete the existing store file before initializing."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized checkin storage at: %s\n", ctx.Store.GetConfigPath())

	if _, err := os.Stat(ctx.Config.Path); errors.Is(err, os.ErrNotExist) {
		if err := config.WriteFile(ctx.Config.Path, ctx.Config.File()); err != nil {
			logger.Warn("Could not write default config", "path", ctx.Config.Path, "error", err)
		} else {
			ctx.Printf("Wrote default config to: %s\n", ctx.Config.Path)
		}
	}
	return nil
}

// reset removes the store file after confirmation. Stores that are not a
// local file are left alone.
func (c *InitCmd) reset(ctx *cli.Context) error {
	fb, ok := ctx.Store.(storage.FileBacked)
	if !ok {
		ctx.Printf("⚠️  --force only resets file storage; %s was left untouched.\n", ctx.Store.GetConfigPath())
		return nil
	}
	path := fb.FilePath()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to access existing store: %w", err)
	}

	if ctx.Prompt != nil {
		ok, err := ctx.Prompt.Confirm("Delete existing check-ins?", "Every record in "+path+" will be removed.")
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("init cancelled")
		}
	}

	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close existing store: %w", err)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete existing store: %w", err)
	}
	ctx.Printf("Deleted existing store at: %s\n", path)
	return nil
}
