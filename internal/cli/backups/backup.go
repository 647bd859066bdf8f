package backups

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/julianstephens/checkin/internal/cli"
	"github.com/julianstephens/checkin/internal/constants"
	"github.com/julianstephens/checkin/internal/logger"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr, err := ctx.Backups()
	if err != nil {
		return err
	}
	path, err := mgr.Create()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	ctx.Printf("✓ Backup created: %s\n", filepath.Base(path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr, err := ctx.Backups()
	if err != nil {
		return err
	}
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		ctx.Println("No backups found.")
		ctx.Printf("Backups are stored in: %s\n", mgr.Dir())
		return nil
	}

	ctx.Printf("Available backups (%d total, keeping most recent %d):\n\n", len(backups), constants.MaxBackups)
	for i, b := range backups {
		sizeKB := float64(b.Size) / 1024.0
		ctx.Printf("  %2d. %s  %s  (%.1f KB)\n", i+1, b.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(b.Path), sizeKB)
	}
	ctx.Printf("\nBackup directory: %s\n", mgr.Dir())
	return nil
}

type BackupRestoreCmd struct {
	Backup string `arg:"" help:"Backup number from 'backup list', file name or path."`
	Yes    bool   `help:"Skip the confirmation prompt." short:"y"`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	mgr, err := ctx.Backups()
	if err != nil {
		return err
	}
	path, err := mgr.Resolve(c.Backup)
	if err != nil {
		return err
	}

	if !c.Yes {
		if ctx.Prompt == nil {
			return errors.New("restore needs confirmation: run in a terminal or pass --yes")
		}
		ok, err := ctx.Prompt.Confirm(
			"Restore "+filepath.Base(path)+"?",
			"This replaces your current check-ins. Stop any running checkin TUI first. A backup of the current store is taken before restoring.",
		)
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Restore cancelled.")
			return nil
		}
	}

	if err := ctx.Store.Close(); err != nil {
		logger.Warn("Failed to close storage before restore", "error", err)
	}

	safety, err := mgr.Restore(path)
	if err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	if safety != "" {
		ctx.Printf("✓ Previous store saved as %s\n", filepath.Base(safety))
	}
	ctx.Println("✓ Storage restored successfully!")
	return nil
}
