package system

import (
	"fmt"

	"github.com/julianstephens/checkin/internal/cli"
	"github.com/julianstephens/checkin/internal/storage"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	m, ok := ctx.Store.(storage.Migrator)
	if !ok {
		return fmt.Errorf("migrate only applies to SQL storage, not %s", ctx.Store.GetConfigPath())
	}

	runner, err := m.MigrationRunner()
	if err != nil {
		return err
	}

	count, err := runner.ApplyMigrations(func(msg string) {
		ctx.Println(msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		ctx.Println("No migrations to apply. Database is up to date.")
	} else {
		ctx.Printf("\nSuccessfully applied %d migration(s).\n", count)
	}
	return nil
}
