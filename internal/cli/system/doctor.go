package system

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/julianstephens/checkin/internal/backup"
	"github.com/julianstephens/checkin/internal/cli"
	"github.com/julianstephens/checkin/internal/lock"
	"github.com/julianstephens/checkin/internal/models"
	"github.com/julianstephens/checkin/internal/storage"
)

// skipError marks a check that does not apply to the current store.
type skipError struct{ reason string }

func (e *skipError) Error() string { return e.reason }

func skipped(reason string) error {
	return &skipError{reason: reason}
}

type checkResult int

const (
	checkOK checkResult = iota
	checkFail
	checkWarn
	checkSkip
)

type healthCheck struct {
	name string
	// needsStore checks are skipped when the store could not be loaded
	needsStore bool
	// warnOnly failures are reported but do not fail the run
	warnOnly bool
	run      func(*cli.Context) error
}

var healthChecks = []healthCheck{
	{name: "Schema version", needsStore: true, run: checkSchemaVersion},
	{name: "Migrations complete", needsStore: true, run: checkMigrationsComplete},
	{name: "Records readable", needsStore: true, run: checkRecordsReadable},
	{name: "Record integrity", needsStore: true, run: checkRecordIntegrity},
	{name: "Writer lock", warnOnly: true, run: checkWriterLock},
	{name: "Backups present", warnOnly: true, run: checkBackupsPresent},
	{name: "Clock/timezone", run: checkClockTimezone},
}

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	reachable := report(ctx, "Storage reachable", checkStoreReachable(ctx), false) == checkOK
	if !reachable {
		hasError = true
	}

	for _, hc := range healthChecks {
		if hc.needsStore && !reachable {
			ctx.Printf("⊘ %s: SKIPPED (storage not reachable)\n", hc.name)
			continue
		}
		if report(ctx, hc.name, hc.run(ctx), hc.warnOnly) == checkFail {
			hasError = true
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return errors.New("one or more health checks failed")
	}
	ctx.Println("All diagnostics passed!")
	return nil
}

func report(ctx *cli.Context, name string, err error, warnOnly bool) checkResult {
	switch {
	case err == nil:
		ctx.Printf("✓ %s: OK\n", name)
		return checkOK
	case errors.As(err, new(*skipError)):
		ctx.Printf("⊘ %s: SKIPPED (%v)\n", name, err)
		return checkSkip
	case warnOnly:
		ctx.Printf("⚠ %s: WARNING\n", name)
		ctx.Printf("   %v\n", err)
		return checkWarn
	default:
		ctx.Printf("❌ %s: FAIL\n", name)
		ctx.Printf("   Error: %v\n", err)
		return checkFail
	}
}

func checkStoreReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	if _, err := ctx.Store.Keys(); err != nil {
		return fmt.Errorf("failed to query storage: %w", err)
	}
	return nil
}

func schemaVersions(ctx *cli.Context) (current, latest int, err error) {
	m, ok := ctx.Store.(storage.Migrator)
	if !ok {
		return 0, 0, skipped("storage has no schema")
	}
	runner, err := m.MigrationRunner()
	if err != nil {
		return 0, 0, err
	}
	if current, err = runner.GetCurrentVersion(); err != nil {
		return 0, 0, fmt.Errorf("failed to get current schema version: %w", err)
	}
	if latest, err = runner.GetLatestVersion(); err != nil {
		return 0, 0, fmt.Errorf("failed to get latest schema version: %w", err)
	}
	return current, latest, nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	current, latest, err := schemaVersions(ctx)
	if err != nil {
		return err
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	current, latest, err := schemaVersions(ctx)
	if err != nil {
		return err
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d (run 'checkin migrate')", current, latest)
	}
	return nil
}

func checkRecordsReadable(ctx *cli.Context) error {
	var errs []error
	for _, h := range models.Builtins() {
		if _, err := ctx.Records(h).Read(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", h.StorageKey, err))
		}
	}
	return errors.Join(errs...)
}

func checkRecordIntegrity(ctx *cli.Context) error {
	var errs []error
	for _, h := range models.Builtins() {
		records, err := ctx.Records(h).Read()
		if err != nil {
			// reported by checkRecordsReadable
			continue
		}
		seen := make(map[int64]bool, len(records))
		dupes := 0
		for i, r := range records {
			if err := r.Validate(ctx.Location); err != nil {
				errs = append(errs, fmt.Errorf("%s[%d]: %w", h.StorageKey, i, err))
			}
			if seen[r.ID] {
				dupes++
			}
			seen[r.ID] = true
		}
		if dupes > 0 {
			ctx.Printf("   ℹ %s has %d check-ins sharing an id\n", h.StorageKey, dupes)
		}
	}
	return errors.Join(errs...)
}

func checkWriterLock(ctx *cli.Context) error {
	holder, alive, err := lock.Inspect(ctx.Config.LockPath())
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil
	case err != nil:
		return fmt.Errorf("unreadable lockfile %s: %w", ctx.Config.LockPath(), err)
	case alive:
		ctx.Printf("   ℹ TUI session running: %s\n", holder)
		return nil
	default:
		return fmt.Errorf("stale lockfile left by %s; it is replaced on next TUI start", holder)
	}
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr, err := ctx.Backups()
	if err != nil {
		if errors.Is(err, backup.ErrUnsupported) {
			return skipped("storage is not a local file")
		}
		return err
	}
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return errors.New("no backups found - consider creating one with 'checkin backup create'")
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	now := ctx.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	if _, err := ctx.Config.Location(); err != nil {
		return err
	}
	return nil
}
