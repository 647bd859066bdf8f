package backups

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/checkin/internal/backup"
	"github.com/julianstephens/checkin/internal/cli"
	"github.com/julianstephens/checkin/internal/config"
	"github.com/julianstephens/checkin/internal/models"
	"github.com/julianstephens/checkin/internal/storage"
)

type stubPrompter struct {
	confirm bool
	asked   int
}

func (p *stubPrompter) SelectHabit(title string, habits []models.Habit) (models.Habit, error) {
	return habits[0], nil
}

func (p *stubPrompter) Confirm(title, description string) (bool, error) {
	p.asked++
	return p.confirm, nil
}

func setupTestBackups(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	cfg := config.Default(t.TempDir())
	cfg.Timezone = "UTC"
	cfg.Storage = filepath.Join(cfg.Dir, "checkin.json")

	store := storage.NewJSONStore(cfg.Storage)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	ctx, err := cli.NewContext(cfg, store)
	if err != nil {
		t.Fatalf("NewContext() failed: %v", err)
	}
	out := &bytes.Buffer{}
	ctx.Out = out
	ctx.Now = func() time.Time { return time.Date(2024, time.March, 15, 9, 5, 30, 0, time.UTC) }
	return ctx, out
}

func TestBackupCreateAndList(t *testing.T) {
	ctx, out := setupTestBackups(t)

	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out.String(), "No backups found.") {
		t.Errorf("expected empty list, got %q", out.String())
	}

	out.Reset()
	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !strings.Contains(out.String(), "✓ Backup created: checkin-") {
		t.Errorf("unexpected create output %q", out.String())
	}

	out.Reset()
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out.String(), "1 total") || !strings.Contains(out.String(), " 1. ") {
		t.Errorf("unexpected list output %q", out.String())
	}
}

func TestBackupRestore(t *testing.T) {
	ctx, out := setupTestBackups(t)
	parking := ctx.Records(models.Parking)
	if _, err := parking.Append(ctx.Now()); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := parking.Append(ctx.Now().Add(time.Minute)); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}

	prompt := &stubPrompter{confirm: true}
	ctx.Prompt = prompt
	out.Reset()
	if err := (&BackupRestoreCmd{Backup: "1"}).Run(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if prompt.asked != 1 {
		t.Errorf("Confirm called %d times, want 1", prompt.asked)
	}
	if !strings.Contains(out.String(), "Previous store saved as") {
		t.Errorf("expected safety backup message, got %q", out.String())
	}

	reopened := storage.NewJSONStore(ctx.Config.Storage)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	ctx.Store = reopened
	records, err := ctx.Records(models.Parking).Read()
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("restored %d records, want 1", len(records))
	}
}

func TestBackupRestore_Confirmation(t *testing.T) {
	tests := []struct {
		name    string
		prompt  cli.Prompter
		yes     bool
		wantErr bool
		wantOut string
	}{
		{"declined", &stubPrompter{confirm: false}, false, false, "Restore cancelled."},
		{"no terminal", nil, false, true, ""},
		{"yes flag", nil, true, false, "restored successfully"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := setupTestBackups(t)
			if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
				t.Fatalf("create failed: %v", err)
			}
			ctx.Prompt = tt.prompt

			err := (&BackupRestoreCmd{Backup: "1", Yes: tt.yes}).Run(ctx)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantOut != "" && !strings.Contains(out.String(), tt.wantOut) {
				t.Errorf("output %q missing %q", out.String(), tt.wantOut)
			}
		})
	}
}

func TestBackupRestore_UnknownIndex(t *testing.T) {
	ctx, _ := setupTestBackups(t)

	if err := (&BackupRestoreCmd{Backup: "3", Yes: true}).Run(ctx); err == nil {
		t.Error("restoring a missing backup should fail")
	}
}

func TestBackups_UnsupportedStore(t *testing.T) {
	ctx, _ := setupTestBackups(t)
	mem := storage.NewMemoryStore()
	ctx.Store = mem

	err := (&BackupCreateCmd{}).Run(ctx)
	if err == nil || !strings.Contains(err.Error(), backup.ErrUnsupported.Error()) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
	if _, statErr := os.Stat(ctx.Config.BackupDir()); !os.IsNotExist(statErr) {
		t.Error("backup directory should not be created for memory storage")
	}
}
