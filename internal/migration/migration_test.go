package migration

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func migrationFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return fsys
}

func TestGetCurrentVersion(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_test.sql": "CREATE TABLE test (id INTEGER);",
	}), SQLite)

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if version != 0 {
		t.Errorf("expected version 0, got %d", version)
	}

	if err := runner.SetVersion(5); err != nil {
		t.Fatalf("SetVersion failed: %v", err)
	}

	version, err = runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if version != 5 {
		t.Errorf("expected version 5, got %d", version)
	}
}

func TestReadMigrationFiles(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"002_second.sql": "SELECT 2;",
		"001_first.sql":  "SELECT 1;",
		"README.md":      "ignored",
	}), SQLite)

	migrations, err := runner.ReadMigrationFiles()
	if err != nil {
		t.Fatalf("ReadMigrationFiles failed: %v", err)
	}
	if len(migrations) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(migrations))
	}
	if migrations[0].Version != 1 || migrations[0].Name != "first" {
		t.Errorf("unexpected first migration: %+v", migrations[0])
	}
	if migrations[1].Version != 2 || migrations[1].Name != "second" {
		t.Errorf("unexpected second migration: %+v", migrations[1])
	}
}

func TestApplyMigrationsFromScratch(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_items.sql": "CREATE TABLE kv_items (key TEXT PRIMARY KEY, value TEXT NOT NULL);",
		"002_index.sql": "CREATE INDEX idx_kv_items_value ON kv_items(value);",
	}), SQLite)

	var messages []string
	applied, err := runner.ApplyMigrations(func(msg string) { messages = append(messages, msg) })
	if err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("expected 2 applied, got %d", applied)
	}
	if len(messages) == 0 {
		t.Error("expected progress messages")
	}

	version, _ := runner.GetCurrentVersion()
	if version != 2 {
		t.Errorf("expected version 2, got %d", version)
	}

	pending, err := runner.PendingCount()
	if err != nil {
		t.Fatalf("PendingCount failed: %v", err)
	}
	if pending != 0 {
		t.Errorf("expected no pending migrations, got %d", pending)
	}
}

func TestApplyMigrationsIncremental(t *testing.T) {
	db := setupTestDB(t)
	files := map[string]string{
		"001_items.sql": "CREATE TABLE kv_items (key TEXT PRIMARY KEY, value TEXT NOT NULL);",
	}
	if _, err := NewRunner(db, migrationFS(files), SQLite).ApplyMigrations(nil); err != nil {
		t.Fatalf("first ApplyMigrations failed: %v", err)
	}

	files["002_updated.sql"] = "ALTER TABLE kv_items ADD COLUMN updated_at TEXT;"
	runner := NewRunner(db, migrationFS(files), SQLite)

	pending, err := runner.PendingCount()
	if err != nil {
		t.Fatalf("PendingCount failed: %v", err)
	}
	if pending != 1 {
		t.Errorf("expected 1 pending migration, got %d", pending)
	}

	applied, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("second ApplyMigrations failed: %v", err)
	}
	if applied != 1 {
		t.Errorf("expected 1 applied, got %d", applied)
	}
}

func TestApplyMigrationsNoOp(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_items.sql": "CREATE TABLE kv_items (key TEXT PRIMARY KEY);",
	}), SQLite)

	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	applied, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("second ApplyMigrations failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("expected 0 applied on second run, got %d", applied)
	}
}

func TestMigrationRollbackOnError(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_good.sql": "CREATE TABLE kv_items (key TEXT PRIMARY KEY);",
		"002_bad.sql":  "CREATE TABLE broken (;",
	}), SQLite)

	applied, err := runner.ApplyMigrations(nil)
	if err == nil {
		t.Fatal("expected error from broken migration")
	}
	if applied != 1 {
		t.Errorf("expected 1 applied before failure, got %d", applied)
	}

	version, _ := runner.GetCurrentVersion()
	if version != 1 {
		t.Errorf("expected version to stay at 1, got %d", version)
	}
}

func TestValidateVersionNewerDatabase(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_items.sql": "CREATE TABLE kv_items (key TEXT PRIMARY KEY);",
	}), SQLite)

	if err := runner.SetVersion(9); err != nil {
		t.Fatalf("SetVersion failed: %v", err)
	}

	err := runner.ValidateVersion()
	if err == nil || !strings.Contains(err.Error(), "newer than supported") {
		t.Errorf("expected newer-schema error, got %v", err)
	}

	if _, err := runner.ApplyMigrations(nil); err == nil {
		t.Error("expected ApplyMigrations to refuse a newer database")
	}
}

func TestMigrationFilenameValidation(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
	}{
		{name: "missing underscore", files: map[string]string{"001.sql": "SELECT 1;"}},
		{name: "non numeric version", files: map[string]string{"abc_init.sql": "SELECT 1;"}},
		{name: "zero version", files: map[string]string{"000_init.sql": "SELECT 1;"}},
		{name: "duplicate version", files: map[string]string{"001_a.sql": "SELECT 1;", "1_b.sql": "SELECT 1;"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewRunner(setupTestDB(t), migrationFS(tt.files), SQLite)
			if _, err := runner.ReadMigrationFiles(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestDialectPlaceholder(t *testing.T) {
	if got := SQLite.placeholder(); got != "?" {
		t.Errorf("SQLite placeholder = %q", got)
	}
	if got := Postgres.placeholder(); got != "$1" {
		t.Errorf("Postgres placeholder = %q", got)
	}
}
