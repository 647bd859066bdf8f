package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/checkin/internal/constants"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func setupDir(t *testing.T) (string, Options) {
	t.Helper()
	dir := t.TempDir()
	return dir, Options{
		ConfigFile: filepath.Join(dir, constants.ConfigFileName),
		EnvFile:    filepath.Join(dir, ".env"),
		Getenv:     envMap(nil),
	}
}

func TestLoad_Defaults(t *testing.T) {
	dir, opts := setupDir(t)

	cfg, err := Load(opts)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, filepath.Join(dir, "checkin.db"), cfg.Storage)
	assert.Equal(t, constants.DefaultTimezone, cfg.Timezone)
	assert.Equal(t, constants.MonthLabelEnglish, cfg.MonthLabel)
	assert.False(t, cfg.Debug)
	assert.Equal(t, filepath.Join(dir, "backups"), cfg.BackupDir())
	assert.Equal(t, filepath.Join(dir, "checkin.lock"), cfg.LockPath())
}

func TestLoad_Precedence(t *testing.T) {
	dir, opts := setupDir(t)
	require.NoError(t, WriteFile(opts.ConfigFile, File{
		Storage:    filepath.Join(dir, "file.json"),
		Timezone:   "Asia/Shanghai",
		MonthLabel: constants.MonthLabelChinese,
	}))
	require.NoError(t, os.WriteFile(opts.EnvFile, []byte("CHECKIN_TIMEZONE=UTC\nCHECKIN_DB_CONNECTION=postgres://dotenv@localhost/db\n"), 0600))

	cfg, err := Load(opts)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "file.json"), cfg.Storage)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, constants.MonthLabelChinese, cfg.MonthLabel)
	assert.Equal(t, "postgres://dotenv@localhost/db", cfg.DBConnection)

	opts.Getenv = envMap(map[string]string{
		"CHECKIN_TIMEZONE": "Europe/Paris",
		"CHECKIN_DEBUG":    "true",
	})
	opts.Storage = constants.StorageMemory
	cfg, err = Load(opts)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Paris", cfg.Timezone)
	assert.True(t, cfg.Debug)
	assert.Equal(t, constants.StorageMemory, cfg.Storage)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		file File
	}{
		{"timezone", File{Timezone: "Mars/Olympus"}},
		{"week start", File{WeekStart: "monday"}},
		{"month label", File{MonthLabel: "klingon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, opts := setupDir(t)
			require.NoError(t, WriteFile(opts.ConfigFile, tt.file))
			_, err := Load(opts)
			assert.Error(t, err)
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, opts := setupDir(t)
	require.NoError(t, os.WriteFile(opts.ConfigFile, []byte("storage: [unclosed"), 0600))
	_, err := Load(opts)
	assert.Error(t, err)
}

func TestLoad_BadDebugEnvIgnored(t *testing.T) {
	_, opts := setupDir(t)
	opts.Getenv = envMap(map[string]string{"CHECKIN_DEBUG": "maybe"})
	cfg, err := Load(opts)
	require.NoError(t, err)
	assert.False(t, cfg.Debug)
}

func TestWriteReadFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")
	in := File{Storage: "x.db", Timezone: "UTC", WeekStart: "sunday", MonthLabel: constants.MonthLabelEnglish, Debug: true}
	require.NoError(t, WriteFile(path, in))

	out, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLocation(t *testing.T) {
	cfg := Default(t.TempDir())
	cfg.Timezone = "UTC"
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}
