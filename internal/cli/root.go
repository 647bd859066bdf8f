package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/julianstephens/checkin/internal/backup"
	"github.com/julianstephens/checkin/internal/checkin"
	"github.com/julianstephens/checkin/internal/config"
	"github.com/julianstephens/checkin/internal/constants"
	"github.com/julianstephens/checkin/internal/keyring"
	"github.com/julianstephens/checkin/internal/logger"
	"github.com/julianstephens/checkin/internal/models"
	"github.com/julianstephens/checkin/internal/storage"
	"github.com/julianstephens/checkin/internal/storage/postgres"
	"github.com/julianstephens/checkin/internal/storage/sqlite"
)

type Context struct {
	Store    storage.Provider
	Config   *config.Config
	Location *time.Location
	Now      func() time.Time
	Out      io.Writer
	// Prompt is nil when stdin is not a terminal
	Prompt Prompter
}

// NewContext builds the command context for cfg and store.
func NewContext(cfg *config.Config, store storage.Provider) (*Context, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return &Context{
		Store:    store,
		Config:   cfg,
		Location: loc,
		Now:      time.Now,
		Out:      os.Stdout,
	}, nil
}

func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.Out, args...)
}

// Today is the current time in the configured zone.
func (c *Context) Today() time.Time {
	return c.Now().In(c.Location)
}

// Records returns the record store for habit.
func (c *Context) Records(habit models.Habit) *checkin.Store {
	return checkin.NewStore(c.Store, habit, c.Location)
}

// Backups returns the backup manager for the current store.
func (c *Context) Backups() (*backup.Manager, error) {
	return backup.ForStore(c.Store, c.Config.BackupDir())
}

// PerformAutomaticBackup creates a backup and only logs failures
func (c *Context) PerformAutomaticBackup() {
	mgr, err := c.Backups()
	if err != nil {
		logger.Debug("Skipping automatic backup", "reason", err)
		return
	}
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ResolveHabit looks up name, or asks the user to pick a habit under title
// when name is empty and a prompt is available.
func (c *Context) ResolveHabit(name, title string) (models.Habit, error) {
	if strings.TrimSpace(name) != "" {
		return models.LookupHabit(name)
	}
	if c.Prompt == nil {
		return models.Habit{}, fmt.Errorf("habit is required (one of: %s)", strings.Join(models.HabitKeys(), ", "))
	}
	return c.Prompt.SelectHabit(title, models.Builtins())
}

// OpenStore picks the storage backend for cfg.Storage:
//
//	memory                  process-local, nothing persisted
//	postgres | postgresql   connection string from CHECKIN_DB_CONNECTION or the OS keyring
//	postgres://...          PostgreSQL, password must not be embedded
//	*.json                  single JSON file
//	anything else           SQLite database file
func OpenStore(cfg *config.Config) (storage.Provider, error) {
	target := strings.TrimSpace(cfg.Storage)

	switch strings.ToLower(target) {
	case constants.StorageMemory:
		return storage.NewMemoryStore(), nil
	case "postgres", "postgresql":
		connStr, err := connectionFromSecrets(cfg)
		if err != nil {
			return nil, err
		}
		return postgres.New(connStr), nil
	}

	if postgres.IsConnString(target) {
		if _, err := postgres.ValidateConnString(target); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, fmt.Errorf("%w; store the full connection string with 'checkin keyring set' or %s and use --storage postgres, or use a .pgpass file", err, constants.EnvDBConnection)
			}
			return nil, err
		}
		return postgres.New(target), nil
	}

	if strings.EqualFold(filepath.Ext(target), ".json") {
		return storage.NewJSONStore(target), nil
	}
	return sqlite.NewStore(target), nil
}

func connectionFromSecrets(cfg *config.Config) (string, error) {
	if cfg.DBConnection != "" {
		return cfg.DBConnection, nil
	}
	connStr, err := keyring.GetConnectionString()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", fmt.Errorf("no PostgreSQL connection configured: set %s or run 'checkin keyring set'", constants.EnvDBConnection)
		}
		return "", err
	}
	return connStr, nil
}
