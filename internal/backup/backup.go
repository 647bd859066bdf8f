package backup

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/checkin/internal/constants"
	"github.com/julianstephens/checkin/internal/logger"
	"github.com/julianstephens/checkin/internal/storage"
)

const timestampFormat = "20060102-150405"

// ErrUnsupported is returned for stores that are not a single local file.
var ErrUnsupported = errors.New("backups are only supported for SQLite and JSON storage")

// Kind is the file format being backed up.
type Kind int

const (
	SQLite Kind = iota
	JSON
)

// Info describes one backup file.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager creates, lists, rotates and restores backups of one store file.
type Manager struct {
	source    string
	backupDir string
	kind      Kind
	now       func() time.Time
}

// NewManager returns a manager for the store file at source. The format is
// chosen from the file extension.
func NewManager(source, backupDir string) *Manager {
	kind := SQLite
	if strings.EqualFold(filepath.Ext(source), ".json") {
		kind = JSON
	}
	return &Manager{
		source:    source,
		backupDir: backupDir,
		kind:      kind,
		now:       time.Now,
	}
}

// ForStore returns a manager for a file-backed provider.
func ForStore(p storage.Provider, backupDir string) (*Manager, error) {
	fb, ok := p.(storage.FileBacked)
	if !ok {
		return nil, fmt.Errorf("%w (current storage: %s)", ErrUnsupported, p.GetConfigPath())
	}
	return NewManager(fb.FilePath(), backupDir), nil
}

func (m *Manager) Dir() string {
	return m.backupDir
}

func (m *Manager) extension() string {
	if m.kind == JSON {
		return ".json"
	}
	return ".db"
}

// Create writes a new backup and prunes old ones beyond MaxBackups.
func (m *Manager) Create() (string, error) {
	path, err := m.create()
	if err != nil {
		return "", err
	}
	if err := m.rotate(); err != nil {
		logger.Warn("Failed to rotate old backups", "error", err)
	}
	return path, nil
}

func (m *Manager) create() (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}
	if _, err := os.Stat(m.source); os.IsNotExist(err) {
		return "", fmt.Errorf("storage does not exist: %s", m.source)
	}

	path, err := m.nextPath()
	if err != nil {
		return "", err
	}

	switch m.kind {
	case JSON:
		if err := storage.VerifyJSONFile(m.source); err != nil {
			return "", fmt.Errorf("refusing to back up invalid store: %w", err)
		}
		err = copyFile(m.source, path)
	default:
		err = m.vacuumInto(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to back up storage: %w", err)
	}
	logger.Debug("Backup created", "path", path)
	return path, nil
}

func (m *Manager) nextPath() (string, error) {
	stamp := m.now().Format(timestampFormat)
	base := constants.BackupFilePrefix + stamp
	path := filepath.Join(m.backupDir, base+m.extension())
	for n := 1; ; n++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
		if n > 100 {
			return "", errors.New("failed to generate unique backup filename")
		}
		path = filepath.Join(m.backupDir, fmt.Sprintf("%s-%d%s", base, n, m.extension()))
	}
}

func (m *Manager) vacuumInto(dest string) error {
	db, err := sql.Open("sqlite", m.source+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer db.Close()

	if err := verifySQLite(db); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}
	if _, err := db.Exec("VACUUM INTO ?", dest); err != nil {
		logger.Debug("VACUUM INTO failed, copying file", "error", err)
		db.Close()
		return copyFile(m.source, dest)
	}
	return nil
}

// List returns the backups for this store, newest first.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Info{}, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	backups := []Info{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ts, ok := m.parseName(entry.Name())
		if !ok {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(m.backupDir, entry.Name()),
			Timestamp: ts,
			Size:      fi.Size(),
		})
	}

	sort.SliceStable(backups, func(i, j int) bool {
		if backups[i].Timestamp.Equal(backups[j].Timestamp) {
			return backups[i].Path > backups[j].Path
		}
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// parseName accepts checkin-YYYYMMDD-HHMMSS[-N].ext.
func (m *Manager) parseName(name string) (time.Time, bool) {
	if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, m.extension()) {
		return time.Time{}, false
	}
	stem := strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), m.extension())
	parts := strings.Split(stem, "-")
	switch len(parts) {
	case 2:
	case 3:
		if _, err := strconv.Atoi(parts[2]); err != nil {
			return time.Time{}, false
		}
	default:
		return time.Time{}, false
	}
	ts, err := time.ParseInLocation(timestampFormat, parts[0]+"-"+parts[1], time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// Restore replaces the store file with the backup at path. The current file,
// if any, is first saved as a new backup whose path is returned. The store
// must be closed.
func (m *Manager) Restore(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", fmt.Errorf("backup file does not exist: %s", path)
	}
	if err := m.verify(path); err != nil {
		return "", fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	var safety string
	if _, err := os.Stat(m.source); err == nil {
		safety, err = m.create()
		if err != nil {
			return "", fmt.Errorf("failed to back up current storage before restore: %w", err)
		}
	}

	tmp := m.source + ".restore.tmp"
	if err := copyFile(path, tmp); err != nil {
		return safety, fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tmp, m.source); err != nil {
		if rmErr := os.Remove(tmp); rmErr != nil {
			logger.Warn("Failed to remove temporary file", "path", tmp, "error", rmErr)
		}
		return safety, fmt.Errorf("failed to restore storage: %w", err)
	}
	logger.Info("Storage restored", "from", path)
	return safety, nil
}

// Resolve finds a backup by path, file name or 1-based index into List.
func (m *Manager) Resolve(ref string) (string, error) {
	backups, err := m.List()
	if err != nil {
		return "", err
	}
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(backups) {
			return "", fmt.Errorf("backup #%d does not exist (%d available)", n, len(backups))
		}
		return backups[n-1].Path, nil
	}
	for _, b := range backups {
		if filepath.Base(b.Path) == ref {
			return b.Path, nil
		}
	}
	return ref, nil
}

func (m *Manager) verify(path string) error {
	if m.kind == JSON {
		return storage.VerifyJSONFile(path)
	}
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return err
	}
	defer db.Close()
	return verifySQLite(db)
}

func verifySQLite(db *sql.DB) error {
	var count int
	return db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.ReadFrom(in); err != nil {
		return err
	}
	return out.Sync()
}
