package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/checkin/internal/logger"
)

// ErrLocked is returned when another live process holds the writer lock.
var ErrLocked = errors.New("another checkin session is writing")

var (
	findProcessFunc = ps.FindProcess
	getpid          = os.Getpid
)

// Holder is the process recorded in a lockfile.
type Holder struct {
	PID        int
	Executable string
}

func (h Holder) String() string {
	return fmt.Sprintf("%s (pid %d)", h.Executable, h.PID)
}

// Lock is a held writer lock.
type Lock struct {
	path string
}

// Acquire writes the current process into the lockfile at path. A lock held
// by a process that is no longer running is replaced.
func Acquire(path string) (*Lock, error) {
	holder, alive, err := Inspect(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("Replacing unreadable lockfile", "path", path, "error", err)
	}
	if alive && holder.PID != getpid() {
		return nil, fmt.Errorf("%w: held by %s", ErrLocked, holder)
	}
	if err == nil && !alive {
		logger.Info("Replacing stale lockfile", "path", path, "holder", holder.String())
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}
	content := fmt.Sprintf("%d|%s", getpid(), selfName())
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return nil, fmt.Errorf("failed to write lockfile: %w", err)
	}
	return &Lock{path: path}, nil
}

// Release removes the lockfile if it still names this process.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	holder, err := read(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if holder.PID != getpid() {
		return nil
	}
	return os.Remove(l.path)
}

// Inspect reads the lockfile at path and reports whether its holder is still
// running. A missing lockfile returns an error wrapping os.ErrNotExist.
func Inspect(path string) (Holder, bool, error) {
	holder, err := read(path)
	if err != nil {
		return Holder{}, false, err
	}

	process, err := findProcessFunc(holder.PID)
	if err != nil || process == nil {
		return holder, false, nil
	}
	if !strings.HasPrefix(process.Executable(), holder.Executable) {
		// PID reused by an unrelated program
		return holder, false, nil
	}
	return holder, true, nil
}

func read(path string) (Holder, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Holder{}, err
	}
	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 2 {
		return Holder{}, errors.New("lockfile is malformed")
	}
	pid, err := strconv.Atoi(parts[0])
	if err != nil || pid <= 0 {
		return Holder{}, errors.New("invalid process ID in lockfile")
	}
	if strings.TrimSpace(parts[1]) == "" {
		return Holder{}, errors.New("executable in lockfile is empty")
	}
	return Holder{PID: pid, Executable: parts[1]}, nil
}

func selfName() string {
	exe, err := os.Executable()
	if err != nil {
		return "checkin"
	}
	return filepath.Base(exe)
}
