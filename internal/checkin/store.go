package checkin

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/checkin/internal/logger"
	"github.com/julianstephens/checkin/internal/models"
	"github.com/julianstephens/checkin/internal/storage"
)

var (
	// ErrStorageRead means the stored log could not be read or parsed. The
	// log is treated as empty.
	ErrStorageRead = errors.New("failed to read check-in records")
	// ErrStorageWrite means the rewritten log could not be persisted.
	ErrStorageWrite = errors.New("failed to save check-in records")
)

// Store reads and appends the record log of a single habit. It holds no
// cached copy; every call goes to the provider.
type Store struct {
	provider storage.Provider
	habit    models.Habit
	loc      *time.Location
}

func NewStore(provider storage.Provider, habit models.Habit, loc *time.Location) *Store {
	if loc == nil {
		loc = time.Local
	}
	return &Store{
		provider: provider,
		habit:    habit,
		loc:      loc,
	}
}

func (s *Store) Habit() models.Habit {
	return s.habit
}

func (s *Store) Location() *time.Location {
	return s.loc
}

// Read returns the stored log newest first. A missing key or an empty value
// is an empty log.
// Backend and parse failures are wrapped in ErrStorageRead.
func (s *Store) Read() ([]models.CheckinRecord, error) {
	value, found, err := s.provider.GetItem(s.habit.StorageKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageRead, err)
	}
	if !found || value == "" {
		return []models.CheckinRecord{}, nil
	}
	records, err := Decode(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrStorageRead, s.habit.StorageKey, err)
	}
	return records, nil
}

// Load is Read with failures logged and recovered as an empty log.
func (s *Store) Load() []models.CheckinRecord {
	records, err := s.Read()
	if err != nil {
		logger.Warn("Treating check-in log as empty", "habit", s.habit.Key, "error", err)
		return []models.CheckinRecord{}
	}
	return records
}

// Append records a check-in at now, puts it at the head of the log and
// rewrites the whole log. On a write failure the record is still returned
// together with an error wrapping ErrStorageWrite.
func (s *Store) Append(now time.Time) (models.CheckinRecord, error) {
	record := models.NewCheckinRecord(now.In(s.loc))

	current := s.Load()
	next := make([]models.CheckinRecord, 0, len(current)+1)
	next = append(next, record)
	next = append(next, current...)

	if err := s.write(next); err != nil {
		logger.Error("Check-in not saved", "habit", s.habit.Key, "id", record.ID, "error", err)
		return record, err
	}
	logger.Debug("Check-in saved", "habit", s.habit.Key, "date", record.Date, "time", record.Time)
	return record, nil
}

func (s *Store) write(records []models.CheckinRecord) error {
	value, err := Encode(records)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}
	if err := s.provider.SetItem(s.habit.StorageKey, value); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}
	return nil
}

// Decode parses a stored value. A JSON null decodes to an empty log.
func Decode(value string) ([]models.CheckinRecord, error) {
	var records []models.CheckinRecord
	if err := json.Unmarshal([]byte(value), &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.CheckinRecord{}
	}
	return records, nil
}

// Encode serialises a log to its stored form.
func Encode(records []models.CheckinRecord) (string, error) {
	if records == nil {
		records = []models.CheckinRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
