package models

import (
	"fmt"
	"time"

	"github.com/julianstephens/checkin/internal/constants"
)

// CheckinRecord is a single timestamped check-in. Date and Time are derived
// from Timestamp in the writer's local zone when the record is created and
// are never recomputed.
type CheckinRecord struct {
	ID        int64  `json:"id" yaml:"id"`
	Timestamp int64  `json:"timestamp" yaml:"timestamp"` // Unix milliseconds
	Date      string `json:"date" yaml:"date"`           // YYYY-MM-DD
	Time      string `json:"time" yaml:"time"`           // HH:MM:SS
}

// NewCheckinRecord builds a record for now. The id is the millisecond
// timestamp; now should already be in the location the strings are meant for.
func NewCheckinRecord(now time.Time) CheckinRecord {
	ms := now.UnixMilli()
	return CheckinRecord{
		ID:        ms,
		Timestamp: ms,
		Date:      FormatDate(now),
		Time:      FormatClock(now),
	}
}

// Instant returns the record's timestamp in loc.
func (r CheckinRecord) Instant(loc *time.Location) time.Time {
	return time.UnixMilli(r.Timestamp).In(loc)
}

// Validate checks that the derived fields are well formed and agree with the
// timestamp when read back in loc.
func (r CheckinRecord) Validate(loc *time.Location) error {
	if _, err := time.Parse(constants.DateFormat, r.Date); err != nil {
		return fmt.Errorf("record %d: invalid date %q", r.ID, r.Date)
	}
	if _, err := time.Parse(constants.ClockFormat, r.Time); err != nil {
		return fmt.Errorf("record %d: invalid time %q", r.ID, r.Time)
	}
	at := r.Instant(loc)
	if FormatDate(at) != r.Date || FormatClock(at) != r.Time {
		return fmt.Errorf("record %d: %s %s does not match timestamp %d (%s)",
			r.ID, r.Date, r.Time, r.Timestamp, at.Format(constants.DateFormat+" "+constants.ClockFormat))
	}
	return nil
}

// FormatDate formats t as a zero-padded YYYY-MM-DD string.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// FormatClock formats t as a zero-padded HH:MM:SS string.
func FormatClock(t time.Time) string {
	return t.Format(constants.ClockFormat)
}
