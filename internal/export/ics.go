package export

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/checkin/internal/constants"
	"github.com/julianstephens/checkin/internal/models"
)

const (
	icsProductID = "-//checkin//checkin " + constants.Version + "//EN"
	icsLocal     = "20060102T150405"
	icsUTC       = "20060102T150405Z"
)

var uidNamespace = uuid.NewSHA1(uuid.NameSpaceDNS, []byte(constants.AppName))

// EventUID returns the stable UID of a record's calendar event.
func EventUID(habit models.Habit, record models.CheckinRecord) string {
	name := habit.Key + ":" + strconv.FormatInt(record.ID, 10)
	return uuid.NewSHA1(uidNamespace, []byte(name)).String() + "@" + constants.AppName
}

type icsWriter struct {
	w   io.Writer
	err error
}

func (iw *icsWriter) line(format string, args ...any) {
	if iw.err != nil {
		return
	}
	_, iw.err = fmt.Fprintf(iw.w, format+"\r\n", args...)
}

// WriteICS writes one VEVENT per record, lasting one second, in floating
// local time. Records with unparseable date or time are skipped.
func WriteICS(w io.Writer, habit models.Habit, records []models.CheckinRecord, stamp time.Time) error {
	iw := &icsWriter{w: w}

	iw.line("BEGIN:VCALENDAR")
	iw.line("VERSION:2.0")
	iw.line("PRODID:%s", icsProductID)
	iw.line("X-WR-CALNAME:%s check-ins", habit.Name)
	iw.line("CALSCALE:GREGORIAN")

	dtstamp := stamp.UTC().Format(icsUTC)
	for _, r := range records {
		start, err := time.Parse(constants.DateFormat+" "+constants.ClockFormat, r.Date+" "+r.Time)
		if err != nil {
			continue
		}
		iw.line("BEGIN:VEVENT")
		iw.line("UID:%s", EventUID(habit, r))
		iw.line("DTSTAMP:%s", dtstamp)
		iw.line("DTSTART:%s", start.Format(icsLocal))
		iw.line("DTEND:%s", start.Add(time.Second).Format(icsLocal))
		iw.line("SUMMARY:%s %s", habit.Icon, habit.ButtonLabel)
		iw.line("DESCRIPTION:%s check-in at %s %s", habit.Name, r.Date, r.Time)
		iw.line("END:VEVENT")
	}

	iw.line("END:VCALENDAR")
	return iw.err
}
