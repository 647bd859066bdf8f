package checkin

import (
	"time"

	"github.com/julianstephens/checkin/internal/models"
)

// CountForDay returns how many records are dated on day's calendar date.
// day should be in the zone the records were written in.
func CountForDay(records []models.CheckinRecord, day time.Time) int {
	date := models.FormatDate(day)
	n := 0
	for _, r := range records {
		if r.Date == date {
			n++
		}
	}
	return n
}

// ListRow is one rendered record.
type ListRow struct {
	ID   int64
	Time string
	Date string
}

// ListView is the rendered record list. When the log is empty it holds only
// the placeholder and no rows.
type ListView struct {
	Placeholder string
	Rows        []ListRow
}

func (v ListView) Empty() bool {
	return len(v.Rows) == 0
}

// RenderList lays out records in log order.
func RenderList(records []models.CheckinRecord, placeholder string) ListView {
	if len(records) == 0 {
		return ListView{Placeholder: placeholder}
	}
	rows := make([]ListRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, ListRow{ID: r.ID, Time: r.Time, Date: r.Date})
	}
	return ListView{Rows: rows}
}
