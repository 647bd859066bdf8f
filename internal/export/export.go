package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/checkin/internal/models"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatICS  Format = "ics"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatICS}
}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatJSON, FormatYAML, FormatICS:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "ical", "icalendar":
		return FormatICS, nil
	}
	return "", fmt.Errorf("unsupported export format %q (expected json, yaml or ics)", s)
}

// Extension returns the usual file extension for f, with the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// Write encodes records of habit to w. stamp is used for ICS DTSTAMP.
func Write(w io.Writer, f Format, habit models.Habit, records []models.CheckinRecord, stamp time.Time) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, records)
	case FormatYAML:
		return WriteYAML(w, records)
	case FormatICS:
		return WriteICS(w, habit, records, stamp)
	}
	return fmt.Errorf("unsupported export format %q", f)
}

// WriteJSON writes records in their stored shape, indented.
func WriteJSON(w io.Writer, records []models.CheckinRecord) error {
	if records == nil {
		records = []models.CheckinRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func WriteYAML(w io.Writer, records []models.CheckinRecord) error {
	if records == nil {
		records = []models.CheckinRecord{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return err
	}
	return enc.Close()
}
