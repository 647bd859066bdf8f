package models

import (
	"fmt"
	"strings"

	"github.com/julianstephens/checkin/internal/constants"
)

// Habit describes one check-in widget. Each habit owns exactly one record log
// stored under StorageKey.
type Habit struct {
	Key          string `json:"key" yaml:"key"`
	Name         string `json:"name" yaml:"name"`
	StorageKey   string `json:"storage_key" yaml:"storage_key"`
	Icon         string `json:"icon" yaml:"icon"`
	ButtonLabel  string `json:"button_label" yaml:"button_label"`
	CounterLabel string `json:"counter_label" yaml:"counter_label"`
	EmptyMessage string `json:"empty_message" yaml:"empty_message"`
	Calendar     bool   `json:"calendar" yaml:"calendar"`
}

var (
	Parking = Habit{
		Key:          "parking",
		Name:         "Parking",
		StorageKey:   constants.ParkingStorageKey,
		Icon:         "🅿️",
		ButtonLabel:  "Parked",
		CounterLabel: "Parked today",
		EmptyMessage: "No check-ins yet. Press the button above to record one!",
		Calendar:     true,
	}

	Water = Habit{
		Key:          "water",
		Name:         "Water",
		StorageKey:   constants.WaterStorageKey,
		Icon:         "💧",
		ButtonLabel:  "Drank",
		CounterLabel: "Glasses today",
		EmptyMessage: "No check-ins yet. Press the button above to record one!",
		Calendar:     false,
	}
)

// Builtins returns the built-in habits in display order.
func Builtins() []Habit {
	return []Habit{Parking, Water}
}

// LookupHabit finds a built-in habit by key or storage key (case-insensitive).
func LookupHabit(name string) (Habit, error) {
	name = strings.TrimSpace(name)
	for _, h := range Builtins() {
		if strings.EqualFold(h.Key, name) || strings.EqualFold(h.StorageKey, name) {
			return h, nil
		}
	}
	return Habit{}, fmt.Errorf("unknown habit %q (expected one of: %s)", name, strings.Join(HabitKeys(), ", "))
}

// HabitKeys returns the keys of all built-in habits.
func HabitKeys() []string {
	keys := make([]string, 0, len(Builtins()))
	for _, h := range Builtins() {
		keys = append(keys, h.Key)
	}
	return keys
}
