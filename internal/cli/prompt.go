package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/checkin/internal/models"
)

// Prompter asks the user for input.
type Prompter interface {
	SelectHabit(title string, habits []models.Habit) (models.Habit, error)
	Confirm(title, description string) (bool, error)
}

// FormPrompter prompts with huh forms.
type FormPrompter struct{}

func (FormPrompter) SelectHabit(title string, habits []models.Habit) (models.Habit, error) {
	if len(habits) == 0 {
		return models.Habit{}, fmt.Errorf("no habits to choose from")
	}

	options := make([]huh.Option[string], 0, len(habits))
	for _, h := range habits {
		options = append(options, huh.NewOption(fmt.Sprintf("%s  %s", h.Icon, h.Name), h.Key))
	}

	choice := habits[0].Key
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(options...).
				Value(&choice),
		),
	)
	if err := form.Run(); err != nil {
		return models.Habit{}, fmt.Errorf("interactive form error: %w", err)
	}
	return models.LookupHabit(choice)
}

func (FormPrompter) Confirm(title, description string) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	)
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("interactive form error: %w", err)
	}
	return ok, nil
}
