package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/physio/internal/cli/formatter"
	"github.com/alexanderramin/physio/internal/domain"
)

// physioHuhTheme returns a huh theme using the formatter palette.
func physioHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// exerciseFormValues backs the add form. Numbers stay strings until the
// form is submitted.
type exerciseFormValues struct {
	Name        string
	Description string
	Kind        domain.ExerciseKind
	Sets        string
	PerSet      string
	DaysPerWeek string
}

func (v exerciseFormValues) toExercise() (*domain.Exercise, error) {
	e := &domain.Exercise{
		Name:        v.Name,
		Description: v.Description,
		Kind:        v.Kind,
	}
	var err error
	if e.TargetSets, err = parseOptionalInt(v.Sets); err != nil {
		return nil, err
	}
	perSet, err := parseOptionalInt(v.PerSet)
	if err != nil {
		return nil, err
	}
	if e.Kind == domain.KindTimeBased {
		e.TargetDuration = perSet
	} else {
		e.TargetReps = perSet
	}
	if e.TargetDaysPerWeek, err = parseOptionalInt(v.DaysPerWeek); err != nil {
		return nil, err
	}
	return e, nil
}

// newExerciseForm builds the interactive add form.
func newExerciseForm(v *exerciseFormValues) *huh.Form {
	if v.Kind == "" {
		v.Kind = domain.KindRepBased
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Exercise name").
				Value(&v.Name).
				Validate(validateRequired),
			huh.NewInput().
				Title("Description (optional)").
				Value(&v.Description),
			huh.NewSelect[domain.ExerciseKind]().
				Title("Measured in").
				Options(
					huh.NewOption("Repetitions", domain.KindRepBased),
					huh.NewOption("Seconds held", domain.KindTimeBased),
				).
				Value(&v.Kind),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Sets per session").
				Placeholder(strconv.Itoa(domain.DefaultTargetSets)).
				Value(&v.Sets).
				Validate(validatePositiveInt),
			huh.NewInput().
				TitleFunc(func() string {
					if v.Kind == domain.KindTimeBased {
						return "Seconds per set"
					}
					return "Reps per set"
				}, &v.Kind).
				Value(&v.PerSet).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Days per week").
				Placeholder(strconv.Itoa(domain.DefaultTargetDaysPerWeek)).
				Value(&v.DaysPerWeek).
				Validate(validateDaysPerWeek),
		),
	).WithTheme(physioHuhTheme()).WithShowHelp(false)
}

func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(physioHuhTheme()).WithShowHelp(false)
}

// confirm asks before a destructive action. With yes set, or without a
// terminal to ask on, it does not prompt: yes proceeds and a missing terminal
// refuses.
func confirm(app *App, yes bool, title string) (bool, error) {
	if yes {
		return true, nil
	}
	if !app.interactive() {
		return false, fmt.Errorf("refusing to continue without confirmation (pass --yes)")
	}
	var ok bool
	if err := wizardConfirm(title, &ok).Run(); err != nil {
		return false, err
	}
	return ok, nil
}

func validateRequired(s string) error {
	if s == "" {
		return fmt.Errorf("required")
	}
	return nil
}

// validatePositiveInt accepts empty or a positive integer.
func validatePositiveInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func validateDaysPerWeek(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 || v > 7 {
		return fmt.Errorf("enter a number from 1 to 7")
	}
	return nil
}

// parseOptionalInt reads an optional form field; empty means zero, which the
// service replaces with its default.
func parseOptionalInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return v, nil
}
