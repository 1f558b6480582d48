package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/lifeos/internal/cli/formatter"
)

// lifeosHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func lifeosHuhTheme() *huh.Theme {
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
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("this field is required")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

func validateJoyScore(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 5 {
		return fmt.Errorf("expected a score from 1 to 5")
	}
	return nil
}

// profileFormValues collects the raw string inputs of the profile form.
type profileFormValues struct {
	Name      string
	BirthDate string
	Interests string
	Priority  string
}

// profileForm returns a themed form for collecting a new child profile.
func profileForm(v *profileFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Child Name").
				Placeholder("Mira").
				Value(&v.Name).
				Validate(validateRequired),
			huh.NewInput().
				Title("Date of Birth (YYYY-MM-DD)").
				Placeholder("2018-04-12").
				Value(&v.BirthDate).
				Validate(validateDate),
			huh.NewInput().
				Title("Interests (comma separated)").
				Placeholder("space, drawing").
				Value(&v.Interests),
			huh.NewInput().
				Title("Parent Priority").
				Placeholder("encourage curiosity").
				Value(&v.Priority).
				Validate(validateRequired),
		),
	).WithTheme(lifeosHuhTheme()).WithShowHelp(false)
}

// checkinFormValues collects the raw string inputs of the check-in form.
type checkinFormValues struct {
	JoyScore string
	Notes    string
}

// checkinForm returns a themed form for recording today's check-in.
func checkinForm(v *checkinFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Joy Score (1-5)").
				Placeholder("4").
				Value(&v.JoyScore).
				Validate(validateJoyScore),
			huh.NewInput().
				Title("Notes (optional)").
				Placeholder("good day at school").
				Value(&v.Notes),
		),
	).WithTheme(lifeosHuhTheme()).WithShowHelp(false)
}

// parseInterests splits a comma-separated interests string, dropping blanks.
func parseInterests(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
