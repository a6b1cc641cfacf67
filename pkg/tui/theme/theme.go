package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Form     FormTheme
	Calendar CalendarTheme
	Footer   FooterTheme
}

// FormTheme styles the login form and the entry editor.
type FormTheme struct {
	Frame   lipgloss.Style
	Title   lipgloss.Style
	Label   lipgloss.Style
	Focused lipgloss.Style
	Error   lipgloss.Style
	Hint    lipgloss.Style
}

// CalendarTheme styles the month grid.
type CalendarTheme struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	OutMonth lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
	Legend   lipgloss.Style
}

// FooterTheme styles the bottom key-hint bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Form: FormTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title:   lipgloss.NewStyle().Bold(true),
			Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Focused: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("204")),
			Hint:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Calendar: CalendarTheme{
			Title:    lipgloss.NewStyle().Bold(true),
			Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
			OutMonth: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			Today:    lipgloss.NewStyle().Underline(true).Bold(true),
			Selected: lipgloss.NewStyle().Reverse(true),
			Legend:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
	}
}
