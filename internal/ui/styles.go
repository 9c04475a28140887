package ui

import "github.com/charmbracelet/lipgloss"

// Color definitions for the latscope theme.
var (
	primary = lipgloss.Color("205") // Pink
	subtle  = lipgloss.Color("240") // Gray

	success = lipgloss.Color("42")  // Green
	errCol  = lipgloss.Color("196") // Red
	warning = lipgloss.Color("220") // Yellow

	bgLight       = lipgloss.Color("237")
	textSecondary = lipgloss.Color("245")
	textMuted     = lipgloss.Color("240")
)

// styles groups every lipgloss style the dashboard uses. One value is built
// at startup and passed around; no ambient styling state.
type styles struct {
	TabBar      lipgloss.Style
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style

	Content   lipgloss.Style
	Card      lipgloss.Style
	CardTitle lipgloss.Style

	Label     lipgloss.Style
	Value     lipgloss.Style
	Subtle    lipgloss.Style
	Help      lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Success   lipgloss.Style
	StatusBar lipgloss.Style
}

func defaultStyles() styles {
	s := styles{}

	s.TabBar = lipgloss.NewStyle().Padding(0, 1).BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).BorderForeground(subtle)
	s.ActiveTab = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color("229")).Background(primary).Padding(0, 2).MarginRight(1)
	s.InactiveTab = lipgloss.NewStyle().
		Foreground(textSecondary).Background(bgLight).Padding(0, 2).MarginRight(1)

	s.Content = lipgloss.NewStyle().Padding(1, 2)
	s.Card = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
		BorderForeground(subtle).Padding(1, 2).MarginBottom(1)
	s.CardTitle = lipgloss.NewStyle().Bold(true).Foreground(primary).MarginBottom(1)

	s.Label = lipgloss.NewStyle().Foreground(textSecondary).Width(22)
	s.Value = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	s.Subtle = lipgloss.NewStyle().Foreground(subtle)
	s.Help = lipgloss.NewStyle().Foreground(textMuted).Padding(0, 1)
	s.Error = lipgloss.NewStyle().Foreground(errCol).Bold(true)
	s.Warning = lipgloss.NewStyle().Foreground(warning)
	s.Success = lipgloss.NewStyle().Foreground(success)
	s.StatusBar = lipgloss.NewStyle().Foreground(textSecondary).Padding(0, 1)

	return s
}
