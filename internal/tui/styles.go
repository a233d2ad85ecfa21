package tui

import "github.com/charmbracelet/lipgloss"

// Shared lipgloss styles.
//
//nolint:gochecknoglobals // Styles are immutable values reused across renders.
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	BreadcrumbStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63")).
			Underline(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

// publisherColors tints the card border per publisher.
//
//nolint:gochecknoglobals // Lookup table.
var publisherColors = map[string]lipgloss.Color{
	"DC Comics":     lipgloss.Color("33"),
	"Marvel Comics": lipgloss.Color("160"),
}
