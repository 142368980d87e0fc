package render

import "github.com/charmbracelet/lipgloss"

// Shared styles for terminal output. The TUI reuses them so list output and
// the interactive view look alike.
//
//nolint:gochecknoglobals // Style values are immutable after init.
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33"))

	CaptionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	ButtonStyle = lipgloss.NewStyle().
			Padding(0, 1)

	ActiveButtonStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	DisabledButtonStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Faint(true).
				Foreground(lipgloss.Color("240"))

	EmptyStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("245"))
)
