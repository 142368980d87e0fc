package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/listpager/internal/render"
)

//nolint:gochecknoglobals // Style values are immutable after init.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	HeaderStyle  = render.HeaderStyle
	CaptionStyle = render.CaptionStyle

	RowStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("238")).
				PaddingLeft(2)

	FocusStyle = lipgloss.NewStyle().
			Underline(true)

	InputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)
