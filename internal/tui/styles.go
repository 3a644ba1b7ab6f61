package tui

import (
	"github.com/charmbracelet/lipgloss"

	mdwargs "github.com/msto63/argv/foundation/args"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorCyan      = lipgloss.Color("#06B6D4")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorFg        = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(colorError)

	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#374151")).
			Foreground(colorFg).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	HeaderCellStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
			Foreground(colorFg).
			Padding(0, 1)

	ValueStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Padding(0, 1)
)

// Record kind styles
var kindStyles = map[mdwargs.Kind]lipgloss.Style{
	mdwargs.KindParameter: lipgloss.NewStyle().Foreground(colorSecondary).Padding(0, 1),
	mdwargs.KindOption:    lipgloss.NewStyle().Foreground(colorCyan).Bold(true).Padding(0, 1),
	mdwargs.KindFlag:      lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Padding(0, 1),
}

// KindStyle returns the cell style for a record kind
func KindStyle(kind mdwargs.Kind) lipgloss.Style {
	if s, ok := kindStyles[kind]; ok {
		return s
	}
	return CellStyle
}

func RenderTitle(title string) string {
	return TitleStyle.Render(title)
}

func RenderError(err string) string {
	return ErrorMessageStyle.Render("Error: " + err)
}

func RenderHelp(help string) string {
	return HelpStyle.Render(help)
}
