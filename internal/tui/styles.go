package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/tipsplit/internal/urls"
	"github.com/muurk/tipsplit/internal/version"
)

// Application branding
const (
	AppName = "SPLITTER"
)

// Layout constants
const (
	MinTerminalWidth = 56
	MaxContentWidth  = 96
	FieldWidth       = 20
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("#26C0AB") // Strong cyan - selection, focus
	DarkColor    = lipgloss.Color("#00474B") // Very dark cyan - buttons, panel
	LightColor   = lipgloss.Color("#C5E4E7") // Light cyan - hover
	ErrorColor   = lipgloss.Color("#E17457") // Orange-red - zero people
	TextColor    = lipgloss.Color("#FFFFFF")
	SubtleColor  = lipgloss.Color("#7F9D9F") // Grayish cyan - labels
	BorderColor  = lipgloss.Color("#26C0AB")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Padding(0, 0, 1, 0)

	LabelStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Bold(true)

	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	ErrorLabelStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// FieldStyle frames a text input
	FieldStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Padding(0, 1).
			Width(FieldWidth)

	FocusedFieldStyle = FieldStyle.
				BorderForeground(PrimaryColor)

	ErrorFieldStyle = FieldStyle.
			BorderForeground(ErrorColor)

	// PresetStyle is an unselected tip button
	PresetStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(DarkColor).
			Padding(0, 2).
			MarginRight(1)

	// SelectedPresetStyle is the highlighted tip button
	SelectedPresetStyle = PresetStyle.
				Foreground(DarkColor).
				Background(PrimaryColor).
				Bold(true)

	// CursorPresetStyle marks the button the keyboard is on
	CursorPresetStyle = PresetStyle.
				Foreground(DarkColor).
				Background(LightColor)

	OutputPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(DarkColor).
				Padding(1, 2).
				MarginTop(1)

	OutputLabelStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true).
				Width(22)

	PerPersonStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	AmountStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	ResetStyle = lipgloss.NewStyle().
			Foreground(DarkColor).
			Background(PrimaryColor).
			Bold(true).
			Padding(0, 4).
			MarginTop(1)

	FocusedResetStyle = ResetStyle.
				Background(LightColor)

	DisabledResetStyle = ResetStyle.
				Foreground(SubtleColor).
				Background(DarkColor).
				Bold(false)
)

// BuildHeaderContent creates the header line with app name, version and URL
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " " + version.Version)

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(urls.Repository)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// RenderApplicationContainer wraps content with the header, a footer holding
// help text, and an outer border sized to the terminal.
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	width := CalculateBoxWidth(terminalWidth)

	header := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderBottom(true).
		BorderForeground(BorderColor).
		Width(width-4).
		Padding(0, 1).
		Render(BuildHeaderContent())

	footer := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderTop(true).
		BorderForeground(BorderColor).
		Foreground(SubtleColor).
		Width(width-4).
		Padding(0, 1).
		Render(footerText)

	body := lipgloss.NewStyle().
		Width(width-4).
		Padding(1, 2).
		Render(content)

	inner := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(width - 2).
		Render(inner)

	if terminalHeight <= 0 {
		return bordered
	}
	return lipgloss.Place(terminalWidth, terminalHeight, lipgloss.Center, lipgloss.Top, bordered)
}

// CalculateBoxWidth clamps the terminal width to the supported range
func CalculateBoxWidth(terminalWidth int) int {
	if terminalWidth < MinTerminalWidth {
		return MinTerminalWidth
	}
	if terminalWidth > MaxContentWidth {
		return MaxContentWidth
	}
	return terminalWidth
}
