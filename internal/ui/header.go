package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Param is one labelled value shown in a header. A slice keeps display order.
type Param struct {
	Key   string
	Value string
}

// Header is the banner printed above a result: a title and the inputs
type Header struct {
	Title  string
	Params []Param
	Width  int
}

// NewHeader creates a header sized to the terminal
func NewHeader(title string, params ...Param) *Header {
	return &Header{
		Title:  title,
		Params: params,
		Width:  GetTerminalWidth(),
	}
}

// SetWidth sets the rendering width
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header as a string
func (h *Header) Render() string {
	width := ClampWidth(h.Width)

	titleLine := HeaderTitleStyle.Render(strings.ToUpper(h.Title))
	if len(h.Params) == 0 {
		return headerBorder(width).Render(titleLine)
	}

	dividerWidth := width - 6
	if dividerWidth < 10 {
		dividerWidth = 10
	}
	divider := lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Render(strings.Repeat("─", dividerWidth))

	lines := make([]string, 0, len(h.Params))
	for _, p := range h.Params {
		lines = append(lines, HeaderParamKeyStyle.Render(p.Key+":")+HeaderParamValueStyle.Render(p.Value))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, titleLine, divider, strings.Join(lines, "\n"))
	return headerBorder(width).Render(content)
}

// String implements fmt.Stringer
func (h *Header) String() string {
	return h.Render()
}

func headerBorder(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2)
}
