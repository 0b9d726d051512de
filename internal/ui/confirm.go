package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Confirm prints a warning box with the given lines and asks the user to type
// answer. It returns true only if the typed line matches answer exactly
// (surrounding whitespace ignored). EOF or a read error counts as no.
func (p *Printer) Confirm(in io.Reader, title string, warnings []string, answer string) bool {
	var lines []string
	lines = append(lines, "", WarningTitleStyle.Render(fmt.Sprintf("%s  %s", WarningMarker, title)), "")
	for _, w := range warnings {
		lines = append(lines, lipgloss.NewStyle().Foreground(TextColor).Render("• "+w))
	}
	lines = append(lines, "")

	p.Println(boxStyle(WarningColor, p.width).Render(strings.Join(lines, "\n")))

	prompt := lipgloss.NewStyle().Foreground(WarningColor).Bold(true)
	p.Print(prompt.Render(fmt.Sprintf("Type %q to continue: ", answer)))

	input, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && input == "" {
		p.Println("")
		return false
	}

	if strings.TrimSpace(input) == answer {
		return true
	}

	p.Println(lipgloss.NewStyle().Foreground(MutedColor).Render("Cancelled."))
	return false
}
