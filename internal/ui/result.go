package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResultType selects the box color and marker
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
	ResultWarning
)

// Result is a bordered result box with an ordered list of details
type Result struct {
	Type    ResultType
	Title   string
	Details []Param
	Error   error
	Hints   []string
	Width   int
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, details ...Param) *Result {
	return &Result{Type: ResultSuccess, Title: title, Details: details, Width: GetTerminalWidth()}
}

// NewWarningResult creates a warning result box
func NewWarningResult(title string, details ...Param) *Result {
	return &Result{Type: ResultWarning, Title: title, Details: details, Width: GetTerminalWidth()}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title string, err error, hints ...string) *Result {
	return &Result{Type: ResultFailure, Title: title, Error: err, Hints: hints, Width: GetTerminalWidth()}
}

// SetWidth sets the rendering width
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddHint appends a muted hint line below the details
func (r *Result) AddHint(hint string) *Result {
	r.Hints = append(r.Hints, hint)
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	width := ClampWidth(r.Width)

	var lines []string
	lines = append(lines, "")

	switch r.Type {
	case ResultFailure:
		lines = append(lines, ErrorTitleStyle.Render(fmt.Sprintf("%s  %s", FailureMarker, r.Title)))
	case ResultWarning:
		lines = append(lines, WarningTitleStyle.Render(fmt.Sprintf("%s  %s", WarningMarker, r.Title)))
	default:
		lines = append(lines, SuccessTitleStyle.Render(fmt.Sprintf("%s  %s", SuccessMarker, r.Title)))
	}
	lines = append(lines, "")

	if r.Error != nil {
		lines = append(lines, ErrorMessageStyle.Render("Error: "+r.Error.Error()), "")
	}

	for _, d := range r.Details {
		lines = append(lines, ResultKeyStyle.Render(d.Key+":")+" "+ResultValueStyle.Render(d.Value))
	}
	if len(r.Details) > 0 {
		lines = append(lines, "")
	}

	for _, h := range r.Hints {
		lines = append(lines, HintStyle.Render(h))
	}
	if len(r.Hints) > 0 {
		lines = append(lines, "")
	}

	return boxStyle(r.color(), width).Render(strings.Join(lines, "\n"))
}

func (r *Result) color() lipgloss.Color {
	switch r.Type {
	case ResultFailure:
		return ErrorColor
	case ResultWarning:
		return WarningColor
	default:
		return SuccessColor
	}
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}
