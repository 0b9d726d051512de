package ui

import (
	"fmt"
	"io"
	"os"
)

// Printer writes UI components to a writer.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a Printer sized to the terminal.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// WithWidth overrides the rendering width
func (p *Printer) WithWidth(width int) *Printer {
	p.width = ClampWidth(width)
	return p
}

// Width returns the rendering width
func (p *Printer) Width() int {
	return p.width
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// PrintHeader prints a header box
func (p *Printer) PrintHeader(title string, params ...Param) {
	p.Println(NewHeader(title, params...).SetWidth(p.width).Render())
}

// PrintResult prints a result box
func (p *Printer) PrintResult(r *Result) {
	p.Println(r.SetWidth(p.width).Render())
}

// PrintError prints a failure box
func (p *Printer) PrintError(title string, err error, hints ...string) {
	p.PrintResult(NewFailureResult(title, err, hints...))
}
