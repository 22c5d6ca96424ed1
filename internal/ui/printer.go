// Package ui renders user-facing progress output for the installers.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/trellis-framework/skills/internal/logging"
)

// Printer writes user-facing lines, colorized when the writer is a
// color-capable terminal. A quiet Printer suppresses everything.
type Printer struct {
	out      io.Writer
	quiet    bool
	useColor bool
}

// NewPrinter creates a Printer for the given writer.
func NewPrinter(out io.Writer, quiet bool) *Printer {
	return &Printer{
		out:      out,
		quiet:    quiet,
		useColor: logging.SupportsColor(out),
	}
}

// Blank writes an empty line.
func (p *Printer) Blank() {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out)
}

// Line writes a plain line.
func (p *Printer) Line(format string, args ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Success writes a line prefixed with a green checkmark.
func (p *Printer) Success(format string, args ...any) {
	if p.quiet {
		return
	}
	mark := "✓"
	if p.useColor {
		mark = color.GreenString(mark)
	}
	fmt.Fprintf(p.out, "%s %s\n", mark, fmt.Sprintf(format, args...))
}

// Bold writes an emphasized line for banners.
func (p *Printer) Bold(format string, args ...any) {
	if p.quiet {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if p.useColor {
		msg = color.New(color.Bold).Sprint(msg)
	}
	fmt.Fprintln(p.out, msg)
}

// Dim writes a de-emphasized informational line.
func (p *Printer) Dim(format string, args ...any) {
	if p.quiet {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if p.useColor {
		msg = color.New(color.FgHiBlack).Sprint(msg)
	}
	fmt.Fprintln(p.out, msg)
}
