package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// fdWriter is any writer backed by a file descriptor, os.File included.
type fdWriter interface {
	Fd() uintptr
}

// IsTTY reports whether w is attached to a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(fdWriter)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SupportsColor reports whether ANSI color output is appropriate on w.
// Color is off for non-terminals, when NO_COLOR is set (no-color.org),
// and for TERM=dumb.
func SupportsColor(w io.Writer) bool {
	return colorAllowed() && IsTTY(w)
}

// colorAllowed checks the environment half of the color decision.
func colorAllowed() bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}
