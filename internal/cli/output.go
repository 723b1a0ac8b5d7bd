package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// ok prints a green success line.
func ok(w io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintln(w, color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(w io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintln(w, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(w io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintln(w, color.CyanString(fmt.Sprintf(format, a...)))
}
