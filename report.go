package argus

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/napalu/argus/errs"
	"golang.org/x/term"
)

const defaultReportWidth = 80

// Diagnostics returns the individual errors carried by err: the diagnostics of a
// *errs.ParseError, or err itself
func Diagnostics(err error) []error {
	if err == nil {
		return nil
	}
	var pe *errs.ParseError
	if errors.As(err, &pe) {
		return pe.Diagnostics
	}
	return []error{err}
}

// PrintDiagnostics writes one "error: ..." entry per diagnostic in err. When w is a
// terminal, entries are wrapped to its width.
func PrintDiagnostics(w io.Writer, err error) error {
	width := defaultReportWidth
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, e := term.GetSize(int(f.Fd())); e == nil && cols > 20 {
			width = cols
		}
	}

	for _, d := range Diagnostics(err) {
		for _, line := range wrap("error: "+d.Error(), width, "       ") {
			if _, e := fmt.Fprintln(w, line); e != nil {
				return e
			}
		}
	}
	return nil
}

// wrap breaks s on spaces so no line exceeds width, indenting continuation lines
func wrap(s string, width int, indent string) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = indent + word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}
