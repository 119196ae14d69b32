package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"dsig/internal/diag"
	"dsig/internal/source"
)

// Pretty renders diagnostics in a human-readable form, one per block:
//
//	<path>:<line>:<col>: <SEV> [<ID>]: <message>
//	  <offending line>
//	  ^~~~
//
// Callers should bag.Sort() beforehand for deterministic order.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, fs, opts)
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	f := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)

	sev := d.Severity.String()
	if opts.Color {
		sev = sevColor(d.Severity).Sprint(sev)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s [%s]: %s\n",
		f.Path, start.Line, start.Col, sev, d.Code.ID(), d.Message)

	writeContext(w, f, d.Primary, start, opts)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			nstart, _ := fs.Resolve(note.Span)
			fmt.Fprintf(w, "%s:%d:%d: note: %s\n", f.Path, nstart.Line, nstart.Col, note.Msg)
		}
	}
}

func writeContext(w io.Writer, f *source.File, span source.Span, start source.LineCol, opts PrettyOpts) {
	line := f.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	// Caret under the first offending byte, tildes across the rest of the
	// span but never past the end of the line.
	width := int(span.Len())
	if width < 1 {
		width = 1
	}
	if avail := len(line) - int(start.Col) + 1; avail >= 1 && width > avail {
		width = avail
	}
	marker := "^"
	if width > 1 {
		marker += strings.Repeat("~", width-1)
	}
	if opts.Color {
		marker = color.New(color.FgRed, color.Bold).Sprint(marker)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", int(start.Col)-1), marker)
}

func sevColor(s diag.Severity) *color.Color {
	var c *color.Color
	switch s {
	case diag.SevError:
		c = color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		c = color.New(color.FgYellow, color.Bold)
	default:
		c = color.New(color.FgCyan)
	}
	c.EnableColor()
	return c
}
