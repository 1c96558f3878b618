package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"pyrite/internal/diag"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <sev> <code>: <message>
// затем Notes с отступом. Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, opts)
	}
	if n := bag.Len(); n > 0 {
		fmt.Fprintf(w, "%d %s\n", n, plural(n, "diagnostic", "diagnostics"))
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, opts PrettyOpts) {
	sev := d.Severity.String()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
	}
	if d.Primary.Empty() && d.Primary.Path == "" {
		fmt.Fprintf(w, "%s %s: %s\n", sev, d.Code, d.Message)
	} else {
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			d.Primary.Path, d.Primary.Start.Line, d.Primary.Start.Col, sev, d.Code, d.Message)
	}
	if !opts.ShowNotes {
		return
	}
	for _, note := range d.Notes {
		if note.Span.Path != "" {
			fmt.Fprintf(w, "  note: %s:%d:%d: %s\n",
				note.Span.Path, note.Span.Start.Line, note.Span.Start.Col, note.Msg)
		} else {
			fmt.Fprintf(w, "  note: %s\n", note.Msg)
		}
	}
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgCyan)
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
