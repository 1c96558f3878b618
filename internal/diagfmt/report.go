package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"pyrite/internal/driver"
	"pyrite/internal/metadata"
)

// PrettyReports печатает по строке на файл:
// <qualifier> <mode> <path> [пометки], затем итоговую сводку.
func PrettyReports(w io.Writer, reports []driver.FileReport, opts PrettyOpts) {
	nameWidth := 0
	for _, r := range reports {
		if l := len(r.Qualifier.String()); l > nameWidth {
			nameWidth = l
		}
	}

	var cached, failed int
	for _, r := range reports {
		if r.Err != nil {
			failed++
			label := "error"
			if opts.Color {
				label = color.New(color.FgRed, color.Bold).Sprint(label)
			}
			fmt.Fprintf(w, "%-*s  %8s  %s: %v\n", nameWidth, r.Qualifier, label, r.Path, r.Err)
			continue
		}

		mode := r.Metadata.Mode.String()
		if opts.Color {
			mode = modeColor(r.Metadata.Mode.Kind).Sprint(fmt.Sprintf("%8s", mode))
		} else {
			mode = fmt.Sprintf("%8s", mode)
		}

		marks := ""
		if r.Metadata.Autogenerated {
			marks += " [generated]"
		}
		if r.Metadata.Debug {
			marks += " [debug]"
		}
		if r.Metadata.IsPlaceholderStub() {
			marks += " [placeholder]"
		}
		if r.Metadata.LanguageVersion == 2 {
			marks += " [py2]"
		}
		if r.Cached {
			cached++
			marks += " (cached)"
		}

		fmt.Fprintf(w, "%-*s  %s  %s%s\n", nameWidth, r.Qualifier, mode, r.Handle.Path, marks)

		if opts.Verbose {
			for _, ig := range r.Metadata.Ignores {
				fmt.Fprintf(w, "%-*s      suppression %s\n", nameWidth, "", ig)
			}
		}
	}

	fmt.Fprintf(w, "\n%d %s scanned", len(reports), plural(len(reports), "file", "files"))
	if cached > 0 {
		fmt.Fprintf(w, ", %d cached", cached)
	}
	if failed > 0 {
		fmt.Fprintf(w, ", %d failed", failed)
	}
	fmt.Fprintln(w)
}

func modeColor(kind metadata.ModeKind) *color.Color {
	switch kind {
	case metadata.ModeStrict:
		return color.New(color.FgGreen)
	case metadata.ModeInfer:
		return color.New(color.FgCyan)
	case metadata.ModeDeclare, metadata.ModeDefaultButDontCheck:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgWhite)
	}
}
