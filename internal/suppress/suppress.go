// Package suppress applies a file's scanned suppressions to the
// diagnostics produced for it: line-directed ignore comments first, then
// file-wide mode suppression, and finally warnings for ignores that
// suppressed nothing.
package suppress

import (
	"fmt"
	"strconv"
	"strings"

	"pyrite/internal/diag"
	"pyrite/internal/metadata"
)

// Result partitions a file's diagnostics.
type Result struct {
	Kept       []diag.Diagnostic
	Suppressed []diag.Diagnostic
	Unused     []metadata.IgnoreDirective
}

// Apply matches each diagnostic against the file's ignore directives and
// its mode. A directive is spent once it matches at least one diagnostic;
// every directive covering a line gets credit, so stacked ignores are not
// reported unused one by one.
func Apply(md metadata.Metadata, diags []diag.Diagnostic) Result {
	used := make([]bool, len(md.Ignores))
	var res Result
	for _, d := range diags {
		matched := false
		for i, dir := range md.Ignores {
			if dir.TargetLine != d.Line() || !dir.SuppressesCode(int(d.Code)) {
				continue
			}
			used[i] = true
			matched = true
		}
		switch {
		case matched:
			res.Suppressed = append(res.Suppressed, d)
		case md.Mode.SuppressesCode(int(d.Code)):
			res.Suppressed = append(res.Suppressed, d)
		default:
			res.Kept = append(res.Kept, d)
		}
	}
	for i, dir := range md.Ignores {
		// type: ignore comments are shared with other tools, so an unused
		// one is not ours to complain about.
		if used[i] || dir.Kind == metadata.TypeIgnore {
			continue
		}
		res.Unused = append(res.Unused, dir)
	}
	return res
}

// UnusedDiagnostics renders unused directives as warnings anchored at the
// directive comment itself.
func UnusedDiagnostics(unused []metadata.IgnoreDirective) []diag.Diagnostic {
	diags := make([]diag.Diagnostic, 0, len(unused))
	for _, dir := range unused {
		diags = append(diags, diag.Diagnostic{
			Severity: diag.SevWarning,
			Code:     diag.UnusedIgnore,
			Message:  fmt.Sprintf("the `%s` comment is not suppressing errors, remove it", directiveLabel(dir)),
			Primary:  dir.Span,
		})
	}
	return diags
}

// ReportUnused feeds UnusedDiagnostics through a reporter.
func ReportUnused(r diag.Reporter, unused []metadata.IgnoreDirective) {
	for _, d := range UnusedDiagnostics(unused) {
		r.Report(d)
	}
}

func directiveLabel(dir metadata.IgnoreDirective) string {
	if len(dir.Codes) == 0 {
		return dir.Kind.String()
	}
	codes := make([]string, 0, len(dir.Codes))
	for _, code := range dir.Codes {
		codes = append(codes, strconv.Itoa(code))
	}
	return fmt.Sprintf("%s[%s]", dir.Kind, strings.Join(codes, ", "))
}
