package diagfmt

import (
	"errors"
	"strings"
	"testing"

	"pyrite/internal/diag"
	"pyrite/internal/driver"
	"pyrite/internal/metadata"
	"pyrite/internal/qualifier"
	"pyrite/internal/source"
)

func TestPretty(t *testing.T) {
	bag := diag.NewBag(0)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.UnusedIgnore,
		Message:  "the `pyre-ignore` comment is not suppressing errors, remove it",
		Primary:  source.LineSpan("pkg/mod.py", 3, 1, 16),
	})
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     7,
		Message:  "incompatible return type",
		Primary:  source.LineSpan("pkg/mod.py", 9, 5, 12),
		Notes:    []diag.Note{{Msg: "expected int"}},
	})

	var sb strings.Builder
	Pretty(&sb, bag, PrettyOpts{ShowNotes: true})
	got := sb.String()

	wantLines := []string{
		"pkg/mod.py:3:1: warning [0]: the `pyre-ignore` comment is not suppressing errors, remove it",
		"pkg/mod.py:9:5: error [7]: incompatible return type",
		"  note: expected int",
		"2 diagnostics",
	}
	for _, want := range wantLines {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestPrettyEmptyBag(t *testing.T) {
	var sb strings.Builder
	Pretty(&sb, diag.NewBag(0), PrettyOpts{})
	if sb.Len() != 0 {
		t.Fatalf("empty bag produced output: %q", sb.String())
	}
}

func scannedReport(path, content string) driver.FileReport {
	handle := source.NewHandle(path)
	q, _ := qualifier.FromHandle(handle)
	lines := source.SplitLines([]byte(content))
	return driver.FileReport{
		Path:      path,
		Handle:    handle,
		Qualifier: q,
		Metadata:  metadata.Parse(metadata.Config{}, path, lines),
		Digest:    source.HashContent([]byte(content)),
	}
}

func TestPrettyReports(t *testing.T) {
	reports := []driver.FileReport{
		scannedReport("pkg/mod.py", "# pyre-strict\nx = 1\n"),
		scannedReport("pkg/gen.py", "# @"+"generated"+"\n"),
		{Path: "broken.py", Err: errors.New("failed to load file")},
	}
	reports[1].Cached = true

	var sb strings.Builder
	PrettyReports(&sb, reports, PrettyOpts{})
	got := sb.String()

	for _, want := range []string{
		"pkg.mod",
		"strict",
		"[generated]",
		"(cached)",
		"failed to load file",
		"3 files scanned, 1 cached, 1 failed",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestPrettyReportsVerboseListsSuppressions(t *testing.T) {
	reports := []driver.FileReport{
		scannedReport("mod.py", "x = 1  # pyre-fixme[7]\n"),
	}

	var sb strings.Builder
	PrettyReports(&sb, reports, PrettyOpts{Verbose: true})
	if !strings.Contains(sb.String(), "suppression pyre-fixme[7] -> line 1") {
		t.Fatalf("verbose output missing suppression:\n%s", sb.String())
	}
}
