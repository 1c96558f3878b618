package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"pyrite/internal/metadata"
)

// CheckScanInvariants runs a minimal set of invariants on a scanned file:
// 1) the recorded line count matches the split source exactly
// 2) every directive span is non-empty, 1-based and confined to its line
// 3) directives appear at most once per line, in line order
// 4) every directive targets its own line or the one directly below
// 5) the resolved mode and language version come from their closed sets
func CheckScanInvariants(path string, lines []string, md metadata.Metadata) error {
	if md.LineCount != len(lines) {
		return fmt.Errorf("line count mismatch: got=%d want=%d", md.LineCount, len(lines))
	}
	lineCount, err := safecast.Conv[uint32](len(lines))
	if err != nil {
		return fmt.Errorf("line count overflow: %w", err)
	}

	var prevLine uint32
	for _, ig := range md.Ignores {
		sp := ig.Span
		if sp.Path != path {
			return fmt.Errorf("directive span names wrong file: got=%q want=%q", sp.Path, path)
		}

		// 2) span sanity
		if sp.Start.Line != sp.Stop.Line {
			return fmt.Errorf("directive span crosses lines: %v", sp)
		}
		if sp.Start.Line < 1 || sp.Start.Line > lineCount {
			return fmt.Errorf("directive span line out of range: %v (file has %d lines)", sp, lineCount)
		}
		if sp.Start.Col < 1 || sp.Stop.Col <= sp.Start.Col {
			return fmt.Errorf("empty or unordered directive span: %v", sp)
		}
		lineLen, err := safecast.Conv[uint32](len(lines[sp.Start.Line-1]))
		if err != nil {
			return fmt.Errorf("line length overflow: %w", err)
		}
		if sp.Stop.Col > lineLen+1 {
			return fmt.Errorf("directive span beyond line end: %v (line is %d bytes)", sp, lineLen)
		}

		// 3) one directive per line, scanned top to bottom
		if sp.Start.Line <= prevLine {
			return fmt.Errorf("directive spans out of order: line %d after line %d", sp.Start.Line, prevLine)
		}
		prevLine = sp.Start.Line

		// 4) target is the directive's line or the next one
		line := int(sp.Start.Line)
		if ig.TargetLine != line && ig.TargetLine != line+1 {
			return fmt.Errorf("directive on line %d targets line %d", line, ig.TargetLine)
		}
	}

	// 5) resolved values come from closed sets
	if md.Mode.Kind == metadata.ModePlaceholderStub {
		return fmt.Errorf("placeholder kind leaked into the effective mode")
	}
	if md.Mode.String() == "unknown" || md.LocalMode.String() == "unknown" {
		return fmt.Errorf("unprintable mode: effective=%v local=%v", md.Mode.Kind, md.LocalMode.Kind)
	}
	if md.LanguageVersion != 2 && md.LanguageVersion != 3 {
		return fmt.Errorf("unexpected language version: %d", md.LanguageVersion)
	}
	return nil
}
