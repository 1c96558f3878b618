package suppress

import (
	"testing"

	"pyrite/internal/diag"
	"pyrite/internal/metadata"
	"pyrite/internal/source"
)

func errAt(line int, code diag.Code) diag.Diagnostic {
	return diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  "test error",
		Primary:  source.LineSpan("mod.py", uint32(line), 1, 10),
	}
}

func directive(kind metadata.IgnoreKind, target int, codes ...int) metadata.IgnoreDirective {
	return metadata.IgnoreDirective{
		Kind:       kind,
		Codes:      codes,
		TargetLine: target,
		Span:       source.LineSpan("mod.py", uint32(target), 1, 20),
	}
}

func TestApplyLineDirectives(t *testing.T) {
	md := metadata.Metadata{
		Ignores: []metadata.IgnoreDirective{
			directive(metadata.PyreFixme, 3, 7),
			directive(metadata.PyreIgnore, 5),
		},
	}
	diags := []diag.Diagnostic{
		errAt(3, 7),  // matched by the fixme
		errAt(3, 16), // wrong code, kept
		errAt(5, 16), // matched by the bare ignore
		errAt(9, 7),  // wrong line, kept
	}

	res := Apply(md, diags)
	if got, want := len(res.Suppressed), 2; got != want {
		t.Fatalf("suppressed %d diagnostics, want %d", got, want)
	}
	if got, want := len(res.Kept), 2; got != want {
		t.Fatalf("kept %d diagnostics, want %d", got, want)
	}
	if res.Kept[0].Line() != 3 || res.Kept[0].Code != 16 {
		t.Fatalf("kept[0] = line %d code %v", res.Kept[0].Line(), res.Kept[0].Code)
	}
	if len(res.Unused) != 0 {
		t.Fatalf("unused = %v, want none", res.Unused)
	}
}

func TestApplyModeSuppression(t *testing.T) {
	md := metadata.Metadata{
		Mode: metadata.Mode{Kind: metadata.ModeDefaultButDontCheck, Codes: []int{7, 16}},
	}
	diags := []diag.Diagnostic{
		errAt(1, 7),
		errAt(2, 16),
		errAt(3, 58),
	}

	res := Apply(md, diags)
	if len(res.Suppressed) != 2 {
		t.Fatalf("suppressed %d, want 2", len(res.Suppressed))
	}
	if len(res.Kept) != 1 || res.Kept[0].Code != 58 {
		t.Fatalf("kept = %v", res.Kept)
	}
}

func TestApplyUnused(t *testing.T) {
	md := metadata.Metadata{
		Ignores: []metadata.IgnoreDirective{
			directive(metadata.PyreFixme, 3, 7),
			directive(metadata.PyreIgnore, 8),
			directive(metadata.TypeIgnore, 9),
		},
	}
	res := Apply(md, []diag.Diagnostic{errAt(3, 7)})

	if len(res.Unused) != 1 {
		t.Fatalf("unused = %v, want exactly the bare pyre-ignore", res.Unused)
	}
	if res.Unused[0].Kind != metadata.PyreIgnore || res.Unused[0].TargetLine != 8 {
		t.Fatalf("unused[0] = %v", res.Unused[0])
	}
}

func TestApplyStackedDirectivesShareCredit(t *testing.T) {
	md := metadata.Metadata{
		Ignores: []metadata.IgnoreDirective{
			directive(metadata.PyreFixme, 3, 7),
			directive(metadata.PyreFixme, 3),
		},
	}
	res := Apply(md, []diag.Diagnostic{errAt(3, 7)})
	if len(res.Unused) != 0 {
		t.Fatalf("unused = %v, want none when both directives cover the error", res.Unused)
	}
}

func TestApplyDirectiveBeatsMode(t *testing.T) {
	// The directive takes credit even when the mode would have filtered
	// the code anyway, so it is not reported unused.
	md := metadata.Metadata{
		Mode: metadata.Mode{Kind: metadata.ModeDefaultButDontCheck, Codes: []int{7}},
		Ignores: []metadata.IgnoreDirective{
			directive(metadata.PyreFixme, 3, 7),
		},
	}
	res := Apply(md, []diag.Diagnostic{errAt(3, 7)})
	if len(res.Suppressed) != 1 || len(res.Unused) != 0 {
		t.Fatalf("suppressed=%d unused=%d, want 1 and 0", len(res.Suppressed), len(res.Unused))
	}
}

func TestUnusedDiagnostics(t *testing.T) {
	unused := []metadata.IgnoreDirective{
		directive(metadata.PyreFixme, 3, 7, 16),
		directive(metadata.PyreIgnore, 8),
	}
	diags := UnusedDiagnostics(unused)
	if len(diags) != 2 {
		t.Fatalf("got %d diagnostics, want 2", len(diags))
	}
	if diags[0].Code != diag.UnusedIgnore || diags[0].Severity != diag.SevWarning {
		t.Fatalf("diags[0] = %+v", diags[0])
	}
	if want := "the `pyre-fixme[7, 16]` comment is not suppressing errors, remove it"; diags[0].Message != want {
		t.Fatalf("message = %q, want %q", diags[0].Message, want)
	}
	if diags[1].Primary.Start.Line != 8 {
		t.Fatalf("warning anchored at line %d, want 8", diags[1].Primary.Start.Line)
	}

	var bag diag.Bag
	ReportUnused(diag.BagReporter{Bag: &bag}, unused)
	if bag.Len() != 2 {
		t.Fatalf("reporter received %d diagnostics, want 2", bag.Len())
	}
}
