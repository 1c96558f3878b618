package qualifier

import (
	"errors"
	"testing"

	"pyrite/internal/source"
)

func TestFromHandle(t *testing.T) {
	cases := []struct {
		name string
		path string
		stub bool
		want string
	}{
		{"plain module", "pkg/mod.py", false, "pkg.mod"},
		{"top level module", "mod.py", false, "mod"},
		{"package init", "pkg/sub/__init__.py", false, "pkg.sub"},
		{"stub init", "pkg/__init__.pyi", true, "pkg"},
		{"root builtins", "builtins.pyi", true, ""},
		{"future builtins", "future/builtins.py", false, ""},
		{"versioned builtins", "2/builtins.pyi", true, ""},
		{"two version dirs", "3/7/asyncio/base_events.pyi", true, "asyncio.base_events"},
		{"dotted version dir", "2.7/collections/__init__.pyi", true, "collections"},
		{"mixed version dir", "2and3/typing.pyi", true, "typing"},
		{"version dirs kept for sources", "3/7/os/path.py", false, "3.7.os.path"},
		{"dotted directory flattens", "v2.api/client.py", false, "v2.api.client"},
		{"extension only strips last dot", "pkg/mod.gen.py", false, "pkg.mod.gen"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := FromHandle(source.Handle{Path: tc.path, Stub: tc.stub})
			if err != nil {
				t.Fatalf("FromHandle(%q) error: %v", tc.path, err)
			}
			if q.String() != tc.want {
				t.Fatalf("FromHandle(%q) = %q, want %q", tc.path, q.String(), tc.want)
			}
		})
	}
}

func TestFromHandleLeadingDot(t *testing.T) {
	q, err := FromHandle(source.Handle{Path: "./pkg/mod.py"})
	if err != nil {
		t.Fatalf("FromHandle error: %v", err)
	}
	if q.String() != "pkg.mod" {
		t.Fatalf("leading dot segment not dropped: %q", q.String())
	}
}

func TestFromHandleNormalizesIdentifiers(t *testing.T) {
	q, err := FromHandle(source.Handle{Path: "pkg/ℂ𝕠𝕣𝕖.py"})
	if err != nil {
		t.Fatalf("FromHandle error: %v", err)
	}
	if q.String() != "pkg.Core" {
		t.Fatalf("NFKC normalization missing: %q", q.String())
	}
	if !q.Equal(FromDotted("pkg.Core")) {
		t.Fatalf("normalized qualifiers must compare equal")
	}
}

func TestFromHandleEmptyPath(t *testing.T) {
	for _, path := range []string{"", "."} {
		if _, err := FromHandle(source.Handle{Path: path}); !errors.Is(err, ErrEmptyPath) {
			t.Fatalf("FromHandle(%q) = %v, want ErrEmptyPath", path, err)
		}
	}
}

func TestQualifierBasics(t *testing.T) {
	root := FromDotted("")
	if !root.IsRoot() {
		t.Fatalf("empty dotted name must be root")
	}
	q := FromDotted("a.b").Child("c")
	if q.String() != "a.b.c" {
		t.Fatalf("Child = %q, want a.b.c", q.String())
	}
}
