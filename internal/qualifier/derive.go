package qualifier

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"pyrite/internal/source"
)

// ErrEmptyPath is returned when a handle has no path segments to derive a
// qualifier from.
var ErrEmptyPath = errors.New("cannot derive qualifier from empty path")

// FromHandle derives the module qualifier from a file path.
//
// The path is processed innermost-first: the extension is stripped from the
// filename, package markers collapse (__init__ names its directory, builtins
// names the root), and for stubs the typeshed-style version directories
// ("2", "3/7", "2and3") are dropped. Remaining segments are split on dots
// and flattened, so a directory literally named "v2.api" contributes two
// segments.
func FromHandle(h source.Handle) (Qualifier, error) {
	segs := h.Segments()
	if len(segs) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyPath, h.Path)
	}
	if segs[0] == "." {
		segs = segs[1:]
	}
	if len(segs) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyPath, h.Path)
	}

	rev := make([]string, len(segs))
	for i, s := range segs {
		rev[len(segs)-1-i] = s
	}
	rev[0] = stripExtension(rev[0])

	// Package normalization: exactly one rule applies.
	switch {
	case len(rev) >= 2 && rev[0] == "builtins" && rev[1] == "future":
		rev = rev[2:]
	case rev[0] == "builtins":
		rev = rev[1:]
	case rev[0] == "__init__":
		rev = rev[1:]
	}

	fwd := make([]string, len(rev))
	for i, s := range rev {
		fwd[len(rev)-1-i] = s
	}

	if h.Stub {
		fwd = dropVersionDirs(fwd)
	}

	var q Qualifier
	for _, seg := range fwd {
		for _, part := range strings.Split(seg, ".") {
			if part == "" {
				continue
			}
			q = append(q, norm.NFKC.String(part))
		}
	}
	return q, nil
}

func stripExtension(name string) string {
	if idx := strings.LastIndexByte(name, '.'); idx >= 0 {
		return name[:idx]
	}
	return name
}

// dropVersionDirs removes leading version folders from stub paths: one or
// two purely numeric segments (a 3/7 layout), or a single segment that
// merely starts with a digit ("2.7", "2and3").
func dropVersionDirs(parts []string) []string {
	if len(parts) == 0 {
		return parts
	}
	switch {
	case isAllDigits(parts[0]):
		parts = parts[1:]
		if len(parts) > 0 && isAllDigits(parts[0]) {
			parts = parts[1:]
		}
	case startsWithDigit(parts[0]):
		parts = parts[1:]
	}
	return parts
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}
