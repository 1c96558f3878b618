// Package qualifier derives dotted module identities from file paths and
// expands relative import clauses against them.
package qualifier

import (
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Qualifier is the dotted identity of a module: an ordered sequence of
// identifier segments. The empty qualifier names the implicit root module
// (builtins).
type Qualifier []string

// FromDotted splits a dotted name into a qualifier. Segments are
// NFKC-normalized the way the language normalizes identifiers, so visually
// distinct spellings of the same identifier compare equal.
func FromDotted(name string) Qualifier {
	if name == "" {
		return nil
	}
	parts := strings.Split(name, ".")
	q := make(Qualifier, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		q = append(q, norm.NFKC.String(part))
	}
	if len(q) == 0 {
		return nil
	}
	return q
}

func (q Qualifier) String() string {
	return strings.Join(q, ".")
}

// IsRoot reports whether the qualifier names the implicit root module.
func (q Qualifier) IsRoot() bool {
	return len(q) == 0
}

func (q Qualifier) Equal(other Qualifier) bool {
	return slices.Equal(q, other)
}

// Child returns a new qualifier with name appended.
func (q Qualifier) Child(name string) Qualifier {
	out := make(Qualifier, 0, len(q)+1)
	out = append(out, q...)
	out = append(out, norm.NFKC.String(name))
	return out
}
