package metadata

import (
	"fmt"
	"slices"

	"pyrite/internal/source"
)

// IgnoreKind distinguishes the three suppression comment families.
type IgnoreKind uint8

const (
	// PyreIgnore is a `pyre-ignore` comment.
	PyreIgnore IgnoreKind = iota
	// PyreFixme is a `pyre-fixme` comment.
	PyreFixme
	// TypeIgnore is a `type: ignore` comment, shared with other tools.
	TypeIgnore
)

func (k IgnoreKind) String() string {
	switch k {
	case PyreIgnore:
		return "pyre-ignore"
	case PyreFixme:
		return "pyre-fixme"
	case TypeIgnore:
		return "type: ignore"
	default:
		return "unknown"
	}
}

// IgnoreDirective is one parsed suppression comment.
//
// TargetLine is the 1-based line the suppression applies to: the next line
// when the comment stands alone, the comment's own line when it trails
// code. An empty code list suppresses every code.
type IgnoreDirective struct {
	Kind       IgnoreKind
	Codes      []int
	TargetLine int
	Span       source.Span
}

// SuppressesCode reports whether the directive covers the given error code.
func (d IgnoreDirective) SuppressesCode(code int) bool {
	return len(d.Codes) == 0 || slices.Contains(d.Codes, code)
}

func (d IgnoreDirective) String() string {
	if len(d.Codes) == 0 {
		return fmt.Sprintf("%s -> line %d", d.Kind, d.TargetLine)
	}
	return fmt.Sprintf("%s%v -> line %d", d.Kind, d.Codes, d.TargetLine)
}
