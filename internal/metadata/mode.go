// Package metadata extracts per-file analysis directives from source text:
// the local mode comment, suppression comments, generation markers, and the
// language version, and resolves the effective analysis mode against the
// global configuration.
package metadata

import (
	"fmt"
	"slices"
	"strings"
)

// ModeKind enumerates the analysis strictness levels.
type ModeKind uint8

const (
	// ModeDefault checks the file with the standard ruleset.
	ModeDefault ModeKind = iota
	// ModeDefaultButDontCheck checks the file but drops the listed codes.
	ModeDefaultButDontCheck
	// ModeDeclare treats the file as declarations only, without checking
	// bodies.
	ModeDeclare
	// ModeStrict enables the strict ruleset.
	ModeStrict
	// ModeInfer runs annotation inference instead of checking.
	ModeInfer
	// ModePlaceholderStub marks a stub whose members should all be treated
	// as unknown.
	ModePlaceholderStub
)

// Mode is a file's analysis mode: a kind plus, for DefaultButDontCheck, the
// error codes exempted from reporting.
type Mode struct {
	Kind  ModeKind
	Codes []int
}

func (m Mode) String() string {
	switch m.Kind {
	case ModeDefault:
		return "default"
	case ModeDefaultButDontCheck:
		parts := make([]string, len(m.Codes))
		for i, code := range m.Codes {
			parts[i] = fmt.Sprintf("%d", code)
		}
		return "default[" + strings.Join(parts, ",") + "]"
	case ModeDeclare:
		return "declare"
	case ModeStrict:
		return "strict"
	case ModeInfer:
		return "infer"
	case ModePlaceholderStub:
		return "placeholder-stub"
	default:
		return "unknown"
	}
}

func (m Mode) Equal(other Mode) bool {
	return m.Kind == other.Kind && slices.Equal(m.Codes, other.Codes)
}

// SuppressesCode reports whether the mode exempts the given error code
// file-wide.
func (m Mode) SuppressesCode(code int) bool {
	return m.Kind == ModeDefaultButDontCheck && slices.Contains(m.Codes, code)
}
