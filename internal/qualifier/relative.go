package qualifier

import (
	"errors"
	"fmt"
)

// ErrRelativeEscape is returned when a relative import has more leading dots
// than the importing module has ancestor segments.
var ErrRelativeEscape = errors.New("relative import beyond top-level package")

// ExpandRelative resolves an import-from clause against the importing
// module.
//
// The literal "builtins" clause resolves to the root qualifier. Otherwise
// each leading dot climbs one package: the last (dots - offset) segments of
// the importer are dropped and the remainder of the clause is appended,
// where offset is 1 when the importing file is a package __init__ marker
// (its qualifier already names the package the first dot refers to).
func ExpandRelative(importer Qualifier, fromInit bool, from string) (Qualifier, error) {
	if from == "builtins" {
		return nil, nil
	}

	dots := 0
	for dots < len(from) && from[dots] == '.' {
		dots++
	}
	suffix := FromDotted(from[dots:])
	if dots == 0 {
		return suffix, nil
	}

	drop := dots
	if fromInit {
		drop--
	}
	if drop < 0 {
		drop = 0
	}
	if drop > len(importer) {
		return nil, fmt.Errorf("%w: %q climbs %d levels above %q", ErrRelativeEscape, from, dots, importer)
	}

	prefix := importer[:len(importer)-drop]
	out := make(Qualifier, 0, len(prefix)+len(suffix))
	out = append(out, prefix...)
	out = append(out, suffix...)
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}
