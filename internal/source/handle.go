package source

import (
	"path/filepath"
	"strings"
)

// Handle identifies one source file: its path and whether it is a stub.
// Stubs (.pyi) shadow same-qualifier implementation files and get the
// version-directory treatment during qualifier derivation.
type Handle struct {
	Path string
	Stub bool
}

// NewHandle builds a handle from a path, inferring the stub flag from the
// .pyi extension.
func NewHandle(path string) Handle {
	return Handle{
		Path: normalizePath(path),
		Stub: strings.HasSuffix(path, ".pyi"),
	}
}

// Segments splits the handle path into its directory/file components.
func (h Handle) Segments() []string {
	if h.Path == "" {
		return nil
	}
	return strings.Split(h.Path, "/")
}

// IsInit reports whether the handle names a package marker file
// (__init__.py or __init__.pyi).
func (h Handle) IsInit() bool {
	base := h.Path
	if idx := strings.LastIndexByte(base, '/'); idx >= 0 {
		base = base[idx+1:]
	}
	return base == "__init__.py" || base == "__init__.pyi"
}

func (h Handle) String() string {
	return h.Path
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}
