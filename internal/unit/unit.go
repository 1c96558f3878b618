// Package unit assembles the analyzable form of one source file: handle,
// qualifier, metadata, and statement tree, plus the lazily computed
// signature hash the incremental scheduler compares across runs.
package unit

import (
	"strings"
	"sync"

	"pyrite/internal/ast"
	"pyrite/internal/metadata"
	"pyrite/internal/qualifier"
	"pyrite/internal/source"
)

// SourceUnit is created once per parse of a file and recreated, never
// mutated, when the file's text changes. The signature memo cell is the
// only mutable state; it is write-once and safe to race.
type SourceUnit struct {
	Handle     source.Handle
	Qualifier  qualifier.Qualifier
	Metadata   metadata.Metadata
	Statements []*ast.Stmt

	docstring string
	hasDoc    bool

	sigOnce sync.Once
	sig     uint64
}

// New assembles a source unit. The statement tree is owned by the unit and
// must not be mutated afterward.
func New(handle source.Handle, q qualifier.Qualifier, md metadata.Metadata, statements []*ast.Stmt) *SourceUnit {
	u := &SourceUnit{
		Handle:     handle,
		Qualifier:  q,
		Metadata:   md,
		Statements: statements,
	}
	u.docstring, u.hasDoc = docstringOf(statements)
	return u
}

// Docstring returns the module docstring, when the file starts with a
// string-constant expression statement.
func (u *SourceUnit) Docstring() (string, bool) {
	return u.docstring, u.hasDoc
}

// SignatureHash returns the structural fingerprint of the unit's externally
// visible interface. It is computed on first call and memoized; concurrent
// callers are safe.
func (u *SourceUnit) SignatureHash() uint64 {
	u.sigOnce.Do(func() {
		u.sig = computeSignature(u)
	})
	return u.sig
}

func docstringOf(statements []*ast.Stmt) (string, bool) {
	if len(statements) == 0 || statements[0].Kind != ast.StmtExpr {
		return "", false
	}
	data, ok := statements[0].Data.(ast.ExprStmtData)
	if !ok || data.Value == nil || data.Value.Kind != ast.ExprConstant {
		return "", false
	}
	konst, ok := data.Value.Data.(ast.ConstantData)
	if !ok || konst.Const != ast.ConstString {
		return "", false
	}
	return strings.TrimSpace(konst.Value), true
}
