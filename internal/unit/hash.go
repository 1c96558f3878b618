package unit

import (
	"crypto/sha256"
	"encoding/binary"
	"hash"

	"pyrite/internal/ast"
	"pyrite/internal/metadata"
	"pyrite/internal/source"
)

// The signature hash covers what other files can observe: metadata flags,
// the resolved mode, the handle and qualifier, and the interface of each
// top-level statement. Function bodies, comments, and ignore directives are
// excluded, so edits to them keep the hash stable and downstream work can
// be skipped.
//
// Every record written into the hasher is framed with a kind tag and a
// length prefix. Without the framing, distinct trees could concatenate to
// the same byte stream.

// Tags for statement and expression records. Values are part of the hash
// encoding; appending is fine, reordering is not.
const (
	tagNil byte = iota
	tagLeaf
	tagAssign
	tagDefine
	tagClass
	tagImport
	tagIf
	tagWith
	tagExprName
	tagExprAttribute
	tagExprConstant
	tagExprCall
	tagExprTuple
	tagExprList
	tagExprSubscript
	tagExprStarred
	tagExprOpaque
	tagMetadata
	tagUnit
	tagParam
	tagArgument
	tagImportEntry
	tagBody
)

type hasher struct {
	h   hash.Hash
	buf [8]byte
}

func newHasher() *hasher {
	return &hasher{h: sha256.New()}
}

func (w *hasher) tag(t byte) {
	w.buf[0] = t
	w.h.Write(w.buf[:1])
}

func (w *hasher) num(n int) {
	binary.BigEndian.PutUint64(w.buf[:], uint64(int64(n)))
	w.h.Write(w.buf[:])
}

func (w *hasher) str(s string) {
	w.num(len(s))
	w.h.Write([]byte(s))
}

func (w *hasher) boolean(v bool) {
	if v {
		w.tag(1)
	} else {
		w.tag(0)
	}
}

func (w *hasher) digest(d source.Digest) {
	w.h.Write(d[:])
}

func (w *hasher) sum() source.Digest {
	var d source.Digest
	w.h.Sum(d[:0])
	return d
}

func computeSignature(u *SourceUnit) uint64 {
	w := newHasher()
	w.tag(tagUnit)
	w.digest(metadataDigest(u.Metadata))
	w.str(u.Handle.Path)
	w.boolean(u.Handle.Stub)
	w.str(u.Qualifier.String())
	w.num(len(u.Statements))
	for _, stmt := range u.Statements {
		w.digest(statementDigest(stmt))
	}
	d := w.sum()
	return binary.BigEndian.Uint64(d[:8])
}

// metadataDigest covers the scan facts that change how a file is analyzed.
// Ignore directives and the line count only affect reporting on the file
// itself, so they stay out.
func metadataDigest(md metadata.Metadata) source.Digest {
	w := newHasher()
	w.tag(tagMetadata)
	w.boolean(md.Autogenerated)
	w.boolean(md.Debug)
	w.tag(byte(md.Mode.Kind))
	w.num(len(md.Mode.Codes))
	for _, code := range md.Mode.Codes {
		w.num(code)
	}
	w.num(md.LanguageVersion)
	return w.sum()
}

// statementDigest fingerprints one statement's interface. Nesting is
// deliberately uneven: class bodies, if branches, and with bodies are
// transparent because they commonly wrap conditional interface (version
// guards, TYPE_CHECKING imports), while everything else is a constant leaf
// so that implementation edits do not ripple.
func statementDigest(stmt *ast.Stmt) source.Digest {
	w := newHasher()
	switch data := stmt.Data.(type) {
	case ast.AssignData:
		w.tag(tagAssign)
		writeExpr(w, data.Target)
		writeExpr(w, data.Annotation)
		writeExpr(w, data.Value)
		w.str(data.Parent.String())
	case ast.DefineData:
		w.tag(tagDefine)
		w.str(data.Name)
		w.num(len(data.Params))
		for _, p := range data.Params {
			w.tag(tagParam)
			w.str(p.Name)
			writeExpr(w, p.Annotation)
			writeExpr(w, p.Default)
		}
		w.num(len(data.Decorators))
		for _, dec := range data.Decorators {
			writeExpr(w, dec)
		}
		writeExpr(w, data.Returns)
		w.boolean(data.Async)
		w.str(data.Parent.String())
	case ast.ClassData:
		w.tag(tagClass)
		w.str(data.Name)
		w.num(len(data.Bases))
		for _, base := range data.Bases {
			w.tag(tagArgument)
			w.str(base.Name)
			writeExpr(w, base.Value)
		}
		w.num(len(data.Decorators))
		for _, dec := range data.Decorators {
			writeExpr(w, dec)
		}
		writeBody(w, data.Body)
	case ast.ImportData:
		w.tag(tagImport)
		w.str(data.From)
		w.num(len(data.Entries))
		for _, entry := range data.Entries {
			w.tag(tagImportEntry)
			w.str(entry.Name.String())
			w.str(entry.Alias)
		}
	case ast.IfData:
		w.tag(tagIf)
		writeBody(w, data.Body)
		writeBody(w, data.Orelse)
	case ast.WithData:
		w.tag(tagWith)
		writeBody(w, data.Body)
	default:
		w.tag(tagLeaf)
	}
	return w.sum()
}

func writeBody(w *hasher, body []*ast.Stmt) {
	w.tag(tagBody)
	w.num(len(body))
	for _, stmt := range body {
		w.digest(statementDigest(stmt))
	}
}

func writeExpr(w *hasher, e *ast.Expr) {
	if e == nil {
		w.tag(tagNil)
		return
	}
	switch data := e.Data.(type) {
	case ast.NameData:
		w.tag(tagExprName)
		w.str(data.ID)
	case ast.AttributeData:
		w.tag(tagExprAttribute)
		writeExpr(w, data.Value)
		w.str(data.Attr)
	case ast.ConstantData:
		w.tag(tagExprConstant)
		w.tag(byte(data.Const))
		w.str(data.Value)
	case ast.CallData:
		w.tag(tagExprCall)
		writeExpr(w, data.Func)
		w.num(len(data.Args))
		for _, arg := range data.Args {
			w.tag(tagArgument)
			w.str(arg.Name)
			writeExpr(w, arg.Value)
		}
	case ast.TupleData:
		w.tag(tagExprTuple)
		w.num(len(data.Elts))
		for _, el := range data.Elts {
			writeExpr(w, el)
		}
	case ast.ListData:
		w.tag(tagExprList)
		w.num(len(data.Elts))
		for _, el := range data.Elts {
			writeExpr(w, el)
		}
	case ast.SubscriptData:
		w.tag(tagExprSubscript)
		writeExpr(w, data.Value)
		writeExpr(w, data.Index)
	case ast.StarredData:
		w.tag(tagExprStarred)
		writeExpr(w, data.Value)
	case ast.OpaqueData:
		w.tag(tagExprOpaque)
		w.str(data.Text)
	default:
		w.tag(tagNil)
	}
}
