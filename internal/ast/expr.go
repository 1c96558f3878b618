package ast

import (
	"pyrite/internal/source"
)

// ExprKind enumerates expression kinds.
type ExprKind uint8

const (
	// ExprName represents a bare identifier reference.
	ExprName ExprKind = iota
	// ExprAttribute represents attribute access (value.attr).
	ExprAttribute
	// ExprConstant represents a literal constant.
	ExprConstant
	// ExprCall represents a call (func(args...)).
	ExprCall
	// ExprTuple represents a tuple display (a, b, c).
	ExprTuple
	// ExprList represents a list display [a, b, c].
	ExprList
	// ExprSubscript represents indexing (value[index]).
	ExprSubscript
	// ExprStarred represents a starred element (*value).
	ExprStarred
	// ExprOpaque carries surface syntax this model does not structure,
	// preserved as raw text.
	ExprOpaque
)

// String returns a human-readable name for the expression kind.
func (k ExprKind) String() string {
	switch k {
	case ExprName:
		return "Name"
	case ExprAttribute:
		return "Attribute"
	case ExprConstant:
		return "Constant"
	case ExprCall:
		return "Call"
	case ExprTuple:
		return "Tuple"
	case ExprList:
		return "List"
	case ExprSubscript:
		return "Subscript"
	case ExprStarred:
		return "Starred"
	case ExprOpaque:
		return "Opaque"
	default:
		return "Unknown"
	}
}

// Expr represents one expression node.
type Expr struct {
	Kind ExprKind
	Span source.Span
	Data ExprData // Kind-specific payload
}

// ExprData is the interface for expression-specific data.
type ExprData interface {
	exprData()
}

// NameData holds data for ExprName.
type NameData struct {
	ID string
}

func (NameData) exprData() {}

// AttributeData holds data for ExprAttribute.
type AttributeData struct {
	Value *Expr
	Attr  string
}

func (AttributeData) exprData() {}

// ConstKind classifies literal constants.
type ConstKind uint8

const (
	// ConstString is a (possibly implicit-concatenated) string literal.
	ConstString ConstKind = iota
	// ConstBytes is a bytes literal.
	ConstBytes
	// ConstNumber is an integer, float, or complex literal.
	ConstNumber
	// ConstBool is True or False.
	ConstBool
	// ConstNone is the None literal.
	ConstNone
	// ConstEllipsis is the ... literal.
	ConstEllipsis
)

// ConstantData holds data for ExprConstant. Value is the cooked text for
// strings and the raw spelling for everything else.
type ConstantData struct {
	Const ConstKind
	Value string
}

func (ConstantData) exprData() {}

// Argument is a call-style argument: positional when Name is empty, keyword
// otherwise. Class base lists reuse the same shape (bases are call
// arguments, including keywords like metaclass=...).
type Argument struct {
	Name  string
	Value *Expr
}

// CallData holds data for ExprCall.
type CallData struct {
	Func *Expr
	Args []Argument
}

func (CallData) exprData() {}

// TupleData holds data for ExprTuple.
type TupleData struct {
	Elts []*Expr
}

func (TupleData) exprData() {}

// ListData holds data for ExprList.
type ListData struct {
	Elts []*Expr
}

func (ListData) exprData() {}

// SubscriptData holds data for ExprSubscript.
type SubscriptData struct {
	Value *Expr
	Index *Expr
}

func (SubscriptData) exprData() {}

// StarredData holds data for ExprStarred.
type StarredData struct {
	Value *Expr
}

func (StarredData) exprData() {}

// OpaqueData holds data for ExprOpaque.
type OpaqueData struct {
	Text string
}

func (OpaqueData) exprData() {}
