package ast

import (
	"pyrite/internal/qualifier"
	"pyrite/internal/source"
)

// StmtKind enumerates statement kinds.
type StmtKind uint8

const (
	// StmtAssign represents assignment, annotated or not (x: T = v).
	StmtAssign StmtKind = iota
	// StmtDefine represents a function definition.
	StmtDefine
	// StmtClass represents a class definition.
	StmtClass
	// StmtImport represents import and from-import statements.
	StmtImport
	// StmtIf represents an if/elif/else chain (elif nests in Orelse).
	StmtIf
	// StmtWith represents a with block.
	StmtWith
	// StmtFor represents a for loop.
	StmtFor
	// StmtWhile represents a while loop.
	StmtWhile
	// StmtTry represents a try/except/else/finally block.
	StmtTry
	// StmtExpr represents a bare expression statement.
	StmtExpr
	// StmtReturn represents a return statement.
	StmtReturn
	// StmtRaise represents a raise statement.
	StmtRaise
	// StmtAssert represents an assert statement.
	StmtAssert
	// StmtDelete represents a del statement.
	StmtDelete
	// StmtGlobal represents a global declaration.
	StmtGlobal
	// StmtNonlocal represents a nonlocal declaration.
	StmtNonlocal
	// StmtPass represents pass.
	StmtPass
	// StmtBreak represents break.
	StmtBreak
	// StmtContinue represents continue.
	StmtContinue
	// StmtYield represents a statement-position yield or yield from.
	StmtYield
)

// String returns a human-readable name for the statement kind.
func (k StmtKind) String() string {
	switch k {
	case StmtAssign:
		return "Assign"
	case StmtDefine:
		return "Define"
	case StmtClass:
		return "Class"
	case StmtImport:
		return "Import"
	case StmtIf:
		return "If"
	case StmtWith:
		return "With"
	case StmtFor:
		return "For"
	case StmtWhile:
		return "While"
	case StmtTry:
		return "Try"
	case StmtExpr:
		return "Expr"
	case StmtReturn:
		return "Return"
	case StmtRaise:
		return "Raise"
	case StmtAssert:
		return "Assert"
	case StmtDelete:
		return "Delete"
	case StmtGlobal:
		return "Global"
	case StmtNonlocal:
		return "Nonlocal"
	case StmtPass:
		return "Pass"
	case StmtBreak:
		return "Break"
	case StmtContinue:
		return "Continue"
	case StmtYield:
		return "Yield"
	default:
		return "Unknown"
	}
}

// Stmt represents one statement node.
type Stmt struct {
	Kind StmtKind
	Span source.Span
	Data StmtData // Kind-specific payload, nil for pass/break/continue
}

// StmtData is the interface for statement-specific data.
type StmtData interface {
	stmtData()
}

// AssignData holds data for StmtAssign. Parent names the enclosing class
// for attribute assignments hoisted during qualification.
type AssignData struct {
	Target     *Expr
	Annotation *Expr // nil when unannotated
	Value      *Expr
	Parent     qualifier.Qualifier
}

func (AssignData) stmtData() {}

// Parameter is one formal parameter of a define.
type Parameter struct {
	Name       string
	Annotation *Expr // nil when unannotated
	Default    *Expr // nil when required
}

// DefineData holds data for StmtDefine.
type DefineData struct {
	Name       string
	Params     []Parameter
	Decorators []*Expr
	Returns    *Expr // nil when unannotated
	Async      bool
	Parent     qualifier.Qualifier // enclosing class, empty at module level
	Body       []*Stmt
}

func (DefineData) stmtData() {}

// ClassData holds data for StmtClass.
type ClassData struct {
	Name       string
	Bases      []Argument
	Decorators []*Expr
	Body       []*Stmt
}

func (ClassData) stmtData() {}

// ImportEntry is one imported name with its optional binding alias.
type ImportEntry struct {
	Name  qualifier.Qualifier
	Alias string
}

// ImportData holds data for StmtImport. From is empty for plain imports;
// for from-imports it is the raw clause, dots included, before relative
// expansion.
type ImportData struct {
	From    string
	Entries []ImportEntry
}

func (ImportData) stmtData() {}

// IfData holds data for StmtIf.
type IfData struct {
	Test   *Expr
	Body   []*Stmt
	Orelse []*Stmt
}

func (IfData) stmtData() {}

// WithItem is one context manager of a with block.
type WithItem struct {
	Context *Expr
	Alias   *Expr // nil without "as"
}

// WithData holds data for StmtWith.
type WithData struct {
	Items []WithItem
	Body  []*Stmt
	Async bool
}

func (WithData) stmtData() {}

// ForData holds data for StmtFor.
type ForData struct {
	Target *Expr
	Iter   *Expr
	Body   []*Stmt
	Orelse []*Stmt
	Async  bool
}

func (ForData) stmtData() {}

// WhileData holds data for StmtWhile.
type WhileData struct {
	Test   *Expr
	Body   []*Stmt
	Orelse []*Stmt
}

func (WhileData) stmtData() {}

// ExceptHandler is one except clause of a try block.
type ExceptHandler struct {
	Type *Expr // nil for a bare except
	Name string
	Body []*Stmt
}

// TryData holds data for StmtTry.
type TryData struct {
	Body     []*Stmt
	Handlers []ExceptHandler
	Orelse   []*Stmt
	Final    []*Stmt
}

func (TryData) stmtData() {}

// ExprStmtData holds data for StmtExpr.
type ExprStmtData struct {
	Value *Expr
}

func (ExprStmtData) stmtData() {}

// ReturnData holds data for StmtReturn.
type ReturnData struct {
	Value *Expr // nil for bare return
}

func (ReturnData) stmtData() {}

// RaiseData holds data for StmtRaise.
type RaiseData struct {
	Value *Expr // nil for bare raise
	From  *Expr // nil without "from"
}

func (RaiseData) stmtData() {}

// AssertData holds data for StmtAssert.
type AssertData struct {
	Test    *Expr
	Message *Expr // nil without a message
}

func (AssertData) stmtData() {}

// DeleteData holds data for StmtDelete.
type DeleteData struct {
	Targets []*Expr
}

func (DeleteData) stmtData() {}

// GlobalData holds data for StmtGlobal.
type GlobalData struct {
	Names []string
}

func (GlobalData) stmtData() {}

// NonlocalData holds data for StmtNonlocal.
type NonlocalData struct {
	Names []string
}

func (NonlocalData) stmtData() {}

// YieldData holds data for StmtYield.
type YieldData struct {
	Value *Expr // nil for bare yield
	From  bool  // true for yield from
}

func (YieldData) stmtData() {}
