package ast

// Position tracks location information for diagnostics and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

type NodeType int

const (
	PROGRAM NodeType = iota
	LET_STMT
	EXPR_STMT
	RETURN_STMT
	IF_STMT
	BLOCK
	FUNC_DECL
	IDENT
	NUMBER_LIT
	STRING_LIT
	BOOL_LIT
	BINARY_EXPR
	UNARY_EXPR
	CALL_EXPR
	ARROW_FUNC
	PAREN_EXPR
	ELEMENT
	ATTR
	TEXT
	INTERP
)

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

// Program is the root of a Lumen source file: an ordered list of
// module-level statements (signal declarations, components, statements).
type Program struct {
	Pos    Position
	EndPos Position
	Stmts  []Stmt
}

// LetStmt represents a variable or signal declaration
// Example: "let count = signal(0);" or "const greeting = \"hi\";"
type LetStmt struct {
	Pos    Position
	EndPos Position
	Const  bool
	Name   Ident
	Init   Expr
}

// ExprStmt wraps an expression used in statement position
// Example: "setCount(1);" or "log(count());"
type ExprStmt struct {
	Pos    Position
	EndPos Position
	X      Expr
}

// ReturnStmt represents a return, with or without a value
type ReturnStmt struct {
	Pos    Position
	EndPos Position
	Value  Expr
}

// IfStmt represents a conditional; Else is nil when absent
type IfStmt struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Then   *Block
	Else   *Block
}

// Block is a braced statement list (function/if bodies)
type Block struct {
	Pos    Position
	EndPos Position
	Stmts  []Stmt
}

// FuncDecl represents a component or helper function declaration
// Example: "fn Counter() { return <div>{count()}</div>; }"
type FuncDecl struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Params []Ident
	Body   *Block
}

// Ident represents any identifier: variable names, setter names, tags
type Ident struct {
	Pos    Position
	EndPos Position
	Name   string
}

// NumberLit is a numeric literal. Raw preserves the source spelling;
// nodes synthesized by constant folding carry a formatted Raw.
type NumberLit struct {
	Pos    Position
	EndPos Position
	Value  float64
	Raw    string
}

type StringLit struct {
	Pos    Position
	EndPos Position
	Value  string
}

type BoolLit struct {
	Pos    Position
	EndPos Position
	Value  bool
}

type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Left   Expr
	Right  Expr
}

type UnaryExpr struct {
	Pos     Position
	EndPos  Position
	Op      string
	Operand Expr
}

// CallExpr represents any invocation: signal reads ("count()"),
// setter writes ("setCount(1)"), and ordinary calls ("log(x)")
type CallExpr struct {
	Pos    Position
	EndPos Position
	Callee Expr
	Args   []Expr
}

// ArrowFunc is a closure literal. Exactly one of Body and Value is set:
// "() => { ... }" has Body, "() => expr" has Value.
type ArrowFunc struct {
	Pos    Position
	EndPos Position
	Params []Ident
	Body   *Block
	Value  Expr
}

type ParenExpr struct {
	Pos    Position
	EndPos Position
	X      Expr
}

// Element is a UI-template node, usable in expression position
// Example: "<div class=\"card\"><span>{count()}</span></div>"
type Element struct {
	Pos      Position
	EndPos   Position
	Tag      string
	Attrs    []*Attr
	Children []TemplateNode
}

// Attr is an element attribute; Value is nil for bare attributes
type Attr struct {
	Pos    Position
	EndPos Position
	Name   string
	Value  Expr
}

// Text is literal text between element tags
type Text struct {
	Pos    Position
	EndPos Position
	Value  string
}

// Interp is an interpolated expression inside an element: "{count()}"
type Interp struct {
	Pos    Position
	EndPos Position
	X      Expr
}
