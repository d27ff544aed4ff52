package parser

// The grammar mirrors the surface Lumen language: module-level statements,
// JS-flavored expressions, and JSX-like template elements. Element text
// children are quoted strings, which keeps the lexer single-state.

import (
	"github.com/alecthomas/participle/v2/lexer"
)

type programNode struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Stmts  []*stmtNode `parser:"@@*"`
}

type stmtNode struct {
	Let    *letNode      `parser:"  @@"`
	Func   *funcNode     `parser:"| @@"`
	If     *ifNode       `parser:"| @@"`
	Return *returnNode   `parser:"| @@"`
	Expr   *exprStmtNode `parser:"| @@"`
}

type letNode struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Kind   string    `parser:"@(\"let\" | \"const\")"`
	Name   string    `parser:"@Ident \"=\""`
	Init   *exprNode `parser:"@@ \";\""`
}

type funcNode struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Name   string     `parser:"\"fn\" @Ident"`
	Params []string   `parser:"\"(\" [ @Ident { \",\" @Ident } ] \")\""`
	Body   *blockNode `parser:"@@"`
}

type ifNode struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Cond   *exprNode  `parser:"\"if\" \"(\" @@ \")\""`
	Then   *blockNode `parser:"@@"`
	Else   *blockNode `parser:"[ \"else\" @@ ]"`
}

type returnNode struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Value  *exprNode `parser:"\"return\" [ @@ ] \";\""`
}

type exprStmtNode struct {
	Pos    lexer.Position
	EndPos lexer.Position
	X      *exprNode `parser:"@@ \";\""`
}

type blockNode struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Stmts  []*stmtNode `parser:"\"{\" @@* \"}\""`
}

// Expression precedence, loosest first.

type exprNode struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Head   *andNode `parser:"@@"`
	Tail   []*orRHS `parser:"@@*"`
}

type orRHS struct {
	Op   string   `parser:"@\"||\""`
	Expr *andNode `parser:"@@"`
}

type andNode struct {
	Head *cmpNode  `parser:"@@"`
	Tail []*andRHS `parser:"@@*"`
}

type andRHS struct {
	Op   string   `parser:"@\"&&\""`
	Expr *cmpNode `parser:"@@"`
}

type cmpNode struct {
	Head *addNode  `parser:"@@"`
	Tail []*cmpRHS `parser:"@@*"`
}

type cmpRHS struct {
	Op   string   `parser:"@(\"==\" | \"!=\" | \"<=\" | \">=\" | \"<\" | \">\")"`
	Expr *addNode `parser:"@@"`
}

type addNode struct {
	Head *mulNode  `parser:"@@"`
	Tail []*addRHS `parser:"@@*"`
}

type addRHS struct {
	Op   string   `parser:"@(\"+\" | \"-\")"`
	Expr *mulNode `parser:"@@"`
}

type mulNode struct {
	Head *unaryNode `parser:"@@"`
	Tail []*mulRHS  `parser:"@@*"`
}

type mulRHS struct {
	Op   string     `parser:"@(\"*\" | \"/\" | \"%\")"`
	Expr *unaryNode `parser:"@@"`
}

type unaryNode struct {
	Pos     lexer.Position
	Op      string       `parser:"[ @(\"!\" | \"-\") ]"`
	Postfix *postfixNode `parser:"@@"`
}

type postfixNode struct {
	Pos     lexer.Position
	EndPos  lexer.Position
	Primary *primaryNode  `parser:"@@"`
	Calls   []*callSuffix `parser:"@@*"`
}

type callSuffix struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Args   []*exprNode `parser:"\"(\" [ @@ { \",\" @@ } ] \")\""`
}

type primaryNode struct {
	Pos     lexer.Position
	EndPos  lexer.Position
	Arrow   *arrowNode   `parser:"  @@"`
	Element *elementNode `parser:"| @@"`
	Number  *string      `parser:"| @Number"`
	Str     *string      `parser:"| @String"`
	Bool    *string      `parser:"| @(\"true\" | \"false\")"`
	Ident   *string      `parser:"| @Ident"`
	Paren   *exprNode    `parser:"| \"(\" @@ \")\""`
}

type arrowNode struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Params []string   `parser:"\"(\" [ @Ident { \",\" @Ident } ] \")\" Arrow"`
	Body   *blockNode `parser:"( @@"`
	Value  *exprNode  `parser:"| @@ )"`
}

type elementNode struct {
	Pos       lexer.Position
	EndPos    lexer.Position
	Tag       string       `parser:"\"<\" @Ident"`
	Attrs     []*attrNode  `parser:"@@*"`
	SelfClose bool         `parser:"( @(\"/\" \">\")"`
	Children  []*childNode `parser:"| \">\" @@* \"<\" \"/\" Ident \">\" )"`
}

// Attribute values are literal tokens or a braced expression, JSX-style.
// Allowing a bare expression here would let a comparison eat the tag-close
// ">" token.
type attrNode struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Name   string         `parser:"@Ident"`
	Value  *attrValueNode `parser:"[ \"=\" @@ ]"`
}

type attrValueNode struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Str    *string     `parser:"  @String"`
	Number *string     `parser:"| @Number"`
	Bool   *string     `parser:"| @(\"true\" | \"false\")"`
	Ident  *string     `parser:"| @Ident"`
	Interp *interpNode `parser:"| @@"`
}

type childNode struct {
	Pos     lexer.Position
	EndPos  lexer.Position
	Element *elementNode `parser:"  @@"`
	Interp  *interpNode  `parser:"| @@"`
	Text    *string      `parser:"| @String"`
}

type interpNode struct {
	Pos    lexer.Position
	EndPos lexer.Position
	X      *exprNode `parser:"\"{\" @@ \"}\""`
}
