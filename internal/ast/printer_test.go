package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func num(v float64, raw string) *NumberLit { return &NumberLit{Value: v, Raw: raw} }
func id(name string) *Ident                { return &Ident{Name: name} }

func call(callee string, args ...Expr) *CallExpr {
	return &CallExpr{Callee: id(callee), Args: args}
}

func TestPrinter(t *testing.T) {
	t.Run("Statements", func(t *testing.T) {
		let := &LetStmt{Name: Ident{Name: "count"}, Init: call("signal", num(0, "0"))}
		assert.Equal(t, "let count = signal(0);", let.String())

		cst := &LetStmt{Const: true, Name: Ident{Name: "limit"}, Init: num(10, "10")}
		assert.Equal(t, "const limit = 10;", cst.String())

		assert.Equal(t, "return;", (&ReturnStmt{}).String())
		assert.Equal(t, "return 5;", (&ReturnStmt{Value: num(5, "5")}).String())
	})

	t.Run("IfElse", func(t *testing.T) {
		ifs := &IfStmt{
			Cond: id("ready"),
			Then: &Block{Stmts: []Stmt{&ExprStmt{X: call("print", num(1, "1"))}}},
			Else: &Block{Stmts: []Stmt{&ExprStmt{X: call("print", num(2, "2"))}}},
		}
		expected := `if (ready) {
  print(1);
} else {
  print(2);
}`
		assert.Equal(t, expected, ifs.String())
	})

	t.Run("NestedBlocksIndent", func(t *testing.T) {
		inner := &IfStmt{Cond: id("a"), Then: &Block{Stmts: []Stmt{&ExprStmt{X: call("print")}}}}
		fn := &FuncDecl{Name: Ident{Name: "demo"}, Body: &Block{Stmts: []Stmt{inner}}}
		expected := `fn demo() {
  if (a) {
    print();
  }
}`
		assert.Equal(t, expected, fn.String())
	})

	t.Run("EmptyBlock", func(t *testing.T) {
		fn := &FuncDecl{Name: Ident{Name: "noop"}, Body: &Block{}}
		assert.Equal(t, "fn noop() {}", fn.String())
	})

	t.Run("Expressions", func(t *testing.T) {
		bin := &BinaryExpr{Op: "+", Left: num(1, "1"), Right: &BinaryExpr{Op: "*", Left: num(2, "2"), Right: num(3, "3")}}
		assert.Equal(t, "1 + 2 * 3", bin.String())

		assert.Equal(t, "-x", (&UnaryExpr{Op: "-", Operand: id("x")}).String())
		assert.Equal(t, "(x)", (&ParenExpr{X: id("x")}).String())
		assert.Equal(t, `"hi"`, (&StringLit{Value: "hi"}).String())
		assert.Equal(t, "true", (&BoolLit{Value: true}).String())
	})

	t.Run("Arrows", func(t *testing.T) {
		value := &ArrowFunc{Value: call("log", num(1, "1"))}
		assert.Equal(t, "() => log(1)", value.String())

		body := &ArrowFunc{
			Params: []Ident{{Name: "item"}},
			Body:   &Block{Stmts: []Stmt{&ExprStmt{X: call("print", id("item"))}}},
		}
		expected := `(item) => {
  print(item);
}`
		assert.Equal(t, expected, body.String())
	})

	t.Run("Elements", func(t *testing.T) {
		el := &Element{
			Tag: "div",
			Attrs: []*Attr{
				{Name: "class", Value: &StringLit{Value: "box"}},
				{Name: "hidden"},
				{Name: "onClick", Value: id("bump")},
			},
			Children: []TemplateNode{
				&Text{Value: "count: "},
				&Interp{X: call("count")},
			},
		}
		assert.Equal(t, `<div class="box" hidden onClick={bump}>"count: "{count()}</div>`, el.String())

		empty := &Element{Tag: "hr"}
		assert.Equal(t, "<hr />", empty.String())
	})

	t.Run("FormatNumber", func(t *testing.T) {
		assert.Equal(t, "5", FormatNumber(5))
		assert.Equal(t, "2.5", FormatNumber(2.5))
		assert.Equal(t, "-3", FormatNumber(-3))
		assert.Equal(t, "0.25", FormatNumber(0.25))
	})

	t.Run("SyntheticNumberFallsBackToValue", func(t *testing.T) {
		assert.Equal(t, "7", (&NumberLit{Value: 7}).String())
	})
}
