package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func replaceIdent(name string, with Expr) func(Expr) (Expr, bool) {
	return func(e Expr) (Expr, bool) {
		if ident, ok := e.(*Ident); ok && ident.Name == name {
			return with, true
		}
		return nil, false
	}
}

func TestRewriteExpr(t *testing.T) {
	t.Run("ReplacesNestedOccurrences", func(t *testing.T) {
		expr := &BinaryExpr{Op: "+", Left: id("x"), Right: call("f", id("x"), num(1, "1"))}
		out := RewriteExpr(expr, replaceIdent("x", num(9, "9")))

		assert.Equal(t, "9 + f(9, 1)", out.String())
		assert.Equal(t, "x + f(x, 1)", expr.String(), "input must be untouched")
	})

	t.Run("UnchangedTreeReturnedByReference", func(t *testing.T) {
		expr := &BinaryExpr{Op: "+", Left: id("a"), Right: id("b")}
		out := RewriteExpr(expr, replaceIdent("missing", num(0, "0")))

		assert.Same(t, Expr(expr), out)
	})

	t.Run("UnchangedSiblingsAreShared", func(t *testing.T) {
		left := call("f", id("a"))
		right := call("g", id("x"))
		expr := &BinaryExpr{Op: "+", Left: left, Right: right}
		out := RewriteExpr(expr, replaceIdent("x", num(1, "1")))

		rebuilt, ok := out.(*BinaryExpr)
		require.True(t, ok)
		assert.NotSame(t, Expr(expr), out)
		assert.Same(t, Expr(left), rebuilt.Left, "untouched branch is shared")
		assert.NotSame(t, Expr(right), rebuilt.Right)
	})

	t.Run("ReplacementsAreNotRevisited", func(t *testing.T) {
		visits := 0
		expr := call("f", id("x"))
		out := RewriteExpr(expr, func(e Expr) (Expr, bool) {
			if ident, ok := e.(*Ident); ok && ident.Name == "x" {
				visits++
				return id("x"), true
			}
			return nil, false
		})

		assert.Equal(t, 1, visits)
		assert.Equal(t, "f(x)", out.String())
	})

	t.Run("ArrowBodiesAreRewritten", func(t *testing.T) {
		arrow := &ArrowFunc{Body: &Block{Stmts: []Stmt{&ExprStmt{X: call("use", id("x"))}}}}
		out := RewriteExpr(arrow, replaceIdent("x", num(3, "3")))

		expected := `() => {
  use(3);
}`
		assert.Equal(t, expected, out.String())
	})

	t.Run("ElementAttributesAndChildren", func(t *testing.T) {
		el := &Element{
			Tag:      "div",
			Attrs:    []*Attr{{Name: "title", Value: id("x")}},
			Children: []TemplateNode{&Interp{X: id("x")}, &Text{Value: "!"}},
		}
		out := RewriteExpr(el, replaceIdent("x", &StringLit{Value: "v"}))

		assert.Equal(t, `<div title="v">{"v"}"!"</div>`, out.String())
		assert.Equal(t, `<div title={x}>{x}"!"</div>`, el.String())
	})

	t.Run("NestedElementReplacedByExpressionBecomesInterp", func(t *testing.T) {
		inner := &Element{Tag: "hr"}
		outer := &Element{Tag: "div", Children: []TemplateNode{inner}}
		out := RewriteExpr(outer, func(e Expr) (Expr, bool) {
			if el, ok := e.(*Element); ok && el.Tag == "hr" {
				return id("_tmpl$1"), true
			}
			return nil, false
		})

		assert.Equal(t, "<div>{_tmpl$1}</div>", out.String())
	})
}

func TestRewriteProgram(t *testing.T) {
	prog := &Program{Stmts: []Stmt{
		&LetStmt{Name: Ident{Name: "a"}, Init: id("x")},
		&ExprStmt{X: call("print", id("y"))},
		&IfStmt{Cond: id("x"), Then: &Block{Stmts: []Stmt{&ExprStmt{X: id("x")}}}},
	}}
	out := RewriteProgram(prog, replaceIdent("x", num(1, "1")))

	expected := `let a = 1;
print(y);
if (1) {
  1;
}`
	assert.Equal(t, expected, out.String())
	assert.Same(t, prog.Stmts[1], out.Stmts[1], "untouched statements are shared")
}

func TestInspect(t *testing.T) {
	t.Run("VisitsEveryNode", func(t *testing.T) {
		prog := &Program{Stmts: []Stmt{
			&LetStmt{Name: Ident{Name: "a"}, Init: call("signal", num(0, "0"))},
			&ExprStmt{X: &BinaryExpr{Op: "+", Left: id("b"), Right: num(1, "1")}},
		}}
		var idents []string
		Inspect(prog, func(n Node) bool {
			if ident, ok := n.(*Ident); ok {
				idents = append(idents, ident.Name)
			}
			return true
		})

		assert.Equal(t, []string{"a", "signal", "b"}, idents)
	})

	t.Run("FalsePrunesChildren", func(t *testing.T) {
		prog := &Program{Stmts: []Stmt{
			&ExprStmt{X: call("f", call("g"))},
		}}
		calls := 0
		Inspect(prog, func(n Node) bool {
			if _, ok := n.(*CallExpr); ok {
				calls++
				return false
			}
			return true
		})

		assert.Equal(t, 1, calls, "inner call is pruned")
	})
}

func TestClone(t *testing.T) {
	t.Run("CloneIsDeep", func(t *testing.T) {
		original := call("f", &BinaryExpr{Op: "+", Left: id("a"), Right: num(1, "1")})
		clone := CloneExpr(original).(*CallExpr)

		clone.Args[0].(*BinaryExpr).Left.(*Ident).Name = "mutated"

		assert.Equal(t, "f(a + 1)", original.String())
		assert.Equal(t, "f(mutated + 1)", clone.String())
	})

	t.Run("CloneBlockCopiesStatements", func(t *testing.T) {
		block := &Block{Stmts: []Stmt{&ExprStmt{X: id("a")}}}
		clone := CloneBlock(block)

		clone.Stmts[0].(*ExprStmt).X.(*Ident).Name = "b"

		assert.Equal(t, "a;", block.Stmts[0].String())
	})

	t.Run("CloneElementCopiesAttrs", func(t *testing.T) {
		el := &Element{Tag: "div", Attrs: []*Attr{{Name: "class", Value: &StringLit{Value: "a"}}}}
		clone := CloneExpr(el).(*Element)

		clone.Attrs[0].Value.(*StringLit).Value = "b"

		assert.Equal(t, `<div class="a" />`, el.String())
	})
}
