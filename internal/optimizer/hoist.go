package optimizer

import (
	"fmt"

	"lumen/internal/ast"
)

// StaticHoisting extracts template subtrees that depend on nothing from
// their enclosing scope (no signal reads, no variables, no handlers) into
// module-level constants, so they are constructed once instead of once per
// component invocation.
type StaticHoisting struct{}

func (sh *StaticHoisting) Name() string {
	return "Static Hoisting"
}

func (sh *StaticHoisting) Description() string {
	return "Hoists fully static template subtrees to module-level constants"
}

func (sh *StaticHoisting) Apply(pc *passContext, prog *ast.Program) *ast.Program {
	var hoisted []ast.Stmt
	stmts := prog.Stmts
	changed := false

	for i, s := range prog.Stmts {
		fn, ok := s.(*ast.FuncDecl)
		if !ok {
			continue
		}
		body := ast.RewriteBlock(fn.Body, func(e ast.Expr) (ast.Expr, bool) {
			el, ok := e.(*ast.Element)
			if !ok || !staticElement(el) {
				return nil, false
			}
			pc.hoisted++
			name := fmt.Sprintf("_tmpl$%d", pc.hoisted)
			hoisted = append(hoisted, &ast.LetStmt{
				Pos:    el.Pos,
				EndPos: el.EndPos,
				Const:  true,
				Name:   ast.Ident{Pos: el.Pos, EndPos: el.EndPos, Name: name},
				Init:   el,
			})
			pc.change(Hoist, el, "Hoisted static <%s> template to %s", el.Tag, name)
			return &ast.Ident{Pos: el.Pos, EndPos: el.EndPos, Name: name}, true
		})
		if body != fn.Body {
			if !changed {
				stmts = append([]ast.Stmt(nil), prog.Stmts...)
				changed = true
			}
			stmts[i] = &ast.FuncDecl{Pos: fn.Pos, EndPos: fn.EndPos, Name: fn.Name, Params: fn.Params, Body: body}
		}
	}
	if !changed {
		return prog
	}
	out := make([]ast.Stmt, 0, len(hoisted)+len(stmts))
	out = append(out, hoisted...)
	out = append(out, stmts...)
	return &ast.Program{Pos: prog.Pos, EndPos: prog.EndPos, Stmts: out}
}

// staticElement reports whether the subtree is constructible without any
// enclosing scope: no calls (signal reads included), no identifiers, no
// closures.
func staticElement(el *ast.Element) bool {
	static := true
	ast.Inspect(el, func(n ast.Node) bool {
		switch n.(type) {
		case *ast.CallExpr, *ast.Ident, *ast.ArrowFunc:
			static = false
			return false
		}
		return true
	})
	return static
}
