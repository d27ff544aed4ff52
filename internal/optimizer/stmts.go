package optimizer

import (
	"lumen/internal/ast"
)

// listTransform rewrites one statement list. Implementations receive lists
// whose nested blocks have already been transformed, and must not mutate
// the input slice.
type listTransform func([]ast.Stmt) []ast.Stmt

// rewriteLists applies f to every statement list in the program, bottom-up:
// arrow-function bodies, if branches, function bodies, then the module
// body. Unchanged subtrees are reused by reference.
func rewriteLists(prog *ast.Program, f listTransform) *ast.Program {
	stmts := rewriteStmtListDeep(prog.Stmts, f)
	if stmtsEqual(stmts, prog.Stmts) {
		return prog
	}
	return &ast.Program{Pos: prog.Pos, EndPos: prog.EndPos, Stmts: stmts}
}

func rewriteStmtListDeep(stmts []ast.Stmt, f listTransform) []ast.Stmt {
	inner := stmts
	changed := false
	for i, s := range stmts {
		if ns := rewriteStmtDeep(s, f); ns != s {
			if !changed {
				inner = append([]ast.Stmt(nil), stmts...)
				changed = true
			}
			inner[i] = ns
		}
	}
	out := f(inner)
	if stmtsEqual(out, stmts) {
		return stmts
	}
	return out
}

func rewriteStmtDeep(s ast.Stmt, f listTransform) ast.Stmt {
	ar := arrowRewriter(f)
	switch x := s.(type) {
	case *ast.IfStmt:
		cond := ast.RewriteExpr(x.Cond, ar)
		then := rewriteBlockDeep(x.Then, f)
		els := rewriteBlockDeep(x.Else, f)
		if cond == x.Cond && then == x.Then && els == x.Else {
			return x
		}
		return &ast.IfStmt{Pos: x.Pos, EndPos: x.EndPos, Cond: cond, Then: then, Else: els}
	case *ast.FuncDecl:
		body := rewriteBlockDeep(x.Body, f)
		if body == x.Body {
			return x
		}
		return &ast.FuncDecl{Pos: x.Pos, EndPos: x.EndPos, Name: x.Name, Params: x.Params, Body: body}
	default:
		return ast.RewriteStmt(s, ar)
	}
}

func rewriteBlockDeep(b *ast.Block, f listTransform) *ast.Block {
	if b == nil {
		return nil
	}
	stmts := rewriteStmtListDeep(b.Stmts, f)
	if stmtsEqual(stmts, b.Stmts) {
		return b
	}
	return &ast.Block{Pos: b.Pos, EndPos: b.EndPos, Stmts: stmts}
}

// arrowRewriter lifts a statement-list transform into closure bodies found
// inside expressions.
func arrowRewriter(f listTransform) func(ast.Expr) (ast.Expr, bool) {
	return func(e ast.Expr) (ast.Expr, bool) {
		arrow, ok := e.(*ast.ArrowFunc)
		if !ok || arrow.Body == nil {
			return nil, false
		}
		stmts := rewriteStmtListDeep(arrow.Body.Stmts, f)
		if stmtsEqual(stmts, arrow.Body.Stmts) {
			return nil, false
		}
		body := &ast.Block{Pos: arrow.Body.Pos, EndPos: arrow.Body.EndPos, Stmts: stmts}
		return &ast.ArrowFunc{Pos: arrow.Pos, EndPos: arrow.EndPos, Params: arrow.Params, Body: body}, true
	}
}

func stmtsEqual(a, b []ast.Stmt) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// declsPresent collects the declaration statements reachable in the current
// tree. Facts are computed at iteration start, so a pass must confirm a
// declaration still exists before claiming to rewrite it: an earlier pass
// in the same iteration may have deleted the enclosing block.
func declsPresent(prog *ast.Program) map[ast.Stmt]bool {
	present := make(map[ast.Stmt]bool)
	ast.Inspect(prog, func(n ast.Node) bool {
		if let, ok := n.(*ast.LetStmt); ok {
			present[let] = true
		}
		return true
	})
	return present
}

// removeDecls filters out the given declaration nodes wherever they occur.
func removeDecls(prog *ast.Program, dead map[ast.Stmt]bool) *ast.Program {
	return rewriteLists(prog, func(stmts []ast.Stmt) []ast.Stmt {
		keep := true
		for _, s := range stmts {
			if dead[s] {
				keep = false
				break
			}
		}
		if keep {
			return stmts
		}
		out := make([]ast.Stmt, 0, len(stmts)-1)
		for _, s := range stmts {
			if !dead[s] {
				out = append(out, s)
			}
		}
		return out
	})
}
