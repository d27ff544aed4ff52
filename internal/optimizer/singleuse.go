package optimizer

import (
	"lumen/internal/analysis"
	"lumen/internal/ast"
)

// SingleUseConversion replaces the only read of a never-written signal with
// its initializer expression and deletes the declaration. Constant inlining
// takes priority per cell per iteration; deferred-captured cells are
// excluded the same way.
//
// A side-effecting initializer is only moved when the read's enclosing
// statement immediately follows the declaration AND the read is evaluated
// before any other effect in that statement, so the initializer still runs
// at the same point in program order; anything else is left untouched.
type SingleUseConversion struct{}

func (su *SingleUseConversion) Name() string {
	return "Single-Use Conversion"
}

func (su *SingleUseConversion) Description() string {
	return "Inlines signals with exactly one read and no writes"
}

func (su *SingleUseConversion) Apply(pc *passContext, prog *ast.Program) *ast.Program {
	out := prog
	present := declsPresent(prog)
	for _, cell := range pc.facts.Cells() {
		if cell.Malformed || cell.DeferredCapture || pc.inlined[cell.Name] || !present[cell.Decl] {
			continue
		}
		if len(cell.Reads) != 1 || len(cell.Writes) != 0 {
			continue
		}
		if !sideEffectFree(cell.Init) {
			site := cell.Reads[0]
			if !su.readImmediatelyFollowsDecl(out, cell) || !readRunsFirst(site.Stmt, site.Node) {
				continue
			}
		}
		out = su.convert(pc, out, cell)
	}
	return out
}

func (su *SingleUseConversion) convert(pc *passContext, prog *ast.Program, cell *analysis.Cell) *ast.Program {
	site := cell.Reads[0]
	replaced := false
	out := ast.RewriteProgram(prog, func(e ast.Expr) (ast.Expr, bool) {
		if ast.Node(e) != site.Node {
			return nil, false
		}
		replaced = true
		return ast.CloneExpr(cell.Init), true
	})
	if !replaced {
		return prog
	}
	pc.change(SingleUse, cell.Decl, "Converted single-use signal '%s' to an inline value", cell.Name)
	return removeDecls(out, map[ast.Stmt]bool{cell.Decl: true})
}

// readRunsFirst reports whether the read call is evaluated before any other
// effect in its statement. Adjacency alone does not pin down ordering: in
// "print(other(), data());" the read of data fires after other(), so moving
// its initializer into the argument slot would run it too late.
func readRunsFirst(s ast.Stmt, read ast.Node) bool {
	var exprs []ast.Expr
	switch st := s.(type) {
	case *ast.LetStmt:
		exprs = []ast.Expr{st.Init}
	case *ast.ExprStmt:
		exprs = []ast.Expr{st.X}
	case *ast.ReturnStmt:
		exprs = []ast.Expr{st.Value}
	case *ast.IfStmt:
		exprs = []ast.Expr{st.Cond}
	default:
		return false
	}
	for _, e := range exprs {
		found, effect := scanEffects(e, read)
		if found {
			return true
		}
		if effect {
			return false
		}
	}
	return false
}

// scanEffects walks e in evaluation order and stops at the first of two
// events: reaching the read node (found) or reaching any other effect
// (effect). Closure bodies do not run at evaluation time and are skipped.
func scanEffects(e ast.Expr, read ast.Node) (found, effect bool) {
	if e == nil {
		return false, false
	}
	if ast.Node(e) == read {
		return true, false
	}
	switch x := e.(type) {
	case *ast.CallExpr:
		if found, effect = scanEffects(x.Callee, read); found || effect {
			return found, effect
		}
		for _, arg := range x.Args {
			if found, effect = scanEffects(arg, read); found || effect {
				return found, effect
			}
		}
		// the call itself fires after its operands
		return false, true
	case *ast.BinaryExpr:
		if found, effect = scanEffects(x.Left, read); found || effect {
			return found, effect
		}
		return scanEffects(x.Right, read)
	case *ast.UnaryExpr:
		return scanEffects(x.Operand, read)
	case *ast.ParenExpr:
		return scanEffects(x.X, read)
	case *ast.ArrowFunc:
		return false, false
	case *ast.Element:
		for _, attr := range x.Attrs {
			if found, effect = scanEffects(attr.Value, read); found || effect {
				return found, effect
			}
		}
		for _, child := range x.Children {
			switch c := child.(type) {
			case *ast.Interp:
				found, effect = scanEffects(c.X, read)
			case *ast.Element:
				found, effect = scanEffects(c, read)
			}
			if found || effect {
				return found, effect
			}
		}
		return false, false
	}
	return false, false
}

// readImmediatelyFollowsDecl reports whether the read's statement is the
// direct successor of the declaration in the same statement list.
func (su *SingleUseConversion) readImmediatelyFollowsDecl(prog *ast.Program, cell *analysis.Cell) bool {
	site := cell.Reads[0]
	found := false
	inList := func(stmts []ast.Stmt) {
		for i, s := range stmts {
			if s == ast.Stmt(cell.Decl) && i+1 < len(stmts) && stmts[i+1] == site.Stmt {
				found = true
			}
		}
	}
	inList(prog.Stmts)
	ast.Inspect(prog, func(n ast.Node) bool {
		if b, ok := n.(*ast.Block); ok {
			inList(b.Stmts)
		}
		return true
	})
	return found
}
