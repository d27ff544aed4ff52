package optimizer

import (
	"lumen/internal/analysis"
	"lumen/internal/ast"
)

// sideEffectFree reports whether evaluating e is observationally silent.
// Any call is treated as effectful: an unknown callee may perform I/O, and
// even a signal read registers a dependency in the reactive runtime.
// A closure literal itself evaluates without running its body.
func sideEffectFree(e ast.Expr) bool {
	if e == nil {
		return true
	}
	pure := true
	ast.Inspect(e, func(n ast.Node) bool {
		switch n.(type) {
		case *ast.CallExpr:
			pure = false
			return false
		case *ast.ArrowFunc:
			return false
		}
		return true
	})
	return pure
}

// containsCall reports whether any call expression occurs in the statement,
// including inside closure bodies.
func containsCall(s ast.Stmt) bool {
	found := false
	ast.Inspect(s, func(n ast.Node) bool {
		if _, ok := n.(*ast.CallExpr); ok {
			found = true
			return false
		}
		return true
	})
	return found
}

// setterCall returns the written cell and the call node when s is a bare
// setter-invocation statement like "setCount(1);".
func setterCall(s ast.Stmt, facts *analysis.FactSet) (*analysis.Cell, *ast.CallExpr) {
	es, ok := s.(*ast.ExprStmt)
	if !ok {
		return nil, nil
	}
	call, ok := es.X.(*ast.CallExpr)
	if !ok {
		return nil, nil
	}
	callee, ok := call.Callee.(*ast.Ident)
	if !ok {
		return nil, nil
	}
	cell := facts.SetterFor(callee.Name)
	if cell == nil {
		return nil, nil
	}
	return cell, call
}

// readCall returns the read cell when e is a zero-argument invocation of a
// known signal.
func readCall(e ast.Expr, facts *analysis.FactSet) *analysis.Cell {
	call, ok := e.(*ast.CallExpr)
	if !ok || len(call.Args) != 0 {
		return nil
	}
	callee, ok := call.Callee.(*ast.Ident)
	if !ok {
		return nil
	}
	return facts.Cell(callee.Name)
}
