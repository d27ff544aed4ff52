package optimizer

import (
	"lumen/internal/ast"
)

// AccessDiagnostics is the one pass that never rewrites. It warns when a
// signal is read more than once inside a single expression; callers should
// cache the value in a local instead of re-invoking the getter. It re-runs
// every iteration for reporting freshness; repeat findings at the same
// position are suppressed.
type AccessDiagnostics struct{}

func (ad *AccessDiagnostics) Name() string {
	return "Access Diagnostics"
}

func (ad *AccessDiagnostics) Description() string {
	return "Warns about repeated signal reads within one expression"
}

func (ad *AccessDiagnostics) Apply(pc *passContext, prog *ast.Program) *ast.Program {
	for _, cell := range pc.facts.Cells() {
		perExpr := make(map[ast.Expr]int)
		var order []ast.Expr
		for _, read := range cell.Reads {
			if read.Expr == nil {
				continue
			}
			if perExpr[read.Expr] == 0 {
				order = append(order, read.Expr)
			}
			perExpr[read.Expr]++
		}
		for _, expr := range order {
			if n := perExpr[expr]; n >= 2 {
				pc.warnOnce(expr, "signal '%s' accessed %d times in one expression; cache the value in a local", cell.Name, n)
			}
		}
	}
	return prog
}
