package optimizer

import (
	"lumen/internal/analysis"
	"lumen/internal/ast"
)

// WriteMerging collapses sequences of writes to the same signal into the
// final write: in a pure sequence only the last value is observable.
// The window over which writes merge is broken by any statement that reads
// a signal, writes a different signal, or may have an observable side
// effect; call-free statements in between (plain declarations) do not
// break it. Writes whose arguments contain calls never participate.
type WriteMerging struct{}

func (wm *WriteMerging) Name() string {
	return "Write Merging"
}

func (wm *WriteMerging) Description() string {
	return "Collapses sequential writes to a signal into the last write"
}

func (wm *WriteMerging) Apply(pc *passContext, prog *ast.Program) *ast.Program {
	return rewriteLists(prog, func(stmts []ast.Stmt) []ast.Stmt {
		return wm.mergeList(pc, stmts)
	})
}

type mergeWindow struct {
	cell  *analysis.Cell
	index int // position of the surviving write in the output list
	count int
}

func (wm *WriteMerging) mergeList(pc *passContext, stmts []ast.Stmt) []ast.Stmt {
	out := make([]ast.Stmt, 0, len(stmts))
	var win *mergeWindow

	flush := func() {
		if win != nil && win.count > 1 {
			pc.change(Merge, out[win.index], "Merged %d sequential updates to %s", win.count, win.cell.Name)
		}
		win = nil
	}

	for _, s := range stmts {
		if cell, call := setterCall(s, pc.facts); cell != nil {
			if !argsCallFree(call) {
				flush()
				out = append(out, s)
				continue
			}
			if win != nil && win.cell == cell {
				// Later write wins; the earlier one is unobservable.
				out = append(out[:win.index], out[win.index+1:]...)
				out = append(out, s)
				win.index = len(out) - 1
				win.count++
				continue
			}
			flush()
			out = append(out, s)
			win = &mergeWindow{cell: cell, index: len(out) - 1, count: 1}
			continue
		}
		if !wm.windowSafe(s) {
			flush()
		}
		out = append(out, s)
	}
	flush()
	return out
}

func argsCallFree(call *ast.CallExpr) bool {
	for _, a := range call.Args {
		if !sideEffectFree(a) {
			return false
		}
	}
	return true
}

// windowSafe reports whether s can sit between two merged writes: only
// statements that provably neither read a signal nor observe anything.
func (wm *WriteMerging) windowSafe(s ast.Stmt) bool {
	switch s.(type) {
	case *ast.LetStmt, *ast.ExprStmt, *ast.FuncDecl:
		return !containsCall(s)
	default:
		return false
	}
}
