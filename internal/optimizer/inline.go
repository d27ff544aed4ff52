package optimizer

import (
	"lumen/internal/analysis"
	"lumen/internal/ast"
)

// SignalInlining replaces every read of a provably constant signal with its
// literal initializer and deletes the declaration. A signal qualifies when
// its initializer is a literal, it is never written, and it is not captured
// in a deferred closure (an effect body may run repeatedly, and freezing
// its reads would change update semantics).
type SignalInlining struct{}

func (si *SignalInlining) Name() string {
	return "Signal Inlining"
}

func (si *SignalInlining) Description() string {
	return "Inlines constant, never-written signals at their read sites"
}

func (si *SignalInlining) Apply(pc *passContext, prog *ast.Program) *ast.Program {
	present := declsPresent(prog)
	eligible := make(map[string]*analysis.Cell)
	for _, cell := range pc.facts.Cells() {
		if cell.Malformed || !cell.ConstantInit || cell.DeferredCapture {
			continue
		}
		if len(cell.Reads) == 0 || len(cell.Writes) != 0 || !present[cell.Decl] {
			continue
		}
		eligible[cell.Name] = cell
	}
	if len(eligible) == 0 {
		return prog
	}

	// Constancy requires a pure literal initializer, so eligible cells
	// cannot reference each other and may be inlined in any order.
	out := ast.RewriteProgram(prog, func(e ast.Expr) (ast.Expr, bool) {
		cell := readCall(e, pc.facts)
		if cell == nil {
			return nil, false
		}
		if _, ok := eligible[cell.Name]; !ok {
			return nil, false
		}
		return ast.CloneExpr(cell.Init), true
	})

	dead := make(map[ast.Stmt]bool)
	for _, cell := range pc.facts.Cells() {
		if _, ok := eligible[cell.Name]; !ok {
			continue
		}
		dead[cell.Decl] = true
		pc.inlined[cell.Name] = true
		pc.change(SignalInline, cell.Decl, "Inlined constant signal '%s' (%d read sites)", cell.Name, len(cell.Reads))
	}
	return removeDecls(out, dead)
}
