package optimizer

import (
	"lumen/internal/ast"
)

// DeadSignalElimination deletes signals that are never read, along with
// their standalone write statements (a write to a read-less signal is
// unobservable, but leaving the setter call behind would dangle). A signal
// whose writes appear anywhere other than bare statements is kept, and so
// is one whose initializer could have side effects.
//
// This pass runs after inlining and single-use conversion within each
// iteration, and the driver re-analyzes between iterations: collapsing an
// alias can make a previously used signal newly dead.
type DeadSignalElimination struct{}

func (ds *DeadSignalElimination) Name() string {
	return "Dead Signal Elimination"
}

func (ds *DeadSignalElimination) Description() string {
	return "Removes signals that are never read"
}

func (ds *DeadSignalElimination) Apply(pc *passContext, prog *ast.Program) *ast.Program {
	dead := make(map[ast.Stmt]bool)
	present := declsPresent(prog)
	for _, cell := range pc.facts.Cells() {
		if cell.Malformed || len(cell.Reads) != 0 || !present[cell.Decl] {
			continue
		}
		if !sideEffectFree(cell.Init) {
			continue
		}
		removable := true
		for _, w := range cell.Writes {
			wcell, call := setterCall(w.Stmt, pc.facts)
			if wcell != cell || ast.Node(call) != w.Node || !argsCallFree(call) {
				removable = false
				break
			}
		}
		if !removable {
			continue
		}
		dead[cell.Decl] = true
		for _, w := range cell.Writes {
			dead[w.Stmt] = true
		}
		if len(cell.Writes) > 0 {
			pc.change(DeadRemoval, cell.Decl, "Removed unread signal '%s' and %d writes to it", cell.Name, len(cell.Writes))
		} else {
			pc.change(DeadRemoval, cell.Decl, "Removed unused signal '%s'", cell.Name)
		}
	}
	if len(dead) == 0 {
		return prog
	}
	return removeDecls(prog, dead)
}
