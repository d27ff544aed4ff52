package optimizer

import (
	"lumen/internal/ast"
)

// BranchElimination applies three rewrites in one walk: statements after an
// unconditional return are deleted, an "if (false)" conditional is removed
// (its else branch, when present, is hoisted), and an "if (true)"
// conditional is replaced by its body. It runs after constant folding in
// each iteration, because folding can turn a test into a literal.
type BranchElimination struct{}

func (be *BranchElimination) Name() string {
	return "Branch Elimination"
}

func (be *BranchElimination) Description() string {
	return "Removes unreachable statements and constant-test conditionals"
}

func (be *BranchElimination) Apply(pc *passContext, prog *ast.Program) *ast.Program {
	return rewriteLists(prog, func(stmts []ast.Stmt) []ast.Stmt {
		flat := be.eliminateBranches(stmts, pc)
		return be.truncateAfterReturn(flat, pc)
	})
}

func (be *BranchElimination) eliminateBranches(stmts []ast.Stmt, pc *passContext) []ast.Stmt {
	out := make([]ast.Stmt, 0, len(stmts))
	for _, s := range stmts {
		ifs, ok := s.(*ast.IfStmt)
		if !ok {
			out = append(out, s)
			continue
		}
		test, ok := ifs.Cond.(*ast.BoolLit)
		if !ok {
			out = append(out, s)
			continue
		}
		if test.Value {
			pc.change(DeadCode, ifs, "Replaced always-true conditional with its body")
			out = append(out, ifs.Then.Stmts...)
		} else {
			pc.change(DeadCode, ifs, "Removed always-false conditional branch")
			if ifs.Else != nil {
				out = append(out, ifs.Else.Stmts...)
			}
		}
	}
	return out
}

func (be *BranchElimination) truncateAfterReturn(stmts []ast.Stmt, pc *passContext) []ast.Stmt {
	for i, s := range stmts {
		if _, ok := s.(*ast.ReturnStmt); !ok {
			continue
		}
		if i+1 >= len(stmts) {
			break
		}
		for _, dead := range stmts[i+1:] {
			pc.change(DeadCode, dead, "Removed unreachable statement after return")
		}
		return stmts[:i+1:i+1]
	}
	return stmts
}
