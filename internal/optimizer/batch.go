package optimizer

import (
	"lumen/internal/analysis"
	"lumen/internal/ast"
)

// EffectBatching merges directly consecutive effect registrations into a
// single registration whose body runs the original bodies in order. One
// deferred closure re-runs cheaper than several, and relative execution
// order is preserved because the statements were already adjacent.
type EffectBatching struct{}

func (eb *EffectBatching) Name() string {
	return "Effect Batching"
}

func (eb *EffectBatching) Description() string {
	return "Merges adjacent effect registrations into one effect"
}

func (eb *EffectBatching) Apply(pc *passContext, prog *ast.Program) *ast.Program {
	return rewriteLists(prog, func(stmts []ast.Stmt) []ast.Stmt {
		return eb.batchList(pc, stmts)
	})
}

func (eb *EffectBatching) batchList(pc *passContext, stmts []ast.Stmt) []ast.Stmt {
	out := make([]ast.Stmt, 0, len(stmts))
	i := 0
	for i < len(stmts) {
		registrar, first := effectRegistration(stmts[i])
		if first == nil {
			out = append(out, stmts[i])
			i++
			continue
		}
		run := []*ast.ArrowFunc{firstArrow(first)}
		j := i + 1
		for j < len(stmts) {
			reg, call := effectRegistration(stmts[j])
			if call == nil || reg != registrar {
				break
			}
			run = append(run, firstArrow(call))
			j++
		}
		if len(run) < 2 {
			out = append(out, stmts[i])
			i++
			continue
		}
		merged := eb.mergeRun(registrar, stmts[i].(*ast.ExprStmt), run)
		out = append(out, merged)
		pc.change(Merge, merged, "Batched %d effect registrations into one", len(run))
		i = j
	}
	return out
}

// effectRegistration matches a statement of the shape "effect(() => ...);"
// and returns the registrar name and the call.
func effectRegistration(s ast.Stmt) (string, *ast.CallExpr) {
	es, ok := s.(*ast.ExprStmt)
	if !ok {
		return "", nil
	}
	call, ok := es.X.(*ast.CallExpr)
	if !ok || len(call.Args) != 1 {
		return "", nil
	}
	callee, ok := call.Callee.(*ast.Ident)
	if !ok || !analysis.IsDeferredRegistrar(callee.Name) {
		return "", nil
	}
	arrow, ok := call.Args[0].(*ast.ArrowFunc)
	if !ok || len(arrow.Params) != 0 {
		return "", nil
	}
	return callee.Name, call
}

func firstArrow(call *ast.CallExpr) *ast.ArrowFunc {
	return call.Args[0].(*ast.ArrowFunc)
}

func (eb *EffectBatching) mergeRun(registrar string, anchor *ast.ExprStmt, run []*ast.ArrowFunc) ast.Stmt {
	var body []ast.Stmt
	for _, arrow := range run {
		if arrow.Body != nil {
			body = append(body, arrow.Body.Stmts...)
			continue
		}
		value := arrow.Value
		body = append(body, &ast.ExprStmt{Pos: value.NodePos(), EndPos: value.NodeEndPos(), X: value})
	}
	block := &ast.Block{Pos: anchor.Pos, EndPos: anchor.EndPos, Stmts: body}
	merged := &ast.ArrowFunc{Pos: anchor.Pos, EndPos: anchor.EndPos, Body: block}
	call := &ast.CallExpr{
		Pos:    anchor.Pos,
		EndPos: anchor.EndPos,
		Callee: &ast.Ident{Pos: anchor.Pos, EndPos: anchor.EndPos, Name: registrar},
		Args:   []ast.Expr{merged},
	}
	return &ast.ExprStmt{Pos: anchor.Pos, EndPos: anchor.EndPos, X: call}
}
