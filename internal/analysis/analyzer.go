package analysis

import (
	"lumen/internal/ast"
)

// Cell factory functions: "let count = signal(0)" declares the signal
// "count", read with "count()" and written with "setCount(v)".
var cellFactories = map[string]bool{
	"signal":       true,
	"cell":         true,
	"createSignal": true,
}

// Deferred-scope registrars: closures passed to these run later and
// repeatedly, so reads inside them must survive inlining decisions.
var deferredRegistrars = map[string]bool{
	"effect":       true,
	"createEffect": true,
	"onCleanup":    true,
}

// IsCellFactory reports whether name declares a signal when called.
func IsCellFactory(name string) bool {
	return cellFactories[name]
}

// IsDeferredRegistrar reports whether a call to name registers a deferred
// closure.
func IsDeferredRegistrar(name string) bool {
	return deferredRegistrars[name]
}

// Analyze walks the tree and produces a fresh FactSet: every signal
// declaration, its initializer shape, and every read and write site.
// The walk is two linear phases over the tree: declarations first so that
// sites textually preceding a declaration still attach to it.
func Analyze(prog *ast.Program) *FactSet {
	a := &analyzer{facts: newFactSet()}
	a.collectDecls(prog)
	a.collectSites(prog)
	return a.facts
}

type analyzer struct {
	facts     *FactSet
	nextScope int
}

// siteContext carries the traversal state needed to build a Site.
type siteContext struct {
	stmt     ast.Stmt
	topExpr  ast.Expr
	scope    int
	deferred bool
}

func (a *analyzer) collectDecls(prog *ast.Program) {
	ast.Inspect(prog, func(n ast.Node) bool {
		let, ok := n.(*ast.LetStmt)
		if !ok {
			return true
		}
		call, ok := let.Init.(*ast.CallExpr)
		if !ok {
			return true
		}
		callee, ok := call.Callee.(*ast.Ident)
		if !ok || !cellFactories[callee.Name] {
			return true
		}
		cell := &Cell{
			Name:       let.Name.Name,
			SetterName: SetterName(let.Name.Name),
			Decl:       let,
		}
		if len(call.Args) == 0 {
			// Malformed: no initializer. Recorded with no facts so every
			// pass simply finds no opportunity.
			cell.Malformed = true
		} else {
			cell.Init = call.Args[0]
			cell.ConstantInit = isLiteral(cell.Init)
		}
		a.facts.add(cell)
		return true
	})
}

func isLiteral(e ast.Expr) bool {
	switch e.(type) {
	case *ast.NumberLit, *ast.StringLit, *ast.BoolLit:
		return true
	default:
		return false
	}
}

func (a *analyzer) collectSites(prog *ast.Program) {
	ctx := siteContext{scope: 0}
	a.nextScope = 1
	for _, stmt := range prog.Stmts {
		a.walkStmt(stmt, ctx)
	}
}

func (a *analyzer) walkStmt(s ast.Stmt, ctx siteContext) {
	ctx.stmt = s
	switch x := s.(type) {
	case *ast.LetStmt:
		if cell := a.declaredCell(x); cell != nil {
			// The factory call itself is neither a read nor a write, but
			// the initializer argument may read other signals.
			if cell.Init != nil {
				a.walkExpr(cell.Init, cell.Init, ctx)
			}
			return
		}
		if x.Init != nil {
			a.walkExpr(x.Init, x.Init, ctx)
		}
	case *ast.ExprStmt:
		a.walkExpr(x.X, x.X, ctx)
	case *ast.ReturnStmt:
		if x.Value != nil {
			a.walkExpr(x.Value, x.Value, ctx)
		}
	case *ast.IfStmt:
		a.walkExpr(x.Cond, x.Cond, ctx)
		a.walkBlock(x.Then, ctx)
		if x.Else != nil {
			a.walkBlock(x.Else, ctx)
		}
	case *ast.FuncDecl:
		a.walkBlock(x.Body, ctx)
	}
}

func (a *analyzer) walkBlock(b *ast.Block, ctx siteContext) {
	if b == nil {
		return
	}
	ctx.scope = a.nextScope
	a.nextScope++
	for _, stmt := range b.Stmts {
		a.walkStmt(stmt, ctx)
	}
}

// declaredCell returns the cell declared by this statement, or nil.
func (a *analyzer) declaredCell(let *ast.LetStmt) *Cell {
	cell := a.facts.Cell(let.Name.Name)
	if cell != nil && cell.Decl == let {
		return cell
	}
	return nil
}

// walkExpr records read and write sites within one top-level expression.
func (a *analyzer) walkExpr(e ast.Expr, top ast.Expr, ctx siteContext) {
	if e == nil {
		return
	}
	switch x := e.(type) {
	case *ast.CallExpr:
		a.visitCall(x, top, ctx)
	case *ast.BinaryExpr:
		a.walkExpr(x.Left, top, ctx)
		a.walkExpr(x.Right, top, ctx)
	case *ast.UnaryExpr:
		a.walkExpr(x.Operand, top, ctx)
	case *ast.ParenExpr:
		a.walkExpr(x.X, top, ctx)
	case *ast.ArrowFunc:
		inner := ctx
		inner.scope = a.nextScope
		a.nextScope++
		if x.Body != nil {
			for _, stmt := range x.Body.Stmts {
				a.walkStmt(stmt, inner)
			}
		}
		if x.Value != nil {
			a.walkExpr(x.Value, x.Value, inner)
		}
	case *ast.Element:
		a.walkElement(x, ctx)
	}
}

func (a *analyzer) visitCall(call *ast.CallExpr, top ast.Expr, ctx siteContext) {
	callee, ok := call.Callee.(*ast.Ident)
	if !ok {
		a.walkExpr(call.Callee, top, ctx)
		for _, arg := range call.Args {
			a.walkExpr(arg, top, ctx)
		}
		return
	}

	// Zero-argument invocation of a known signal is a read.
	if cell := a.facts.Cell(callee.Name); cell != nil && len(call.Args) == 0 {
		if !cell.Malformed {
			cell.Reads = append(cell.Reads, Site{Node: call, Stmt: ctx.stmt, Expr: top, Scope: ctx.scope, Deferred: ctx.deferred})
			if ctx.deferred {
				cell.DeferredCapture = true
			}
		}
		return
	}

	// A call to the paired setter is a write.
	if cell := a.facts.SetterFor(callee.Name); cell != nil && !cell.Malformed {
		cell.Writes = append(cell.Writes, Site{Node: call, Stmt: ctx.stmt, Expr: top, Scope: ctx.scope, Deferred: ctx.deferred})
		if ctx.deferred {
			cell.DeferredCapture = true
		}
		for _, arg := range call.Args {
			a.walkExpr(arg, top, ctx)
		}
		return
	}

	// Closures handed to a deferred registrar execute later and repeatedly.
	if deferredRegistrars[callee.Name] {
		inner := ctx
		inner.deferred = true
		for _, arg := range call.Args {
			a.walkExpr(arg, top, inner)
		}
		return
	}

	for _, arg := range call.Args {
		a.walkExpr(arg, top, ctx)
	}
}

func (a *analyzer) walkElement(el *ast.Element, ctx siteContext) {
	for _, attr := range el.Attrs {
		if attr.Value != nil {
			a.walkExpr(attr.Value, attr.Value, ctx)
		}
	}
	for _, child := range el.Children {
		switch c := child.(type) {
		case *ast.Element:
			a.walkElement(c, ctx)
		case *ast.Interp:
			a.walkExpr(c.X, c.X, ctx)
		}
	}
}
