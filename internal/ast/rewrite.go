package ast

// RewriteExpr returns a copy of e in which every subexpression accepted by
// f has been replaced. Unchanged subtrees are returned by reference, so the
// result shares structure with the input; no input node is ever modified.
// f is applied top-down and replacements are not re-visited.
func RewriteExpr(e Expr, f func(Expr) (Expr, bool)) Expr {
	if e == nil {
		return nil
	}
	if repl, ok := f(e); ok {
		return repl
	}
	switch x := e.(type) {
	case *BinaryExpr:
		left := RewriteExpr(x.Left, f)
		right := RewriteExpr(x.Right, f)
		if left == x.Left && right == x.Right {
			return x
		}
		return &BinaryExpr{Pos: x.Pos, EndPos: x.EndPos, Op: x.Op, Left: left, Right: right}
	case *UnaryExpr:
		operand := RewriteExpr(x.Operand, f)
		if operand == x.Operand {
			return x
		}
		return &UnaryExpr{Pos: x.Pos, EndPos: x.EndPos, Op: x.Op, Operand: operand}
	case *CallExpr:
		callee := RewriteExpr(x.Callee, f)
		args := x.Args
		argsChanged := false
		for i, a := range x.Args {
			if na := RewriteExpr(a, f); na != a {
				if !argsChanged {
					args = append([]Expr(nil), x.Args...)
					argsChanged = true
				}
				args[i] = na
			}
		}
		if callee == x.Callee && !argsChanged {
			return x
		}
		return &CallExpr{Pos: x.Pos, EndPos: x.EndPos, Callee: callee, Args: args}
	case *ArrowFunc:
		body := RewriteBlock(x.Body, f)
		value := RewriteExpr(x.Value, f)
		if body == x.Body && value == x.Value {
			return x
		}
		return &ArrowFunc{Pos: x.Pos, EndPos: x.EndPos, Params: x.Params, Body: body, Value: value}
	case *ParenExpr:
		inner := RewriteExpr(x.X, f)
		if inner == x.X {
			return x
		}
		return &ParenExpr{Pos: x.Pos, EndPos: x.EndPos, X: inner}
	case *Element:
		return rewriteElement(x, f)
	default:
		return e
	}
}

func rewriteElement(e *Element, f func(Expr) (Expr, bool)) Expr {
	attrs := e.Attrs
	changed := false
	for i, a := range e.Attrs {
		if a.Value == nil {
			continue
		}
		if nv := RewriteExpr(a.Value, f); nv != a.Value {
			if !changed {
				attrs = append([]*Attr(nil), e.Attrs...)
				changed = true
			}
			attrs[i] = &Attr{Pos: a.Pos, EndPos: a.EndPos, Name: a.Name, Value: nv}
		}
	}
	children := e.Children
	childChanged := false
	for i, c := range e.Children {
		nc := rewriteTemplate(c, f)
		if nc != c {
			if !childChanged {
				children = append([]TemplateNode(nil), e.Children...)
				childChanged = true
			}
			children[i] = nc
		}
	}
	if !changed && !childChanged {
		return e
	}
	return &Element{Pos: e.Pos, EndPos: e.EndPos, Tag: e.Tag, Attrs: attrs, Children: children}
}

func rewriteTemplate(n TemplateNode, f func(Expr) (Expr, bool)) TemplateNode {
	switch x := n.(type) {
	case *Element:
		ne := RewriteExpr(x, f)
		if ne == Expr(x) {
			return x
		}
		if el, ok := ne.(*Element); ok {
			return el
		}
		// The element was replaced by a non-template expression (e.g. a
		// hoisted-template reference); splice it back in as an interpolation.
		return &Interp{Pos: x.Pos, EndPos: x.EndPos, X: ne}
	case *Interp:
		inner := RewriteExpr(x.X, f)
		if inner == x.X {
			return x
		}
		return &Interp{Pos: x.Pos, EndPos: x.EndPos, X: inner}
	default:
		return n
	}
}

// RewriteStmt rewrites the expressions contained in a statement.
func RewriteStmt(s Stmt, f func(Expr) (Expr, bool)) Stmt {
	if s == nil {
		return nil
	}
	switch x := s.(type) {
	case *LetStmt:
		init := RewriteExpr(x.Init, f)
		if init == x.Init {
			return x
		}
		return &LetStmt{Pos: x.Pos, EndPos: x.EndPos, Const: x.Const, Name: x.Name, Init: init}
	case *ExprStmt:
		inner := RewriteExpr(x.X, f)
		if inner == x.X {
			return x
		}
		return &ExprStmt{Pos: x.Pos, EndPos: x.EndPos, X: inner}
	case *ReturnStmt:
		value := RewriteExpr(x.Value, f)
		if value == x.Value {
			return x
		}
		return &ReturnStmt{Pos: x.Pos, EndPos: x.EndPos, Value: value}
	case *IfStmt:
		cond := RewriteExpr(x.Cond, f)
		then := RewriteBlock(x.Then, f)
		els := RewriteBlock(x.Else, f)
		if cond == x.Cond && then == x.Then && els == x.Else {
			return x
		}
		return &IfStmt{Pos: x.Pos, EndPos: x.EndPos, Cond: cond, Then: then, Else: els}
	case *FuncDecl:
		body := RewriteBlock(x.Body, f)
		if body == x.Body {
			return x
		}
		return &FuncDecl{Pos: x.Pos, EndPos: x.EndPos, Name: x.Name, Params: x.Params, Body: body}
	default:
		return s
	}
}

// RewriteBlock rewrites the expressions contained in every statement of b.
func RewriteBlock(b *Block, f func(Expr) (Expr, bool)) *Block {
	if b == nil {
		return nil
	}
	stmts := b.Stmts
	changed := false
	for i, s := range b.Stmts {
		if ns := RewriteStmt(s, f); ns != s {
			if !changed {
				stmts = append([]Stmt(nil), b.Stmts...)
				changed = true
			}
			stmts[i] = ns
		}
	}
	if !changed {
		return b
	}
	return &Block{Pos: b.Pos, EndPos: b.EndPos, Stmts: stmts}
}

// RewriteProgram rewrites the expressions contained in every statement.
func RewriteProgram(p *Program, f func(Expr) (Expr, bool)) *Program {
	stmts := p.Stmts
	changed := false
	for i, s := range p.Stmts {
		if ns := RewriteStmt(s, f); ns != s {
			if !changed {
				stmts = append([]Stmt(nil), p.Stmts...)
				changed = true
			}
			stmts[i] = ns
		}
	}
	if !changed {
		return p
	}
	return &Program{Pos: p.Pos, EndPos: p.EndPos, Stmts: stmts}
}
