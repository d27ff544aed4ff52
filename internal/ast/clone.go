package ast

// Deep copies. Passes never splice a node that is already reachable from
// the tree into a new position; they clone instead, so unchanged subtrees
// can be shared by reference without aliasing surprises.

func CloneExpr(e Expr) Expr {
	if e == nil {
		return nil
	}
	switch x := e.(type) {
	case *Ident:
		c := *x
		return &c
	case *NumberLit:
		c := *x
		return &c
	case *StringLit:
		c := *x
		return &c
	case *BoolLit:
		c := *x
		return &c
	case *BinaryExpr:
		return &BinaryExpr{Pos: x.Pos, EndPos: x.EndPos, Op: x.Op, Left: CloneExpr(x.Left), Right: CloneExpr(x.Right)}
	case *UnaryExpr:
		return &UnaryExpr{Pos: x.Pos, EndPos: x.EndPos, Op: x.Op, Operand: CloneExpr(x.Operand)}
	case *CallExpr:
		args := make([]Expr, len(x.Args))
		for i, a := range x.Args {
			args[i] = CloneExpr(a)
		}
		return &CallExpr{Pos: x.Pos, EndPos: x.EndPos, Callee: CloneExpr(x.Callee), Args: args}
	case *ArrowFunc:
		params := make([]Ident, len(x.Params))
		copy(params, x.Params)
		return &ArrowFunc{Pos: x.Pos, EndPos: x.EndPos, Params: params, Body: CloneBlock(x.Body), Value: CloneExpr(x.Value)}
	case *ParenExpr:
		return &ParenExpr{Pos: x.Pos, EndPos: x.EndPos, X: CloneExpr(x.X)}
	case *Element:
		return cloneElement(x)
	default:
		return e
	}
}

func cloneElement(e *Element) *Element {
	attrs := make([]*Attr, len(e.Attrs))
	for i, a := range e.Attrs {
		attrs[i] = &Attr{Pos: a.Pos, EndPos: a.EndPos, Name: a.Name, Value: CloneExpr(a.Value)}
	}
	children := make([]TemplateNode, len(e.Children))
	for i, c := range e.Children {
		children[i] = CloneTemplate(c)
	}
	return &Element{Pos: e.Pos, EndPos: e.EndPos, Tag: e.Tag, Attrs: attrs, Children: children}
}

func CloneTemplate(n TemplateNode) TemplateNode {
	switch x := n.(type) {
	case *Element:
		return cloneElement(x)
	case *Text:
		c := *x
		return &c
	case *Interp:
		return &Interp{Pos: x.Pos, EndPos: x.EndPos, X: CloneExpr(x.X)}
	default:
		return n
	}
}

func CloneStmt(s Stmt) Stmt {
	if s == nil {
		return nil
	}
	switch x := s.(type) {
	case *LetStmt:
		return &LetStmt{Pos: x.Pos, EndPos: x.EndPos, Const: x.Const, Name: x.Name, Init: CloneExpr(x.Init)}
	case *ExprStmt:
		return &ExprStmt{Pos: x.Pos, EndPos: x.EndPos, X: CloneExpr(x.X)}
	case *ReturnStmt:
		return &ReturnStmt{Pos: x.Pos, EndPos: x.EndPos, Value: CloneExpr(x.Value)}
	case *IfStmt:
		return &IfStmt{Pos: x.Pos, EndPos: x.EndPos, Cond: CloneExpr(x.Cond), Then: CloneBlock(x.Then), Else: CloneBlock(x.Else)}
	case *FuncDecl:
		params := make([]Ident, len(x.Params))
		copy(params, x.Params)
		return &FuncDecl{Pos: x.Pos, EndPos: x.EndPos, Name: x.Name, Params: params, Body: CloneBlock(x.Body)}
	default:
		return s
	}
}

func CloneBlock(b *Block) *Block {
	if b == nil {
		return nil
	}
	stmts := make([]Stmt, len(b.Stmts))
	for i, s := range b.Stmts {
		stmts[i] = CloneStmt(s)
	}
	return &Block{Pos: b.Pos, EndPos: b.EndPos, Stmts: stmts}
}
