package ast

// Inspect traverses the subtree rooted at n in source order, calling f for
// every node. If f returns false the children of that node are skipped.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	switch x := n.(type) {
	case *Program:
		for _, s := range x.Stmts {
			Inspect(s, f)
		}
	case *LetStmt:
		Inspect(&x.Name, f)
		if x.Init != nil {
			Inspect(x.Init, f)
		}
	case *ExprStmt:
		Inspect(x.X, f)
	case *ReturnStmt:
		if x.Value != nil {
			Inspect(x.Value, f)
		}
	case *IfStmt:
		Inspect(x.Cond, f)
		Inspect(x.Then, f)
		if x.Else != nil {
			Inspect(x.Else, f)
		}
	case *Block:
		for _, s := range x.Stmts {
			Inspect(s, f)
		}
	case *FuncDecl:
		Inspect(&x.Name, f)
		Inspect(x.Body, f)
	case *BinaryExpr:
		Inspect(x.Left, f)
		Inspect(x.Right, f)
	case *UnaryExpr:
		Inspect(x.Operand, f)
	case *CallExpr:
		Inspect(x.Callee, f)
		for _, a := range x.Args {
			Inspect(a, f)
		}
	case *ArrowFunc:
		if x.Body != nil {
			Inspect(x.Body, f)
		}
		if x.Value != nil {
			Inspect(x.Value, f)
		}
	case *ParenExpr:
		Inspect(x.X, f)
	case *Element:
		for _, a := range x.Attrs {
			Inspect(a, f)
		}
		for _, c := range x.Children {
			Inspect(c, f)
		}
	case *Attr:
		if x.Value != nil {
			Inspect(x.Value, f)
		}
	case *Interp:
		Inspect(x.X, f)
	}
}
