package ast

type Expr interface {
	Node
	isExpr()
}

func (*Ident) isExpr() {}

func (*NumberLit) isExpr() {}

func (*StringLit) isExpr() {}

func (*BoolLit) isExpr() {}

func (*BinaryExpr) isExpr() {}

func (*UnaryExpr) isExpr() {}

func (*CallExpr) isExpr() {}

func (*ArrowFunc) isExpr() {}

func (*ParenExpr) isExpr() {}

func (*Element) isExpr() {}
