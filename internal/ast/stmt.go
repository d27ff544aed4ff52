package ast

type Stmt interface {
	Node
	isStmt()
}

func (*LetStmt) isStmt() {}

func (*ExprStmt) isStmt() {}

func (*ReturnStmt) isStmt() {}

func (*IfStmt) isStmt() {}

func (*FuncDecl) isStmt() {}

// TemplateNode is anything that can appear as an element child.
type TemplateNode interface {
	Node
	isTemplate()
}

func (*Element) isTemplate() {}

func (*Text) isTemplate() {}

func (*Interp) isTemplate() {}
