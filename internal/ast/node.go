package ast

func (p *Program) NodePos() Position    { return p.Pos }
func (p *Program) NodeEndPos() Position { return p.EndPos }
func (*Program) NodeType() NodeType     { return PROGRAM }

func (l *LetStmt) NodePos() Position    { return l.Pos }
func (l *LetStmt) NodeEndPos() Position { return l.EndPos }
func (*LetStmt) NodeType() NodeType     { return LET_STMT }

func (e *ExprStmt) NodePos() Position    { return e.Pos }
func (e *ExprStmt) NodeEndPos() Position { return e.EndPos }
func (*ExprStmt) NodeType() NodeType     { return EXPR_STMT }

func (r *ReturnStmt) NodePos() Position    { return r.Pos }
func (r *ReturnStmt) NodeEndPos() Position { return r.EndPos }
func (*ReturnStmt) NodeType() NodeType     { return RETURN_STMT }

func (i *IfStmt) NodePos() Position    { return i.Pos }
func (i *IfStmt) NodeEndPos() Position { return i.EndPos }
func (*IfStmt) NodeType() NodeType     { return IF_STMT }

func (b *Block) NodePos() Position    { return b.Pos }
func (b *Block) NodeEndPos() Position { return b.EndPos }
func (*Block) NodeType() NodeType     { return BLOCK }

func (f *FuncDecl) NodePos() Position    { return f.Pos }
func (f *FuncDecl) NodeEndPos() Position { return f.EndPos }
func (*FuncDecl) NodeType() NodeType     { return FUNC_DECL }

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }
func (*Ident) NodeType() NodeType     { return IDENT }

func (n *NumberLit) NodePos() Position    { return n.Pos }
func (n *NumberLit) NodeEndPos() Position { return n.EndPos }
func (*NumberLit) NodeType() NodeType     { return NUMBER_LIT }

func (s *StringLit) NodePos() Position    { return s.Pos }
func (s *StringLit) NodeEndPos() Position { return s.EndPos }
func (*StringLit) NodeType() NodeType     { return STRING_LIT }

func (b *BoolLit) NodePos() Position    { return b.Pos }
func (b *BoolLit) NodeEndPos() Position { return b.EndPos }
func (*BoolLit) NodeType() NodeType     { return BOOL_LIT }

func (b *BinaryExpr) NodePos() Position    { return b.Pos }
func (b *BinaryExpr) NodeEndPos() Position { return b.EndPos }
func (*BinaryExpr) NodeType() NodeType     { return BINARY_EXPR }

func (u *UnaryExpr) NodePos() Position    { return u.Pos }
func (u *UnaryExpr) NodeEndPos() Position { return u.EndPos }
func (*UnaryExpr) NodeType() NodeType     { return UNARY_EXPR }

func (c *CallExpr) NodePos() Position    { return c.Pos }
func (c *CallExpr) NodeEndPos() Position { return c.EndPos }
func (*CallExpr) NodeType() NodeType     { return CALL_EXPR }

func (a *ArrowFunc) NodePos() Position    { return a.Pos }
func (a *ArrowFunc) NodeEndPos() Position { return a.EndPos }
func (*ArrowFunc) NodeType() NodeType     { return ARROW_FUNC }

func (p *ParenExpr) NodePos() Position    { return p.Pos }
func (p *ParenExpr) NodeEndPos() Position { return p.EndPos }
func (*ParenExpr) NodeType() NodeType     { return PAREN_EXPR }

func (e *Element) NodePos() Position    { return e.Pos }
func (e *Element) NodeEndPos() Position { return e.EndPos }
func (*Element) NodeType() NodeType     { return ELEMENT }

func (a *Attr) NodePos() Position    { return a.Pos }
func (a *Attr) NodeEndPos() Position { return a.EndPos }
func (*Attr) NodeType() NodeType     { return ATTR }

func (t *Text) NodePos() Position    { return t.Pos }
func (t *Text) NodeEndPos() Position { return t.EndPos }
func (*Text) NodeType() NodeType     { return TEXT }

func (i *Interp) NodePos() Position    { return i.Pos }
func (i *Interp) NodeEndPos() Position { return i.EndPos }
func (*Interp) NodeType() NodeType     { return INTERP }
