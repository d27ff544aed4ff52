package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// String methods render canonical Lumen source text. They are the
// debugging and test surface for the optimizer: tests compare optimized
// programs by their printed form rather than walking node graphs.

func (p *Program) String() string {
	var b strings.Builder
	for i, stmt := range p.Stmts {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(stmt.String())
	}
	return b.String()
}

func (l *LetStmt) String() string {
	kw := "let"
	if l.Const {
		kw = "const"
	}
	return fmt.Sprintf("%s %s = %s;", kw, l.Name.Name, l.Init.String())
}

func (e *ExprStmt) String() string {
	return e.X.String() + ";"
}

func (r *ReturnStmt) String() string {
	if r.Value == nil {
		return "return;"
	}
	return fmt.Sprintf("return %s;", r.Value.String())
}

func (i *IfStmt) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("if (%s) %s", i.Cond.String(), i.Then.String()))
	if i.Else != nil {
		b.WriteString(" else ")
		b.WriteString(i.Else.String())
	}
	return b.String()
}

func (blk *Block) String() string {
	if len(blk.Stmts) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{\n")
	for _, stmt := range blk.Stmts {
		b.WriteString("  " + strings.ReplaceAll(stmt.String(), "\n", "\n  ") + "\n")
	}
	b.WriteString("}")
	return b.String()
}

func (f *FuncDecl) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Name
	}
	return fmt.Sprintf("fn %s(%s) %s", f.Name.Name, strings.Join(params, ", "), f.Body.String())
}

func (i *Ident) String() string {
	return i.Name
}

func (n *NumberLit) String() string {
	if n.Raw != "" {
		return n.Raw
	}
	return FormatNumber(n.Value)
}

// FormatNumber renders a numeric value the way the source language spells
// literals: no exponent for ordinary magnitudes, no trailing ".0".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (s *StringLit) String() string {
	return strconv.Quote(s.Value)
}

func (b *BoolLit) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("%s %s %s", b.Left.String(), b.Op, b.Right.String())
}

func (u *UnaryExpr) String() string {
	return u.Op + u.Operand.String()
}

func (c *CallExpr) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Callee.String(), strings.Join(args, ", "))
}

func (a *ArrowFunc) String() string {
	params := make([]string, len(a.Params))
	for i, p := range a.Params {
		params[i] = p.Name
	}
	head := fmt.Sprintf("(%s) =>", strings.Join(params, ", "))
	if a.Body != nil {
		return head + " " + a.Body.String()
	}
	return head + " " + a.Value.String()
}

func (p *ParenExpr) String() string {
	return "(" + p.X.String() + ")"
}

func (e *Element) String() string {
	var b strings.Builder
	b.WriteString("<" + e.Tag)
	for _, attr := range e.Attrs {
		b.WriteString(" " + attr.String())
	}
	if len(e.Children) == 0 {
		b.WriteString(" />")
		return b.String()
	}
	b.WriteString(">")
	for _, child := range e.Children {
		b.WriteString(child.String())
	}
	b.WriteString("</" + e.Tag + ">")
	return b.String()
}

func (a *Attr) String() string {
	if a.Value == nil {
		return a.Name
	}
	switch a.Value.(type) {
	case *StringLit, *NumberLit, *BoolLit:
		return fmt.Sprintf("%s=%s", a.Name, a.Value.String())
	default:
		// Expression values carry their braces so the output reparses.
		return fmt.Sprintf("%s={%s}", a.Name, a.Value.String())
	}
}

func (t *Text) String() string {
	// Text children are quoted in the grammar; print them the same way so
	// the output reparses.
	return strconv.Quote(t.Value)
}

func (i *Interp) String() string {
	return "{" + i.X.String() + "}"
}
