package parser

// Conversion from the participle grammar tree to the optimizer's AST.
// The grammar tree is throwaway; everything downstream works on ast nodes.

import (
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"

	"lumen/internal/ast"
)

func pos(p lexer.Position) ast.Position {
	return ast.Position{Filename: p.Filename, Offset: p.Offset, Line: p.Line, Column: p.Column}
}

func convertProgram(n *programNode) *ast.Program {
	prog := &ast.Program{Pos: pos(n.Pos), EndPos: pos(n.EndPos)}
	for _, s := range n.Stmts {
		prog.Stmts = append(prog.Stmts, convertStmt(s))
	}
	return prog
}

func convertStmt(n *stmtNode) ast.Stmt {
	switch {
	case n.Let != nil:
		return &ast.LetStmt{
			Pos:    pos(n.Let.Pos),
			EndPos: pos(n.Let.EndPos),
			Const:  n.Let.Kind == "const",
			Name:   ast.Ident{Pos: pos(n.Let.Pos), EndPos: pos(n.Let.EndPos), Name: n.Let.Name},
			Init:   convertExpr(n.Let.Init),
		}
	case n.Func != nil:
		params := make([]ast.Ident, len(n.Func.Params))
		for i, p := range n.Func.Params {
			params[i] = ast.Ident{Pos: pos(n.Func.Pos), EndPos: pos(n.Func.EndPos), Name: p}
		}
		return &ast.FuncDecl{
			Pos:    pos(n.Func.Pos),
			EndPos: pos(n.Func.EndPos),
			Name:   ast.Ident{Pos: pos(n.Func.Pos), EndPos: pos(n.Func.EndPos), Name: n.Func.Name},
			Params: params,
			Body:   convertBlock(n.Func.Body),
		}
	case n.If != nil:
		return &ast.IfStmt{
			Pos:    pos(n.If.Pos),
			EndPos: pos(n.If.EndPos),
			Cond:   convertExpr(n.If.Cond),
			Then:   convertBlock(n.If.Then),
			Else:   convertBlock(n.If.Else),
		}
	case n.Return != nil:
		ret := &ast.ReturnStmt{Pos: pos(n.Return.Pos), EndPos: pos(n.Return.EndPos)}
		if n.Return.Value != nil {
			ret.Value = convertExpr(n.Return.Value)
		}
		return ret
	default:
		return &ast.ExprStmt{Pos: pos(n.Expr.Pos), EndPos: pos(n.Expr.EndPos), X: convertExpr(n.Expr.X)}
	}
}

func convertBlock(n *blockNode) *ast.Block {
	if n == nil {
		return nil
	}
	blk := &ast.Block{Pos: pos(n.Pos), EndPos: pos(n.EndPos)}
	for _, s := range n.Stmts {
		blk.Stmts = append(blk.Stmts, convertStmt(s))
	}
	return blk
}

func binary(op string, left, right ast.Expr) ast.Expr {
	return &ast.BinaryExpr{
		Pos:    left.NodePos(),
		EndPos: right.NodeEndPos(),
		Op:     op,
		Left:   left,
		Right:  right,
	}
}

func convertExpr(n *exprNode) ast.Expr {
	left := convertAnd(n.Head)
	for _, rhs := range n.Tail {
		left = binary(rhs.Op, left, convertAnd(rhs.Expr))
	}
	return left
}

func convertAnd(n *andNode) ast.Expr {
	left := convertCmp(n.Head)
	for _, rhs := range n.Tail {
		left = binary(rhs.Op, left, convertCmp(rhs.Expr))
	}
	return left
}

func convertCmp(n *cmpNode) ast.Expr {
	left := convertAdd(n.Head)
	for _, rhs := range n.Tail {
		left = binary(rhs.Op, left, convertAdd(rhs.Expr))
	}
	return left
}

func convertAdd(n *addNode) ast.Expr {
	left := convertMul(n.Head)
	for _, rhs := range n.Tail {
		left = binary(rhs.Op, left, convertMul(rhs.Expr))
	}
	return left
}

func convertMul(n *mulNode) ast.Expr {
	left := convertUnary(n.Head)
	for _, rhs := range n.Tail {
		left = binary(rhs.Op, left, convertUnary(rhs.Expr))
	}
	return left
}

func convertUnary(n *unaryNode) ast.Expr {
	inner := convertPostfix(n.Postfix)
	if n.Op == "" {
		return inner
	}
	return &ast.UnaryExpr{Pos: pos(n.Pos), EndPos: inner.NodeEndPos(), Op: n.Op, Operand: inner}
}

func convertPostfix(n *postfixNode) ast.Expr {
	expr := convertPrimary(n.Primary)
	for _, call := range n.Calls {
		args := make([]ast.Expr, len(call.Args))
		for i, a := range call.Args {
			args[i] = convertExpr(a)
		}
		expr = &ast.CallExpr{Pos: expr.NodePos(), EndPos: pos(call.EndPos), Callee: expr, Args: args}
	}
	return expr
}

func convertPrimary(n *primaryNode) ast.Expr {
	switch {
	case n.Arrow != nil:
		return convertArrow(n.Arrow)
	case n.Element != nil:
		return convertElement(n.Element)
	case n.Number != nil:
		value, _ := strconv.ParseFloat(*n.Number, 64)
		return &ast.NumberLit{Pos: pos(n.Pos), EndPos: pos(n.EndPos), Value: value, Raw: *n.Number}
	case n.Str != nil:
		return &ast.StringLit{Pos: pos(n.Pos), EndPos: pos(n.EndPos), Value: unquote(*n.Str)}
	case n.Bool != nil:
		return &ast.BoolLit{Pos: pos(n.Pos), EndPos: pos(n.EndPos), Value: *n.Bool == "true"}
	case n.Ident != nil:
		return &ast.Ident{Pos: pos(n.Pos), EndPos: pos(n.EndPos), Name: *n.Ident}
	default:
		return &ast.ParenExpr{Pos: pos(n.Pos), EndPos: pos(n.EndPos), X: convertExpr(n.Paren)}
	}
}

func convertArrow(n *arrowNode) ast.Expr {
	params := make([]ast.Ident, len(n.Params))
	for i, p := range n.Params {
		params[i] = ast.Ident{Pos: pos(n.Pos), EndPos: pos(n.EndPos), Name: p}
	}
	arrow := &ast.ArrowFunc{Pos: pos(n.Pos), EndPos: pos(n.EndPos), Params: params}
	if n.Body != nil {
		arrow.Body = convertBlock(n.Body)
	} else {
		arrow.Value = convertExpr(n.Value)
	}
	return arrow
}

func convertElement(n *elementNode) *ast.Element {
	el := &ast.Element{Pos: pos(n.Pos), EndPos: pos(n.EndPos), Tag: n.Tag}
	for _, a := range n.Attrs {
		attr := &ast.Attr{Pos: pos(a.Pos), EndPos: pos(a.EndPos), Name: a.Name}
		if a.Value != nil {
			attr.Value = convertAttrValue(a.Value)
		}
		el.Attrs = append(el.Attrs, attr)
	}
	for _, c := range n.Children {
		el.Children = append(el.Children, convertChild(c))
	}
	return el
}

func convertAttrValue(n *attrValueNode) ast.Expr {
	switch {
	case n.Str != nil:
		return &ast.StringLit{Pos: pos(n.Pos), EndPos: pos(n.EndPos), Value: unquote(*n.Str)}
	case n.Number != nil:
		value, _ := strconv.ParseFloat(*n.Number, 64)
		return &ast.NumberLit{Pos: pos(n.Pos), EndPos: pos(n.EndPos), Value: value, Raw: *n.Number}
	case n.Bool != nil:
		return &ast.BoolLit{Pos: pos(n.Pos), EndPos: pos(n.EndPos), Value: *n.Bool == "true"}
	case n.Ident != nil:
		return &ast.Ident{Pos: pos(n.Pos), EndPos: pos(n.EndPos), Name: *n.Ident}
	default:
		return convertExpr(n.Interp.X)
	}
}

func convertChild(n *childNode) ast.TemplateNode {
	switch {
	case n.Element != nil:
		return convertElement(n.Element)
	case n.Interp != nil:
		return &ast.Interp{Pos: pos(n.Interp.Pos), EndPos: pos(n.Interp.EndPos), X: convertExpr(n.Interp.X)}
	default:
		return &ast.Text{Pos: pos(n.Pos), EndPos: pos(n.EndPos), Value: unquote(*n.Text)}
	}
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
