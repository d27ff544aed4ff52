package optimizer

import (
	"lumen/internal/ast"
)

// ConstantFolding replaces binary arithmetic on two numeric literals with
// the computed literal. Division by a literal zero is deliberately left
// unfolded rather than guessing the runtime's error semantics.
type ConstantFolding struct{}

func (cf *ConstantFolding) Name() string {
	return "Constant Folding"
}

func (cf *ConstantFolding) Description() string {
	return "Evaluates constant arithmetic at compile time and replaces it with literals"
}

func (cf *ConstantFolding) Apply(pc *passContext, prog *ast.Program) *ast.Program {
	return ast.RewriteProgram(prog, func(e ast.Expr) (ast.Expr, bool) {
		bin, ok := e.(*ast.BinaryExpr)
		if !ok {
			return nil, false
		}
		folded := cf.fold(bin, pc)
		if folded == ast.Expr(bin) {
			return nil, false
		}
		return folded, true
	})
}

// fold evaluates the subtree bottom-up so nested constant expressions
// collapse in a single pass.
func (cf *ConstantFolding) fold(e ast.Expr, pc *passContext) ast.Expr {
	if paren, ok := e.(*ast.ParenExpr); ok {
		inner := cf.fold(paren.X, pc)
		if inner == paren.X {
			return paren
		}
		if _, isNum := inner.(*ast.NumberLit); isNum {
			return inner
		}
		return &ast.ParenExpr{Pos: paren.Pos, EndPos: paren.EndPos, X: inner}
	}
	bin, ok := e.(*ast.BinaryExpr)
	if !ok {
		return e
	}
	left := cf.fold(bin.Left, pc)
	right := cf.fold(bin.Right, pc)

	ln, lok := numberOperand(left)
	rn, rok := numberOperand(right)
	if lok && rok {
		if value, ok := compute(bin.Op, ln.Value, rn.Value); ok {
			lit := &ast.NumberLit{
				Pos:    bin.Pos,
				EndPos: bin.EndPos,
				Value:  value,
				Raw:    ast.FormatNumber(value),
			}
			pc.change(ConstantFold, bin, "Folded %s %s %s to %s", ln.String(), bin.Op, rn.String(), lit.Raw)
			return lit
		}
	}
	if left == bin.Left && right == bin.Right {
		return bin
	}
	return &ast.BinaryExpr{Pos: bin.Pos, EndPos: bin.EndPos, Op: bin.Op, Left: left, Right: right}
}

// numberOperand sees through parentheses that wrap a numeric literal.
func numberOperand(e ast.Expr) (*ast.NumberLit, bool) {
	switch x := e.(type) {
	case *ast.NumberLit:
		return x, true
	case *ast.ParenExpr:
		return numberOperand(x.X)
	default:
		return nil, false
	}
}

func compute(op string, left, right float64) (float64, bool) {
	switch op {
	case "+":
		return left + right, true
	case "-":
		return left - right, true
	case "*":
		return left * right, true
	case "/":
		if right == 0 {
			return 0, false
		}
		return left / right, true
	default:
		return 0, false
	}
}
