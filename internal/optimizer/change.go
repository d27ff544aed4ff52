package optimizer

import (
	"fmt"
	"time"

	"lumen/internal/ast"
)

// ChangeKind is the closed set of rewrites the pipeline can perform.
// Aggregation and reporting switch over it exhaustively; there is no
// string-tag dispatch anywhere.
type ChangeKind int

const (
	SignalInline ChangeKind = iota
	DeadRemoval
	Merge
	SingleUse
	DeadCode
	ConstantFold
	Hoist
)

func (k ChangeKind) String() string {
	switch k {
	case SignalInline:
		return "signal-inline"
	case DeadRemoval:
		return "dead-removal"
	case Merge:
		return "merge"
	case SingleUse:
		return "single-use"
	case DeadCode:
		return "dead-code"
	case ConstantFold:
		return "constant-fold"
	case Hoist:
		return "hoist"
	default:
		return fmt.Sprintf("ChangeKind(%d)", int(k))
	}
}

// Change is the audit trail entry for one applied rewrite.
type Change struct {
	Kind        ChangeKind
	Description string
	Node        ast.Node
}

// Warning is a non-fatal diagnostic. Warnings are append-only for the
// lifetime of one pipeline run; nothing is ever retracted.
type Warning struct {
	Message string
	Node    ast.Node
}

// Metrics summarizes one pipeline run.
type Metrics struct {
	CellsAnalyzed int
	ConstantCells int
	Iterations    int
	Elapsed       time.Duration
}

// Result is what a pipeline run hands to the code generator and to tests.
type Result struct {
	Program  *ast.Program
	Changes  []Change
	Warnings []Warning
	Metrics  Metrics
}
