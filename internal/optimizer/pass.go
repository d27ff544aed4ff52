package optimizer

import (
	"fmt"

	"lumen/internal/analysis"
	"lumen/internal/ast"
)

// Pass is a single optimization transformation. Apply returns the rewritten
// tree; it must build new nodes for anything it changes and may share
// unchanged subtrees with the input. Rewrites and diagnostics are recorded
// on the passContext.
type Pass interface {
	Name() string
	Description() string
	Apply(pc *passContext, prog *ast.Program) *ast.Program
}

// passContext is the per-run state shared by the passes of a pipeline:
// the current fact set, the configuration, and the accumulated audit trail.
type passContext struct {
	facts *analysis.FactSet
	opts  Options

	changes  []Change
	warnings []Warning

	// Cells already inlined in the current iteration; single-use conversion
	// must not touch them (constant inlining takes priority).
	inlined map[string]bool

	// Warnings already emitted, keyed by message and position, so the
	// diagnostics pass can re-run every iteration without repeating itself.
	warned map[string]bool

	// Hoisted-template counter; persists across iterations so names stay
	// unique within one run.
	hoisted int
}

func newPassContext(opts Options) *passContext {
	return &passContext{
		opts:    opts,
		inlined: make(map[string]bool),
		warned:  make(map[string]bool),
	}
}

func (pc *passContext) change(kind ChangeKind, node ast.Node, format string, args ...any) {
	pc.changes = append(pc.changes, Change{
		Kind:        kind,
		Description: fmt.Sprintf(format, args...),
		Node:        node,
	})
}

func (pc *passContext) warn(node ast.Node, format string, args ...any) {
	pc.warnings = append(pc.warnings, Warning{
		Message: fmt.Sprintf(format, args...),
		Node:    node,
	})
}

// warnOnce suppresses a warning that was already emitted at the same
// position in an earlier iteration.
func (pc *passContext) warnOnce(node ast.Node, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	pos := node.NodePos()
	key := fmt.Sprintf("%s|%d:%d", msg, pos.Line, pos.Column)
	if pc.warned[key] {
		return
	}
	pc.warned[key] = true
	pc.warnings = append(pc.warnings, Warning{Message: msg, Node: node})
}
