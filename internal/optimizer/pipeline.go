package optimizer

import (
	"time"

	"github.com/tliron/commonlog"

	"lumen/internal/analysis"
	"lumen/internal/ast"
)

// maxIterations caps the fixed-point loop. The cap being reached is not an
// error; callers detect non-convergence via Metrics.Iterations.
const maxIterations = 10

// Pipeline runs the enabled optimization passes to a fixed point,
// re-analyzing signal usage between iterations because one pass's output
// can open another pass's opportunity.
type Pipeline struct {
	opts   Options
	passes []Pass
	log    commonlog.Logger
}

// NewPipeline assembles the pass sequence for the given configuration.
// The per-iteration order is fixed: folding before branch elimination
// (folding can turn a test into a literal), inlining before single-use
// conversion (the two are mutually exclusive per cell), and dead-cell
// elimination after both (either can strip the last read of a cell).
func NewPipeline(opts Options) *Pipeline {
	p := &Pipeline{
		opts: opts,
		log:  commonlog.GetLogger("optimizer"),
	}
	if opts.foldingEnabled() {
		p.addPass(&ConstantFolding{})
	}
	if opts.deadCodeEnabled() {
		p.addPass(&BranchElimination{})
	}
	if opts.signalRewritesEnabled() {
		p.addPass(&SignalInlining{})
		p.addPass(&SingleUseConversion{})
		p.addPass(&WriteMerging{})
	}
	if opts.batchingEnabled() {
		p.addPass(&EffectBatching{})
	}
	if opts.treeShakeEnabled() {
		p.addPass(&DeadSignalElimination{})
	}
	if opts.signalRewritesEnabled() {
		p.addPass(&AccessDiagnostics{})
	}
	if opts.hoistingEnabled() {
		p.addPass(&StaticHoisting{})
	}
	return p
}

func (p *Pipeline) addPass(pass Pass) {
	p.passes = append(p.passes, pass)
}

// Passes returns the names of the enabled passes in execution order.
func (p *Pipeline) Passes() []string {
	names := make([]string, len(p.passes))
	for i, pass := range p.passes {
		names[i] = pass.Name()
	}
	return names
}

// Run optimizes the tree and returns the rewritten tree with the full
// audit trail. Run never fails for optimizer-internal reasons: a faulting
// pass is disabled for the remainder of the run and recorded as a Warning,
// and at worst the input tree comes back unmodified.
func (p *Pipeline) Run(prog *ast.Program) Result {
	start := time.Now()
	pc := newPassContext(p.opts)
	disabled := make(map[string]bool)

	tree := prog
	iterations := 0
	cellsAnalyzed := 0
	constantCells := 0

	for iterations < maxIterations {
		iterations++
		pc.facts = analysis.Analyze(tree)
		cellsAnalyzed = pc.facts.Len()
		constantCells = pc.facts.ConstantCount()
		pc.inlined = make(map[string]bool)

		before := len(pc.changes)
		for _, pass := range p.passes {
			if disabled[pass.Name()] {
				continue
			}
			tree = p.applyPass(pass, pc, tree, disabled)
		}
		applied := len(pc.changes) - before
		p.log.Debugf("iteration %d: %d changes", iterations, applied)
		if applied == 0 {
			break
		}
	}

	result := Result{
		Program:  tree,
		Changes:  pc.changes,
		Warnings: pc.warnings,
		Metrics:  Metrics{Iterations: iterations},
	}
	if p.opts.CollectMetrics {
		result.Metrics.CellsAnalyzed = cellsAnalyzed
		result.Metrics.ConstantCells = constantCells
		result.Metrics.Elapsed = time.Since(start)
	}
	return result
}

// applyPass runs one pass with a recovery boundary: a pass that faults on
// an unexpected tree shape is skipped for the rest of the run and the
// tree it was given is carried forward unchanged.
func (p *Pipeline) applyPass(pass Pass, pc *passContext, tree *ast.Program, disabled map[string]bool) (out *ast.Program) {
	out = tree
	defer func() {
		if r := recover(); r != nil {
			disabled[pass.Name()] = true
			pc.warn(tree, "pass %s failed (%v); skipped for the rest of this run", pass.Name(), r)
			p.log.Errorf("pass %s panicked: %v", pass.Name(), r)
			out = tree
		}
	}()
	next := pass.Apply(pc, tree)
	if next != nil {
		out = next
	}
	return out
}

// Optimize is the package entry point: a pure function of (tree, options).
func Optimize(prog *ast.Program, opts Options) Result {
	return NewPipeline(opts).Run(prog)
}
