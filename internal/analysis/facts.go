package analysis

import (
	"strings"

	"lumen/internal/ast"
)

// Site records one read or write of a signal: the call node itself plus
// enough context to answer "same statement" and "same expression" queries.
type Site struct {
	Node     ast.Node // the read/write call expression
	Stmt     ast.Stmt // enclosing statement
	Expr     ast.Expr // enclosing top-level expression
	Scope    int      // enclosing scope id
	Deferred bool     // inside a deferred closure (effect registration)
}

// Cell holds everything the analyzer learned about one signal declaration.
// Facts are rebuilt from scratch on every analysis, never patched in place.
type Cell struct {
	Name            string
	SetterName      string
	Decl            *ast.LetStmt
	Init            ast.Expr // the factory's initializer argument, nil when malformed
	ConstantInit    bool     // initializer is a literal with no external references
	Reads           []Site
	Writes          []Site
	DeferredCapture bool // read or written inside a deferred closure
	Malformed       bool // factory with no arguments, or the name is declared more than once
}

// FactSet is the result of one analyzer run over a tree.
type FactSet struct {
	cells map[string]*Cell
	order []string
}

func newFactSet() *FactSet {
	return &FactSet{cells: make(map[string]*Cell)}
}

func (f *FactSet) add(c *Cell) {
	if existing, ok := f.cells[c.Name]; ok {
		// Cells are attributed by name, so a second declaration of the same
		// name (shadowing in another scope) makes every read of that name
		// ambiguous. Neither declaration is optimized.
		existing.Malformed = true
		c.Malformed = true
		return
	}
	f.order = append(f.order, c.Name)
	f.cells[c.Name] = c
}

// Cell returns the facts for a signal by name, or nil.
func (f *FactSet) Cell(name string) *Cell {
	return f.cells[name]
}

// SetterFor returns the cell whose paired setter has the given name, or nil.
func (f *FactSet) SetterFor(name string) *Cell {
	for _, cellName := range f.order {
		if c := f.cells[cellName]; c.SetterName == name {
			return c
		}
	}
	return nil
}

// Cells returns all cells in declaration order.
func (f *FactSet) Cells() []*Cell {
	out := make([]*Cell, 0, len(f.order))
	for _, name := range f.order {
		out = append(out, f.cells[name])
	}
	return out
}

// Len reports the number of analyzed cells.
func (f *FactSet) Len() int {
	return len(f.order)
}

// ConstantCount reports how many cells have a constant initializer.
func (f *FactSet) ConstantCount() int {
	n := 0
	for _, name := range f.order {
		if f.cells[name].ConstantInit {
			n++
		}
	}
	return n
}

// SetterName derives the paired setter identifier for a signal name:
// "count" pairs with "setCount".
func SetterName(name string) string {
	if name == "" {
		return "set"
	}
	return "set" + strings.ToUpper(name[:1]) + name[1:]
}
