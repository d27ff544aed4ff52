package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"lumen/internal/ast"
	"lumen/internal/optimizer"
)

// Reporter renders optimizer changes and warnings against the original
// source, Rust-style: a header, a location arrow, and a caret marker under
// the offending span.
type Reporter struct {
	filename string
	lines    []string
}

// NewReporter creates a reporter for one source file.
func NewReporter(filename, source string) *Reporter {
	return &Reporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatChange renders one applied rewrite.
func (r *Reporter) FormatChange(c optimizer.Change) string {
	head := color.New(color.FgGreen, color.Bold).SprintFunc()
	return r.format(head(fmt.Sprintf("optimized[%s]", c.Kind)), c.Description, c.Node, color.FgGreen)
}

// FormatWarning renders one diagnostic.
func (r *Reporter) FormatWarning(w optimizer.Warning) string {
	head := color.New(color.FgYellow, color.Bold).SprintFunc()
	return r.format(head("warning"), w.Message, w.Node, color.FgYellow)
}

func (r *Reporter) format(header, message string, node ast.Node, markerColor color.Attribute) string {
	var b strings.Builder
	dim := color.New(color.Faint).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	b.WriteString(fmt.Sprintf("%s: %s\n", header, message))

	pos := ast.Position{}
	if node != nil {
		pos = node.NodePos()
	}
	if pos.Line < 1 || pos.Line > len(r.lines) {
		return b.String()
	}

	width := lineNumberWidth(pos.Line)
	indent := strings.Repeat(" ", width)

	b.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n", indent, dim("-->"), r.filename, pos.Line, pos.Column))
	b.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	lineContent := r.lines[pos.Line-1]
	b.WriteString(fmt.Sprintf("%s %s %s\n",
		bold(fmt.Sprintf("%*d", width, pos.Line)), dim("│"), lineContent))

	length := markerLength(node, lineContent)
	marker := strings.Repeat(" ", maxInt(0, pos.Column-1)) +
		color.New(markerColor, color.Bold).SprintFunc()(strings.Repeat("^", length))
	b.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("│"), marker))

	return b.String()
}

// markerLength spans the node when it sits on one line, and falls back to a
// single caret otherwise.
func markerLength(node ast.Node, lineContent string) int {
	if node == nil {
		return 1
	}
	pos, end := node.NodePos(), node.NodeEndPos()
	if end.Line == pos.Line && end.Column > pos.Column {
		length := end.Column - pos.Column
		if pos.Column-1+length <= len(lineContent) {
			return length
		}
	}
	return 1
}

func lineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3
	}
	return width
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
