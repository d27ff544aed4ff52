package parser

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"

	"lumen/internal/ast"
)

var lumenParser = participle.MustBuild[programNode](
	participle.Lexer(lumenLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(4),
)

// ParseSource parses Lumen source text into a syntax tree.
func ParseSource(path, source string) (*ast.Program, error) {
	node, err := lumenParser.ParseString(path, source)
	if err != nil {
		return nil, err
	}
	return convertProgram(node), nil
}

// ParseFile reads and parses a Lumen source file, printing a caret-style
// error message on parse failure.
func ParseFile(path string) (*ast.Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	program, err := ParseSource(path, string(source))
	if err != nil {
		reportParseError(string(source), err)
		return nil, err
	}
	return program, nil
}

// reportParseError prints a friendly caret-style parse error message.
func reportParseError(src string, err error) {
	pe, ok := err.(participle.Error)
	if !ok {
		color.Red("Unexpected error: %s", err)
		return
	}
	pos := pe.Position()
	lines := strings.Split(src, "\n")
	color.Red("parse error at %s:%d:%d: %s", pos.Filename, pos.Line, pos.Column, pe.Message())
	if pos.Line >= 1 && pos.Line <= len(lines) {
		fmt.Fprintln(os.Stderr, lines[pos.Line-1])
		if pos.Column >= 1 {
			fmt.Fprintln(os.Stderr, strings.Repeat(" ", pos.Column-1)+"^")
		}
	}
}
