package optimizer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"lumen/internal/ast"
	"lumen/internal/parser"
)

func mustParse(t *testing.T, source string) *ast.Program {
	t.Helper()
	program, err := parser.ParseSource("test.lum", source)
	require.NoError(t, err, "fixture should parse")
	return program
}

func optimizeSource(t *testing.T, source string, mode Mode) Result {
	t.Helper()
	return Optimize(mustParse(t, source), DefaultOptions(mode))
}

func changeKinds(result Result) []ChangeKind {
	kinds := make([]ChangeKind, len(result.Changes))
	for i, c := range result.Changes {
		kinds[i] = c.Kind
	}
	return kinds
}
