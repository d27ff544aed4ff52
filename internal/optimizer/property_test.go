package optimizer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"lumen/internal/parser"
)

// genStatement renders one statement group for position i; names embed the
// position so generated programs never collide on signal names.
func genStatement(kind, i int) string {
	switch kind {
	case 0:
		return fmt.Sprintf("let c%d = signal(%d);\nprint(c%d());", i, i, i)
	case 1:
		return fmt.Sprintf("let d%d = signal(%d);", i, i)
	case 2:
		return fmt.Sprintf("let e%d = signal(0);\nsetE%d(1);\nsetE%d(2);", i, i, i)
	case 3:
		return fmt.Sprintf("if (false) {\n  print(%d);\n} else {\n  print(%d);\n}", i, i+1)
	case 4:
		return fmt.Sprintf("print(%d + 2 * 3);", i)
	case 5:
		return fmt.Sprintf("fn C%d() {\n  return <div class=\"box\">\"t%d\"</div>;\n}", i, i)
	default:
		return fmt.Sprintf("effect(() => log(%d));\neffect(() => trace(%d));", i, i)
	}
}

func buildSource(kinds []int) string {
	parts := []string{"print(0);"}
	for i, kind := range kinds {
		parts = append(parts, genStatement(kind, i))
	}
	return strings.Join(parts, "\n")
}

func TestOptimizeProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("a second run finds nothing left to do", prop.ForAll(
		func(kinds []int) bool {
			prog, err := parser.ParseSource("prop.lum", buildSource(kinds))
			if err != nil {
				return false
			}
			first := Optimize(prog, DefaultOptions(ModeAggressive))
			second := Optimize(first.Program, DefaultOptions(ModeAggressive))
			return len(second.Changes) == 0 &&
				second.Program.String() == first.Program.String()
		},
		gen.SliceOf(gen.IntRange(0, 6)),
	))

	properties.Property("optimized output still parses", prop.ForAll(
		func(kinds []int) bool {
			prog, err := parser.ParseSource("prop.lum", buildSource(kinds))
			if err != nil {
				return false
			}
			result := Optimize(prog, DefaultOptions(ModeAggressive))
			printed := result.Program.String()
			if strings.TrimSpace(printed) == "" {
				return true
			}
			_, err = parser.ParseSource("prop.lum", printed)
			return err == nil
		},
		gen.SliceOf(gen.IntRange(0, 6)),
	))

	properties.Property("mode none is the identity", prop.ForAll(
		func(kinds []int) bool {
			prog, err := parser.ParseSource("prop.lum", buildSource(kinds))
			if err != nil {
				return false
			}
			result := Optimize(prog, DefaultOptions(ModeNone))
			return result.Program == prog && len(result.Changes) == 0
		},
		gen.SliceOf(gen.IntRange(0, 6)),
	))

	properties.TestingRun(t)
}
