package repl

import (
	"bufio"
	"fmt"
	"io"

	"lumen/internal/optimizer"
	"lumen/internal/parser"
)

const PROMPT = ">> "

// Start reads Lumen statements line by line, runs the aggressive pipeline
// over each, and prints the optimized form with the applied changes.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	opts := optimizer.DefaultOptions(optimizer.ModeAggressive)

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			return
		}

		line := scanner.Text()
		if line == "" {
			continue
		}

		program, err := parser.ParseSource("repl", line)
		if err != nil {
			fmt.Fprintf(out, "parse error: %s\n", err)
			continue
		}

		result := optimizer.Optimize(program, opts)
		for _, change := range result.Changes {
			fmt.Fprintf(out, "// %s: %s\n", change.Kind, change.Description)
		}
		for _, warning := range result.Warnings {
			fmt.Fprintf(out, "// warning: %s\n", warning.Message)
		}
		fmt.Fprintln(out, result.Program.String())
	}
}
