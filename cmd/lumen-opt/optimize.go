package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"lumen/internal/optimizer"
	"lumen/internal/parser"
	"lumen/internal/report"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize <file.lum>",
	Short: "Run the optimization pipeline and print the optimized source",
	Args:  cobra.ExactArgs(1),
	RunE:  runOptimize,
}

func init() {
	optimizeCmd.Flags().String("mode", "aggressive", "optimization mode (none|basic|aggressive)")
	optimizeCmd.Flags().String("config", "", "path to a lumen.toml with an [optimizer] section")
	optimizeCmd.Flags().Bool("signals", true, "enable signal-level rewrites")
	optimizeCmd.Flags().Bool("batch-effects", true, "merge adjacent effect registrations")
	optimizeCmd.Flags().Bool("hoist", true, "hoist static templates")
	optimizeCmd.Flags().Bool("tree-shake", true, "remove unread signals")
	optimizeCmd.Flags().Bool("dead-code", true, "eliminate dead code and fold constants")
	optimizeCmd.Flags().Bool("quiet", false, "print only the optimized source")
}

func runOptimize(cmd *cobra.Command, args []string) error {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		commonlog.Configure(1, nil)
	}

	path := args[0]
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	program, err := parser.ParseFile(path)
	if err != nil {
		return err
	}

	opts, err := optionsFromFlags(cmd)
	if err != nil {
		return err
	}

	result := optimizer.Optimize(program, opts)

	quiet, _ := cmd.Flags().GetBool("quiet")
	if !quiet {
		reporter := report.NewReporter(path, string(source))
		for _, change := range result.Changes {
			fmt.Print(reporter.FormatChange(change))
		}
		for _, warning := range result.Warnings {
			fmt.Print(reporter.FormatWarning(warning))
		}
		printSummary(result)
	}

	fmt.Println(result.Program.String())
	return nil
}

func optionsFromFlags(cmd *cobra.Command) (optimizer.Options, error) {
	var opts optimizer.Options
	if configPath, _ := cmd.Flags().GetString("config"); configPath != "" {
		loaded, err := optimizer.LoadOptions(configPath)
		if err != nil {
			return optimizer.Options{}, err
		}
		opts = loaded
	} else {
		mode, _ := cmd.Flags().GetString("mode")
		switch optimizer.Mode(mode) {
		case optimizer.ModeNone, optimizer.ModeBasic, optimizer.ModeAggressive:
			opts = optimizer.DefaultOptions(optimizer.Mode(mode))
		default:
			return optimizer.Options{}, fmt.Errorf("unknown mode %q (want none, basic or aggressive)", mode)
		}
	}

	// Explicit flags override the config file.
	if cmd.Flags().Changed("signals") {
		opts.OptimizeSignals, _ = cmd.Flags().GetBool("signals")
	}
	if cmd.Flags().Changed("batch-effects") {
		opts.BatchEffects, _ = cmd.Flags().GetBool("batch-effects")
	}
	if cmd.Flags().Changed("hoist") {
		opts.HoistComponents, _ = cmd.Flags().GetBool("hoist")
	}
	if cmd.Flags().Changed("tree-shake") {
		opts.TreeShake, _ = cmd.Flags().GetBool("tree-shake")
	}
	if cmd.Flags().Changed("dead-code") {
		opts.EliminateDeadCode, _ = cmd.Flags().GetBool("dead-code")
	}
	return opts, nil
}

func printSummary(result optimizer.Result) {
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	fmt.Printf("%s %d changes, %d warnings\n", bold("optimizer:"), len(result.Changes), len(result.Warnings))
	fmt.Printf("%s\n", dim(fmt.Sprintf("  %d signals analyzed (%d constant), %d iterations, %s",
		result.Metrics.CellsAnalyzed,
		result.Metrics.ConstantCells,
		result.Metrics.Iterations,
		result.Metrics.Elapsed)))
	fmt.Println()
}
