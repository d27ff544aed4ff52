package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lumen-opt",
	Short: "Lumen signal optimizer",
	Long:  `lumen-opt analyzes signal usage in Lumen sources and runs the optimization pass pipeline`,
}

func main() {
	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(replCmd)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
