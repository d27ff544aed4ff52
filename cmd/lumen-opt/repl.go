package main

import (
	"os"

	"github.com/spf13/cobra"

	"lumen/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Optimize Lumen statements interactively",
	Run: func(cmd *cobra.Command, args []string) {
		repl.Start(os.Stdin, os.Stdout)
	},
}
