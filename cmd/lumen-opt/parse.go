package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lumen/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file.lum>",
	Short: "Parse a Lumen source file and print its canonical form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		program, err := parser.ParseFile(args[0])
		if err != nil {
			return err
		}
		fmt.Println(program.String())
		return nil
	},
}
