package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load <file>",
	Short: "Parse a questionnaire document and print its warnings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := readFile(args[0])
		if err != nil {
			return err
		}
		printDiagnostics(ctx.Diagnostics)
		if ctx.Questionnaire == nil {
			os.Exit(1)
		}
		fmt.Printf("loaded %d page(s)\n", len(ctx.Questionnaire.Pages))
		return nil
	},
}
