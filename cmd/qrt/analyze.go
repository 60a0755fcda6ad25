package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cfrie/qrt/internal/analyzer"
	"github.com/cfrie/qrt/internal/pipeline"
	"github.com/cfrie/qrt/internal/report"
	"github.com/cfrie/qrt/internal/xmlreader"
)

var analyzeJSON bool

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the report sections as JSON instead of text")
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Parse and analyze a questionnaire document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("qrt: read %s: %w", args[0], err)
		}
		ctx := pipeline.NewPipelineContext(data, args[0])
		p := pipeline.New(&xmlreader.ReaderProcessor{}, &analyzer.Processor{})
		ctx = p.Run(ctx)

		printDiagnostics(ctx.Diagnostics)
		if ctx.Questionnaire == nil {
			os.Exit(1)
		}

		format := viper.GetString("output_format")
		if analyzeJSON {
			format = "json"
		}
		if format == "json" {
			return printJSON(ctx.Report)
		}
		fmt.Print(report.RenderText(ctx.Report))
		return nil
	},
}

func printJSON(sections []report.Section) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(sections)
}
