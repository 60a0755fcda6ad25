package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cfrie/qrt/internal/graphbuild"
	"github.com/cfrie/qrt/internal/pipeline"
	"github.com/cfrie/qrt/internal/xmlreader"
)

var (
	graphOut       string
	graphShowVars  bool
	graphShowCond  bool
	graphJumpers   bool
	graphRewrite   bool
	graphColor     bool
	graphRemoveCF  bool
)

func init() {
	graphCmd.Flags().StringVar(&graphOut, "out", "", "output .dot path (required)")
	graphCmd.Flags().BoolVar(&graphShowVars, "show-vars", false, "include each page's variable set in its node label")
	graphCmd.Flags().BoolVar(&graphShowCond, "show-cond", false, "label edges with their transition conditions")
	graphCmd.Flags().BoolVar(&graphJumpers, "jumpers", false, "render jumper edges")
	graphCmd.Flags().BoolVar(&graphRewrite, "rewrite", false, "rewrite edge conditions into the zofar-free form")
	graphCmd.Flags().BoolVar(&graphColor, "color", false, "color nodes by page-uid prefix")
	graphCmd.Flags().BoolVar(&graphRemoveCF, "remove-cond-false", false, "drop edges whose sole condition is the literal false")
	_ = graphCmd.MarkFlagRequired("out")
}

var graphCmd = &cobra.Command{
	Use:   "graph <file>",
	Short: "Render the page-transition flow graph as DOT text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("qrt: read %s: %w", args[0], err)
		}
		ctx := pipeline.NewPipelineContext(data, args[0])
		ctx = pipeline.New(&xmlreader.ReaderProcessor{}).Run(ctx)
		printDiagnostics(ctx.Diagnostics)
		if ctx.Questionnaire == nil {
			os.Exit(1)
		}

		opts := graphbuild.Options{
			ShowCond:        graphShowCond,
			ShowVar:         graphShowVars,
			RemoveCondFalse: graphRemoveCF,
			ShowJumper:      graphJumpers,
			ColorNodes:      graphColor,
			Rewrite:         graphRewrite,
			Filename:        args[0],
		}
		pages := ctx.Questionnaire.ActivePages()
		g := graphbuild.Build(pages, opts)

		if _, ok, cycle := g.TopoSort(); !ok {
			fmt.Fprintf(os.Stderr, "warning: transition graph is not acyclic, cycle: %v\n", cycle)
		}

		dot := graphbuild.ToDOT(pages, g, opts)
		if err := os.WriteFile(graphOut, []byte(dot), 0o644); err != nil {
			return fmt.Errorf("qrt: write %s: %w", graphOut, err)
		}
		fmt.Printf("wrote %s\n", graphOut)
		return nil
	},
}
