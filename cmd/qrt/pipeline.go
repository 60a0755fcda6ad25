package main

import (
	"fmt"
	"os"

	"github.com/cfrie/qrt/internal/diagnostics"
	"github.com/cfrie/qrt/internal/pipeline"
	"github.com/cfrie/qrt/internal/xmlreader"
)

// readFile loads path and runs it through the reader stage alone,
// returning the resulting context for callers that add further stages.
func readFile(path string) (*pipeline.PipelineContext, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("qrt: read %s: %w", path, err)
	}
	ctx := pipeline.NewPipelineContext(data, path)
	p := pipeline.New(&xmlreader.ReaderProcessor{})
	return p.Run(ctx), nil
}

// printDiagnostics writes one line per diagnostic to stderr, colorized by
// severity when stdout is a terminal.
func printDiagnostics(diags []*diagnostics.Diagnostic) {
	for _, d := range diags {
		if diagnostics.IsFatal(d.Code) {
			fmt.Fprintln(os.Stderr, colorize(ansiRed, d.Error()))
		} else {
			fmt.Fprintln(os.Stderr, colorize(ansiYellow, d.Error()))
		}
	}
}
