package analyzer

import "github.com/cfrie/qrt/internal/pipeline"

// Processor is the pipeline's second stage: it runs Analyze over
// ctx.Questionnaire and renders the result into ctx.Report (spec §4.I).
// A missing Questionnaire (an earlier stage failed) is a no-op, mirroring
// the teacher's SemanticAnalyzerProcessor guard on ctx.AstRoot.
type Processor struct{}

func (p *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Questionnaire == nil {
		return ctx
	}
	result := Analyze(ctx.Questionnaire)
	ctx.Report = result.Sections()
	ctx.Diagnostics = append(ctx.Diagnostics, ctx.Questionnaire.Warnings...)
	return ctx
}
