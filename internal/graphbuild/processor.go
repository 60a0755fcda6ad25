package graphbuild

import "github.com/cfrie/qrt/internal/pipeline"

// Processor is the optional pipeline stage that renders the flow graph into
// ctx.DOT (spec §4.E, §4.I). It runs no cycle check and adds nothing to
// ctx.Diagnostics.
type Processor struct {
	Options Options
}

func (p *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Questionnaire == nil {
		return ctx
	}
	pages := ctx.Questionnaire.ActivePages()
	g := Build(pages, p.Options)
	ctx.DOT = ToDOT(pages, g, p.Options)
	return ctx
}
