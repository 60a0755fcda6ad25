package pipeline

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		// Continue past a stage that found nothing to do (e.g. a reader
		// fatal leaves ctx.Questionnaire nil) so later stages' no-ops
		// still let the CLI print whatever diagnostics were collected.
	}
	return ctx
}
