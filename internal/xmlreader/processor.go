package xmlreader

import (
	"github.com/cfrie/qrt/internal/diagnostics"
	"github.com/cfrie/qrt/internal/pipeline"
)

// ReaderProcessor is the pipeline's first stage: it parses ctx.SourceXML
// into ctx.Questionnaire. A parse failure is recorded as a fatal
// diagnostic and the context is returned unmodified otherwise, mirroring
// the teacher's ParserProcessor (internal/parser/processor.go): a stage
// that finds nothing to build just returns ctx.
type ReaderProcessor struct{}

func (rp *ReaderProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	q, err := Read(ctx.SourceXML, ctx.FilePath)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			ctx.AddDiagnostic(diagnostics.Newf(diagnostics.MalformedXML, "%s", pe.Message).WithFile(ctx.FilePath))
			return ctx
		}
		if d, ok := err.(*diagnostics.Diagnostic); ok {
			ctx.AddDiagnostic(d)
			return ctx
		}
		ctx.AddDiagnostic(diagnostics.Newf(diagnostics.MalformedXML, "%s", err.Error()).WithFile(ctx.FilePath))
		return ctx
	}
	ctx.Questionnaire = q
	ctx.Diagnostics = append(ctx.Diagnostics, q.Warnings...)
	return ctx
}
