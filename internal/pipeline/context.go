package pipeline

import (
	"github.com/cfrie/qrt/internal/diagnostics"
	"github.com/cfrie/qrt/internal/model"
	"github.com/cfrie/qrt/internal/report"
)

// Processor is one stage of a Pipeline. Each stage reads whatever fields of
// ctx its preceding stages have populated and returns a (possibly mutated)
// context; stages never see raw bytes or diagnostics directly, only through
// ctx.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext threads the in-flight document and every stage's output
// through a Pipeline run: raw source in, parsed model out, with reports and
// diagnostics accumulating alongside. A stage that finds nothing to do
// leaves unrelated fields untouched.
type PipelineContext struct {
	// Set before the pipeline runs.
	SourceXML []byte
	FilePath  string

	// Populated by the reader stage.
	Questionnaire *model.Questionnaire

	// Populated by the analyzer stage.
	Report []report.Section

	// Populated by the graph stage.
	DOT string

	// Not populated by any processor in this module: redirects are resolved
	// by the reader stage into each Page's TrigRedirectOnExitTrue/False.
	Redirects []RedirectFinding

	// Accumulated by every stage; fatal diagnostics halt consumers that
	// check HasFatal, but the pipeline itself always runs every stage so
	// later diagnostics are available too (mirrors the teacher's
	// continue-on-error Run loop).
	Diagnostics []*diagnostics.Diagnostic
}

// NewPipelineContext seeds a context from raw XML bytes and the source
// file path (used in diagnostic messages).
func NewPipelineContext(sourceXML []byte, filePath string) *PipelineContext {
	return &PipelineContext{SourceXML: sourceXML, FilePath: filePath}
}

// AddDiagnostic appends d to the context's diagnostic list.
func (ctx *PipelineContext) AddDiagnostic(d *diagnostics.Diagnostic) {
	ctx.Diagnostics = append(ctx.Diagnostics, d)
}

// HasFatal reports whether any accumulated diagnostic is fatal.
func (ctx *PipelineContext) HasFatal() bool {
	for _, d := range ctx.Diagnostics {
		if diagnostics.IsFatal(d.Code) {
			return true
		}
	}
	return false
}

// RedirectFinding is one resolved action-trigger redirect (spec §4.G), the
// element type of PipelineContext.Redirects.
type RedirectFinding struct {
	PageUID   string
	Targets   []string
	Condition string
	OnExit    string
	Direction string
}
