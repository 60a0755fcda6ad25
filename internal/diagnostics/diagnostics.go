// Package diagnostics provides a small typed-error/warning value shared by
// the reader, analyzer and generator, grounded on the teacher's
// *diagnostics.DiagnosticError pattern: a stable code, the file/page the
// finding came from, and a one-line message.
package diagnostics

import "fmt"

// Code identifies the kind of diagnostic. Fatal codes abort the entity
// being built; non-fatal codes are appended to a Questionnaire's warning
// list and never stop loading.
type Code string

const (
	// Fatal: abort the entity/page/document being processed.
	MalformedXML            Code = "E-XML-001"
	MissingAttribute        Code = "E-ATTR-001"
	InconsistentInferredType Code = "E-TYPE-001"

	// Non-fatal: recorded as warnings only.
	UnresolvedTarget     Code = "W-TARGET-001"
	DeclaredTypeMismatch Code = "W-TYPE-001"
	UnknownTriggerTag    Code = "W-TRIGGER-001"
)

// Diagnostic is a single coded finding. File and Page are best-effort
// context, set by whichever caller had them available.
type Diagnostic struct {
	Code    Code
	File    string
	Page    string
	Message string
}

func (d *Diagnostic) Error() string {
	if d == nil {
		return ""
	}
	switch {
	case d.Page != "" && d.File != "":
		return fmt.Sprintf("%s: %s:%s: %s", d.Code, d.File, d.Page, d.Message)
	case d.Page != "":
		return fmt.Sprintf("%s: page %s: %s", d.Code, d.Page, d.Message)
	case d.File != "":
		return fmt.Sprintf("%s: %s: %s", d.Code, d.File, d.Message)
	default:
		return fmt.Sprintf("%s: %s", d.Code, d.Message)
	}
}

// New builds a Diagnostic with no page/file context yet attached; callers
// typically set File/Page immediately afterward, mirroring the teacher's
// processors backfilling ctx.FilePath onto every collected error.
func New(code Code, message string) *Diagnostic {
	return &Diagnostic{Code: code, Message: message}
}

// Newf is New with fmt.Sprintf-style formatting.
func Newf(code Code, format string, args ...any) *Diagnostic {
	return New(code, fmt.Sprintf(format, args...))
}

// WithPage returns a copy of d with Page set, for chaining at the call site.
func (d *Diagnostic) WithPage(page string) *Diagnostic {
	cp := *d
	cp.Page = page
	return &cp
}

// WithFile returns a copy of d with File set.
func (d *Diagnostic) WithFile(file string) *Diagnostic {
	cp := *d
	cp.File = file
	return &cp
}

// IsFatal reports whether code represents an entity/document-aborting
// condition rather than a recorded warning.
func IsFatal(code Code) bool {
	switch code {
	case MalformedXML, MissingAttribute, InconsistentInferredType:
		return true
	default:
		return false
	}
}
