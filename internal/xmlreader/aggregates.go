package xmlreader

import (
	"github.com/beevik/etree"

	"github.com/cfrie/qrt/internal/diagnostics"
	"github.com/cfrie/qrt/internal/model"
)

// walkBodyAggregates computes a page's vars_used and body_questions_vars
// aggregates (spec §4.B steps 5–6) from a second, independent walk of the
// body subtree (kept separate from walkBody's structural Header/Question
// build, since the ancestor-climbing rule only applies to this pass).
func walkBodyAggregates(body *etree.Element) ([]model.VarRef, []model.BodyQuestionEntry, *diagnostics.Diagnostic) {
	bodyVars := collectBodyVars(body)
	if fatal := checkVarTypeConsistency(bodyVars); fatal != nil {
		return nil, nil, fatal
	}

	bodyQuestions := collectBodyQuestions(body, 0)
	return bodyVars, bodyQuestions, nil
}

// collectBodyVars finds every element carrying a "variable" attribute and
// climbs its ancestors to the enclosing recognized question tag, inferring
// the variable's type from that tag and collecting any "condition"
// attribute seen on the climb, inner to outer (spec §4.B step 5).
func collectBodyVars(body *etree.Element) []model.VarRef {
	var out []model.VarRef
	var walk func(e *etree.Element)
	walk = func(e *etree.Element) {
		if name := e.SelectAttrValue("variable", ""); name != "" {
			if kind, ok := enclosingQuestionKind(e); ok {
				out = append(out, model.VarRef{
					Variable:  model.Variable{Name: name, Type: kind.InferredVarType()},
					Condition: conditionsOnClimb(e),
				})
			}
		}
		for _, c := range e.ChildElements() {
			walk(c)
		}
	}
	walk(body)
	return out
}

// enclosingQuestionKind climbs e's ancestor chain (e itself included) until
// a recognized question tag is found.
func enclosingQuestionKind(e *etree.Element) (model.QuestionKind, bool) {
	for cur := e; cur != nil; cur = cur.Parent() {
		if isQuestionTag(cur.Tag) {
			return model.QuestionKind(cur.Tag), true
		}
	}
	return "", false
}

// conditionsOnClimb collects non-empty "condition" attributes from e up
// through (and including) the enclosing question element, inner to outer.
func conditionsOnClimb(e *etree.Element) []string {
	var out []string
	for cur := e; cur != nil; cur = cur.Parent() {
		if c := cur.SelectAttrValue("condition", ""); c != "" {
			out = append(out, c)
		}
		if isQuestionTag(cur.Tag) {
			break
		}
	}
	return out
}

// checkVarTypeConsistency enforces spec §4.B step 6's fatal rule: the same
// variable name appearing under two question shapes is fatal unless one
// occurrence infers to the string type (an attached-open is always
// compatible, since it is always string-typed).
func checkVarTypeConsistency(bodyVars []model.VarRef) *diagnostics.Diagnostic {
	seen := map[string]string{}
	for _, vr := range bodyVars {
		name, typ := vr.Variable.Name, vr.Variable.Type
		prev, ok := seen[name]
		if !ok {
			seen[name] = typ
			continue
		}
		if prev == typ || prev == model.VarTypeString || typ == model.VarTypeString {
			continue
		}
		return diagnostics.Newf(diagnostics.InconsistentInferredType,
			"variable %q used with inconsistent inferred types %q and %q", name, prev, typ)
	}
	return nil
}

// collectBodyQuestions walks the body in encounter order, recording each
// question element's kind and uid. A questionOpen nested inside another
// question (depth > 0) is recorded as an attached-open marker rather than a
// fresh top-level entry (spec §4.B step 6).
func collectBodyQuestions(e *etree.Element, depth int) []model.BodyQuestionEntry {
	var out []model.BodyQuestionEntry
	for _, c := range e.ChildElements() {
		if isQuestionTag(c.Tag) {
			kind := model.QuestionKind(c.Tag)
			out = append(out, model.BodyQuestionEntry{
				Kind:           kind,
				UID:            c.SelectAttrValue("uid", ""),
				IsAttachedOpen: depth > 0 && kind == model.QuestionOpen,
			})
			out = append(out, collectBodyQuestions(c, depth+1)...)
			continue
		}
		out = append(out, collectBodyQuestions(c, depth)...)
	}
	return out
}
