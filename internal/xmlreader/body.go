package xmlreader

import (
	"github.com/beevik/etree"

	"github.com/cfrie/qrt/internal/diagnostics"
	"github.com/cfrie/qrt/internal/model"
)

// walkBody builds the page's structured Headers and Questions by recursing
// through body/section/unit containers (spec §4.B, building Component C's
// Page.Headers/Page.Questions from the same traversal the aggregate walk
// in aggregates.go performs separately for vars_used/body_questions_vars).
func walkBody(body *etree.Element) ([]model.Header, []model.Question, *diagnostics.Diagnostic) {
	var headers []model.Header
	var questions []model.Question

	var walk func(e *etree.Element) *diagnostics.Diagnostic
	walk = func(e *etree.Element) *diagnostics.Diagnostic {
		for _, child := range e.ChildElements() {
			switch {
			case isHeaderTag(child.Tag):
				headers = append(headers, readHeader(child))
			case isQuestionTag(child.Tag):
				q, fatal := parseQuestion(child)
				if fatal != nil {
					return fatal
				}
				questions = append(questions, q)
			default:
				if fatal := walk(child); fatal != nil {
					return fatal
				}
			}
		}
		return nil
	}
	if fatal := walk(body); fatal != nil {
		return nil, nil, fatal
	}
	return headers, questions, nil
}

// isHeaderTag reports whether tag is one of the leaf title/text/question/
// introduction/instruction elements (spec §6). The grouping "header" tag
// itself is not a leaf — it is recursed into like section/unit.
func isHeaderTag(tag string) bool {
	switch tag {
	case model.HeaderTitle, model.HeaderText, model.HeaderQuestion,
		model.HeaderIntroduction, model.HeaderInstruction:
		return true
	default:
		return false
	}
}

// isQuestionTag reports whether tag names one of the recognized
// question-element shapes (spec §3's question-tag set).
func isQuestionTag(tag string) bool {
	switch model.QuestionKind(tag) {
	case model.QuestionOpen, model.QuestionSingleChoice, model.QuestionMultipleChoice,
		model.QuestionMatrixSingleChoice, model.QuestionMatrixMultipleChoice,
		model.QuestionMatrixOpen, model.QuestionEpisodes, model.QuestionEpisodesTable:
		return true
	default:
		return false
	}
}

func readHeader(e *etree.Element) model.Header {
	return model.Header{
		UID:     e.SelectAttrValue("uid", ""),
		Kind:    e.Tag,
		Visible: e.SelectAttrValue("visible", ""),
		Block:   e.SelectAttrValue("block", ""),
		Content: e.Text(),
	}
}

// collectVisible returns every "visible" attribute value found anywhere in
// the page subtree (spec §4.B step 8; mirrors the original tool's
// visible_conditions(page), which walks the whole <page> element rather
// than just <body> — transitions/triggers/jumpers never carry a visible
// attribute in this schema, but walking from pageElem keeps this in lock
// step with the ground truth instead of relying on that observation).
func collectVisible(pageElem *etree.Element) []string {
	var out []string
	var walk func(e *etree.Element)
	walk = func(e *etree.Element) {
		if v := e.SelectAttrValue("visible", ""); v != "" {
			out = append(out, v)
		}
		for _, c := range e.ChildElements() {
			walk(c)
		}
	}
	walk(pageElem)
	return out
}
