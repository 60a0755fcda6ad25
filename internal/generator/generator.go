// Package generator builds well-formed questionnaire XML fragments from
// model values — the reader's inverse (spec §4.F). Like the reader, it is
// built on beevik/etree; uids omitted by the caller are minted with
// google/uuid, mirroring the source tool's "manufacture a uid when the
// caller didn't supply one" behavior (see SPEC_FULL.md §4.F, DESIGN.md).
package generator

import (
	"github.com/beevik/etree"
	"github.com/google/uuid"

	"github.com/cfrie/qrt/internal/model"
)

// ensureUID returns uid unchanged if non-empty, otherwise a freshly minted
// random uid.
func ensureUID(uid_ string) string {
	if uid_ != "" {
		return uid_
	}
	return uuid.NewString()
}

// Fragment serializes e as a standalone XML fragment, with its xmlns
// attribute stripped from the top element (spec §4.F: "the top element
// omits the xmlns attribute; default namespace is implicit to the
// containing document").
func Fragment(e *etree.Element) (string, error) {
	e.RemoveAttr("xmlns")
	doc := etree.NewDocument()
	doc.SetRoot(e.Copy())
	doc.Indent(2)
	return doc.WriteToString()
}

// Question dispatches a model.Question to its shape-specific builder and
// returns the constructed <questionFoo> element (spec §4.F). A matrix
// question whose items do not share an identical answer-option list is
// rejected rather than silently built (spec §4.F / seed scenario S4).
func Question(q model.Question) (*etree.Element, error) {
	e := etree.NewElement(string(q.Kind))
	e.CreateAttr("uid", ensureUID(q.UID))
	if q.Visible != "" {
		e.CreateAttr("visible", q.Visible)
	}
	writeHeaders(e, q.Headers)

	switch q.Kind {
	case model.QuestionOpen, model.QuestionEpisodes, model.QuestionEpisodesTable:
		writeQuestionOpen(e, q)
	case model.QuestionSingleChoice, model.QuestionMultipleChoice:
		writeChoiceQuestion(e, q)
	case model.QuestionMatrixSingleChoice, model.QuestionMatrixMultipleChoice:
		if err := writeMatrixChoiceQuestion(e, q); err != nil {
			return nil, err
		}
	case model.QuestionMatrixOpen:
		writeMatrixOpenQuestion(e, q)
	}
	return e, nil
}

func writeHeaders(parent *etree.Element, headers []model.Header) {
	for _, h := range headers {
		he := parent.CreateElement(headerTag(h.Kind))
		he.CreateAttr("uid", ensureUID(h.UID))
		if h.Visible != "" {
			he.CreateAttr("visible", h.Visible)
		}
		if h.Block != "" {
			he.CreateAttr("block", h.Block)
		}
		he.SetText(Escape(h.Content))
	}
}

func headerTag(kind string) string {
	if kind == "" {
		return model.HeaderText
	}
	return kind
}

func writeQuestionOpen(e *etree.Element, q model.Question) {
	rd := e.CreateElement("responseDomain")
	rd.CreateAttr("uid", ensureUID(""))
	if q.VarRef != nil {
		rd.CreateAttr("variable", q.VarRef.Variable.Name)
	}
	if q.Size != "" {
		rd.CreateAttr("size", q.Size)
	}
	if q.SmallOption {
		rd.CreateAttr("smallOption", "true")
	}
	writeLabelWrapper(e, "prefix", q.Prefix)
	writeLabelWrapper(e, "postfix", q.Postfix)
}

func writeLabelWrapper(parent *etree.Element, tag string, labels []model.Label) {
	if len(labels) == 0 {
		return
	}
	wrapper := parent.CreateElement(tag)
	for _, l := range labels {
		le := wrapper.CreateElement("label")
		le.CreateAttr("uid", ensureUID(l.UID))
		if l.Visible != "" {
			le.CreateAttr("visible", l.Visible)
		}
		le.SetText(Escape(l.Content))
	}
}
