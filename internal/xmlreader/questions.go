package xmlreader

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/cfrie/qrt/internal/diagnostics"
	"github.com/cfrie/qrt/internal/model"
)

// parseQuestion dispatches a question element by tag to its shape-specific
// builder (spec §3's question-tag set; episodes/episodesTable are read as
// opaque open-ended questions, matching their string-typed inference rule).
func parseQuestion(e *etree.Element) (model.Question, *diagnostics.Diagnostic) {
	kind := model.QuestionKind(e.Tag)
	switch kind {
	case model.QuestionOpen, model.QuestionEpisodes, model.QuestionEpisodesTable:
		return parseQuestionOpen(e, kind), nil
	case model.QuestionSingleChoice, model.QuestionMatrixSingleChoice:
		return parseChoiceQuestion(e, kind, model.AnswerOptionSingle)
	case model.QuestionMultipleChoice, model.QuestionMatrixMultipleChoice:
		return parseChoiceQuestion(e, kind, model.AnswerOptionMultiple)
	case model.QuestionMatrixOpen:
		return parseMatrixOpenQuestion(e, kind)
	default:
		return model.Question{Kind: kind, UID: e.SelectAttrValue("uid", "")}, nil
	}
}

func parseQuestionOpen(e *etree.Element, kind model.QuestionKind) model.Question {
	q := model.Question{
		Kind:    kind,
		UID:     e.SelectAttrValue("uid", ""),
		Visible: e.SelectAttrValue("visible", ""),
		Headers: directHeaders(e),
	}
	if rd := e.FindElement("./responseDomain"); rd != nil {
		if name := rd.SelectAttrValue("variable", ""); name != "" {
			q.VarRef = &model.VarRef{Variable: model.Variable{Name: name, Type: model.VarTypeString}}
		}
		q.Size = rd.SelectAttrValue("size", "")
		q.SmallOption = rd.SelectAttrValue("smallOption", "") == "true"
	}
	q.Prefix = readLabels(e, "prefix")
	q.Postfix = readLabels(e, "postfix")
	return q
}

func parseChoiceQuestion(e *etree.Element, kind model.QuestionKind, aoKind model.AnswerOptionKind) (model.Question, *diagnostics.Diagnostic) {
	q := model.Question{
		Kind:    kind,
		UID:     e.SelectAttrValue("uid", ""),
		Visible: e.SelectAttrValue("visible", ""),
		Headers: directHeaders(e),
	}
	isMatrix := kind == model.QuestionMatrixSingleChoice || kind == model.QuestionMatrixMultipleChoice
	if isMatrix {
		items, fatal := readItems(e, aoKind)
		if fatal != nil {
			return model.Question{}, fatal
		}
		q.ResponseDomain = &model.ResponseDomain{
			Kind:  model.ResponseDomainMatrix,
			UID:   e.SelectAttrValue("uid", ""),
			Items: items,
		}
		if len(items) > 0 && !model.UniqueItemUIDs(items) {
			return model.Question{}, diagnostics.New(diagnostics.MissingAttribute, "matrix response domain has duplicate item uids")
		}
		var ref []model.AnswerOption
		for i, it := range items {
			if i == 0 {
				ref = it.ResponseDomain.Options
				continue
			}
			if !model.OptionsEqual(ref, it.ResponseDomain.Options) {
				return model.Question{}, diagnostics.New(diagnostics.MissingAttribute, "matrix items do not share an identical answer-option list")
			}
		}
		return q, nil
	}

	rd := e.FindElement("./responseDomain")
	if rd == nil {
		q.ResponseDomain = &model.ResponseDomain{Kind: singleOrMultiple(aoKind), UID: q.UID}
		return q, nil
	}
	options, fatal := readAnswerOptions(rd, aoKind)
	if fatal != nil {
		return model.Question{}, fatal
	}
	q.ResponseDomain = &model.ResponseDomain{
		Kind:    singleOrMultiple(aoKind),
		UID:     rd.SelectAttrValue("uid", ""),
		Subtype: normalizeSubtype(rd.SelectAttrValue("subtype", "")),
		Options: options,
	}
	if aoKind == model.AnswerOptionSingle {
		if name := rd.SelectAttrValue("variable", ""); name != "" {
			q.ResponseDomain.VarRef = &model.VarRef{Variable: model.Variable{Name: name, Type: model.VarTypeSingleChoiceAnswerOption}}
		}
	}
	return q, nil
}

func parseMatrixOpenQuestion(e *etree.Element, kind model.QuestionKind) (model.Question, *diagnostics.Diagnostic) {
	q := model.Question{
		Kind:    kind,
		UID:     e.SelectAttrValue("uid", ""),
		Visible: e.SelectAttrValue("visible", ""),
		Headers: directHeaders(e),
	}
	var items []model.Item
	for _, ie := range e.FindElements("./item") {
		item := model.Item{
			UID:     ie.SelectAttrValue("uid", ""),
			Visible: ie.SelectAttrValue("visible", ""),
			Headers: directHeaders(ie),
		}
		if rd := ie.FindElement("./responseDomain"); rd != nil {
			item.ResponseDomain = model.ResponseDomain{
				Kind: model.ResponseDomainSingleChoice,
				UID:  rd.SelectAttrValue("uid", ""),
			}
			if name := rd.SelectAttrValue("variable", ""); name != "" {
				item.ResponseDomain.VarRef = &model.VarRef{Variable: model.Variable{Name: name, Type: model.VarTypeString}}
			}
		}
		items = append(items, item)
	}
	if !model.UniqueItemUIDs(items) {
		return model.Question{}, diagnostics.New(diagnostics.MissingAttribute, "matrix open question has duplicate item uids")
	}
	q.ResponseDomain = &model.ResponseDomain{Kind: model.ResponseDomainMatrix, UID: q.UID, Items: items}
	return q, nil
}

// normalizeSubtype accepts the dropdown subtype case-insensitively and
// canonicalizes it to model.SingleChoiceDropdownSubtype (DESIGN.md Open
// Question 1); any other subtype passes through unchanged.
func normalizeSubtype(subtype string) string {
	if strings.EqualFold(subtype, model.SingleChoiceDropdownSubtype) {
		return model.SingleChoiceDropdownSubtype
	}
	return subtype
}

func singleOrMultiple(k model.AnswerOptionKind) model.ResponseDomainKind {
	if k == model.AnswerOptionSingle {
		return model.ResponseDomainSingleChoice
	}
	return model.ResponseDomainMultipleChoice
}

func readItems(e *etree.Element, aoKind model.AnswerOptionKind) ([]model.Item, *diagnostics.Diagnostic) {
	var out []model.Item
	for _, ie := range e.FindElements("./item") {
		item := model.Item{
			UID:     ie.SelectAttrValue("uid", ""),
			Visible: ie.SelectAttrValue("visible", ""),
			Headers: directHeaders(ie),
		}
		if rd := ie.FindElement("./responseDomain"); rd != nil {
			options, fatal := readAnswerOptions(rd, aoKind)
			if fatal != nil {
				return nil, fatal
			}
			item.ResponseDomain = model.ResponseDomain{
				Kind:    singleOrMultiple(aoKind),
				UID:     rd.SelectAttrValue("uid", ""),
				Options: options,
			}
		}
		item.AttachedOpen = readAttachedOpens(ie)
		out = append(out, item)
	}
	return out, nil
}

func readAnswerOptions(rd *etree.Element, kind model.AnswerOptionKind) ([]model.AnswerOption, *diagnostics.Diagnostic) {
	var out []model.AnswerOption
	for _, ae := range rd.FindElements("./answerOption") {
		ao := model.AnswerOption{
			Kind:         kind,
			UID:          ae.SelectAttrValue("uid", ""),
			Label:        ae.SelectAttrValue("label", ""),
			Visible:      ae.SelectAttrValue("visible", ""),
			Missing:      ae.SelectAttrValue("missing", "") == "true",
			AttachedOpen: readAttachedOpens(ae),
		}
		if kind == model.AnswerOptionSingle {
			ao.Value = ae.SelectAttrValue("value", "")
		} else {
			if name := ae.SelectAttrValue("variable", ""); name != "" {
				ao.VarRef = &model.VarRef{Variable: model.Variable{Name: name, Type: model.VarTypeBoolean}}
			}
			ao.Exclusive = ae.SelectAttrValue("exclusive", "") == "true"
		}
		out = append(out, ao)
	}
	if !model.UniqueAnswerOptionUIDs(out) {
		return nil, diagnostics.New(diagnostics.MissingAttribute, "response domain has duplicate answer-option uids")
	}
	return out, nil
}

func readAttachedOpens(e *etree.Element) []model.AttachedOpen {
	var out []model.AttachedOpen
	for _, ao := range e.FindElements("./attachedOpen") {
		item := model.AttachedOpen{
			UID:     ao.SelectAttrValue("uid", ""),
			Visible: ao.SelectAttrValue("visible", ""),
		}
		if rd := ao.FindElement("./responseDomain"); rd != nil {
			if name := rd.SelectAttrValue("variable", ""); name != "" {
				item.VarRef = model.VarRef{Variable: model.Variable{Name: name, Type: model.VarTypeString}}
			}
		}
		out = append(out, item)
	}
	return out
}

func readLabels(parent *etree.Element, wrapperTag string) []model.Label {
	wrapper := parent.FindElement("./" + wrapperTag)
	if wrapper == nil {
		return nil
	}
	var out []model.Label
	for _, le := range wrapper.FindElements("./label") {
		out = append(out, model.Label{
			UID:     le.SelectAttrValue("uid", ""),
			Visible: le.SelectAttrValue("visible", ""),
			Content: le.Text(),
		})
	}
	return out
}

// directHeaders collects the header-leaf-tag direct children of e (used
// for a question's own title/text/introduction/instruction, as distinct
// from the page-level header walk).
func directHeaders(e *etree.Element) []model.Header {
	var out []model.Header
	for _, c := range e.ChildElements() {
		if isHeaderTag(c.Tag) {
			out = append(out, readHeader(c))
		}
	}
	return out
}
