package generator

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/cfrie/qrt/internal/model"
)

// writeChoiceQuestion builds the responseDomain/answerOption tree for a
// plain (non-matrix) single- or multiple-choice question, including each
// AO's optional variable/exclusive/attachedOpen (spec §4.F).
func writeChoiceQuestion(e *etree.Element, q model.Question) {
	if q.ResponseDomain == nil {
		return
	}
	rd := e.CreateElement("responseDomain")
	rd.CreateAttr("uid", ensureUID(q.ResponseDomain.UID))
	if q.ResponseDomain.Subtype != "" {
		rd.CreateAttr("subtype", q.ResponseDomain.Subtype)
	}
	if q.ResponseDomain.VarRef != nil {
		rd.CreateAttr("variable", q.ResponseDomain.VarRef.Variable.Name)
	}
	for _, ao := range q.ResponseDomain.Options {
		writeAnswerOption(rd, ao)
	}
}

func writeAnswerOption(parent *etree.Element, ao model.AnswerOption) {
	ae := parent.CreateElement("answerOption")
	ae.CreateAttr("uid", ensureUID(ao.UID))
	if ao.Label != "" {
		ae.CreateAttr("label", Escape(ao.Label))
	}
	if ao.Visible != "" {
		ae.CreateAttr("visible", ao.Visible)
	}
	if ao.Missing {
		ae.CreateAttr("missing", "true")
	}
	switch ao.Kind {
	case model.AnswerOptionSingle:
		if ao.Value != "" {
			ae.CreateAttr("value", ao.Value)
		}
	case model.AnswerOptionMultiple:
		if ao.VarRef != nil {
			ae.CreateAttr("variable", ao.VarRef.Variable.Name)
		}
		if ao.Exclusive {
			ae.CreateAttr("exclusive", "true")
		}
	}
	for _, att := range ao.AttachedOpen {
		writeAttachedOpen(ae, att)
	}
}

func writeAttachedOpen(parent *etree.Element, att model.AttachedOpen) {
	e := parent.CreateElement("attachedOpen")
	e.CreateAttr("uid", ensureUID(att.UID))
	if att.Visible != "" {
		e.CreateAttr("visible", att.Visible)
	}
	rd := e.CreateElement("responseDomain")
	rd.CreateAttr("uid", ensureUID(""))
	rd.CreateAttr("variable", att.VarRef.Variable.Name)
}

// writeMatrixChoiceQuestion emits a matrix single/multiple-choice question:
// one <item> per row, each with a private responseDomain sharing an
// identical answerOption list (verified with model.OptionsEqual at the top
// of this function, mirroring the reader's own check), plus the matrix's own
// column headers split into title and missing-title groups (spec §4.F).
func writeMatrixChoiceQuestion(e *etree.Element, q model.Question) error {
	if q.ResponseDomain == nil {
		return nil
	}
	items := q.ResponseDomain.Items
	for i := 1; i < len(items); i++ {
		if !model.OptionsEqual(items[0].ResponseDomain.Options, items[i].ResponseDomain.Options) {
			return fmt.Errorf("generator: matrix item %q does not share an identical answer-option list with item %q",
				items[i].UID, items[0].UID)
		}
	}

	rd := e.CreateElement("responseDomain")
	rd.CreateAttr("uid", ensureUID(q.ResponseDomain.UID))

	if len(items) > 0 {
		titled, missingTitled := ColumnHeaders(items[0].ResponseDomain.Options)
		writeHeaders(rd, titled)
		writeHeaders(rd, missingTitled)
	}

	for _, it := range items {
		ie := rd.CreateElement("item")
		ie.CreateAttr("uid", ensureUID(it.UID))
		if it.Visible != "" {
			ie.CreateAttr("visible", it.Visible)
		}
		writeHeaders(ie, it.Headers)
		irs := ie.CreateElement("responseDomain")
		irs.CreateAttr("uid", ensureUID(it.ResponseDomain.UID))
		for _, ao := range it.ResponseDomain.Options {
			writeAnswerOption(irs, ao)
		}
		for _, att := range it.AttachedOpen {
			writeAttachedOpen(ie, att)
		}
	}
	return nil
}

func writeMatrixOpenQuestion(e *etree.Element, q model.Question) {
	if q.ResponseDomain == nil {
		return
	}
	rd := e.CreateElement("responseDomain")
	rd.CreateAttr("uid", ensureUID(q.ResponseDomain.UID))
	for _, it := range q.ResponseDomain.Items {
		ie := rd.CreateElement("item")
		ie.CreateAttr("uid", ensureUID(it.UID))
		if it.Visible != "" {
			ie.CreateAttr("visible", it.Visible)
		}
		writeHeaders(ie, it.Headers)
		irs := ie.CreateElement("responseDomain")
		irs.CreateAttr("uid", ensureUID(it.ResponseDomain.UID))
		if it.ResponseDomain.VarRef != nil {
			irs.CreateAttr("variable", it.ResponseDomain.VarRef.Variable.Name)
		}
	}
}

// ColumnHeaders splits a shared answer-option list into the matrix's
// regular column title headers and its missing-title headers — options
// flagged Missing get their own header group rather than a mainline title
// (spec §4.F: "split of AOs into title headers and missing-title
// headers").
func ColumnHeaders(options []model.AnswerOption) (titled, missingTitled []model.Header) {
	for _, ao := range options {
		h := model.Header{UID: ao.UID, Kind: model.HeaderTitle, Content: ao.Label}
		if ao.Missing {
			h.Block = "missing"
			missingTitled = append(missingTitled, h)
		} else {
			titled = append(titled, h)
		}
	}
	return titled, missingTitled
}
