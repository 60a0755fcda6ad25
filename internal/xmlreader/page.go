package xmlreader

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/cfrie/qrt/internal/diagnostics"
	"github.com/cfrie/qrt/internal/model"
	"github.com/cfrie/qrt/internal/redirect"
)

// readPage builds a *model.Page from a <page> element. A non-nil returned
// fatal diagnostic (missing target, inconsistent question variable use)
// aborts the whole document load, per spec §4.B. The returned warnings are
// non-fatal findings (unknown trigger tags, unresolved aux-var redirects)
// for the caller to attach to the questionnaire.
func readPage(pageElem *etree.Element) (*model.Page, []*diagnostics.Diagnostic, *diagnostics.Diagnostic) {
	uid := pageElem.SelectAttrValue("uid", "")
	page := &model.Page{UID: uid}
	var warnings []*diagnostics.Diagnostic

	transitions, fatal := readTransitions(pageElem)
	if fatal != nil {
		return nil, nil, fatal.WithPage(uid)
	}
	page.Transitions = transitions
	page.Jumpers = readJumpers(pageElem)
	triggers, triggerWarnings := readTriggers(pageElem)
	page.Triggers = triggers
	warnings = append(warnings, triggerWarnings...)

	if body := pageElem.FindElement("./body"); body != nil {
		headers, questions, fatal := walkBody(body)
		if fatal != nil {
			return nil, nil, fatal.WithPage(uid)
		}
		page.Headers = headers
		page.Questions = questions

		bodyVars, bodyQuestions, fatal := walkBodyAggregates(body)
		if fatal != nil {
			return nil, nil, fatal.WithPage(uid)
		}
		page.BodyVars = bodyVars
		page.BodyQuestionKinds = bodyQuestions
	}
	page.VisibleConditions = collectVisible(pageElem)

	page.TriggersVarsExplicit = explicitTriggerVars(page.Triggers)
	page.TriggersVarsImplicit = implicitTriggerVars(page.Triggers)
	page.TriggersJSONSave = scriptItemVars(page.Triggers, "true", toPersistKind)
	page.TriggersJSONLoad = scriptItemVars(page.Triggers, "false", toLoadKind)
	page.TriggersJSONReset = scriptItemVars(page.Triggers, "false", toResetKind)

	redirectsTrue, warnTrue := redirect.Resolve(page.Triggers, "true")
	redirectsFalse, warnFalse := redirect.Resolve(page.Triggers, "false")
	page.TrigRedirectOnExitTrue = redirectsTrue
	page.TrigRedirectOnExitFalse = redirectsFalse
	warnings = append(warnings, warnTrue...)
	warnings = append(warnings, warnFalse...)

	for i, w := range warnings {
		warnings[i] = w.WithPage(uid)
	}

	return page, warnings, nil
}

// readTransitions reads the direct transition children of a page's
// <transitions> element. A missing target attribute is fatal (spec §4.B
// step 2).
func readTransitions(pageElem *etree.Element) ([]model.Transition, *diagnostics.Diagnostic) {
	container := pageElem.FindElement("./transitions")
	if container == nil {
		return nil, nil
	}
	var out []model.Transition
	for _, te := range container.ChildElements() {
		if te.Tag != "transition" {
			continue
		}
		target := te.SelectAttrValue("target", "")
		if target == "" {
			return nil, diagnostics.New(diagnostics.MissingAttribute, "transition is missing required attribute 'target'")
		}
		out = append(out, model.Transition{
			TargetUID: target,
			Condition: te.SelectAttrValue("condition", ""),
		})
	}
	return out, nil
}

// readJumpers finds every <jumper> descendant; a leading '/' is trimmed
// from target exactly once (spec §4.B step 3).
func readJumpers(pageElem *etree.Element) []model.Jumper {
	var out []model.Jumper
	for _, je := range pageElem.FindElements(".//jumper") {
		target := je.SelectAttrValue("target", "")
		target = strings.TrimPrefix(target, "/")
		out = append(out, model.Jumper{
			Value:  je.SelectAttrValue("value", ""),
			Target: target,
		})
	}
	return out
}

// readTriggers dispatches the direct children of <triggers> by tag;
// unknown tags are tolerated, skipped, and reported back as
// UnknownTriggerTag warnings (spec §4.B step 4).
func readTriggers(pageElem *etree.Element) ([]model.Trigger, []*diagnostics.Diagnostic) {
	container := pageElem.FindElement("./triggers")
	if container == nil {
		return nil, nil
	}
	var out []model.Trigger
	var warnings []*diagnostics.Diagnostic
	for _, te := range container.ChildElements() {
		switch te.Tag {
		case "action":
			t := model.Trigger{
				Kind:      model.TriggerKindAction,
				Condition: te.SelectAttrValue("condition", ""),
				OnExit:    te.SelectAttrValue("onExit", ""),
				Direction: te.SelectAttrValue("direction", ""),
				Command:   te.SelectAttrValue("command", ""),
			}
			for _, si := range te.ChildElements() {
				if si.Tag == "scriptItem" {
					t.ScriptItems = append(t.ScriptItems, model.ScriptItem{Value: si.SelectAttrValue("value", "")})
				}
			}
			out = append(out, t)
		case "variable":
			out = append(out, model.Trigger{
				Kind:         model.TriggerKindVariable,
				Condition:    te.SelectAttrValue("condition", ""),
				OnExit:       te.SelectAttrValue("onExit", ""),
				Direction:    te.SelectAttrValue("direction", ""),
				VariableName: te.SelectAttrValue("variable", ""),
				Value:        te.SelectAttrValue("value", ""),
			})
		case "jsCheck":
			out = append(out, model.Trigger{
				Kind:      model.TriggerKindJSCheck,
				Condition: te.SelectAttrValue("condition", ""),
				OnExit:    te.SelectAttrValue("onExit", ""),
				Direction: te.SelectAttrValue("direction", ""),
				Subject:   te.SelectAttrValue("variable", ""),
				XVar:      te.SelectAttrValue("xvar", ""),
				YVar:      te.SelectAttrValue("yvar", ""),
			})
		default:
			warnings = append(warnings, diagnostics.Newf(diagnostics.UnknownTriggerTag,
				"unknown trigger tag %q skipped", te.Tag))
		}
	}
	return out, warnings
}

// explicitTriggerVars returns names mentioned in variable/jsCheck trigger
// attributes (spec §4.B step 7).
func explicitTriggerVars(trigs []model.Trigger) []string {
	var out []string
	for _, t := range trigs {
		switch t.Kind {
		case model.TriggerKindVariable:
			if t.VariableName != "" {
				out = append(out, t.VariableName)
			}
		case model.TriggerKindJSCheck:
			if t.Subject != "" {
				out = append(out, t.Subject)
			}
		}
	}
	return out
}
