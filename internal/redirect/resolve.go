// Package redirect resolves a page's action triggers into navigation
// redirects: either a literal target, or an indirect target looked up
// through an auxiliary variable's own variable-trigger assignments (spec
// §4.G).
package redirect

import (
	"strings"

	"github.com/cfrie/qrt/internal/diagnostics"
	"github.com/cfrie/qrt/internal/expr"
	"github.com/cfrie/qrt/internal/model"
)

// Resolve filters trigs to the action triggers matching onExit (defaulting
// to "true" when empty) and resolves each redirect command found among
// them, in source order. Unknown commands are silently dropped. An
// aux-variable redirect with no matching variable-trigger assignment
// anywhere on the page resolves to nothing and is reported back as an
// UnresolvedTarget warning for the caller to attach to the questionnaire.
func Resolve(trigs []model.Trigger, onExit string) ([]model.TriggerRedirect, []*diagnostics.Diagnostic) {
	if onExit == "" {
		onExit = "true"
	}

	var out []model.TriggerRedirect
	var warnings []*diagnostics.Diagnostic
	for _, t := range trigs {
		if t.Kind != model.TriggerKindAction || t.EffectiveOnExit() != onExit {
			continue
		}
		if target := expr.RedirectLiteralTarget(t.Command); target != "" {
			out = append(out, model.TriggerRedirect{
				TargetCondList: []model.TargetCond{{Target: target, Condition: t.Condition}},
				OnExit:         onExit,
				Direction:      t.Direction,
			})
			continue
		}
		if aux := expr.RedirectAuxVar(t.Command); aux != "" {
			list := auxAssignments(trigs, aux)
			if len(list) == 0 {
				warnings = append(warnings, diagnostics.Newf(diagnostics.UnresolvedTarget,
					"redirect command %q references auxiliary variable %q, which has no matching variable-trigger assignment", t.Command, aux))
				continue
			}
			out = append(out, model.TriggerRedirect{
				TargetCondList: list,
				OnExit:         onExit,
				Direction:      t.Direction,
			})
		}
	}
	return out, warnings
}

// auxAssignments collects every variable-trigger assignment to varName, in
// source order, stripping surrounding single quotes from the value.
func auxAssignments(trigs []model.Trigger, varName string) []model.TargetCond {
	var out []model.TargetCond
	for _, t := range trigs {
		if t.Kind != model.TriggerKindVariable || t.VariableName != varName {
			continue
		}
		out = append(out, model.TargetCond{
			Target:    unquote(t.Value),
			Condition: t.Condition,
		})
	}
	return out
}

func unquote(s string) string {
	return strings.Trim(s, "'")
}
