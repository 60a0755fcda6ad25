package xmlreader

import (
	"github.com/cfrie/qrt/internal/expr"
	"github.com/cfrie/qrt/internal/model"
)

type scriptItemKind int

const (
	toLoadKind scriptItemKind = iota
	toResetKind
	toPersistKind
)

// implicitTriggerVars returns names extracted from setVariableValue calls
// inside action-trigger script items (spec §4.B step 7,
// triggers_vars_implicit).
func implicitTriggerVars(trigs []model.Trigger) []string {
	var out []string
	for _, t := range trigs {
		if t.Kind != model.TriggerKindAction {
			continue
		}
		for _, si := range t.ScriptItems {
			out = append(out, expr.SetVariableValueVars(si.Value)...)
		}
	}
	return out
}

// scriptItemVars returns names extracted per the housekeeping calls of
// §4.A, gated by the trigger's on_exit direction matching onExit exactly
// (spec §4.B step 7: save <=> on_exit="true", load/reset <=> on_exit="false").
func scriptItemVars(trigs []model.Trigger, onExit string, kind scriptItemKind) []string {
	var out []string
	for _, t := range trigs {
		if t.Kind != model.TriggerKindAction || t.EffectiveOnExit() != onExit {
			continue
		}
		for _, si := range t.ScriptItems {
			var v string
			switch kind {
			case toLoadKind:
				v = expr.ToLoadVar(si.Value)
			case toResetKind:
				v = expr.ToResetVar(si.Value)
			case toPersistKind:
				v = expr.ToPersistVar(si.Value)
			}
			if v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}
