package model

import "github.com/cfrie/qrt/internal/config"

// TriggerKind distinguishes the three Trigger variants (spec §3).
type TriggerKind string

const (
	TriggerKindAction   TriggerKind = "action"
	TriggerKindVariable TriggerKind = "variable"
	TriggerKindJSCheck  TriggerKind = "jsCheck"
)

// ScriptItem is one child of an action trigger: an opaque expression,
// typically a toLoad.add/toReset.add/toPersist.put/setVariableValue call.
type ScriptItem struct {
	Value string
}

// Trigger is a tagged variant over action/variable/jsCheck triggers. All
// three share Condition/OnExit/Direction; the remaining fields are
// populated according to Kind.
type Trigger struct {
	Kind      TriggerKind
	Condition string
	OnExit    string
	Direction string

	// TriggerKindAction
	Command     string
	ScriptItems []ScriptItem

	// TriggerKindVariable
	VariableName string
	Value        string

	// TriggerKindJSCheck
	Subject string
	XVar    string
	YVar    string
}

func (t Trigger) EffectiveCondition() string {
	if t.Condition == "" {
		return config.DefaultCondition
	}
	return t.Condition
}

func (t Trigger) EffectiveOnExit() string {
	if t.OnExit == "" {
		return config.DefaultOnExit
	}
	return t.OnExit
}

func (t Trigger) EffectiveDirection() string {
	if t.Direction == "" {
		return config.DefaultDirection
	}
	return t.Direction
}

// TargetCond pairs a resolved navigation target with the condition under
// which it applies.
type TargetCond struct {
	Target    string
	Condition string
}

// TriggerRedirect is derived, not read from XML: it pairs (target, condition)
// extracted from an action trigger that calls the redirect helper, directly
// with a literal or indirectly through an auxiliary variable (spec §4.G).
type TriggerRedirect struct {
	TargetCondList []TargetCond
	OnExit         string
	Direction      string
}
