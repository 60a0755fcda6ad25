// Package model is the typed representation of a loaded questionnaire:
// pages, questions, response domains, variables, transitions and triggers.
// Entities are built once by the XML reader and are immutable afterward
// except for Questionnaire.Warnings and the masked page view (Filter,
// CollapsePages, RemoveTransitions).
package model

// Variable type names, as inferred from the enclosing question element or
// declared in the variables block.
const (
	VarTypeSingleChoiceAnswerOption = "singleChoiceAnswerOption"
	VarTypeBoolean                  = "boolean"
	VarTypeString                   = "string"
	VarTypeNumber                   = "number"
)

// Variable is a declared or inferred binding. Two Variables with equal Name
// must have equal Type; a later discovery of a different Type for the same
// Name is a typed warning, never a silent overwrite (see analyzer).
type Variable struct {
	Name string
	Type string
}

// VarRef points to a Variable from a specific place in the body, carrying
// the "condition" attribute values encountered while walking from the
// reference up to and including its enclosing question element
// (inner-to-outer order). "visible" attributes are not collected here.
type VarRef struct {
	Variable  Variable
	Condition []string
}
