package model

// BodyQuestionEntry records one question shape encountered while walking a
// page body, in source order. Nested open questions inside another
// question (attached opens) are recorded with IsAttachedOpen set, rather
// than as a fresh top-level QuestionOpen (spec §4.B step 6).
type BodyQuestionEntry struct {
	Kind           QuestionKind
	UID            string
	IsAttachedOpen bool
}

// Page is a self-contained unit of the questionnaire: a body of headers and
// questions, outgoing transitions, optional jumpers, and triggers, plus the
// derived aggregates the reader computes while walking the body (spec §3,
// §4.B steps 5–8).
type Page struct {
	UID string

	// Source order, as read.
	Headers     []Header
	Questions   []Question
	Transitions []Transition
	Jumpers     []Jumper
	Triggers    []Trigger

	// Derived aggregates (§4.B steps 5–8).
	BodyVars          []VarRef           // vars_used
	BodyQuestionKinds []BodyQuestionEntry // body_questions_vars, encounter order
	TriggersVarsExplicit  []string
	TriggersVarsImplicit  []string
	TriggersJSONSave      []string
	TriggersJSONLoad      []string
	TriggersJSONReset     []string
	VisibleConditions     []string
	TrigRedirectOnExitTrue  []TriggerRedirect
	TrigRedirectOnExitFalse []TriggerRedirect
}

// BodyVarNames returns the set of variable names referenced in the page
// body, in first-seen order — the "union of body_vars" half of the node-
// label variable set (spec §4.E).
func (p *Page) BodyVarNames() []string {
	seen := make(map[string]bool, len(p.BodyVars))
	var out []string
	for _, vr := range p.BodyVars {
		if !seen[vr.Variable.Name] {
			seen[vr.Variable.Name] = true
			out = append(out, vr.Variable.Name)
		}
	}
	return out
}
