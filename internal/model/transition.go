package model

import "github.com/cfrie/qrt/internal/config"

// Transition is a conditional outgoing edge to another page. An empty
// Condition means "unconditional"; EffectiveCondition reports the spec's
// default of the literal "true" for callers that need the defaulted text
// rather than the absence.
type Transition struct {
	TargetUID string
	Condition string
}

func (t Transition) EffectiveCondition() string {
	if t.Condition == "" {
		return config.DefaultCondition
	}
	return t.Condition
}

// Jumper is a value-driven forward edge, typically used for embedded loops
// over an episode list. Target never carries a leading '/': the reader
// strips it exactly once on construction.
type Jumper struct {
	Value  string
	Target string
}
