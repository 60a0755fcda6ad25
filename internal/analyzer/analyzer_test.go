package analyzer

import (
	"reflect"
	"testing"

	"github.com/cfrie/qrt/internal/model"
)

func pageWith(uid string, transitions []model.Transition, bodyVars []model.VarRef) *model.Page {
	return &model.Page{UID: uid, Transitions: transitions, BodyVars: bodyVars}
}

// TestAnalyzeSeedScenarioS1 exercises the spec's seed scenario S1: a
// single-choice var v on page P1 transitioning unconditionally to an
// undeclared page P2.
func TestAnalyzeSeedScenarioS1(t *testing.T) {
	q := &model.Questionnaire{
		Declared: map[string]model.Variable{"v": {Name: "v", Type: model.VarTypeSingleChoiceAnswerOption}},
		Pages: []*model.Page{
			pageWith("P1", []model.Transition{{TargetUID: "P2"}},
				[]model.VarRef{{Variable: model.Variable{Name: "v", Type: model.VarTypeSingleChoiceAnswerOption}}}),
		},
	}
	result := Analyze(q)
	if !reflect.DeepEqual(result.DeadEnd.TargetsNotFound, []string{"P2"}) {
		t.Errorf("TargetsNotFound = %v, want [P2]", result.DeadEnd.TargetsNotFound)
	}
	if !reflect.DeepEqual(result.DeadEnd.LostPages, []string{"P1"}) {
		t.Errorf("LostPages = %v, want [P1]", result.DeadEnd.LostPages)
	}
	if len(result.VarsDeclaredNotUsed) != 0 {
		t.Errorf("VarsDeclaredNotUsed = %v, want none", result.VarsDeclaredNotUsed)
	}
}

// TestAnalyzeSeedScenarioS2 exercises S2: two transitions A->B, one with a
// non-false condition, one with the literal "false" — B must NOT be
// reported as only_false_conditions since not every transition to it is
// false.
func TestAnalyzeSeedScenarioS2(t *testing.T) {
	q := &model.Questionnaire{
		Declared: map[string]model.Variable{},
		Pages: []*model.Page{
			pageWith("A", []model.Transition{
				{TargetUID: "B", Condition: "b.value"},
				{TargetUID: "B", Condition: "false"},
			}, nil),
			pageWith("B", nil, nil),
		},
	}
	result := Analyze(q)
	if len(result.DeadEnd.OnlyFalseConditions) != 0 {
		t.Errorf("OnlyFalseConditions = %v, want none", result.DeadEnd.OnlyFalseConditions)
	}
}

func TestAnalyzeOnlyFalseConditionsWhenExclusivelyFalse(t *testing.T) {
	q := &model.Questionnaire{
		Declared: map[string]model.Variable{},
		Pages: []*model.Page{
			pageWith("A", []model.Transition{{TargetUID: "B", Condition: " false "}}, nil),
			pageWith("B", nil, nil),
		},
	}
	result := Analyze(q)
	if !reflect.DeepEqual(result.DeadEnd.OnlyFalseConditions, []string{"B"}) {
		t.Errorf("OnlyFalseConditions = %v, want [B]", result.DeadEnd.OnlyFalseConditions)
	}
}

// TestAnalyzeSeedScenarioS5 exercises S5: a variable declared boolean but
// used only inside a matrix single-choice (inferred singleChoiceAnswerOption).
func TestAnalyzeSeedScenarioS5(t *testing.T) {
	q := &model.Questionnaire{
		Declared: map[string]model.Variable{"foo": {Name: "foo", Type: model.VarTypeBoolean}},
		Pages: []*model.Page{
			pageWith("P1", nil, []model.VarRef{
				{Variable: model.Variable{Name: "foo", Type: model.VarTypeSingleChoiceAnswerOption}},
			}),
		},
	}
	result := Analyze(q)
	found := false
	for _, inc := range result.VarsDeclaredUsedInconsistent {
		if inc.Name == "foo" && inc.DeclaredType == model.VarTypeBoolean && inc.InferredType == model.VarTypeSingleChoiceAnswerOption {
			found = true
		}
	}
	if !found {
		t.Errorf("VarsDeclaredUsedInconsistent = %+v, want foo entry", result.VarsDeclaredUsedInconsistent)
	}
	for _, n := range result.VarsDeclaredNotUsed {
		if n == "foo" {
			t.Error("foo present in VarsDeclaredNotUsed, want absent")
		}
	}
	for _, n := range result.VarsUsedNotDeclared {
		if n == "foo" {
			t.Error("foo present in VarsUsedNotDeclared, want absent")
		}
	}
}

// TestAnalyzeDeclaredNotUsedAndUsedNotDeclaredAreDisjoint checks the
// property that a variable name can never appear in both
// VarsDeclaredNotUsed and VarsUsedNotDeclared simultaneously: the two sets
// partition names by which side of declared/used they're missing from, so
// a name present on both sides would mean it's simultaneously used and
// unused.
func TestAnalyzeDeclaredNotUsedAndUsedNotDeclaredAreDisjoint(t *testing.T) {
	q := &model.Questionnaire{
		Declared: map[string]model.Variable{
			"onlyDeclared": {Name: "onlyDeclared", Type: model.VarTypeString},
			"both":         {Name: "both", Type: model.VarTypeString},
		},
		Pages: []*model.Page{
			pageWith("P1", nil, []model.VarRef{
				{Variable: model.Variable{Name: "both", Type: model.VarTypeString}},
				{Variable: model.Variable{Name: "onlyUsed", Type: model.VarTypeString}},
			}),
		},
	}
	result := Analyze(q)
	inNotUsed := make(map[string]bool, len(result.VarsDeclaredNotUsed))
	for _, n := range result.VarsDeclaredNotUsed {
		inNotUsed[n] = true
	}
	for _, n := range result.VarsUsedNotDeclared {
		if inNotUsed[n] {
			t.Errorf("%q present in both VarsDeclaredNotUsed and VarsUsedNotDeclared", n)
		}
	}
	if !reflect.DeepEqual(result.VarsDeclaredNotUsed, []string{"onlyDeclared"}) {
		t.Errorf("VarsDeclaredNotUsed = %v, want [onlyDeclared]", result.VarsDeclaredNotUsed)
	}
	if !reflect.DeepEqual(result.VarsUsedNotDeclared, []string{"onlyUsed"}) {
		t.Errorf("VarsUsedNotDeclared = %v, want [onlyUsed]", result.VarsUsedNotDeclared)
	}
}

func TestAnalyzeVarsUsedNotDeclared(t *testing.T) {
	q := &model.Questionnaire{
		Declared: map[string]model.Variable{},
		Pages: []*model.Page{
			pageWith("P1", nil, []model.VarRef{{Variable: model.Variable{Name: "ghost", Type: model.VarTypeString}}}),
		},
	}
	result := Analyze(q)
	if !reflect.DeepEqual(result.VarsUsedNotDeclared, []string{"ghost"}) {
		t.Errorf("VarsUsedNotDeclared = %v, want [ghost]", result.VarsUsedNotDeclared)
	}
}
