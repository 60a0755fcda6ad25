package generator

import (
	"strings"
	"testing"

	"github.com/cfrie/qrt/internal/model"
)

func TestQuestionOpenFragment(t *testing.T) {
	q := model.Question{
		Kind:    model.QuestionOpen,
		UID:     "q1",
		Headers: []model.Header{{UID: "h1", Kind: model.HeaderTitle, Content: "Age?"}},
		VarRef:  &model.VarRef{Variable: model.Variable{Name: "age", Type: model.VarTypeString}},
	}
	e, err := Question(q)
	if err != nil {
		t.Fatalf("Question: %v", err)
	}
	frag, err := Fragment(e)
	if err != nil {
		t.Fatalf("Fragment: %v", err)
	}
	if !strings.Contains(frag, `uid="q1"`) || !strings.Contains(frag, `variable="age"`) {
		t.Errorf("fragment = %s, want uid/variable attrs", frag)
	}
	if strings.Contains(frag, "xmlns") {
		t.Errorf("fragment = %s, want no xmlns on top element", frag)
	}
}

func TestQuestionMultipleChoiceAnswerOptions(t *testing.T) {
	q := model.Question{
		Kind: model.QuestionMultipleChoice,
		UID:  "q2",
		ResponseDomain: &model.ResponseDomain{
			Kind: model.ResponseDomainMultipleChoice,
			UID:  "rd1",
			Options: []model.AnswerOption{
				{Kind: model.AnswerOptionMultiple, UID: "ao1", Label: "Yes", VarRef: &model.VarRef{Variable: model.Variable{Name: "v1", Type: model.VarTypeBoolean}}, Exclusive: true},
			},
		},
	}
	e, err := Question(q)
	if err != nil {
		t.Fatalf("Question: %v", err)
	}
	frag, _ := Fragment(e)
	if !strings.Contains(frag, `variable="v1"`) || !strings.Contains(frag, `exclusive="true"`) {
		t.Errorf("fragment = %s, want variable+exclusive attrs", frag)
	}
}

// TestMatrixAnswerOptionMismatchFails is seed scenario S4: a matrix
// single-choice whose three items share AOs {1,2,3} but one is corrupted
// to {1,2} must be rejected, not silently generated.
func TestMatrixAnswerOptionMismatchFails(t *testing.T) {
	full := []model.AnswerOption{
		{Kind: model.AnswerOptionSingle, UID: "1", Value: "1"},
		{Kind: model.AnswerOptionSingle, UID: "2", Value: "2"},
		{Kind: model.AnswerOptionSingle, UID: "3", Value: "3"},
	}
	corrupted := full[:2]
	q := model.Question{
		Kind: model.QuestionMatrixSingleChoice,
		UID:  "m1",
		ResponseDomain: &model.ResponseDomain{
			Kind: model.ResponseDomainMatrix,
			UID:  "rd1",
			Items: []model.Item{
				{UID: "i1", ResponseDomain: model.ResponseDomain{Options: full}},
				{UID: "i2", ResponseDomain: model.ResponseDomain{Options: full}},
				{UID: "i3", ResponseDomain: model.ResponseDomain{Options: corrupted}},
			},
		},
	}
	if _, err := Question(q); err == nil {
		t.Fatal("expected an error for mismatched matrix answer-option lists, got nil")
	}
}

func TestColumnHeadersSplitsMissingOptions(t *testing.T) {
	options := []model.AnswerOption{
		{UID: "1", Label: "Agree"},
		{UID: "2", Label: "Don't know", Missing: true},
	}
	titled, missingTitled := ColumnHeaders(options)
	if len(titled) != 1 || titled[0].Content != "Agree" {
		t.Errorf("titled = %+v, want one Agree header", titled)
	}
	if len(missingTitled) != 1 || missingTitled[0].Content != "Don't know" {
		t.Errorf("missingTitled = %+v, want one Don't know header", missingTitled)
	}
}

func TestEscapeUnescapeRoundTrip(t *testing.T) {
	in := `<b>Tom & Jerry's "show"</b>`
	escaped := Escape(in)
	if escaped == in {
		t.Errorf("Escape did not change %q", in)
	}
	if got := Unescape(escaped); got != in {
		t.Errorf("Unescape(Escape(%q)) = %q, want original", in, got)
	}
}
