package xmlreader

import (
	"testing"

	"github.com/beevik/etree"

	"github.com/cfrie/qrt/internal/generator"
	"github.com/cfrie/qrt/internal/model"
)

// TestGenerateThenReadRoundTripsChoiceQuestion exercises the generator/
// reader round-trip property (spec §8): a question built by generator.Question
// and serialized, then parsed back by this package's own parseQuestion,
// must reconstruct the question's kind, uid and visibility and each
// answer option's uid, label and value.
func TestGenerateThenReadRoundTripsChoiceQuestion(t *testing.T) {
	original := model.Question{
		Kind:    model.QuestionSingleChoice,
		UID:     "q1",
		Visible: "true",
		ResponseDomain: &model.ResponseDomain{
			Kind: model.ResponseDomainSingleChoice,
			UID:  "rd1",
			Options: []model.AnswerOption{
				{Kind: model.AnswerOptionSingle, UID: "ao1", Label: "One", Value: "1"},
				{Kind: model.AnswerOptionSingle, UID: "ao2", Label: "Two", Value: "2"},
			},
		},
	}

	e, err := generator.Question(original)
	if err != nil {
		t.Fatalf("generator.Question() error = %v", err)
	}
	xmlText, err := generator.Fragment(e)
	if err != nil {
		t.Fatalf("generator.Fragment() error = %v", err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(xmlText); err != nil {
		t.Fatalf("re-parsing generated fragment: %v", err)
	}

	got, fatal := parseQuestion(doc.Root())
	if fatal != nil {
		t.Fatalf("parseQuestion() error = %v", fatal)
	}

	if got.Kind != original.Kind || got.UID != original.UID || got.Visible != original.Visible {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, original)
	}
	if got.ResponseDomain == nil || len(got.ResponseDomain.Options) != 2 {
		t.Fatalf("ResponseDomain = %+v, want 2 options", got.ResponseDomain)
	}
	for i, wantAO := range original.ResponseDomain.Options {
		gotAO := got.ResponseDomain.Options[i]
		if gotAO.UID != wantAO.UID || gotAO.Label != wantAO.Label || gotAO.Value != wantAO.Value {
			t.Errorf("Options[%d] = %+v, want %+v", i, gotAO, wantAO)
		}
	}
}
