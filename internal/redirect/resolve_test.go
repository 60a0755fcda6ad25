package redirect

import (
	"reflect"
	"testing"

	"github.com/cfrie/qrt/internal/diagnostics"
	"github.com/cfrie/qrt/internal/model"
)

func TestResolveLiteralRedirect(t *testing.T) {
	trigs := []model.Trigger{
		{Kind: model.TriggerKindAction, Command: "navigatorBean.redirect('page3')", Condition: "x == T", OnExit: "true"},
	}
	got, warnings := Resolve(trigs, "true")
	want := []model.TriggerRedirect{
		{TargetCondList: []model.TargetCond{{Target: "page3", Condition: "x == T"}}, OnExit: "true"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve literal = %+v, want %+v", got, want)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %+v, want none", warnings)
	}
}

func TestResolveIndirectRedirect(t *testing.T) {
	trigs := []model.Trigger{
		{Kind: model.TriggerKindVariable, VariableName: "targetPage", Value: "'page1'", Condition: "a == T", OnExit: "true"},
		{Kind: model.TriggerKindVariable, VariableName: "targetPage", Value: "'page2'", Condition: "b == T", OnExit: "true"},
		{Kind: model.TriggerKindAction, Command: "navigatorBean.redirect(targetPage)", Condition: "", OnExit: "true"},
	}
	got, warnings := Resolve(trigs, "true")
	if len(got) != 1 {
		t.Fatalf("Resolve indirect: got %d redirects, want 1", len(got))
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %+v, want none", warnings)
	}
	want := []model.TargetCond{
		{Target: "page1", Condition: "a == T"},
		{Target: "page2", Condition: "b == T"},
	}
	if !reflect.DeepEqual(got[0].TargetCondList, want) {
		t.Errorf("TargetCondList = %+v, want %+v", got[0].TargetCondList, want)
	}
}

func TestResolveFiltersByOnExit(t *testing.T) {
	trigs := []model.Trigger{
		{Kind: model.TriggerKindAction, Command: "navigatorBean.redirect('pageA')", OnExit: "true"},
		{Kind: model.TriggerKindAction, Command: "navigatorBean.redirect('pageB')", OnExit: "false"},
	}
	got, _ := Resolve(trigs, "false")
	if len(got) != 1 || got[0].TargetCondList[0].Target != "pageB" {
		t.Errorf("Resolve onExit=false = %+v, want single pageB redirect", got)
	}
}

func TestResolveUnknownCommandDropped(t *testing.T) {
	trigs := []model.Trigger{
		{Kind: model.TriggerKindAction, Command: "something.else()", OnExit: "true"},
	}
	if got, warnings := Resolve(trigs, "true"); got != nil || warnings != nil {
		t.Errorf("Resolve unknown command = %+v, warnings %+v, want both nil", got, warnings)
	}
}

// TestResolveUnresolvedAuxVarWarns exercises the UnresolvedTarget warning
// path: an aux-redirect command references a variable with no matching
// variable-trigger assignment anywhere on the page.
func TestResolveUnresolvedAuxVarWarns(t *testing.T) {
	trigs := []model.Trigger{
		{Kind: model.TriggerKindAction, Command: "navigatorBean.redirect(missingVar)", OnExit: "true"},
	}
	got, warnings := Resolve(trigs, "true")
	if got != nil {
		t.Errorf("Resolve = %+v, want nil redirects", got)
	}
	if len(warnings) != 1 || warnings[0].Code != diagnostics.UnresolvedTarget {
		t.Fatalf("warnings = %+v, want one UnresolvedTarget diagnostic", warnings)
	}
}
