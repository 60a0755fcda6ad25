package expr

import (
	"reflect"
	"testing"
)

func TestVarRefs(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"dot-value", "#{age.value}", []string{"age"}},
		{"valueOf", "#{zofar.valueOf(gender)}", []string{"gender"}},
		{"asNumber", "#{zofar.asNumber(income)}", []string{"income"}},
		{"mixed", "#{a.value} and #{zofar.asNumber(b)}", []string{"a", "b"}},
		{"none", "plain text", nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := VarRefs(c.in)
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("VarRefs(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestScriptItemCalls(t *testing.T) {
	if got := ToLoadVar("toLoad.add('age')"); got != "age" {
		t.Errorf("ToLoadVar = %q, want age", got)
	}
	if got := ToResetVar("toReset.add('income')"); got != "income" {
		t.Errorf("ToResetVar = %q, want income", got)
	}
	if got := ToPersistVar("toPersist.put('gender',zofar.asNumber(gender))"); got != "gender" {
		t.Errorf("ToPersistVar = %q, want gender", got)
	}
	if got := ToLoadVar("something else"); got != "" {
		t.Errorf("ToLoadVar non-match = %q, want empty", got)
	}
}

func TestSetVariableValueVars(t *testing.T) {
	got := SetVariableValueVars("zofar.setVariableValue('x', 1); zofar.setVariableValue('y', 2)")
	want := []string{"x", "y"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SetVariableValueVars = %v, want %v", got, want)
	}
}

func TestRedirectForms(t *testing.T) {
	if got := RedirectLiteralTarget("navigatorBean.redirect('page3')"); got != "page3" {
		t.Errorf("RedirectLiteralTarget = %q, want page3", got)
	}
	if got := RedirectAuxVar("navigatorBean.redirect(targetPage)"); got != "targetPage" {
		t.Errorf("RedirectAuxVar = %q, want targetPage", got)
	}
	if !IsRedirectCommand("navigatorBean.redirect('page3')") {
		t.Error("IsRedirectCommand literal form = false, want true")
	}
	if !IsRedirectCommand("navigatorBean.redirect(targetPage)") {
		t.Error("IsRedirectCommand aux form = false, want true")
	}
	if IsRedirectCommand("something.else()") {
		t.Error("IsRedirectCommand unrelated = true, want false")
	}
}

func TestUsedHelpers(t *testing.T) {
	s := "zofar.asNumber(x) ge 3 and zofar.isMissing(y) and z.value"
	got := UsedHelpers(s)
	if !reflect.DeepEqual(got["zofar.asNumber()"], []string{"x"}) {
		t.Errorf("asNumber helpers = %v", got["zofar.asNumber()"])
	}
	if !reflect.DeepEqual(got["zofar.isMissing()"], []string{"y"}) {
		t.Errorf("isMissing helpers = %v", got["zofar.isMissing()"])
	}
	if !reflect.DeepEqual(got[".value"], []string{"z"}) {
		t.Errorf(".value helpers = %v", got[".value"])
	}
}

// TestRewriteSeedScenarioS6 exercises the spec's seed scenario S6:
// "zofar.asNumber(x) ge 3 and !y.value " rewrites to the compact
// "(x>=3 and y==F )".
func TestRewriteSeedScenarioS6(t *testing.T) {
	cond := "zofar.asNumber(x) ge 3 and !y.value "
	got := Rewrite(cond)
	want := "(x>=3 and y==F )"
	if got != want {
		t.Errorf("Rewrite(%q) = %q, want %q", cond, got, want)
	}
}

func TestRewritePreservesExistingParens(t *testing.T) {
	cond := "(x.value )"
	got := Rewrite(cond)
	want := "(x==T )"
	if got != want {
		t.Errorf("Rewrite(%q) = %q, want %q", cond, got, want)
	}
}
