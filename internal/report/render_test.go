package report

import (
	"strings"
	"testing"
)

func TestRenderTextScalar(t *testing.T) {
	out := RenderText([]Section{Scalar("Total pages", "", "12")})
	if !strings.Contains(out, "== Total pages ==") || !strings.Contains(out, "12") {
		t.Errorf("RenderText scalar output = %q", out)
	}
}

func TestRenderTextListEmpty(t *testing.T) {
	out := RenderText([]Section{List("Dead-end pages", "", nil)})
	if !strings.Contains(out, "(none)") {
		t.Errorf("RenderText empty list = %q, want (none)", out)
	}
}

func TestRenderTextList(t *testing.T) {
	out := RenderText([]Section{List("Undeclared vars", "", []string{"x", "y"})})
	if !strings.Contains(out, "- x\n") || !strings.Contains(out, "- y\n") {
		t.Errorf("RenderText list output = %q", out)
	}
}

func TestRenderTextTable(t *testing.T) {
	out := RenderText([]Section{Table("Variables", "", []string{"name", "type"}, [][]string{{"age", "string"}})})
	if !strings.Contains(out, "name") || !strings.Contains(out, "age") {
		t.Errorf("RenderText table output = %q", out)
	}
}

func TestRenderTextCode(t *testing.T) {
	out := RenderText([]Section{Code("Graph", "", "digraph G {}")})
	if !strings.Contains(out, "digraph G {}") {
		t.Errorf("RenderText code output = %q", out)
	}
}
