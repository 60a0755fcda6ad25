package graphbuild

import (
	"sort"
	"strings"

	"github.com/cfrie/qrt/internal/model"
)

// NodeLabel builds a page's node label: its uid followed by the sorted
// union of body_vars and triggers_vars_explicit, grouped three to a row
// (spec §4.E).
func NodeLabel(p *model.Page) string {
	names := unionSorted(p.BodyVarNames(), p.TriggersVarsExplicit)
	if len(names) == 0 {
		return p.UID
	}
	var rows []string
	for i := 0; i < len(names); i += 3 {
		end := i + 3
		if end > len(names) {
			end = len(names)
		}
		rows = append(rows, strings.Join(names[i:end], ","))
	}
	return p.UID + "\n[" + strings.Join(rows, ",\n") + "]"
}

func unionSorted(a, b []string) []string {
	set := make(map[string]bool, len(a)+len(b))
	for _, n := range a {
		set[n] = true
	}
	for _, n := range b {
		set[n] = true
	}
	out := make([]string, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
