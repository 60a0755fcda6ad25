package analyzer

import (
	"sort"

	"github.com/cfrie/qrt/internal/report"
)

// Sections renders Result into the fixed-order, tagged report sections
// spec §4.D's output list describes (spec §4.J: "in the fixed order
// spec.md §4.D lists them").
func (r Result) Sections() []report.Section {
	return []report.Section{
		report.Table("Declared variables", "all_vars_declared",
			[]string{"name", "type"}, mapRows(r.AllVarsDeclared)),
		report.Table("Body variables", "all_page_body_vars",
			[]string{"name", "type"}, mapRows(r.AllPageBodyVars)),
		report.List("Declared but not used", "vars_declared_not_used", r.VarsDeclaredNotUsed),
		report.List("Used but not declared", "vars_used_not_declared", r.VarsUsedNotDeclared),
		report.Table("Declared/used type inconsistencies", "vars_declared_used_inconsistent",
			[]string{"name", "declared", "inferred"}, inconsistencyRows(r.VarsDeclaredUsedInconsistent)),
		report.List("All pages", "dead_end_pages.all_pages", r.DeadEnd.AllPages),
		report.List("Transition targets not found", "dead_end_pages.targets_not_found", r.DeadEnd.TargetsNotFound),
		report.List("Lost pages", "dead_end_pages.lost_pages", r.DeadEnd.LostPages),
		report.List("Only-false-condition pages", "dead_end_pages.only_false_conditions", r.DeadEnd.OnlyFalseConditions),
	}
}

func mapRows(m map[string]string) [][]string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name, m[name]})
	}
	return rows
}

func inconsistencyRows(incs []Inconsistency) [][]string {
	rows := make([][]string, 0, len(incs))
	for _, inc := range incs {
		rows = append(rows, []string{inc.Name, inc.DeclaredType, inc.InferredType})
	}
	return rows
}
