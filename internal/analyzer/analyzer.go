// Package analyzer computes the reconciliation and dead-end analyses spec
// §4.D describes, purely from a loaded *model.Questionnaire — no I/O, no
// mutation beyond appending warnings to the questionnaire itself.
package analyzer

import (
	"sort"
	"strings"

	"github.com/cfrie/qrt/internal/diagnostics"
	"github.com/cfrie/qrt/internal/model"
)

// Result holds every public analyzer output (spec §4.D). Maps are built
// once and never mutated; list-valued outputs are sorted for determinism.
type Result struct {
	AllVarsDeclared map[string]string
	AllPageBodyVars map[string]string

	VarsDeclaredNotUsed        []string
	VarsUsedNotDeclared        []string
	VarsDeclaredUsedInconsistent []Inconsistency

	DeadEnd DeadEndPages
}

// Inconsistency names a variable whose inferred type differs from its
// declared type, or whose inferred type varies across pages.
type Inconsistency struct {
	Name         string
	DeclaredType string
	InferredType string
}

// DeadEndPages is the transition-graph-derived sub-report (spec §4.D).
type DeadEndPages struct {
	AllPages          []string
	TargetsNotFound   []string
	LostPages         []string
	OnlyFalseConditions []string
}

// Analyze computes Result from q. It never mutates q.Pages; any warning it
// finds (first-wins type conflicts in all_page_body_vars) is appended to
// q.Warnings via q.AddWarning.
func Analyze(q *model.Questionnaire) Result {
	pages := q.ActivePages()

	allDeclared := make(map[string]string, len(q.Declared))
	for name, v := range q.Declared {
		allDeclared[name] = v.Type
	}

	bodyVars, inconsistentAcrossPages := aggregateBodyVars(pages)
	for _, inc := range inconsistentAcrossPages {
		q.AddWarning(diagnostics.Newf(diagnostics.DeclaredTypeMismatch,
			"variable %q seen with inferred type %q, first seen as %q", inc.Name, inc.InferredType, inc.DeclaredType))
	}

	return Result{
		AllVarsDeclared:             allDeclared,
		AllPageBodyVars:             bodyVars,
		VarsDeclaredNotUsed:         sortedSetDiff(keys(allDeclared), keys(bodyVars)),
		VarsUsedNotDeclared:        sortedSetDiff(keys(bodyVars), keys(allDeclared)),
		VarsDeclaredUsedInconsistent: declaredUsedInconsistent(allDeclared, bodyVars, inconsistentAcrossPages),
		DeadEnd:                    deadEndPages(pages),
	}
}

// aggregateBodyVars builds all_page_body_vars (first type wins per name)
// and returns the set of names whose inferred type varied across pages
// (reported as both a warning and a variant of vars_declared_used_inconsistent).
func aggregateBodyVars(pages []*model.Page) (map[string]string, []Inconsistency) {
	types := make(map[string]string)
	var inconsistent []Inconsistency
	seenConflict := make(map[string]bool)
	for _, p := range pages {
		for _, vr := range p.BodyVars {
			name, typ := vr.Variable.Name, vr.Variable.Type
			first, ok := types[name]
			if !ok {
				types[name] = typ
				continue
			}
			if first != typ && !seenConflict[name] {
				seenConflict[name] = true
				inconsistent = append(inconsistent, Inconsistency{Name: name, DeclaredType: first, InferredType: typ})
			}
		}
	}
	sort.Slice(inconsistent, func(i, j int) bool { return inconsistent[i].Name < inconsistent[j].Name })
	return types, inconsistent
}

// declaredUsedInconsistent merges the across-pages-varying names with names
// whose inferred type differs from their declared type.
func declaredUsedInconsistent(declared, used map[string]string, acrossPages []Inconsistency) []Inconsistency {
	byName := make(map[string]Inconsistency)
	for _, inc := range acrossPages {
		byName[inc.Name] = inc
	}
	for name, inferred := range used {
		declType, ok := declared[name]
		if !ok || declType == inferred {
			continue
		}
		if _, already := byName[name]; already {
			continue
		}
		byName[name] = Inconsistency{Name: name, DeclaredType: declType, InferredType: inferred}
	}
	out := make([]Inconsistency, 0, len(byName))
	for _, inc := range byName {
		out = append(out, inc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// deadEndPages derives the transition-graph sub-report (spec §4.D).
func deadEndPages(pages []*model.Page) DeadEndPages {
	allPages := make(map[string]bool, len(pages))
	for _, p := range pages {
		allPages[p.UID] = true
	}

	targeted := make(map[string]bool)
	allFalseSoFar := make(map[string]bool)
	var targetsNotFound []string
	seenNotFound := make(map[string]bool)

	for _, p := range pages {
		for _, t := range p.Transitions {
			if !allPages[t.TargetUID] {
				if !seenNotFound[t.TargetUID] {
					seenNotFound[t.TargetUID] = true
					targetsNotFound = append(targetsNotFound, t.TargetUID)
				}
				continue
			}
			isFalse := strings.TrimSpace(t.Condition) == "false"
			if !targeted[t.TargetUID] {
				allFalseSoFar[t.TargetUID] = isFalse
			} else {
				allFalseSoFar[t.TargetUID] = allFalseSoFar[t.TargetUID] && isFalse
			}
			targeted[t.TargetUID] = true
		}
	}

	var lostPages []string
	for uid := range allPages {
		if !targeted[uid] {
			lostPages = append(lostPages, uid)
		}
	}

	var onlyFalseList []string
	for uid, allFalse := range allFalseSoFar {
		if allFalse {
			onlyFalseList = append(onlyFalseList, uid)
		}
	}

	return DeadEndPages{
		AllPages:            sortedKeys(allPages),
		TargetsNotFound:     sortedStrings(targetsNotFound),
		LostPages:           sortedStrings(lostPages),
		OnlyFalseConditions: sortedStrings(onlyFalseList),
	}
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return sortedStrings(out)
}

func sortedStrings(s []string) []string {
	sort.Strings(s)
	return s
}

// sortedSetDiff returns the sorted set difference a \ b.
func sortedSetDiff(a, b []string) []string {
	inB := make(map[string]bool, len(b))
	for _, v := range b {
		inB[v] = true
	}
	var out []string
	for _, v := range a {
		if !inB[v] {
			out = append(out, v)
		}
	}
	return sortedStrings(out)
}
