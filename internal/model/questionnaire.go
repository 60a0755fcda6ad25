package model

import "github.com/cfrie/qrt/internal/diagnostics"

// Questionnaire is the root of the loaded model: the declared-variable map,
// the ordered page list in document order, and the accumulated non-fatal
// warnings. The model is immutable after load except for Warnings and the
// masked page view (Filter / CollapsePages / RemoveTransitions), which
// rewrite the *active* list without touching Pages itself.
type Questionnaire struct {
	Declared map[string]Variable
	Pages    []*Page
	Warnings []*diagnostics.Diagnostic

	masked []*Page
}

// ActivePages returns the masked page list if one has been established by
// Filter/CollapsePages/RemoveTransitions, or Pages unchanged otherwise.
// Every analyzer/graph entry point reads pages through this accessor.
func (q *Questionnaire) ActivePages() []*Page {
	if q.masked != nil {
		return q.masked
	}
	return q.Pages
}

// ResetMask discards any active mask, reverting ActivePages to Pages.
func (q *Questionnaire) ResetMask() {
	q.masked = nil
}

// Filter rewrites the active page list to those for which keep returns
// true. It never mutates Pages or the Page values themselves.
func (q *Questionnaire) Filter(keep func(*Page) bool) {
	src := q.ActivePages()
	out := make([]*Page, 0, len(src))
	for _, p := range src {
		if keep(p) {
			out = append(out, p)
		}
	}
	q.masked = out
}

// CollapsePages removes pages whose uid is in drop from the active list,
// rewriting surviving pages' transitions to skip over them: each
// transition into a dropped page is replaced by that dropped page's own
// transitions (conditions concatenated with "&&"), so the remaining graph
// stays connected.
func (q *Questionnaire) CollapsePages(drop map[string]bool) {
	src := q.ActivePages()
	byUID := make(map[string]*Page, len(src))
	for _, p := range src {
		byUID[p.UID] = p
	}

	rewrite := func(transitions []Transition) []Transition {
		var out []Transition
		seen := make(map[string]bool)
		var walk func(t Transition, prefix string)
		walk = func(t Transition, prefix string) {
			if !drop[t.TargetUID] {
				cond := t.Condition
				if prefix != "" {
					if cond == "" {
						cond = prefix
					} else {
						cond = prefix + " && " + cond
					}
				}
				key := t.TargetUID + "\x00" + cond
				if !seen[key] {
					seen[key] = true
					out = append(out, Transition{TargetUID: t.TargetUID, Condition: cond})
				}
				return
			}
			next, ok := byUID[t.TargetUID]
			if !ok {
				return
			}
			nextPrefix := t.Condition
			if prefix != "" {
				if nextPrefix == "" {
					nextPrefix = prefix
				} else {
					nextPrefix = prefix + " && " + nextPrefix
				}
			}
			for _, nt := range next.Transitions {
				walk(nt, nextPrefix)
			}
		}
		for _, t := range transitions {
			walk(t, "")
		}
		return out
	}

	out := make([]*Page, 0, len(src))
	for _, p := range src {
		if drop[p.UID] {
			continue
		}
		cp := *p
		cp.Transitions = rewrite(p.Transitions)
		out = append(out, &cp)
	}
	q.masked = out
}

// RemoveTransitions rewrites the active list so that every page's
// transitions are filtered by keep.
func (q *Questionnaire) RemoveTransitions(keep func(*Page, Transition) bool) {
	src := q.ActivePages()
	out := make([]*Page, 0, len(src))
	for _, p := range src {
		cp := *p
		var kept []Transition
		for _, t := range p.Transitions {
			if keep(p, t) {
				kept = append(kept, t)
			}
		}
		cp.Transitions = kept
		out = append(out, &cp)
	}
	q.masked = out
}

// AddWarning appends a non-fatal diagnostic to the questionnaire's warning
// list. Never called for fatal diagnostics (those propagate as errors).
func (q *Questionnaire) AddWarning(d *diagnostics.Diagnostic) {
	q.Warnings = append(q.Warnings, d)
}
