// Package expr scans opaque expression-language strings for a fixed set of
// recognized forms — variable references, script-item housekeeping calls,
// the redirect helper, and numeric/missing helpers — without parsing the
// expression language itself (spec §4.A). Unknown forms are ignored; the
// scanner never fails.
package expr

import (
	"regexp"
	"sort"
)

// Variable-reference forms embedded in condition/visible/command text:
// #{VARNAME.value}, #{zofar.valueOf(VARNAME)}, #{zofar.asNumber(VARNAME)}.
var (
	reValue   = regexp.MustCompile(`#\{([a-zA-Z0-9_]+)\.value\}`)
	reValueOf = regexp.MustCompile(`#\{zofar\.valueOf\(([a-zA-Z0-9_]+)\)\}`)
	reAsNum   = regexp.MustCompile(`#\{zofar\.asNumber\(([a-zA-Z0-9_]+)\)\}`)
)

// VarRefs returns every VARNAME referenced via one of the three
// #{...} forms above, in order of appearance, duplicates included.
func VarRefs(s string) []string {
	type hit struct {
		pos  int
		name string
	}
	var hits []hit
	for _, re := range []*regexp.Regexp{reValue, reValueOf, reAsNum} {
		for _, m := range re.FindAllStringSubmatchIndex(s, -1) {
			hits = append(hits, hit{pos: m[0], name: s[m[2]:m[3]]})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })
	var out []string
	for _, h := range hits {
		out = append(out, h.name)
	}
	return out
}

// Script-item housekeeping calls: toLoad.add('VAR'), toReset.add('VAR'),
// toPersist.put('VAR', ...). Anchored at the start of the (trimmed)
// expression, matching the source tool's own patterns.
var (
	reToLoad    = regexp.MustCompile(`^\s*toLoad\.add\('([0-9a-zA-Z_]+)'\)`)
	reToReset   = regexp.MustCompile(`^\s*toReset\.add\('([0-9a-zA-Z_]+)'\)`)
	reToPersist = regexp.MustCompile(`^\s*toPersist\.put\('([0-9a-zA-Z_]+)',\s*.+\)`)
)

// ToLoadVar returns the variable name from a toLoad.add('VAR') call, or ""
// if s does not match.
func ToLoadVar(s string) string { return firstMatch(reToLoad, s) }

// ToResetVar returns the variable name from a toReset.add('VAR') call, or
// "" if s does not match.
func ToResetVar(s string) string { return firstMatch(reToReset, s) }

// ToPersistVar returns the variable name from a toPersist.put('VAR', ...)
// call, or "" if s does not match.
func ToPersistVar(s string) string { return firstMatch(reToPersist, s) }

// Implicit variable setter inside script items: zofar.setVariableValue('VAR', ...).
var reSetVariableValue = regexp.MustCompile(`zofar\.setVariableValue\('([0-9a-zA-Z_]+)'`)

// SetVariableValueVars returns every VAR set via zofar.setVariableValue
// calls anywhere in s, in order of appearance.
func SetVariableValueVars(s string) []string {
	var out []string
	for _, m := range reSetVariableValue.FindAllStringSubmatch(s, -1) {
		out = append(out, m[1])
	}
	return out
}

// Redirect helper forms: navigatorBean.redirect('PAGE') (literal target)
// and navigatorBean.redirect(AUX) (auxiliary-variable target).
var (
	reRedirectLiteral = regexp.MustCompile(`^\s*navigatorBean\.redirect\('([a-zA-Z0-9_]+)'\)\s*$`)
	reRedirectAux     = regexp.MustCompile(`^\s*navigatorBean\.redirect\(([a-zA-Z0-9_]+)\)\s*$`)
)

// RedirectLiteralTarget returns the literal page uid from a
// navigatorBean.redirect('PAGE') command, or "" if s does not match.
func RedirectLiteralTarget(s string) string { return firstMatch(reRedirectLiteral, s) }

// RedirectAuxVar returns the auxiliary variable name from a
// navigatorBean.redirect(AUX) command, or "" if s does not match.
func RedirectAuxVar(s string) string { return firstMatch(reRedirectAux, s) }

// IsRedirectCommand reports whether s matches either redirect form.
func IsRedirectCommand(s string) bool {
	return reRedirectLiteral.MatchString(s) || reRedirectAux.MatchString(s)
}

// Numeric/missing helpers surfaced in the "used helpers" report:
// zofar.asNumber(X), zofar.isMissing(X), X.value.
var (
	ReAsNumber  = regexp.MustCompile(`zofar\.asNumber\(([a-zA-Z0-9_]+)\)`)
	ReIsMissing = regexp.MustCompile(`zofar\.isMissing\(([a-zA-Z0-9_]+)\)`)
	ReDotValue  = regexp.MustCompile(`([a-zA-Z0-9_]+)\.value`)
)

// UsedHelpers maps a human-readable helper name to every argument it was
// called with across all of s, deduplicated and sorted, matching the
// "zofar functions used" report section.
func UsedHelpers(s string) map[string][]string {
	groups := map[string]*regexp.Regexp{
		"zofar.asNumber()":  ReAsNumber,
		"zofar.isMissing()": ReIsMissing,
		".value":            ReDotValue,
	}
	out := make(map[string][]string, len(groups))
	for name, re := range groups {
		out[name] = toSortedSet(re.FindAllStringSubmatch(s, -1))
	}
	return out
}

func firstMatch(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1]
}

func toSortedSet(matches [][]string) []string {
	seen := make(map[string]bool, len(matches))
	var out []string
	for _, m := range matches {
		if !seen[m[1]] {
			seen[m[1]] = true
			out = append(out, m[1])
		}
	}
	sort.Strings(out)
	return out
}
