package expr

import (
	"regexp"
	"strings"
)

// rewriteStep is one ordered substitution applied by Rewrite. Order matters:
// the negated ".value" forms must run before the bare form, or the bare
// pattern would also match inside "!x.value" before negation is detected.
type rewriteStep struct {
	pattern *regexp.Regexp
	replace string
}

var rewriteSteps = []rewriteStep{
	{regexp.MustCompile(`!([a-zA-Z0-9_-]+)\.value\s+`), "$1 == F "},
	{regexp.MustCompile(`!([a-zA-Z0-9_-]+)\.value$`), "$1 == F "},
	{regexp.MustCompile(`([a-zA-Z0-9_-]+)\.value\s+`), "$1 == T "},
	{regexp.MustCompile(`([a-zA-Z0-9_-]+)\.value$`), "$1 == T "},
	{regexp.MustCompile(`zofar\.asNumber\(([a-zA-Z0-9_-]+)\)`), "$1"},
	{regexp.MustCompile(`zofar\.isMissing\(([a-zA-Z0-9_-]+)\)`), "$1 == MIS"},
	{regexp.MustCompile(`\s+ge\s+`), ">="},
	{regexp.MustCompile(`\s+gt\s+`), ">"},
	{regexp.MustCompile(`\s+le\s+`), "<="},
	{regexp.MustCompile(`\s+lt\s+`), "<"},
	{regexp.MustCompile(`\s+!=\s+`), "!="},
	{regexp.MustCompile(`\s+==\s+`), "=="},
}

// Rewrite turns a zofar-flavored condition string into the graph layer's
// compact display notation (spec §4.A "Optional rewriter"). X.value/!X.value
// become "X==T"/"X==F" (followed by one space), zofar.asNumber(X) collapses
// to X, zofar.isMissing(X) becomes "X==MIS", and the word-operators
// ge/gt/le/lt collapse to their symbol form; these and any !=/== operators
// lose the whitespace around them. The result is parenthesized unless cond
// already starts with "(" and ends with ")".
// Rewriting is idempotent and purely presentational — it never changes
// which pages the condition steers to.
func Rewrite(cond string) string {
	result := cond
	for _, step := range rewriteSteps {
		result = step.pattern.ReplaceAllString(result, step.replace)
	}
	if !(strings.HasPrefix(cond, "(") && strings.HasSuffix(cond, ")")) {
		result = "(" + result + ")"
	}
	return result
}
