package model

// AnswerOptionKind distinguishes the two AnswerOption variants (spec §3).
type AnswerOptionKind string

const (
	AnswerOptionSingle   AnswerOptionKind = "single"
	AnswerOptionMultiple AnswerOptionKind = "multiple"
)

// AnswerOption is a single selectable choice within a response domain.
// Single-choice options carry an opaque Value; multiple-choice options
// carry a VarRef and an optional Exclusive flag. Both variants share UID,
// Label, Visible, Missing and an attached-open list.
type AnswerOption struct {
	Kind         AnswerOptionKind
	UID          string
	Label        string
	Visible      string
	Missing      bool
	AttachedOpen []AttachedOpen

	// AnswerOptionSingle
	Value string

	// AnswerOptionMultiple
	VarRef    *VarRef
	Exclusive bool
}

// ResponseDomainKind distinguishes the three ResponseDomain variants.
type ResponseDomainKind string

const (
	ResponseDomainSingleChoice   ResponseDomainKind = "single"
	ResponseDomainMultipleChoice ResponseDomainKind = "multiple"
	ResponseDomainMatrix         ResponseDomainKind = "matrix"
)

// SingleChoiceDropdownSubtype is the canonical, lower-case form of the
// dropdown response-domain subtype. Input is accepted case-insensitively
// (DESIGN.md Open Question 1); this is what the generator always emits.
const SingleChoiceDropdownSubtype = "dropdown"

// Item is one row of a Matrix response domain: its own header list,
// attached opens, and a nested single- or multiple-choice ResponseDomain.
type Item struct {
	UID          string
	Visible      string
	Headers      []Header
	ResponseDomain ResponseDomain
	AttachedOpen []AttachedOpen
}

// ResponseDomain is a tagged variant over SC/MC/Matrix shapes (spec §3).
type ResponseDomain struct {
	Kind ResponseDomainKind
	UID  string

	// ResponseDomainSingleChoice
	VarRef  *VarRef
	Subtype string // "" or SingleChoiceDropdownSubtype

	// ResponseDomainSingleChoice / ResponseDomainMultipleChoice
	Options []AnswerOption

	// ResponseDomainMatrix
	Items []Item
}

// OptionsEqual reports whether two AnswerOption slices are structurally
// identical (same length, each option equal field-by-field). Used by the
// matrix-response-domain sanity check: all Items in a Matrix ResponseDomain
// must share an identical AnswerOption list (spec §4.C).
func OptionsEqual(a, b []AnswerOption) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !answerOptionEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func answerOptionEqual(a, b AnswerOption) bool {
	if a.Kind != b.Kind || a.UID != b.UID || a.Label != b.Label ||
		a.Visible != b.Visible || a.Missing != b.Missing || a.Value != b.Value ||
		a.Exclusive != b.Exclusive {
		return false
	}
	if (a.VarRef == nil) != (b.VarRef == nil) {
		return false
	}
	if a.VarRef != nil && (a.VarRef.Variable != b.VarRef.Variable) {
		return false
	}
	return len(a.AttachedOpen) == len(b.AttachedOpen)
}
