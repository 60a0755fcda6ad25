package model

// QuestionKind names one of the recognized question-element shapes.
type QuestionKind string

const (
	QuestionOpen                 QuestionKind = "questionOpen"
	QuestionSingleChoice         QuestionKind = "questionSingleChoice"
	QuestionMultipleChoice       QuestionKind = "multipleChoice"
	QuestionMatrixSingleChoice   QuestionKind = "matrixQuestionSingleChoice"
	QuestionMatrixMultipleChoice QuestionKind = "matrixQuestionMultipleChoice"
	QuestionMatrixOpen           QuestionKind = "matrixQuestionOpen"
	QuestionEpisodes             QuestionKind = "episodes"
	QuestionEpisodesTable        QuestionKind = "episodesTable"
)

// InferredVarType returns the variable type a reference under a question of
// this kind is inferred to have, per spec §4.B step 5.
func (k QuestionKind) InferredVarType() string {
	switch k {
	case QuestionSingleChoice, QuestionMatrixSingleChoice:
		return VarTypeSingleChoiceAnswerOption
	case QuestionMultipleChoice, QuestionMatrixMultipleChoice:
		return VarTypeBoolean
	case QuestionOpen, QuestionMatrixOpen, QuestionEpisodes, QuestionEpisodesTable:
		return VarTypeString
	default:
		return ""
	}
}

// Label is a small piece of text content used for open-question
// prefix/postfix segments.
type Label struct {
	UID     string
	Visible string
	Content string
}

// AttachedOpen is an open-ended text field tied to an AnswerOption or a
// matrix Item.
type AttachedOpen struct {
	UID     string
	Visible string
	VarRef  VarRef
}

// Question is a tagged variant over the question shapes recognized by the
// reader (spec §3 "Question"). Only the fields relevant to Kind are
// populated; this is a deliberate re-expression of the source's deep class
// hierarchy as a single pattern-matched struct (see SPEC_FULL.md §9).
type Question struct {
	Kind    QuestionKind
	UID     string
	Visible string
	Headers []Header

	// QuestionOpen
	VarRef      *VarRef
	Size        string
	SmallOption bool
	Prefix      []Label
	Postfix     []Label

	// QuestionSingleChoice / MultipleChoice / matrix variants
	ResponseDomain *ResponseDomain
}
