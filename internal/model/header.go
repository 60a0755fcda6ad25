package model

// Header kinds, matching the XML tag they were read from.
const (
	HeaderTitle        = "title"
	HeaderText         = "text"
	HeaderQuestion     = "question"
	HeaderIntroduction = "introduction"
	HeaderInstruction  = "instruction"
)

// Header is a title/text/question/introduction/instruction element found in
// a page body or a response-domain item. Kind names which tag it came from.
type Header struct {
	UID     string
	Kind    string
	Visible string
	Block   string
	Content string
}
