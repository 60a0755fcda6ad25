package generator

import "html"

// Escape HTML-entity-escapes a user-visible label before it is written
// into a generated fragment (spec §4.F).
func Escape(s string) string {
	return html.EscapeString(s)
}

// Unescape reverses Escape, for cleaning user input before it is stored as
// a label (spec §4.F: "a round-trip escape/unescape utility is available
// for cleaning user input").
func Unescape(s string) string {
	return html.UnescapeString(s)
}
