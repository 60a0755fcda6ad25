package model

import "reflect"

// UniqueHeaderUIDs reports whether every Header in headers has a distinct
// UID (spec §4.C: "Header uids unique within a page").
func UniqueHeaderUIDs(headers []Header) bool {
	seen := make(map[string]bool, len(headers))
	for _, h := range headers {
		if seen[h.UID] {
			return false
		}
		seen[h.UID] = true
	}
	return true
}

// UniqueAnswerOptionUIDs reports whether every AnswerOption in options has a
// distinct UID within its containing response domain (spec §4.C). AO value
// uniqueness is deliberately not checked here (spec: "not enforced").
func UniqueAnswerOptionUIDs(options []AnswerOption) bool {
	seen := make(map[string]bool, len(options))
	for _, ao := range options {
		if seen[ao.UID] {
			return false
		}
		seen[ao.UID] = true
	}
	return true
}

// UniqueItemUIDs reports whether every Item in items has a distinct UID
// within its containing matrix response domain (spec §4.C).
func UniqueItemUIDs(items []Item) bool {
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if seen[it.UID] {
			return false
		}
		seen[it.UID] = true
	}
	return true
}

// PageEqual compares two pages structurally on their declared attributes
// (uid, headers, questions, transitions, jumpers, triggers), element by
// element. Derived aggregates are not compared.
func PageEqual(a, b *Page) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.UID != b.UID {
		return false
	}
	if len(a.Transitions) != len(b.Transitions) || len(a.Jumpers) != len(b.Jumpers) {
		return false
	}
	for i := range a.Transitions {
		if a.Transitions[i] != b.Transitions[i] {
			return false
		}
	}
	for i := range a.Jumpers {
		if a.Jumpers[i] != b.Jumpers[i] {
			return false
		}
	}
	return reflect.DeepEqual(a.Headers, b.Headers) &&
		reflect.DeepEqual(a.Questions, b.Questions) &&
		reflect.DeepEqual(a.Triggers, b.Triggers)
}
