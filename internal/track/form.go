// Package track implements the client-side core of the tracker: turning a
// user-defined category schema into an editable form, collapsing the filled
// form into a persistable entry, binding external lookup results to form
// slots, and aggregating entries for the summary chart.
//
// Everything in this package is pure; rendering and persistence live in the
// tui and adapter packages.
package track

import "github.com/mhenke/logbuch/models"

// FieldValue is one editable form slot: the originating field descriptor
// plus the user's current raw input. Keeping the descriptor on the slot lets
// the value be read back unambiguously regardless of how the slot is
// rendered.
type FieldValue struct {
	Field models.Field
	Value string
}

// Form is the ordered slot list rendered for one category. It is rebuilt
// from scratch on every category switch; there is no incremental diffing.
type Form []FieldValue

// NewForm builds one empty slot per declared field, in declaration order.
// A category with zero fields yields an empty form; that is accepted here
// and rejected only at category creation time.
func NewForm(cat models.Category) Form {
	form := make(Form, len(cat.Fields))
	for i, field := range cat.Fields {
		form[i] = FieldValue{Field: field}
	}

	return form
}

// Labels returns the slot labels in form order.
func (f Form) Labels() []string {
	labels := make([]string, len(f))
	for i, slot := range f {
		labels[i] = slot.Field.Label
	}

	return labels
}
