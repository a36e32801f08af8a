package engine

import "github.com/goliatone/go-formflow/pkg/descriptor"

// AnswerMap holds the live value for every field, keyed by field id. Values
// are strings for every text-like type and bools for checkboxes.
type AnswerMap map[string]any

// Clone returns an independent copy. Answer values are scalars, so a shallow
// copy is a full copy.
func (a AnswerMap) Clone() AnswerMap {
	out := make(AnswerMap, len(a))
	for id, value := range a {
		out[id] = value
	}
	return out
}

// DefaultAnswers synthesizes the initial answer map for a descriptor: exactly
// one entry per field, checkboxes starting false and every other type starting
// as the empty string.
func DefaultAnswers(form descriptor.Form) AnswerMap {
	answers := make(AnswerMap, form.FieldCount())
	for _, section := range form.Sections {
		for _, field := range section.Fields {
			if field.Type.Boolean() {
				answers[field.ID] = false
			} else {
				answers[field.ID] = ""
			}
		}
	}
	return answers
}
