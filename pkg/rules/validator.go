package rules

import (
	"fmt"
	"time"

	"github.com/goliatone/go-formflow/pkg/descriptor"
)

// Validator is the rule-set compiled once from a descriptor. It is pure and
// side-effect-free, safe to reuse for the whole session as long as the
// descriptor it was compiled from is unchanged.
type Validator struct {
	rules    map[string]Rule
	sections [][]string
	now      func() time.Time
}

// Option configures compilation.
type Option func(*Validator)

// WithNow overrides the clock used by date rules. Primarily for tests; the
// default is time.Now.
func WithNow(now func() time.Time) Option {
	return func(v *Validator) {
		if now != nil {
			v.now = now
		}
	}
}

// Compile derives a Validator from a form descriptor, one rule per field. The
// descriptor is shape-validated first; a malformed descriptor fails
// compilation rather than producing a partial rule-set.
func Compile(form descriptor.Form, options ...Option) (*Validator, error) {
	if err := form.Validate(); err != nil {
		return nil, fmt.Errorf("rules: %w", err)
	}

	v := &Validator{
		rules:    make(map[string]Rule, form.FieldCount()),
		sections: make([][]string, 0, len(form.Sections)),
		now:      time.Now,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(v)
	}

	for _, section := range form.Sections {
		ids := make([]string, 0, len(section.Fields))
		for _, field := range section.Fields {
			v.rules[field.ID] = Rule{
				FieldID:  field.ID,
				Type:     field.Type,
				Label:    field.DisplayLabel(),
				Required: field.Required,
				MinLen:   field.MinLength,
				MaxLen:   field.MaxLength,
				Message:  field.ValidationMessage,
			}
			ids = append(ids, field.ID)
		}
		v.sections = append(v.sections, ids)
	}
	return v, nil
}

// SectionCount returns the number of sections the validator was compiled from.
func (v *Validator) SectionCount() int {
	return len(v.sections)
}

// Field evaluates a single field's current value. A nil error means the value
// passes; an unknown field id is reported as a *FieldError as well.
func (v *Validator) Field(id string, value any) *FieldError {
	rule, ok := v.rules[id]
	if !ok {
		return &FieldError{FieldID: id, Message: "unknown field"}
	}
	return rule.Evaluate(value, v.now)
}

// Section evaluates only the fields declared in the given section, returning
// a message per failing field. An empty map means the section passes. An
// out-of-range index evaluates to an empty result.
func (v *Validator) Section(index int, answers map[string]any) map[string]string {
	failures := make(map[string]string)
	if index < 0 || index >= len(v.sections) {
		return failures
	}
	for _, id := range v.sections[index] {
		if err := v.Field(id, answers[id]); err != nil {
			failures[id] = err.Message
		}
	}
	return failures
}

// All evaluates the whole answer map field by field, in descriptor order.
func (v *Validator) All(answers map[string]any) map[string]string {
	failures := make(map[string]string)
	for index := range v.sections {
		for id, message := range v.Section(index, answers) {
			failures[id] = message
		}
	}
	return failures
}

// FirstInvalidSection returns the index of the first section, in descriptor
// order, containing at least one failing field. Ascending order is the
// tie-break: the lowest index always wins.
func (v *Validator) FirstInvalidSection(answers map[string]any) (int, bool) {
	for index := range v.sections {
		if len(v.Section(index, answers)) > 0 {
			return index, true
		}
	}
	return 0, false
}
