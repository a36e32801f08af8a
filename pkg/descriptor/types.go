package descriptor

// FieldType is the closed set of input kinds a form descriptor may declare.
type FieldType string

const (
	FieldTypeShortText FieldType = "short-text"
	FieldTypeLongText  FieldType = "long-text"
	FieldTypeEmail     FieldType = "email"
	FieldTypePhone     FieldType = "phone"
	FieldTypeDate      FieldType = "date"
	FieldTypeSelect    FieldType = "single-select"
	FieldTypeRadio     FieldType = "radio-choice"
	FieldTypeCheckbox  FieldType = "boolean-checkbox"
)

// Valid reports whether the type belongs to the supported set.
func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeShortText, FieldTypeLongText, FieldTypeEmail, FieldTypePhone,
		FieldTypeDate, FieldTypeSelect, FieldTypeRadio, FieldTypeCheckbox:
		return true
	}
	return false
}

// Choice reports whether the type renders a fixed set of options and therefore
// requires a non-empty Options list.
func (t FieldType) Choice() bool {
	return t == FieldTypeSelect || t == FieldTypeRadio
}

// Boolean reports whether the field's answer is a bool rather than a string.
func (t FieldType) Boolean() bool {
	return t == FieldTypeCheckbox
}

// Option is a single selectable entry for select and radio fields. Declared
// order is meaningful and must be preserved by renderers.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Field describes an individual input inside a form. ID is the stable key
// into the answer map and must be unique across the whole form, not just the
// section it appears in.
type Field struct {
	ID                string    `json:"fieldId" yaml:"fieldId"`
	Type              FieldType `json:"type" yaml:"type"`
	Label             string    `json:"label" yaml:"label"`
	Placeholder       string    `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Required          bool      `json:"required" yaml:"required"`
	MinLength         *int      `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength         *int      `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Options           []Option  `json:"options,omitempty" yaml:"options,omitempty"`
	ValidationMessage string    `json:"validationMessage,omitempty" yaml:"validationMessage,omitempty"`
}

// DisplayLabel returns the label, falling back to the field id so prompts and
// error messages never render blank.
func (f Field) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return f.ID
}

// Section groups an ordered run of fields under a shared title.
type Section struct {
	ID          string  `json:"sectionId" yaml:"sectionId"`
	Title       string  `json:"title" yaml:"title"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Fields      []Field `json:"fields" yaml:"fields"`
}

// Form is the top-level descriptor fetched once per session. It is treated as
// immutable for the lifetime of a form-filling session; a new descriptor means
// a full re-derivation of validator and defaults downstream.
type Form struct {
	Title    string    `json:"formTitle" yaml:"formTitle"`
	ID       string    `json:"formId" yaml:"formId"`
	Version  string    `json:"version" yaml:"version"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// FieldByID walks the sections in order and returns the first field with the
// given id.
func (f Form) FieldByID(id string) (Field, bool) {
	for _, section := range f.Sections {
		for _, field := range section.Fields {
			if field.ID == id {
				return field, true
			}
		}
	}
	return Field{}, false
}

// FieldCount returns the total number of fields across all sections.
func (f Form) FieldCount() int {
	total := 0
	for _, section := range f.Sections {
		total += len(section.Fields)
	}
	return total
}
