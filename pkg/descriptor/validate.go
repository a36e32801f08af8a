package descriptor

import (
	"errors"
	"fmt"
)

var (
	errNoSections = errors.New("descriptor: form requires at least one section")
	errNoFormID   = errors.New("descriptor: form id is required")
)

// Validate checks the structural invariants a descriptor must satisfy before
// a validator or engine can be derived from it. Shape problems are fatal at
// load time; they are never retried or patched downstream.
func (f Form) Validate() error {
	if f.ID == "" {
		return errNoFormID
	}
	if len(f.Sections) == 0 {
		return errNoSections
	}

	seen := make(map[string]string, f.FieldCount())
	for i, section := range f.Sections {
		if section.ID == "" {
			return fmt.Errorf("descriptor: section %d is missing an id", i)
		}
		if len(section.Fields) == 0 {
			return fmt.Errorf("descriptor: section %q has no fields", section.ID)
		}
		for _, field := range section.Fields {
			if field.ID == "" {
				return fmt.Errorf("descriptor: section %q contains a field without an id", section.ID)
			}
			if !field.Type.Valid() {
				return fmt.Errorf("descriptor: field %q has unsupported type %q", field.ID, field.Type)
			}
			if prev, dup := seen[field.ID]; dup {
				return fmt.Errorf("descriptor: field id %q declared in sections %q and %q", field.ID, prev, section.ID)
			}
			seen[field.ID] = section.ID

			if field.Type.Choice() && len(field.Options) == 0 {
				return fmt.Errorf("descriptor: field %q of type %q requires options", field.ID, field.Type)
			}
			if field.MinLength != nil && *field.MinLength < 0 {
				return fmt.Errorf("descriptor: field %q has negative minLength", field.ID)
			}
			if field.MinLength != nil && field.MaxLength != nil && *field.MaxLength < *field.MinLength {
				return fmt.Errorf("descriptor: field %q has maxLength below minLength", field.ID)
			}
		}
	}
	return nil
}
