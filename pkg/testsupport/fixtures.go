package testsupport

import (
	"os"
	"testing"

	"github.com/goliatone/go-formflow/pkg/descriptor"
)

// SampleForm returns the three-section descriptor used across contract tests:
// personal details, contact preferences, and a consent section.
func SampleForm() descriptor.Form {
	minName := 2
	maxName := 64

	return descriptor.Form{
		Title:   "Conference registration",
		ID:      "conference-registration",
		Version: "1.0.0",
		Sections: []descriptor.Section{
			{
				ID:          "personal",
				Title:       "Personal details",
				Description: "Tell us who you are.",
				Fields: []descriptor.Field{
					{
						ID:        "fullName",
						Type:      descriptor.FieldTypeShortText,
						Label:     "Full name",
						Required:  true,
						MinLength: &minName,
						MaxLength: &maxName,
					},
					{
						ID:       "birthDate",
						Type:     descriptor.FieldTypeDate,
						Label:    "Date of birth",
						Required: true,
					},
				},
			},
			{
				ID:    "contact",
				Title: "Contact preferences",
				Fields: []descriptor.Field{
					{
						ID:       "email",
						Type:     descriptor.FieldTypeEmail,
						Label:    "Email address",
						Required: true,
					},
					{
						ID:    "phone",
						Type:  descriptor.FieldTypePhone,
						Label: "Phone number",
					},
					{
						ID:       "channel",
						Type:     descriptor.FieldTypeRadio,
						Label:    "Preferred channel",
						Required: true,
						Options: []descriptor.Option{
							{Value: "email", Label: "Email"},
							{Value: "phone", Label: "Phone"},
						},
					},
				},
			},
			{
				ID:    "consent",
				Title: "Consent",
				Fields: []descriptor.Field{
					{
						ID:    "notes",
						Type:  descriptor.FieldTypeLongText,
						Label: "Anything else?",
					},
					{
						ID:                "terms",
						Type:              descriptor.FieldTypeCheckbox,
						Label:             "Terms of service",
						Required:          true,
						ValidationMessage: "You must accept the terms to register",
					},
				},
			},
		},
	}
}

// ValidAnswers returns a complete, passing answer set for SampleForm.
func ValidAnswers() map[string]any {
	return map[string]any{
		"fullName":  "Ada Lovelace",
		"birthDate": "1990-12-10",
		"email":     "ada@example.com",
		"phone":     "+44 20 7946 0958",
		"channel":   "email",
		"notes":     "",
		"terms":     true,
	}
}

// LoadForm reads and parses a descriptor fixture, failing the test on any
// error.
func LoadForm(t *testing.T, path string) descriptor.Form {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	form, err := descriptor.Parse(data)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return form
}
