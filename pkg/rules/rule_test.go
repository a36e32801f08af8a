package rules_test

import (
	"testing"
	"time"

	"github.com/goliatone/go-formflow/pkg/descriptor"
	"github.com/goliatone/go-formflow/pkg/rules"
)

func fixedNow() time.Time {
	return time.Date(2024, time.June, 15, 13, 30, 0, 0, time.Local)
}

func intPtr(n int) *int { return &n }

func TestRule_RequiredText(t *testing.T) {
	rule := rules.Rule{FieldID: "fullName", Type: descriptor.FieldTypeShortText, Label: "Full name", Required: true}

	if err := rule.Evaluate("", fixedNow); err == nil {
		t.Fatal("expected required failure for empty value")
	} else if err.Message != "Full name is required" {
		t.Fatalf("unexpected message: %q", err.Message)
	}

	if err := rule.Evaluate("Ada", fixedNow); err != nil {
		t.Fatalf("non-empty value should pass: %v", err)
	}
}

func TestRule_OptionalEmptySkipsConstraints(t *testing.T) {
	rule := rules.Rule{
		FieldID: "nickname",
		Type:    descriptor.FieldTypeShortText,
		Label:   "Nickname",
		MinLen:  intPtr(5),
	}

	// Empty means unanswered for an optional field; the length rule must not
	// fire.
	if err := rule.Evaluate("", fixedNow); err != nil {
		t.Fatalf("optional empty value should pass: %v", err)
	}
	if err := rule.Evaluate("abc", fixedNow); err == nil {
		t.Fatal("expected min-length failure once a value is present")
	}
}

func TestRule_Length(t *testing.T) {
	rule := rules.Rule{
		FieldID: "title",
		Type:    descriptor.FieldTypeShortText,
		Label:   "Title",
		MinLen:  intPtr(2),
		MaxLen:  intPtr(4),
	}

	cases := []struct {
		value string
		want  string
	}{
		{"a", "Title must be at least 2 characters"},
		{"ab", ""},
		{"abcd", ""},
		{"abcde", "Title must be at most 4 characters"},
		// Length counts runes, not bytes.
		{"héllo", "Title must be at most 4 characters"},
		{"héll", ""},
	}
	for _, tc := range cases {
		err := rule.Evaluate(tc.value, fixedNow)
		switch {
		case tc.want == "" && err != nil:
			t.Errorf("Evaluate(%q) = %v, want pass", tc.value, err)
		case tc.want != "" && err == nil:
			t.Errorf("Evaluate(%q) passed, want %q", tc.value, tc.want)
		case tc.want != "" && err.Message != tc.want:
			t.Errorf("Evaluate(%q) = %q, want %q", tc.value, err.Message, tc.want)
		}
	}
}

func TestRule_Email(t *testing.T) {
	rule := rules.Rule{FieldID: "email", Type: descriptor.FieldTypeEmail, Label: "Email address", Required: true}

	for _, valid := range []string{"ada@example.com", "a@b.co", "first.last@sub.domain.org"} {
		if err := rule.Evaluate(valid, fixedNow); err != nil {
			t.Errorf("Evaluate(%q) = %v, want pass", valid, err)
		}
	}
	for _, invalid := range []string{"ada", "ada@", "@example.com", "ada@example", "a da@example.com"} {
		if err := rule.Evaluate(invalid, fixedNow); err == nil {
			t.Errorf("Evaluate(%q) passed, want failure", invalid)
		}
	}
}

func TestRule_Phone(t *testing.T) {
	rule := rules.Rule{FieldID: "phone", Type: descriptor.FieldTypePhone, Label: "Phone number", MaxLen: intPtr(20)}

	for _, valid := range []string{"+44 20 7946 0958", "(555) 123-4567", "0123456789"} {
		if err := rule.Evaluate(valid, fixedNow); err != nil {
			t.Errorf("Evaluate(%q) = %v, want pass", valid, err)
		}
	}
	if err := rule.Evaluate("555-CALL-NOW", fixedNow); err == nil {
		t.Fatal("letters should fail the character check")
	}
	if err := rule.Evaluate("+1 (555) 123-4567 ext 99999", fixedNow); err == nil {
		t.Fatal("expected a failure for an over-long number with letters")
	}
}

func TestRule_Date(t *testing.T) {
	rule := rules.Rule{FieldID: "birthDate", Type: descriptor.FieldTypeDate, Label: "Date of birth", Required: true}

	cases := []struct {
		value string
		want  string
	}{
		{"1990-12-10", ""},
		// Today is inclusive.
		{"2024-06-15", ""},
		{"2099-01-01", "Date of birth cannot be in the future"},
		// Format is checked before the future check.
		{"01-01-2099", "Date of birth must be a date in YYYY-MM-DD format"},
		{"2024/06/15", "Date of birth must be a date in YYYY-MM-DD format"},
		{"2024-02-30", "Date of birth must be a valid calendar date"},
		{"2024-13-01", "Date of birth must be a valid calendar date"},
	}
	for _, tc := range cases {
		err := rule.Evaluate(tc.value, fixedNow)
		switch {
		case tc.want == "" && err != nil:
			t.Errorf("Evaluate(%q) = %v, want pass", tc.value, err)
		case tc.want != "" && err == nil:
			t.Errorf("Evaluate(%q) passed, want %q", tc.value, tc.want)
		case tc.want != "" && err.Message != tc.want:
			t.Errorf("Evaluate(%q) = %q, want %q", tc.value, err.Message, tc.want)
		}
	}
}

func TestRule_Checkbox(t *testing.T) {
	rule := rules.Rule{FieldID: "terms", Type: descriptor.FieldTypeCheckbox, Label: "Terms of service", Required: true}

	if err := rule.Evaluate(false, fixedNow); err == nil {
		t.Fatal("required checkbox must be checked")
	} else if err.Message != "Terms of service must be checked" {
		t.Fatalf("unexpected message: %q", err.Message)
	}
	if err := rule.Evaluate(true, fixedNow); err != nil {
		t.Fatalf("checked value should pass: %v", err)
	}
	if err := rule.Evaluate("yes", fixedNow); err == nil {
		t.Fatal("non-boolean value should fail the type check")
	}

	optional := rules.Rule{FieldID: "newsletter", Type: descriptor.FieldTypeCheckbox, Label: "Newsletter"}
	if err := optional.Evaluate(false, fixedNow); err != nil {
		t.Fatalf("optional unchecked checkbox should pass: %v", err)
	}
}

func TestRule_MessageOverride(t *testing.T) {
	rule := rules.Rule{
		FieldID:  "terms",
		Type:     descriptor.FieldTypeCheckbox,
		Label:    "Terms of service",
		Required: true,
		Message:  "You must accept the terms to register",
	}

	err := rule.Evaluate(false, fixedNow)
	if err == nil {
		t.Fatal("expected failure")
	}
	if err.Message != "You must accept the terms to register" {
		t.Fatalf("configured message must win over the default, got %q", err.Message)
	}
}

func TestRule_SelectSkipsMembership(t *testing.T) {
	rule := rules.Rule{FieldID: "channel", Type: descriptor.FieldTypeRadio, Label: "Preferred channel", Required: true}

	// A value outside the declared options still passes; only presence is
	// enforced for choice fields.
	if err := rule.Evaluate("carrier-pigeon", fixedNow); err != nil {
		t.Fatalf("non-member value should pass: %v", err)
	}
	if err := rule.Evaluate("", fixedNow); err == nil {
		t.Fatal("required choice with no selection should fail")
	}
}

func TestRule_NonStringValue(t *testing.T) {
	rule := rules.Rule{FieldID: "fullName", Type: descriptor.FieldTypeShortText, Label: "Full name"}
	if err := rule.Evaluate(42, fixedNow); err == nil {
		t.Fatal("non-string value for a text field should fail")
	}
}
