package rules_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formflow/pkg/descriptor"
	"github.com/goliatone/go-formflow/pkg/rules"
	"github.com/goliatone/go-formflow/pkg/testsupport"
)

func compile(t *testing.T) *rules.Validator {
	t.Helper()

	v, err := rules.Compile(testsupport.SampleForm(), rules.WithNow(fixedNow))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	return v
}

func TestCompile_RejectsMalformedDescriptor(t *testing.T) {
	form := testsupport.SampleForm()
	form.Sections[0].Fields[0].Type = "slider"

	if _, err := rules.Compile(form); err == nil {
		t.Fatal("expected compilation to fail for an unknown field type")
	}
}

func TestValidator_Field(t *testing.T) {
	v := compile(t)

	if err := v.Field("email", "ada@example.com"); err != nil {
		t.Fatalf("valid email rejected: %v", err)
	}
	if err := v.Field("email", "nope"); err == nil {
		t.Fatal("invalid email accepted")
	}
	if err := v.Field("missing", "x"); err == nil || err.Message != "unknown field" {
		t.Fatalf("unknown field should be reported, got %v", err)
	}
}

func TestValidator_SectionScopesToDeclaredFields(t *testing.T) {
	v := compile(t)

	answers := testsupport.ValidAnswers()
	answers["email"] = "" // invalid, but lives in section 1

	if failures := v.Section(0, answers); len(failures) != 0 {
		t.Fatalf("section 0 must ignore other sections' fields, got %v", failures)
	}

	want := map[string]string{"email": "Email address is required"}
	if diff := cmp.Diff(want, v.Section(1, answers)); diff != "" {
		t.Fatalf("section 1 failures mismatch (-want +got):\n%s", diff)
	}

	if failures := v.Section(99, answers); len(failures) != 0 {
		t.Fatalf("out-of-range section should be empty, got %v", failures)
	}
}

func TestValidator_All(t *testing.T) {
	v := compile(t)

	if failures := v.All(testsupport.ValidAnswers()); len(failures) != 0 {
		t.Fatalf("complete answers should pass, got %v", failures)
	}

	answers := testsupport.ValidAnswers()
	answers["fullName"] = ""
	answers["terms"] = false

	want := map[string]string{
		"fullName": "Full name is required",
		"terms":    "You must accept the terms to register",
	}
	if diff := cmp.Diff(want, v.All(answers)); diff != "" {
		t.Fatalf("failures mismatch (-want +got):\n%s", diff)
	}
}

func TestValidator_FirstInvalidSection(t *testing.T) {
	v := compile(t)

	if _, ok := v.FirstInvalidSection(testsupport.ValidAnswers()); ok {
		t.Fatal("valid answers should report no invalid section")
	}

	answers := testsupport.ValidAnswers()
	answers["email"] = "bad"
	if index, ok := v.FirstInvalidSection(answers); !ok || index != 1 {
		t.Fatalf("got (%d, %v), want (1, true)", index, ok)
	}

	// When several sections fail, the lowest index wins.
	answers["fullName"] = ""
	answers["terms"] = false
	if index, ok := v.FirstInvalidSection(answers); !ok || index != 0 {
		t.Fatalf("got (%d, %v), want (0, true)", index, ok)
	}
}

func TestValidator_InjectedClock(t *testing.T) {
	form := descriptor.Form{
		ID: "clock",
		Sections: []descriptor.Section{
			{
				ID: "only",
				Fields: []descriptor.Field{
					{ID: "when", Type: descriptor.FieldTypeDate, Label: "When", Required: true},
				},
			},
		},
	}

	v, err := rules.Compile(form, rules.WithNow(fixedNow))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	// 2024-06-15 is "today" under the injected clock, so it passes.
	if fieldErr := v.Field("when", "2024-06-15"); fieldErr != nil {
		t.Fatalf("today must be accepted: %v", fieldErr)
	}
	if fieldErr := v.Field("when", "2024-06-16"); fieldErr == nil {
		t.Fatal("tomorrow must be rejected")
	}
}

func TestValidator_SectionCount(t *testing.T) {
	if got := compile(t).SectionCount(); got != 3 {
		t.Fatalf("SectionCount() = %d, want 3", got)
	}
}
