package rules

import (
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/goliatone/go-formflow/pkg/descriptor"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9()+\- ]*$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

const dateLayout = "2006-01-02"

// Rule is the compiled validation for a single field: a variant over the
// descriptor's closed type set plus the constraints resolved at compile time.
// Optional is carried as the explicit Required flag; evaluation never inspects
// the rule's structure to decide whether an empty value is acceptable.
type Rule struct {
	FieldID  string
	Type     descriptor.FieldType
	Label    string
	Required bool
	MinLen   *int
	MaxLen   *int
	// Message overrides every built-in default for this field when set.
	Message string
}

// Evaluate checks a single answer against the rule. A nil return means the
// value passes; otherwise the returned FieldError carries the message to
// attach to the field.
func (r Rule) Evaluate(value any, now func() time.Time) *FieldError {
	if r.Type == descriptor.FieldTypeCheckbox {
		return r.evalCheckbox(value)
	}

	text, ok := value.(string)
	if !ok {
		return r.fail(fmt.Sprintf("%s must be text", r.Label))
	}

	if text == "" {
		if r.Required {
			return r.fail(fmt.Sprintf("%s is required", r.Label))
		}
		// Empty means "not yet answered" for optional fields; no further
		// rules apply.
		return nil
	}

	switch r.Type {
	case descriptor.FieldTypeShortText, descriptor.FieldTypeLongText:
		return r.evalLength(text)
	case descriptor.FieldTypeEmail:
		return r.evalEmail(text)
	case descriptor.FieldTypePhone:
		return r.evalPhone(text)
	case descriptor.FieldTypeDate:
		return r.evalDate(text, now)
	case descriptor.FieldTypeSelect, descriptor.FieldTypeRadio:
		// The descriptor contract does not require the value to be a member
		// of the declared options; membership is left to the widget layer.
		return nil
	}
	return nil
}

func (r Rule) evalLength(text string) *FieldError {
	length := utf8.RuneCountInString(text)
	if r.MinLen != nil && length < *r.MinLen {
		return r.fail(fmt.Sprintf("%s must be at least %d characters", r.Label, *r.MinLen))
	}
	if r.MaxLen != nil && length > *r.MaxLen {
		return r.fail(fmt.Sprintf("%s must be at most %d characters", r.Label, *r.MaxLen))
	}
	return nil
}

func (r Rule) evalEmail(text string) *FieldError {
	if !emailPattern.MatchString(text) {
		return r.fail(fmt.Sprintf("%s must be a valid email address", r.Label))
	}
	return nil
}

func (r Rule) evalPhone(text string) *FieldError {
	if !phonePattern.MatchString(text) {
		return r.fail(fmt.Sprintf("%s may only contain digits, spaces, hyphens, parentheses, and plus signs", r.Label))
	}
	return r.evalLength(text)
}

func (r Rule) evalDate(text string, now func() time.Time) *FieldError {
	// Format is checked before the calendar and future-date rules so a
	// malformed value never reaches the later checks.
	if !datePattern.MatchString(text) {
		return r.fail(fmt.Sprintf("%s must be a date in YYYY-MM-DD format", r.Label))
	}
	parsed, err := time.ParseInLocation(dateLayout, text, time.Local)
	if err != nil {
		return r.fail(fmt.Sprintf("%s must be a valid calendar date", r.Label))
	}
	current := now()
	today := time.Date(current.Year(), current.Month(), current.Day(), 0, 0, 0, 0, time.Local)
	if parsed.After(today) {
		return r.fail(fmt.Sprintf("%s cannot be in the future", r.Label))
	}
	return nil
}

func (r Rule) evalCheckbox(value any) *FieldError {
	checked, ok := value.(bool)
	if !ok {
		return r.fail(fmt.Sprintf("%s must be true or false", r.Label))
	}
	if r.Required && !checked {
		return r.fail(fmt.Sprintf("%s must be checked", r.Label))
	}
	return nil
}

func (r Rule) fail(defaultMessage string) *FieldError {
	message := defaultMessage
	if r.Message != "" {
		message = r.Message
	}
	return &FieldError{FieldID: r.FieldID, Message: message}
}

// FieldError describes a single failed rule.
type FieldError struct {
	FieldID string
	Message string
}

func (e *FieldError) Error() string {
	return e.FieldID + ": " + e.Message
}
