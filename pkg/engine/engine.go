package engine

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formflow/pkg/descriptor"
	"github.com/goliatone/go-formflow/pkg/rules"
)

// Engine is the session-scoped state machine behind a multi-step form. It
// owns the answer map exclusively: every mutation flows through UpdateField,
// and navigation is gated on the compiled validator. The engine is long-lived
// for the session and cycles back to its initial state after each successful
// submission.
//
// All transitions run synchronously on the caller's goroutine; the engine
// performs no I/O of its own and holds no locks.
type Engine struct {
	form      descriptor.Form
	validator *rules.Validator

	section int
	answers AnswerMap
	// validation maps field id to "" (evaluated, valid) or an error message.
	// Absent entries have not been evaluated yet.
	validation map[string]string

	sink             Sink
	notifier         Notifier
	focuser          Focuser
	validateOnChange bool
	compileOptions   []rules.Option
}

// New compiles the descriptor into a validator, synthesizes default answers,
// and returns an engine positioned at the first section. A malformed
// descriptor is the only fatal failure; everything after construction is
// recoverable.
func New(form descriptor.Form, options ...Option) (*Engine, error) {
	e := &Engine{
		form:             form,
		sink:             nopSink{},
		notifier:         nopNotifier{},
		focuser:          nopFocuser{},
		validateOnChange: true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}

	validator, err := rules.Compile(form, e.compileOptions...)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	e.validator = validator
	e.answers = DefaultAnswers(form)
	e.validation = make(map[string]string)
	return e, nil
}

// Form returns the descriptor the engine was built from.
func (e *Engine) Form() descriptor.Form {
	return e.form
}

// Section returns the current 0-based section index.
func (e *Engine) Section() int {
	return e.section
}

// CurrentSection returns the descriptor of the section the engine is on.
func (e *Engine) CurrentSection() descriptor.Section {
	return e.form.Sections[e.section]
}

// IsFirst reports whether the engine is on the first section.
func (e *Engine) IsFirst() bool {
	return e.section == 0
}

// IsLast reports whether the engine is on the last section.
func (e *Engine) IsLast() bool {
	return e.section == len(e.form.Sections)-1
}

// Value returns the current answer for a field.
func (e *Engine) Value(id string) (any, bool) {
	value, ok := e.answers[id]
	return value, ok
}

// Answers returns a copy of the live answer map. The engine remains the only
// writer of the underlying state.
func (e *Engine) Answers() AnswerMap {
	return e.answers.Clone()
}

// FieldError returns the recorded validation message for a field. The second
// return is false when the field has not been evaluated yet; an empty message
// with true means the field was evaluated and passed.
func (e *Engine) FieldError(id string) (string, bool) {
	message, ok := e.validation[id]
	return message, ok
}

// ValidationErrors returns the currently failing fields and their messages.
func (e *Engine) ValidationErrors() map[string]string {
	out := make(map[string]string)
	for id, message := range e.validation {
		if message != "" {
			out[id] = message
		}
	}
	return out
}

// UpdateField records a new value for a field. In validate-on-change mode the
// field's rule is re-evaluated immediately and its validation state updated;
// there is no other side effect.
func (e *Engine) UpdateField(id string, value any) error {
	if _, ok := e.answers[id]; !ok {
		return fmt.Errorf("engine: unknown field %q", id)
	}
	e.answers[id] = value
	if e.validateOnChange {
		e.recordField(id, e.validator.Field(id, value))
	}
	return nil
}

// Next validates the current section only. When every field passes, the
// engine advances one section (a no-op on the last section) and requests
// focus on the new section. When any field fails, the transition is rejected,
// the section's validation state is populated, and the notifier is invoked;
// the section index does not change.
func (e *Engine) Next(ctx context.Context) bool {
	failures := e.validator.Section(e.section, e.answers)
	e.recordSection(e.section, failures)
	if len(failures) > 0 {
		e.notifier.Notify(ctx, rejectionMessage(len(failures)))
		return false
	}
	if e.IsLast() {
		return false
	}
	e.section++
	e.focuser.FocusSection(ctx, e.section)
	return true
}

// Prev moves back one section. Moving backward is always allowed; no
// validation runs. At the first section this is a no-op.
func (e *Engine) Prev() bool {
	if e.section == 0 {
		return false
	}
	e.section--
	return true
}

// Submit validates the entire answer map. On success the answers are handed
// to the sink and the engine resets to defaults at the first section; the
// sink's outcome is deliberately not consumed. On failure the engine jumps to
// the first section (ascending, first match wins) containing an invalid field
// when that differs from the current one, and the notifier is invoked.
func (e *Engine) Submit(ctx context.Context) bool {
	failures := e.validator.All(e.answers)
	if len(failures) == 0 {
		_ = e.sink.Submit(ctx, e.answers.Clone())
		e.Reset()
		return true
	}

	for index := range e.form.Sections {
		e.recordSection(index, failures)
	}
	if target, ok := e.validator.FirstInvalidSection(e.answers); ok && target != e.section {
		e.section = target
		e.focuser.FocusSection(ctx, target)
	}
	e.notifier.Notify(ctx, rejectionMessage(len(failures)))
	return false
}

// Reset restores the initial state: default answers, first section, nothing
// evaluated.
func (e *Engine) Reset() {
	e.answers = DefaultAnswers(e.form)
	e.validation = make(map[string]string)
	e.section = 0
}

func (e *Engine) recordField(id string, err *rules.FieldError) {
	if err != nil {
		e.validation[id] = err.Message
		return
	}
	e.validation[id] = ""
}

// recordSection marks every field in the section as evaluated, attaching the
// failure message where one exists.
func (e *Engine) recordSection(index int, failures map[string]string) {
	for _, field := range e.form.Sections[index].Fields {
		e.validation[field.ID] = failures[field.ID]
	}
}

func rejectionMessage(count int) string {
	if count == 1 {
		return "Please fix the highlighted field before continuing"
	}
	return fmt.Sprintf("Please fix the %d highlighted fields before continuing", count)
}
