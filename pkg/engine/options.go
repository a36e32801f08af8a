package engine

import (
	"time"

	"github.com/goliatone/go-formflow/pkg/rules"
)

// Option configures the engine at construction time.
type Option func(*Engine)

// WithSink wires the submission collaborator invoked after a fully valid
// submit.
func WithSink(sink Sink) Option {
	return func(e *Engine) {
		if sink != nil {
			e.sink = sink
		}
	}
}

// WithNotifier wires the collaborator that surfaces aggregate failure
// messages on rejected navigation or submission.
func WithNotifier(notifier Notifier) Option {
	return func(e *Engine) {
		if notifier != nil {
			e.notifier = notifier
		}
	}
}

// WithFocuser wires the collaborator asked to scroll/focus a section whenever
// the engine moves to it.
func WithFocuser(focuser Focuser) Option {
	return func(e *Engine) {
		if focuser != nil {
			e.focuser = focuser
		}
	}
}

// WithValidateOnChange controls whether UpdateField re-evaluates the field
// immediately. Enabled by default.
func WithValidateOnChange(enabled bool) Option {
	return func(e *Engine) {
		e.validateOnChange = enabled
	}
}

// WithNow overrides the clock used by date rules, forwarded to rule
// compilation. Primarily for tests.
func WithNow(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.compileOptions = append(e.compileOptions, rules.WithNow(now))
		}
	}
}
