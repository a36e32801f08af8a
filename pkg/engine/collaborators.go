package engine

import "context"

// Sink receives the completed answer map after every field validates. The
// engine does not consume the sink's outcome; it resets regardless, so
// implementations own any retry or error reporting policy.
type Sink interface {
	Submit(ctx context.Context, answers AnswerMap) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, answers AnswerMap) error

func (f SinkFunc) Submit(ctx context.Context, answers AnswerMap) error {
	return f(ctx, answers)
}

// Notifier receives a human-readable message when navigation or submission is
// rejected. Fire-and-forget; the engine never consumes a return value.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, message string)

func (f NotifierFunc) Notify(ctx context.Context, message string) {
	f(ctx, message)
}

// Focuser is asked to scroll or focus a section whenever the engine moves to
// it, so the surrounding UI can follow along.
type Focuser interface {
	FocusSection(ctx context.Context, index int)
}

// FocuserFunc adapts a function to the Focuser interface.
type FocuserFunc func(ctx context.Context, index int)

func (f FocuserFunc) FocusSection(ctx context.Context, index int) {
	f(ctx, index)
}

type nopSink struct{}

func (nopSink) Submit(context.Context, AnswerMap) error { return nil }

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, string) {}

type nopFocuser struct{}

func (nopFocuser) FocusSection(context.Context, int) {}
