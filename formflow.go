package formflow

import (
	"context"

	"github.com/goliatone/go-formflow/internal/descriptor/loader"
	"github.com/goliatone/go-formflow/pkg/descriptor"
	"github.com/goliatone/go-formflow/pkg/engine"
	"github.com/goliatone/go-formflow/pkg/render"
	"github.com/goliatone/go-formflow/pkg/renderers/tui"
)

// Form is the root descriptor type: an ordered list of sections plus identity
// metadata, as decoded from a JSON or YAML payload.
type Form = descriptor.Form

// Section groups the fields shown together as one step of a form.
type Section = descriptor.Section

// Field describes a single input inside a section.
type Field = descriptor.Field

// FieldType is the closed set of input kinds a descriptor may declare.
type FieldType = descriptor.FieldType

// Source identifies where a descriptor lives (file, fs.FS entry, or URL).
type Source = descriptor.Source

// AnswerMap holds the engine's working answers keyed by field id.
type AnswerMap = engine.AnswerMap

// Engine drives section navigation, validation, and submission for one form.
type Engine = engine.Engine

// RenderOptions carries per-render overrides: section index, prefilled
// values, server-side errors, hidden inputs, and theme configuration.
type RenderOptions = render.Options

// LoadForm fetches a descriptor from the given source and returns the parsed,
// validated form. Loader behavior (filesystem, HTTP fallback, timeouts) comes
// from the supplied options.
func LoadForm(ctx context.Context, src Source, options descriptor.LoaderOptions) (Form, error) {
	return loader.New(options).Load(ctx, src)
}

// NewEngine compiles the form's validation rules and returns an engine seeded
// with default answers, positioned on the first section.
func NewEngine(form Form, options ...engine.Option) (*Engine, error) {
	return engine.New(form, options...)
}

// Fill runs an interactive terminal session over the form and returns the
// submitted answers. Section rejection messages are routed to the prompt
// driver so the user sees why navigation was blocked.
func Fill(ctx context.Context, form Form, options ...engine.Option) (AnswerMap, error) {
	driver, err := tui.NewSurveyDriver()
	if err != nil {
		return nil, err
	}

	opts := append([]engine.Option{engine.WithNotifier(tui.Notifier(driver))}, options...)
	eng, err := engine.New(form, opts...)
	if err != nil {
		return nil, err
	}

	session, err := tui.NewSession(eng, tui.WithPromptDriver(driver))
	if err != nil {
		return nil, err
	}
	return session.Run(ctx)
}
