package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-formflow/pkg/descriptor"
	"github.com/goliatone/go-formflow/pkg/engine"
)

// Session walks a form engine through the terminal: it prompts for every
// field in the current section, then drives the engine's navigation. The
// engine keeps full ownership of the answer map and of the gating rules; the
// session is presentation only.
type Session struct {
	driver PromptDriver
	engine *engine.Engine
}

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// NewSession constructs a Session with defaults (survey driver).
func NewSession(eng *engine.Engine, options ...Option) (*Session, error) {
	if eng == nil {
		return nil, errors.New("tui: engine is required")
	}

	driver, err := NewSurveyDriver()
	if err != nil {
		return nil, err
	}
	s := &Session{
		driver: driver,
		engine: eng,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s, nil
}

// Notifier adapts a prompt driver into an engine notifier so rejection
// messages surface on the terminal.
func Notifier(driver PromptDriver) engine.Notifier {
	return engine.NotifierFunc(func(ctx context.Context, message string) {
		_ = driver.Info(ctx, message)
	})
}

// Run prompts section by section until the engine accepts a submission, then
// returns the submitted answers. The engine resets itself after a successful
// submit, so the snapshot is taken just before.
func (s *Session) Run(ctx context.Context) (engine.AnswerMap, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		section := s.engine.CurrentSection()
		if err := s.announce(ctx, section); err != nil {
			return nil, err
		}
		for _, field := range section.Fields {
			if err := s.promptField(ctx, field); err != nil {
				return nil, err
			}
		}

		if s.engine.IsLast() {
			answers := s.engine.Answers()
			if s.engine.Submit(ctx) {
				return answers, nil
			}
			// Submit moved the engine to the first invalid section.
			if err := s.reportErrors(ctx); err != nil {
				return nil, err
			}
			continue
		}

		if !s.engine.Next(ctx) {
			if err := s.reportErrors(ctx); err != nil {
				return nil, err
			}
		}
	}
}

func (s *Session) announce(ctx context.Context, section descriptor.Section) error {
	header := fmt.Sprintf("%s (step %d of %d)", section.Title, s.engine.Section()+1, len(s.engine.Form().Sections))
	if err := s.driver.Info(ctx, header); err != nil {
		return err
	}
	if section.Description != "" {
		return s.driver.Info(ctx, section.Description)
	}
	return nil
}

func (s *Session) promptField(ctx context.Context, field descriptor.Field) error {
	for {
		value, err := s.askOnce(ctx, field)
		if err != nil {
			return err
		}
		if err := s.engine.UpdateField(field.ID, value); err != nil {
			return err
		}
		message, evaluated := s.engine.FieldError(field.ID)
		if !evaluated || message == "" {
			return nil
		}
		if err := s.driver.Info(ctx, fmt.Sprintf("Invalid %s: %s", field.DisplayLabel(), message)); err != nil {
			return err
		}
	}
}

func (s *Session) askOnce(ctx context.Context, field descriptor.Field) (any, error) {
	label := field.DisplayLabel()

	switch field.Type {
	case descriptor.FieldTypeCheckbox:
		current, _ := s.engine.Value(field.ID)
		def, _ := current.(bool)
		return s.driver.Confirm(ctx, ConfirmConfig{
			Message: label,
			Default: def,
		})
	case descriptor.FieldTypeSelect, descriptor.FieldTypeRadio:
		current, _ := s.engine.Value(field.ID)
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      label,
			Options:      optionLabels(field.Options),
			DefaultIndex: optionIndex(field.Options, current),
		})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(field.Options) {
			return "", nil
		}
		return field.Options[idx].Value, nil
	case descriptor.FieldTypeLongText:
		return s.driver.TextArea(ctx, TextAreaConfig{
			Message: label,
			Default: stringAnswer(s.engine, field.ID),
			Help:    field.Placeholder,
		})
	default:
		return s.driver.Input(ctx, InputConfig{
			Message: label,
			Default: stringAnswer(s.engine, field.ID),
			Help:    field.Placeholder,
		})
	}
}

func (s *Session) reportErrors(ctx context.Context) error {
	section := s.engine.CurrentSection()
	for _, field := range section.Fields {
		message, evaluated := s.engine.FieldError(field.ID)
		if !evaluated || message == "" {
			continue
		}
		if err := s.driver.Info(ctx, fmt.Sprintf("  %s: %s", field.DisplayLabel(), message)); err != nil {
			return err
		}
	}
	return nil
}

func stringAnswer(eng *engine.Engine, id string) string {
	if value, ok := eng.Value(id); ok {
		if s, ok := value.(string); ok {
			return s
		}
	}
	return ""
}

func optionLabels(options []descriptor.Option) []string {
	out := make([]string, len(options))
	for i, option := range options {
		if option.Label != "" {
			out[i] = option.Label
		} else {
			out[i] = option.Value
		}
	}
	return out
}

func optionIndex(options []descriptor.Option, current any) int {
	value, ok := current.(string)
	if !ok || value == "" {
		return -1
	}
	for i, option := range options {
		if option.Value == value {
			return i
		}
	}
	return -1
}
