package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formflow/pkg/descriptor"
)

// Built-in widget identifiers. Each maps one field type onto exactly one
// widget family; renderers bind the widget's value/change handling to the
// engine's field-update operation.
const (
	WidgetText     = "text"
	WidgetTextarea = "textarea"
	WidgetEmail    = "email"
	WidgetTel      = "tel"
	WidgetDate     = "date"
	WidgetSelect   = "select"
	WidgetRadio    = "radio"
	WidgetCheckbox = "checkbox"
)

// Matcher decides whether a widget should handle the supplied field.
type Matcher func(field descriptor.Field) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry resolves the widget family for a field. Higher priority wins; ties
// fall back to registration order, so the built-in per-type matchers act as
// the floor custom widgets can override.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in type matchers
// registered at priority zero.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a widget matcher. Higher priority values take precedence over
// the built-ins.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget name for a field.
func (r *Registry) Resolve(field descriptor.Field) (string, bool) {
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	if len(rules) == 0 {
		return "", false
	}

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.name, true
		}
	}
	return "", false
}

func (r *Registry) registerBuiltins() {
	byType := func(t descriptor.FieldType) Matcher {
		return func(field descriptor.Field) bool {
			return field.Type == t
		}
	}

	r.Register(WidgetText, 0, byType(descriptor.FieldTypeShortText))
	r.Register(WidgetTextarea, 0, byType(descriptor.FieldTypeLongText))
	r.Register(WidgetEmail, 0, byType(descriptor.FieldTypeEmail))
	r.Register(WidgetTel, 0, byType(descriptor.FieldTypePhone))
	r.Register(WidgetDate, 0, byType(descriptor.FieldTypeDate))
	r.Register(WidgetSelect, 0, byType(descriptor.FieldTypeSelect))
	r.Register(WidgetRadio, 0, byType(descriptor.FieldTypeRadio))
	r.Register(WidgetCheckbox, 0, byType(descriptor.FieldTypeCheckbox))
}
