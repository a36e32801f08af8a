package widgets_test

import (
	"testing"

	"github.com/goliatone/go-formflow/pkg/descriptor"
	"github.com/goliatone/go-formflow/pkg/widgets"
)

func TestRegistry_Builtins(t *testing.T) {
	reg := widgets.NewRegistry()

	cases := []struct {
		fieldType descriptor.FieldType
		want      string
	}{
		{descriptor.FieldTypeShortText, widgets.WidgetText},
		{descriptor.FieldTypeLongText, widgets.WidgetTextarea},
		{descriptor.FieldTypeEmail, widgets.WidgetEmail},
		{descriptor.FieldTypePhone, widgets.WidgetTel},
		{descriptor.FieldTypeDate, widgets.WidgetDate},
		{descriptor.FieldTypeSelect, widgets.WidgetSelect},
		{descriptor.FieldTypeRadio, widgets.WidgetRadio},
		{descriptor.FieldTypeCheckbox, widgets.WidgetCheckbox},
	}
	for _, tc := range cases {
		name, ok := reg.Resolve(descriptor.Field{ID: "f", Type: tc.fieldType})
		if !ok {
			t.Errorf("Resolve(%q): no widget", tc.fieldType)
			continue
		}
		if name != tc.want {
			t.Errorf("Resolve(%q) = %q, want %q", tc.fieldType, name, tc.want)
		}
	}
}

func TestRegistry_UnknownType(t *testing.T) {
	reg := widgets.NewRegistry()
	if name, ok := reg.Resolve(descriptor.Field{ID: "f", Type: "slider"}); ok {
		t.Fatalf("expected no widget, got %q", name)
	}
}

func TestRegistry_PriorityOverride(t *testing.T) {
	reg := widgets.NewRegistry()
	reg.Register("markdown-editor", 10, func(field descriptor.Field) bool {
		return field.Type == descriptor.FieldTypeLongText && field.ID == "notes"
	})

	name, ok := reg.Resolve(descriptor.Field{ID: "notes", Type: descriptor.FieldTypeLongText})
	if !ok || name != "markdown-editor" {
		t.Fatalf("Resolve = (%q, %v), want markdown-editor", name, ok)
	}

	// Fields the custom matcher rejects fall through to the built-in.
	name, ok = reg.Resolve(descriptor.Field{ID: "bio", Type: descriptor.FieldTypeLongText})
	if !ok || name != widgets.WidgetTextarea {
		t.Fatalf("Resolve = (%q, %v), want textarea", name, ok)
	}
}

func TestRegistry_TieBreaksOnRegistrationOrder(t *testing.T) {
	reg := widgets.NewRegistry()
	always := func(descriptor.Field) bool { return true }
	reg.Register("first", 5, always)
	reg.Register("second", 5, always)

	name, ok := reg.Resolve(descriptor.Field{ID: "f", Type: descriptor.FieldTypeShortText})
	if !ok || name != "first" {
		t.Fatalf("Resolve = (%q, %v), want the earlier registration", name, ok)
	}
}
