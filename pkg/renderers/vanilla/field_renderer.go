package vanilla

import (
	"fmt"
	"html"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formflow/pkg/descriptor"
	"github.com/goliatone/go-formflow/pkg/render"
	"github.com/goliatone/go-formflow/pkg/widgets"
)

func (r *Renderer) writeField(b *strings.Builder, field descriptor.Field, options render.Options) error {
	widget, ok := r.widgets.Resolve(field)
	if !ok {
		return fmt.Errorf("vanilla: no widget for field %q of type %q", field.ID, field.Type)
	}

	message := options.Errors[field.ID]
	fmt.Fprintf(b, "<div class=\"form-field\" data-widget=%q", widget)
	if message != "" {
		b.WriteString(` data-invalid="true"`)
	}
	b.WriteString(">\n")

	// Checkboxes render the control before the label; everything else labels
	// first.
	if widget == widgets.WidgetCheckbox {
		r.writeCheckbox(b, field, options, message)
	} else {
		fmt.Fprintf(b, "<label for=%q>%s</label>\n", html.EscapeString(field.ID), html.EscapeString(field.DisplayLabel()))
		switch widget {
		case widgets.WidgetTextarea:
			r.writeTextarea(b, field, options, message)
		case widgets.WidgetSelect:
			r.writeSelect(b, field, options, message)
		case widgets.WidgetRadio:
			r.writeRadio(b, field, options, message)
		default:
			r.writeInput(b, widget, field, options, message)
		}
	}

	if message != "" {
		fmt.Fprintf(b, "<p class=\"field-error\" id=\"%s-error\">%s</p>\n",
			html.EscapeString(field.ID), html.EscapeString(message))
	}
	b.WriteString("</div>\n")
	return nil
}

func (r *Renderer) writeInput(b *strings.Builder, widget string, field descriptor.Field, options render.Options, message string) {
	fmt.Fprintf(b, "<input type=%q id=%q name=%q value=%q",
		inputType(widget), html.EscapeString(field.ID), html.EscapeString(field.ID),
		html.EscapeString(stringValue(options.Values, field.ID)))
	if field.Placeholder != "" {
		fmt.Fprintf(b, " placeholder=%q", html.EscapeString(field.Placeholder))
	}
	writeConstraintAttrs(b, field)
	writeValidityAttrs(b, field, message)
	b.WriteString(">\n")
}

func (r *Renderer) writeTextarea(b *strings.Builder, field descriptor.Field, options render.Options, message string) {
	fmt.Fprintf(b, "<textarea id=%q name=%q", html.EscapeString(field.ID), html.EscapeString(field.ID))
	if field.Placeholder != "" {
		fmt.Fprintf(b, " placeholder=%q", html.EscapeString(field.Placeholder))
	}
	writeConstraintAttrs(b, field)
	writeValidityAttrs(b, field, message)
	fmt.Fprintf(b, ">%s</textarea>\n", html.EscapeString(stringValue(options.Values, field.ID)))
}

func (r *Renderer) writeSelect(b *strings.Builder, field descriptor.Field, options render.Options, message string) {
	selected := stringValue(options.Values, field.ID)
	fmt.Fprintf(b, "<select id=%q name=%q", html.EscapeString(field.ID), html.EscapeString(field.ID))
	writeValidityAttrs(b, field, message)
	b.WriteString(">\n")
	if selected == "" {
		placeholder := field.Placeholder
		if placeholder == "" {
			placeholder = "Select an option"
		}
		fmt.Fprintf(b, "<option value=\"\" selected disabled>%s</option>\n", html.EscapeString(placeholder))
	}
	for _, option := range field.Options {
		fmt.Fprintf(b, "<option value=%q", html.EscapeString(option.Value))
		if option.Value == selected {
			b.WriteString(" selected")
		}
		fmt.Fprintf(b, ">%s</option>\n", html.EscapeString(option.Label))
	}
	b.WriteString("</select>\n")
}

func (r *Renderer) writeRadio(b *strings.Builder, field descriptor.Field, options render.Options, message string) {
	selected := stringValue(options.Values, field.ID)
	b.WriteString("<div class=\"radio-group\" role=\"radiogroup\">\n")
	for i, option := range field.Options {
		id := fmt.Sprintf("%s-%d", field.ID, i)
		fmt.Fprintf(b, "<input type=\"radio\" id=%q name=%q value=%q",
			html.EscapeString(id), html.EscapeString(field.ID), html.EscapeString(option.Value))
		if option.Value == selected && selected != "" {
			b.WriteString(" checked")
		}
		writeValidityAttrs(b, field, message)
		b.WriteString(">\n")
		fmt.Fprintf(b, "<label for=%q>%s</label>\n", html.EscapeString(id), html.EscapeString(option.Label))
	}
	b.WriteString("</div>\n")
}

func (r *Renderer) writeCheckbox(b *strings.Builder, field descriptor.Field, options render.Options, message string) {
	fmt.Fprintf(b, "<input type=\"checkbox\" id=%q name=%q value=\"true\"",
		html.EscapeString(field.ID), html.EscapeString(field.ID))
	if boolValue(options.Values, field.ID) {
		b.WriteString(" checked")
	}
	writeValidityAttrs(b, field, message)
	b.WriteString(">\n")
	fmt.Fprintf(b, "<label for=%q>%s</label>\n", html.EscapeString(field.ID), html.EscapeString(field.DisplayLabel()))
}

func writeConstraintAttrs(b *strings.Builder, field descriptor.Field) {
	if field.MinLength != nil {
		fmt.Fprintf(b, " minlength=\"%d\"", *field.MinLength)
	}
	if field.MaxLength != nil {
		fmt.Fprintf(b, " maxlength=\"%d\"", *field.MaxLength)
	}
}

func writeValidityAttrs(b *strings.Builder, field descriptor.Field, message string) {
	if field.Required {
		b.WriteString(" required")
	}
	if message != "" {
		fmt.Fprintf(b, " aria-invalid=\"true\" aria-describedby=\"%s-error\"", html.EscapeString(field.ID))
	}
}

func inputType(widget string) string {
	switch widget {
	case widgets.WidgetEmail:
		return "email"
	case widgets.WidgetTel:
		return "tel"
	case widgets.WidgetDate:
		return "date"
	default:
		return "text"
	}
}

func stringValue(values map[string]any, id string) string {
	if raw, ok := values[id]; ok {
		if s, ok := raw.(string); ok {
			return s
		}
	}
	return ""
}

func boolValue(values map[string]any, id string) bool {
	if raw, ok := values[id]; ok {
		if v, ok := raw.(bool); ok {
			return v
		}
	}
	return false
}

func themeClass(cfg *theme.RendererConfig) string {
	if cfg == nil || cfg.Theme == "" {
		return ""
	}
	class := " theme-" + cfg.Theme
	if cfg.Variant != "" {
		class += " theme-" + cfg.Theme + "--" + cfg.Variant
	}
	return class
}

func cssVarsStyle(cfg *theme.RendererConfig) string {
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(cfg.CSSVars))
	for key := range cfg.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(cfg.CSSVars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
