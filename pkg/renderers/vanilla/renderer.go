package vanilla

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formflow/pkg/descriptor"
	"github.com/goliatone/go-formflow/pkg/render"
	"github.com/goliatone/go-formflow/pkg/render/template"
	"github.com/goliatone/go-formflow/pkg/widgets"
)

// Renderer emits plain HTML for one section of a form: one widget family per
// field type, inline error chrome, and prev/next/submit controls wired to the
// engine's navigation semantics. Descriptor-supplied descriptions may carry
// markup and are sanitized before they reach the page.
type Renderer struct {
	widgets   *widgets.Registry
	policy    *bluemonday.Policy
	templates template.TemplateRenderer
	chrome    string
}

// Option configures the vanilla renderer.
type Option func(*Renderer)

// WithWidgetRegistry overrides the widget resolution registry.
func WithWidgetRegistry(registry *widgets.Registry) Option {
	return func(r *Renderer) {
		if registry != nil {
			r.widgets = registry
		}
	}
}

// WithSanitizer overrides the policy applied to descriptor descriptions.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(r *Renderer) {
		if policy != nil {
			r.policy = policy
		}
	}
}

// WithTemplates wraps the rendered section in the named chrome template. The
// template receives the section body pre-rendered under "body".
func WithTemplates(templates template.TemplateRenderer, name string) Option {
	return func(r *Renderer) {
		r.templates = templates
		r.chrome = strings.TrimSpace(name)
	}
}

// New constructs a vanilla HTML renderer with default widgets and a UGC
// sanitization policy.
func New(options ...Option) *Renderer {
	r := &Renderer{
		widgets: widgets.NewRegistry(),
		policy:  bluemonday.UGCPolicy(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "vanilla"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return "text/html"
}

// Render produces the markup for the section selected by
// options.SectionIndex, clamped into the descriptor's range.
func (r *Renderer) Render(ctx context.Context, form descriptor.Form, options render.Options) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("vanilla: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := form.Validate(); err != nil {
		return nil, fmt.Errorf("vanilla: %w", err)
	}

	index := options.SectionIndex
	if index < 0 {
		index = 0
	}
	if index >= len(form.Sections) {
		index = len(form.Sections) - 1
	}
	section := form.Sections[index]

	var b strings.Builder
	b.Grow(1024)

	if style := cssVarsStyle(options.Theme); style != "" {
		b.WriteString("<style>")
		b.WriteString(style)
		b.WriteString("</style>\n")
	}

	fmt.Fprintf(&b, "<form method=\"post\" class=\"formflow%s\" data-form-id=%q data-section-id=%q data-section-index=\"%d\">\n",
		themeClass(options.Theme), html.EscapeString(form.ID), html.EscapeString(section.ID), index)

	r.writeHeader(&b, form, section, index)

	for _, field := range section.Fields {
		if err := r.writeField(&b, field, options); err != nil {
			return nil, err
		}
	}

	for _, hidden := range render.SortedHiddenFields(options.Hidden) {
		fmt.Fprintf(&b, "<input type=\"hidden\" name=%q value=%q>\n",
			html.EscapeString(hidden.Name), html.EscapeString(hidden.Value))
	}

	r.writeNav(&b, index, len(form.Sections))
	b.WriteString("</form>\n")

	body := b.String()
	if r.templates != nil && r.chrome != "" {
		wrapped, err := r.templates.Render(r.chrome, map[string]any{
			"title":        form.Title,
			"sectionTitle": section.Title,
			"sectionIndex": index,
			"sectionCount": len(form.Sections),
			"body":         body,
		})
		if err != nil {
			return nil, fmt.Errorf("vanilla: render chrome: %w", err)
		}
		body = wrapped
	}

	return []byte(body), nil
}

func (r *Renderer) writeHeader(b *strings.Builder, form descriptor.Form, section descriptor.Section, index int) {
	if form.Title != "" {
		fmt.Fprintf(b, "<h1>%s</h1>\n", html.EscapeString(form.Title))
	}
	fmt.Fprintf(b, "<p class=\"form-progress\">Step %d of %d</p>\n", index+1, len(form.Sections))
	if section.Title != "" {
		fmt.Fprintf(b, "<h2>%s</h2>\n", html.EscapeString(section.Title))
	}
	if section.Description != "" {
		if clean := strings.TrimSpace(r.policy.Sanitize(section.Description)); clean != "" {
			fmt.Fprintf(b, "<div class=\"section-description\">%s</div>\n", clean)
		}
	}
}

func (r *Renderer) writeNav(b *strings.Builder, index, count int) {
	b.WriteString("<div class=\"form-nav\">\n")
	if index > 0 {
		b.WriteString("<button type=\"button\" data-action=\"prev\">Back</button>\n")
	}
	if index < count-1 {
		b.WriteString("<button type=\"button\" data-action=\"next\">Next</button>\n")
	} else {
		b.WriteString("<button type=\"submit\" data-action=\"submit\">Submit</button>\n")
	}
	b.WriteString("</div>\n")
}
