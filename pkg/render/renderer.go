package render

import (
	"context"

	"github.com/goliatone/go-formflow/pkg/descriptor"
)

// Renderer converts one section of a form descriptor into a byte
// representation (HTML, terminal output, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form descriptor.Form, options Options) ([]byte, error)
}
