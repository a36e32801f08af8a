package render

import theme "github.com/goliatone/go-theme"

// Options describe per-request data renderers can use without touching the
// descriptor or the engine.
type Options struct {
	// SectionIndex selects which section to render. Renderers clamp it into
	// the descriptor's range.
	SectionIndex int
	// Values pre-populates rendered controls, keyed by field id. Typically
	// sourced from Engine.Answers.
	Values map[string]any
	// Errors surfaces validation feedback keyed by field id, typically from
	// Engine.ValidationErrors. Renderers map these into inline error chrome.
	Errors map[string]string
	// Hidden fields are emitted alongside the visible controls (CSRF tokens,
	// descriptor version, and similar).
	Hidden map[string]string
	// Theme carries resolved go-theme tokens and CSS variables for renderers
	// that honour them.
	Theme *theme.RendererConfig
}
