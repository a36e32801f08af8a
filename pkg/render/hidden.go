package render

import (
	"fmt"
	"sort"
	"strings"
)

// HiddenField is a hidden input emitted alongside the visible section, used
// for values the server needs back untouched: CSRF tokens, the descriptor
// version, routing hints.
type HiddenField struct {
	Name  string
	Value string
}

// Hidden builds a HiddenField from an arbitrary name/value pair.
func Hidden(name string, value any) HiddenField {
	return HiddenField{Name: strings.TrimSpace(name), Value: fmt.Sprint(value)}
}

// CSRFToken builds the hidden field carrying an anti-forgery token. The input
// name is caller-supplied to match whatever the backend expects.
func CSRFToken(name, token string) HiddenField {
	return Hidden(name, token)
}

// VersionField builds the hidden field carrying the descriptor version, so a
// submission can be matched to the form revision it was rendered from.
func VersionField(name string, version any) HiddenField {
	return Hidden(name, version)
}

// MergeHiddenFields overlays fields onto a base map. Names are trimmed and
// empty names dropped; on collision the last field wins. Returns nil when
// nothing survives, so callers can treat "no hidden fields" uniformly.
func MergeHiddenFields(base map[string]string, fields ...HiddenField) map[string]string {
	merged := make(map[string]string, len(base)+len(fields))
	for name, value := range base {
		if key := strings.TrimSpace(name); key != "" {
			merged[key] = value
		}
	}
	for _, field := range fields {
		if key := strings.TrimSpace(field.Name); key != "" {
			merged[key] = field.Value
		}
	}
	if len(merged) == 0 {
		return nil
	}
	return merged
}

// SortedHiddenFields flattens the map into name-sorted fields so rendered
// markup is deterministic. Empty names are dropped; nil in, nil out.
func SortedHiddenFields(fields map[string]string) []HiddenField {
	// Trim first so two spellings of the same name collapse before sorting.
	deduped := MergeHiddenFields(fields)
	if deduped == nil {
		return nil
	}
	out := make([]HiddenField, 0, len(deduped))
	for name, value := range deduped {
		out = append(out, HiddenField{Name: name, Value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
