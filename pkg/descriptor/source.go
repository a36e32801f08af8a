package descriptor

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"path/filepath"
	"time"
)

// SourceKind discriminates the loading strategy a Source requires.
type SourceKind int

const (
	SourceKindFile SourceKind = iota
	SourceKindFS
	SourceKindURL
)

// Source identifies where a form descriptor lives. Loaders switch on Kind to
// pick a strategy; Location carries the path or URL.
type Source interface {
	Kind() SourceKind
	Location() string
}

// Loader fetches and parses a descriptor from a Source. It is consumed once
// per session, before the engine is constructed.
type Loader interface {
	Load(ctx context.Context, src Source) (Form, error)
}

// LoaderOptions configures a concrete loader implementation.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS lookups.
	FileSystem fs.FS
	// HTTPClient enables SourceKindURL lookups. When nil and AllowHTTPFallback
	// is set, a default client is constructed with RequestTimeout applied.
	HTTPClient        *http.Client
	AllowHTTPFallback bool
	RequestTimeout    time.Duration
}

type fileSource struct {
	path string
}

func (s fileSource) Kind() SourceKind { return SourceKindFile }
func (s fileSource) Location() string { return s.path }

// SourceFromFile returns a Source pointing to an on-disk descriptor.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Kind() SourceKind { return SourceKindFS }
func (s fsSource) Location() string { return s.name }

// SourceFromFS returns a Source identifying a descriptor inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

type urlSource struct {
	raw string
}

func (s urlSource) Kind() SourceKind { return SourceKindURL }
func (s urlSource) Location() string { return s.raw }

// SourceFromURL parses the supplied URL string and returns a Source. It panics
// if the URL is invalid to surface configuration mistakes early.
func SourceFromURL(raw string) Source {
	if raw == "" {
		panic("descriptor: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		panic(fmt.Sprintf("descriptor: invalid URL %q: %v", raw, err))
	}
	return urlSource{raw: raw}
}

// SourceForUser appends the session identity to a descriptor endpoint as a
// query parameter. The identity is always an explicit parameter of the fetch,
// never ambient state.
func SourceForUser(baseURL, param, identity string) (Source, error) {
	parsed, err := url.ParseRequestURI(baseURL)
	if err != nil {
		return nil, fmt.Errorf("descriptor: invalid URL %q: %w", baseURL, err)
	}
	if param == "" || identity == "" {
		return nil, fmt.Errorf("descriptor: identity parameter and value are required")
	}
	query := parsed.Query()
	query.Set(param, identity)
	parsed.RawQuery = query.Encode()
	return urlSource{raw: parsed.String()}, nil
}
