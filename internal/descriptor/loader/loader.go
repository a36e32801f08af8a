package loader

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/goliatone/go-formflow/pkg/descriptor"
)

// Loader implements descriptor.Loader by delegating to file, fs.FS, or HTTP
// strategies depending on the source kind.
type Loader struct {
	fs        fsHolder
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

var _ descriptor.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options descriptor.LoaderOptions) descriptor.Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        fsHolder{fsys: options.FileSystem},
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches the descriptor payload and parses it into a validated Form.
func (l *Loader) Load(ctx context.Context, src descriptor.Source) (descriptor.Form, error) {
	if src == nil {
		return descriptor.Form{}, errors.New("descriptor loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case descriptor.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case descriptor.SourceKindFS:
		data, err = l.fs.load(ctx, src.Location())
	case descriptor.SourceKindURL:
		if !l.allowHTTP {
			return descriptor.Form{}, errors.New("descriptor loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("descriptor loader: unsupported source kind")
	}
	if err != nil {
		return descriptor.Form{}, err
	}

	return descriptor.Parse(data)
}
