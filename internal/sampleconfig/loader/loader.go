// Package loader implements sampleconfig.Loader with file, fs.FS, and HTTP
// strategies.
package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-runcfg/pkg/sampleconfig"
)

// Loader delegates to a strategy based on the source kind.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// Ensure the implementation satisfies the public interface.
var _ sampleconfig.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options sampleconfig.LoaderOptions) sampleconfig.Loader {
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
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches a document from the provided source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src sampleconfig.Source) (sampleconfig.Document, error) {
	if src == nil {
		return sampleconfig.Document{}, errors.New("sampleconfig loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case sampleconfig.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case sampleconfig.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case sampleconfig.SourceKindURL:
		if !l.allowHTTP {
			return sampleconfig.Document{}, errors.New("sampleconfig loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("sampleconfig loader: unsupported source kind")
	}
	if err != nil {
		return sampleconfig.Document{}, err
	}

	return sampleconfig.NewDocument(src, data)
}
