// Package fetch downloads resources over HTTP with cache-backed memoization.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"countrycodes-generator/internal/cache"
)

// ErrNetwork wraps transport failures, body read failures and non-2xx responses.
var ErrNetwork = errors.New("network error")

// Doer sends an HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher returns cached bytes when a cache entry exists and downloads them
// otherwise. It never retries.
type Fetcher struct {
	client  Doer
	store   cache.Store
	logger  *zap.Logger
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithLogger sets the logger used to report downloads.
func WithLogger(logger *zap.Logger) Option {
	return func(f *Fetcher) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithTimeout bounds each network request. Zero, the default, means no limit.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// New creates a Fetcher. A nil client means http.DefaultClient; a nil store
// disables caching.
func New(client Doer, store cache.Store, opts ...Option) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}

	f := &Fetcher{
		client: client,
		store:  store,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetch returns the body of url. When cacheKey is non-empty and an entry
// exists under it, the entry is returned as-is and no request is made;
// otherwise the downloaded body is stored under cacheKey.
func (f *Fetcher) Fetch(ctx context.Context, url, cacheKey string) ([]byte, error) {
	caching := cacheKey != "" && f.store != nil

	if caching {
		ok, err := f.store.Has(ctx, cacheKey)
		if err != nil {
			return nil, err
		}

		if ok {
			f.logger.Debug("cache hit", zap.String("key", cacheKey))

			return f.store.Get(ctx, cacheKey)
		}
	}

	f.logger.Info("downloading", zap.String("url", url))

	body, err := f.download(ctx, url)
	if err != nil {
		return nil, err
	}

	if caching {
		if err := f.store.Put(ctx, cacheKey, body); err != nil {
			return nil, err
		}
	}

	return body, nil
}

func (f *Fetcher) download(ctx context.Context, url string) ([]byte, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request for %s: %w", ErrNetwork, url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", ErrNetwork, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: GET %s: unexpected status %s", ErrNetwork, url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body of %s: %w", ErrNetwork, url, err)
	}

	return body, nil
}
