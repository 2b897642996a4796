package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"countrycodes-generator/internal/cache"
	"countrycodes-generator/internal/common"
	"countrycodes-generator/internal/csvtable"
)

// Fetcher downloads a URL, memoizing the body under cacheKey.
type Fetcher interface {
	Fetch(ctx context.Context, url, cacheKey string) ([]byte, error)
}

// Assembler merges the country list with per-country sub-codes.
type Assembler struct {
	fetcher Fetcher
	store   cache.Store
	source  Source
	workers int
	logger  *zap.Logger

	mu      sync.Mutex
	dropped map[string]int // ISO2 -> sub-code rows without description
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithWorkers sets how many countries are assembled concurrently.
// Values below 2 keep assembly sequential.
func WithWorkers(n int) Option {
	return func(a *Assembler) {
		a.workers = n
	}
}

// WithLogger sets the assembler's logger.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Assembler) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAssembler creates an Assembler. The store holds the merged dataset; a nil
// store disables that cache.
func NewAssembler(fetcher Fetcher, store cache.Store, source Source, opts ...Option) *Assembler {
	a := &Assembler{
		fetcher: fetcher,
		store:   store,
		source:  source,
		workers: 1,
		logger:  zap.NewNop(),
		dropped: make(map[string]int),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// AssembleAll returns every country with its city and national codes, in
// country list order. When cacheKey is already stored, its content is decoded
// and returned without touching the network.
func (a *Assembler) AssembleAll(ctx context.Context, cacheKey string) ([]CountryRecordFull, error) {
	if records, ok, err := a.cached(ctx, cacheKey); err != nil || ok {
		return records, err
	}

	a.mu.Lock()
	a.dropped = make(map[string]int)
	a.mu.Unlock()

	countries, err := a.countries(ctx)
	if err != nil {
		return nil, err
	}

	a.logger.Info("assembling countries",
		zap.Int("countries", len(countries)),
		zap.Int("workers", a.workers))

	full := make([]CountryRecordFull, len(countries))

	if a.workers <= 1 {
		for i, c := range countries {
			full[i], err = a.assemble(ctx, c)
			if err != nil {
				return nil, err
			}
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(a.workers)

		for i, c := range countries {
			g.Go(func() error {
				rec, err := a.assemble(gctx, c)
				if err != nil {
					return err
				}

				full[i] = rec

				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	if err := a.save(ctx, cacheKey, full); err != nil {
		return nil, err
	}

	return full, nil
}

// Dropped returns, per ISO2 code, how many sub-code rows the last assembly
// discarded for lacking a description.
func (a *Assembler) Dropped() map[string]int {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make(map[string]int, len(a.dropped))
	for k, v := range a.dropped {
		out[k] = v
	}

	return out
}

func (a *Assembler) cached(ctx context.Context, key string) ([]CountryRecordFull, bool, error) {
	if a.store == nil || key == "" {
		return nil, false, nil
	}

	has, err := a.store.Has(ctx, key)
	if err != nil || !has {
		return nil, false, err
	}

	data, err := a.store.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}

	var records []CountryRecordFull
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, false, fmt.Errorf("decoding cached dataset %s: %w", key, err)
	}

	a.logger.Debug("dataset loaded from cache",
		zap.String("key", key),
		zap.Int("countries", len(records)))

	return records, true, nil
}

func (a *Assembler) save(ctx context.Context, key string, records []CountryRecordFull) error {
	if a.store == nil || key == "" {
		return nil
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding dataset: %w", err)
	}

	return a.store.Put(ctx, key, data)
}

func (a *Assembler) countries(ctx context.Context) ([]CountryRecord, error) {
	ep := a.source.CountryList()

	text, err := a.download(ctx, ep)
	if err != nil {
		return nil, err
	}

	countries, err := ParseCountries(text)
	if err != nil {
		return nil, fmt.Errorf("parsing country list: %w", err)
	}

	return countries, nil
}

func (a *Assembler) assemble(ctx context.Context, c CountryRecord) (CountryRecordFull, error) {
	city, cityDropped, err := a.subCodes(ctx, a.source.CityCodes(c.ISO2))
	if err != nil {
		return CountryRecordFull{}, fmt.Errorf("city codes for %s: %w", c.ISO2, err)
	}

	national, nationalDropped, err := a.subCodes(ctx, a.source.NationalCodes(c.ISO2))
	if err != nil {
		return CountryRecordFull{}, fmt.Errorf("national codes for %s: %w", c.ISO2, err)
	}

	if n := cityDropped + nationalDropped; n > 0 {
		a.mu.Lock()
		a.dropped[c.ISO2] = n
		a.mu.Unlock()
	}

	return CountryRecordFull{
		CountryRecord: c,
		CityCodes:     city,
		NationalCodes: national,
	}, nil
}

func (a *Assembler) subCodes(ctx context.Context, ep Endpoint) ([]SubCode, int, error) {
	text, err := a.download(ctx, ep)
	if err != nil {
		return nil, 0, err
	}

	codes, err := ParseSubCodes(text)
	if err != nil {
		return nil, 0, err
	}

	kept := common.Filter(codes, func(c SubCode) bool {
		return c.Description != ""
	})

	return kept, len(codes) - len(kept), nil
}

func (a *Assembler) download(ctx context.Context, ep Endpoint) (string, error) {
	data, err := a.fetcher.Fetch(ctx, ep.URL, ep.CacheKey)
	if err != nil {
		return "", err
	}

	return csvtable.DecodeLatin1(data)
}
