package pipeline

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"go.uber.org/zap"

	"countrycodes-generator/internal/cache"
	"countrycodes-generator/internal/common"
	"countrycodes-generator/internal/config"
	"countrycodes-generator/internal/dataset"
	"countrycodes-generator/internal/diagnostic"
	"countrycodes-generator/internal/fetch"
	"countrycodes-generator/internal/gen"
	"countrycodes-generator/value"
)

// Output naming.
const (
	aggregateStem = "countrycodes"
	exportPrefix  = "countrycodes"
)

// Summary describes a finished run.
type Summary struct {
	Countries int
	Modules   int
	Warnings  int
}

// Pipeline generates the country code library.
type Pipeline struct {
	assembler  *dataset.Assembler
	source     dataset.Source
	libraryDir string
	logger     *zap.Logger
}

// New creates a Pipeline writing into libraryDir.
func New(assembler *dataset.Assembler, source dataset.Source, libraryDir string, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Pipeline{
		assembler:  assembler,
		source:     source,
		libraryDir: libraryDir,
		logger:     logger,
	}
}

// FromConfig wires the store, fetcher and assembler described by cfg.
func FromConfig(cfg *config.Config, client fetch.Doer, logger *zap.Logger) (*Pipeline, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if client == nil {
		client = &http.Client{}
	}

	store, err := NewStore(cfg.Cache)
	if err != nil {
		return nil, err
	}

	fetcher := fetch.New(client, store,
		fetch.WithLogger(logger.Named("fetch")),
		fetch.WithTimeout(cfg.Timeout))

	source := dataset.Source{BaseURL: cfg.BaseURL, Dir: cfg.SourceDir}

	assembler := dataset.NewAssembler(fetcher, store, source,
		dataset.WithWorkers(cfg.Workers),
		dataset.WithLogger(logger.Named("dataset")))

	return New(assembler, source, cfg.LibraryDir, logger), nil
}

// NewStore builds the configured cache backend, wrapped in an in-memory
// memo when MemoSize is positive.
func NewStore(cfg config.CacheConfig) (cache.Store, error) {
	var store cache.Store

	switch cfg.Backend {
	case config.BackendFile, "":
		store = cache.NewFileStore()
	case config.BackendS3:
		s3, err := cache.NewS3Store(cache.S3Config{
			Endpoint:  cfg.S3.Endpoint,
			Region:    cfg.S3.Region,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			Bucket:    cfg.S3.Bucket,
			Prefix:    cfg.S3.Prefix,
			UseSSL:    cfg.S3.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("creating s3 cache: %w", err)
		}

		store = s3
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}

	if cfg.MemoSize > 0 {
		memo, err := cache.NewMemo(store, cfg.MemoSize)
		if err != nil {
			return nil, err
		}

		return memo, nil
	}

	return store, nil
}

// Run assembles the dataset and writes every module. It stops at the first
// failure and leaves already written files in place.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	records, err := p.assembler.AssembleAll(ctx, p.source.Aggregate())
	if err != nil {
		return nil, fmt.Errorf("assembling dataset: %w", err)
	}

	if common.IsEmpty(records) {
		p.logger.Warn("country list is empty")
	}

	err = gen.WriteJSON(filepath.Join(p.libraryDir, aggregateStem+".json"), records)
	if err != nil {
		return nil, fmt.Errorf("writing aggregate list: %w", err)
	}

	all, err := value.Of(records)
	if err != nil {
		return nil, fmt.Errorf("converting dataset: %w", err)
	}

	if err := gen.WriteModule(p.libraryDir, aggregateStem, exportPrefix, all); err != nil {
		return nil, fmt.Errorf("writing aggregate module: %w", err)
	}

	modules := 1

	for _, r := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		v, err := value.Of(r)
		if err != nil {
			return nil, fmt.Errorf("converting %s: %w", r.ISO2, err)
		}

		err = gen.WriteModule(p.libraryDir, aggregateStem+"-"+r.ISO2, exportPrefix+r.ISO2, v)
		if err != nil {
			return nil, fmt.Errorf("writing module for %s: %w", r.ISO2, err)
		}

		modules++
	}

	p.logger.Info("modules written",
		zap.String("dir", p.libraryDir),
		zap.Int("modules", modules))

	diags := p.assembler.Check(records)
	p.report(diags)

	return &Summary{
		Countries: len(records),
		Modules:   modules,
		Warnings:  len(diags.Warnings),
	}, nil
}

func (p *Pipeline) report(diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fields := []zap.Field{
			zap.String("code", d.Code),
			zap.String("country", d.Country),
		}
		if d.Field != "" {
			fields = append(fields, zap.String("field", d.Field))
		}

		switch d.Severity {
		case diagnostic.DiagnosticError:
			p.logger.Error(d.Message, fields...)
		case diagnostic.DiagnosticWarning:
			p.logger.Warn(d.Message, fields...)
		default:
			p.logger.Debug(d.Message, fields...)
		}
	}
}
