package docstore

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/docstore/internal/config"
	"github.com/kailas-cloud/docstore/internal/idgen"
	logpkg "github.com/kailas-cloud/docstore/internal/logger"
	"github.com/kailas-cloud/docstore/internal/metrics"
	documentrepo "github.com/kailas-cloud/docstore/internal/repository/document"
	documentuc "github.com/kailas-cloud/docstore/internal/usecase/document"
	"github.com/kailas-cloud/docstore/internal/version"
	"github.com/kailas-cloud/docstore/pkg/optional"
)

// Store is an in-memory document repository. Each Store owns its documents;
// there is no shared package-level state. Safe for concurrent use.
type Store struct {
	svc *documentuc.Service
}

// New creates an empty Store.
func New(opts ...Option) (*Store, error) {
	cfg := &storeConfig{
		ids:    idgen.UUID(),
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	svc := documentuc.New(documentrepo.New(), cfg.ids).
		WithClock(cfg.now).
		WithLogger(cfg.logger)

	if cfg.metricsReg != nil {
		m, err := metrics.NewStore(cfg.metricsReg)
		if err != nil {
			return nil, fmt.Errorf("docstore: %w", err)
		}
		svc = svc.WithMetrics(m)
	}

	return &Store{svc: svc}, nil
}

// Open creates a Store configured from config/<env>.yaml. An empty env reads
// the ENV variable, defaulting to "local".
//
// Metrics, when enabled, are registered on prometheus.DefaultRegisterer.
// Stores opened in one process share those collectors. opts are applied after
// the configuration, so WithMetrics can point a store at its own registry.
func Open(env string, opts ...Option) (*Store, error) {
	if env == "" {
		env = config.GetEnv()
	}

	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("docstore: load config: %w", err)
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("docstore: create logger: %w", err)
	}

	ids, err := idgen.New(cfg.Store.IDGenerator)
	if err != nil {
		return nil, fmt.Errorf("docstore: %w", err)
	}

	base := []Option{
		optionFunc(func(c *storeConfig) { c.ids = ids }),
		WithLogger(logger),
	}
	if cfg.Metrics.Enabled {
		base = append(base, WithMetrics(prometheus.DefaultRegisterer))
	}

	s, err := New(append(base, opts...)...)
	if err != nil {
		return nil, err
	}

	logger.Info("Document store opened",
		zap.String("version", version.Version),
		zap.String("env", env),
		zap.String("id_generator", cfg.Store.IDGenerator),
		zap.Bool("metrics", cfg.Metrics.Enabled),
	)
	return s, nil
}

// Save upserts doc and returns it as stored.
//
// A document with an empty ID gets a fresh identifier and the current time as
// Created. A document saved under an ID that already exists keeps the stored
// Created regardless of what the caller passed.
func (s *Store) Save(ctx context.Context, doc Document) Document {
	stored := s.svc.Save(ctx, toInternalDocument(doc))
	return fromInternalDocument(&stored)
}

// FindByID returns the document stored under id and whether it exists.
func (s *Store) FindByID(ctx context.Context, id string) (Document, bool) {
	doc, ok := s.svc.FindByID(ctx, id)
	if !ok {
		return Document{}, false
	}
	return fromInternalDocument(&doc), true
}

// Search returns every document matching req, or every document if req is absent.
func (s *Store) Search(ctx context.Context, req optional.Value[SearchRequest]) []Document {
	return fromInternalDocuments(s.svc.Search(ctx, optional.Map(req, toInternalRequest)))
}

// Len returns the number of stored documents.
func (s *Store) Len(ctx context.Context) int {
	return s.svc.Count(ctx)
}

// Find starts a fluent search against the store.
func (s *Store) Find() *SearchBuilder {
	return &SearchBuilder{store: s}
}
