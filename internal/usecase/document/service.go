package document

import (
	"context"
	"time"

	"go.uber.org/zap"

	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
	"github.com/kailas-cloud/docstore/internal/domain/search/filter"
	"github.com/kailas-cloud/docstore/internal/domain/search/request"
	logpkg "github.com/kailas-cloud/docstore/internal/logger"
	"github.com/kailas-cloud/docstore/pkg/optional"
)

// Service implements Save, FindByID and Search over a Repository.
type Service struct {
	repo    Repository
	ids     IDGenerator
	now     func() time.Time
	metrics Metrics
	logger  *zap.Logger
}

// New creates a document service.
func New(repo Repository, ids IDGenerator) *Service {
	return &Service{
		repo:   repo,
		ids:    ids,
		now:    time.Now,
		logger: zap.NewNop(),
	}
}

// WithClock overrides the time source used for new documents.
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// WithMetrics attaches an operation recorder.
func (s *Service) WithMetrics(m Metrics) *Service {
	s.metrics = m
	return s
}

// WithLogger sets the logger used when the context carries none.
func (s *Service) WithLogger(l *zap.Logger) *Service {
	if l != nil {
		s.logger = l
	}
	return s
}

// Save upserts doc. A document without an id gets a generated id and the
// current time as its creation time. If a document already exists under the
// id, its creation time wins over whatever the caller passed.
func (s *Service) Save(ctx context.Context, doc domdoc.Document) domdoc.Document {
	if doc.IsNew() {
		doc = doc.WithID(s.ids.NewID())
		doc = doc.WithCreated(optional.Of(s.now()))
	}

	stored, created := s.repo.Upsert(ctx, doc)
	if s.metrics != nil {
		s.metrics.ObserveSave(created)
	}

	logpkg.FromContext(ctx, s.logger).Debug("document saved",
		zap.String("id", stored.ID()),
		zap.Bool("created", created),
	)
	return stored
}

// FindByID returns the document stored under id. A missing id is not an error.
func (s *Service) FindByID(ctx context.Context, id string) (domdoc.Document, bool) {
	doc, ok := s.repo.Get(ctx, id)
	if s.metrics != nil {
		s.metrics.ObserveLookup(ok)
	}
	return doc, ok
}

// Search returns every document matching req. An absent or empty request
// returns every stored document. Order is unspecified.
func (s *Service) Search(ctx context.Context, req optional.Value[request.Request]) []domdoc.Document {
	log := logpkg.FromContext(ctx, s.logger)

	var docs []domdoc.Document
	if r, ok := req.Get(); ok && !r.IsEmpty() {
		expr := filter.FromRequest(&r)
		docs = s.repo.Search(ctx, expr)
		log.Debug("documents searched",
			zap.Strings("conditions", expr.Names()),
			zap.Int("results", len(docs)),
		)
	} else {
		docs = s.repo.Search(ctx, nil)
		log.Debug("documents listed", zap.Int("results", len(docs)))
	}

	if s.metrics != nil {
		s.metrics.ObserveSearch(len(docs))
	}
	return docs
}

// Count returns the number of stored documents.
func (s *Service) Count(ctx context.Context) int {
	return s.repo.Count(ctx)
}
