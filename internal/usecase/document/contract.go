package document

import (
	"context"

	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
)

// Repository defines the storage contract for documents.
type Repository interface {
	Upsert(ctx context.Context, doc domdoc.Document) (stored domdoc.Document, created bool)
	Get(ctx context.Context, id string) (domdoc.Document, bool)
	Search(ctx context.Context, m domdoc.Matcher) []domdoc.Document
	Count(ctx context.Context) int
}

// IDGenerator produces identifiers for documents saved without one.
type IDGenerator interface {
	NewID() string
}

// Metrics records operation outcomes. *metrics.Store satisfies it.
type Metrics interface {
	ObserveSave(created bool)
	ObserveLookup(found bool)
	ObserveSearch(results int)
}
