package document

import (
	"context"
	"sync"

	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
)

// Repo is the in-memory document storage. It implements usecase/document.Repository.
// Upsert holds the write lock for its whole read-then-write, so the stored
// creation time of an id can never be overwritten by a concurrent save.
type Repo struct {
	mu   sync.RWMutex
	docs map[string]domdoc.Document
}

// New creates an empty document repository.
func New() *Repo {
	return &Repo{docs: make(map[string]domdoc.Document)}
}

// Upsert stores doc under its id, keeping the creation time of any document
// already stored there. Returns the stored document and whether it was created.
func (r *Repo) Upsert(_ context.Context, doc domdoc.Document) (domdoc.Document, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.docs[doc.ID()]
	if exists {
		doc = doc.WithCreated(existing.Created())
	}
	r.docs[doc.ID()] = doc
	return doc, !exists
}

// Get returns the document stored under id.
func (r *Repo) Get(_ context.Context, id string) (domdoc.Document, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[id]
	return doc, ok
}

// Search returns every document accepted by m. A nil matcher accepts all.
// Order is unspecified.
func (r *Repo) Search(_ context.Context, m domdoc.Matcher) []domdoc.Document {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domdoc.Document, 0, len(r.docs))
	for id := range r.docs {
		doc := r.docs[id]
		if m == nil || m.Matches(&doc) {
			out = append(out, doc)
		}
	}
	return out
}

// Count returns the number of stored documents.
func (r *Repo) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.docs)
}
