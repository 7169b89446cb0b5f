package docstore

import (
	"context"
	"time"

	"github.com/kailas-cloud/docstore/pkg/optional"
)

// SearchBuilder is a fluent builder for search requests.
type SearchBuilder struct {
	store *Store
	req   SearchRequest
}

// TitlePrefix accepts titles starting with any of prefixes.
func (b *SearchBuilder) TitlePrefix(prefixes ...string) *SearchBuilder {
	b.req.TitlePrefixes = append(b.req.TitlePrefixes, prefixes...)
	return b
}

// Contains accepts content containing any of substrings.
func (b *SearchBuilder) Contains(substrings ...string) *SearchBuilder {
	b.req.ContainsContents = append(b.req.ContainsContents, substrings...)
	return b
}

// Author accepts documents by any of the given author ids.
func (b *SearchBuilder) Author(ids ...string) *SearchBuilder {
	b.req.AuthorIDs = append(b.req.AuthorIDs, ids...)
	return b
}

// CreatedFrom sets the inclusive lower bound on creation time.
func (b *SearchBuilder) CreatedFrom(t time.Time) *SearchBuilder {
	b.req.CreatedFrom = optional.Of(t)
	return b
}

// CreatedTo sets the inclusive upper bound on creation time.
func (b *SearchBuilder) CreatedTo(t time.Time) *SearchBuilder {
	b.req.CreatedTo = optional.Of(t)
	return b
}

// Request returns the request built so far.
func (b *SearchBuilder) Request() SearchRequest {
	return b.req
}

// Do executes the search.
func (b *SearchBuilder) Do(ctx context.Context) []Document {
	return b.store.Search(ctx, optional.Of(b.req))
}
