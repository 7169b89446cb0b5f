package docstore

import (
	"time"

	"github.com/kailas-cloud/docstore/pkg/optional"
)

// Author identifies who wrote a document.
type Author struct {
	ID   string
	Name string
}

// Document is a stored record. ID is empty until the first Save.
type Document struct {
	ID      string
	Title   optional.Value[string]
	Content optional.Value[string]
	Author  optional.Value[Author]
	Created optional.Value[time.Time]
}

// SearchRequest holds optional search criteria.
// Nil or empty lists and absent bounds place no constraint.
type SearchRequest struct {
	// TitlePrefixes matches titles starting with any prefix (case-sensitive).
	TitlePrefixes []string
	// ContainsContents matches content containing any substring (case-sensitive).
	ContainsContents []string
	// AuthorIDs matches documents whose author id is listed.
	AuthorIDs []string
	// CreatedFrom is the inclusive lower bound on creation time.
	CreatedFrom optional.Value[time.Time]
	// CreatedTo is the inclusive upper bound on creation time.
	CreatedTo optional.Value[time.Time]
}
