package request

import (
	"slices"
	"time"

	"github.com/kailas-cloud/docstore/pkg/optional"
)

// Request is a set of optional search criteria.
// An empty list or an absent bound places no constraint on that dimension.
type Request struct {
	titlePrefixes    []string
	containsContents []string
	authorIDs        []string
	createdFrom      optional.Value[time.Time]
	createdTo        optional.Value[time.Time]
}

// New creates a Request. Input slices are copied.
// No validation: a range with from after to is legal and simply matches nothing.
func New(
	titlePrefixes, containsContents, authorIDs []string,
	createdFrom, createdTo optional.Value[time.Time],
) Request {
	return Request{
		titlePrefixes:    slices.Clone(titlePrefixes),
		containsContents: slices.Clone(containsContents),
		authorIDs:        slices.Clone(authorIDs),
		createdFrom:      createdFrom,
		createdTo:        createdTo,
	}
}

// TitlePrefixes returns the accepted title prefixes.
func (r *Request) TitlePrefixes() []string { return r.titlePrefixes }

// ContainsContents returns the accepted content substrings.
func (r *Request) ContainsContents() []string { return r.containsContents }

// AuthorIDs returns the accepted author identifiers.
func (r *Request) AuthorIDs() []string { return r.authorIDs }

// CreatedFrom returns the inclusive lower bound on creation time.
func (r *Request) CreatedFrom() optional.Value[time.Time] { return r.createdFrom }

// CreatedTo returns the inclusive upper bound on creation time.
func (r *Request) CreatedTo() optional.Value[time.Time] { return r.createdTo }

// IsEmpty reports whether the request constrains nothing.
func (r *Request) IsEmpty() bool {
	return len(r.titlePrefixes) == 0 &&
		len(r.containsContents) == 0 &&
		len(r.authorIDs) == 0 &&
		!r.createdFrom.IsPresent() &&
		!r.createdTo.IsPresent()
}
