package document

import (
	"time"

	"github.com/kailas-cloud/docstore/internal/domain/author"
	"github.com/kailas-cloud/docstore/pkg/optional"
)

// Document is the document aggregate (immutable value object).
// Every field except id may be absent; an empty id means "not yet saved".
type Document struct {
	id      string
	title   optional.Value[string]
	content optional.Value[string]
	author  optional.Value[author.Author]
	created optional.Value[time.Time]
}

// Matcher decides whether a document belongs to a result set.
type Matcher interface {
	Matches(doc *Document) bool
}

// New creates a Document. Nothing is validated: absent title, content, author
// and created are all legal.
func New(
	id string,
	title, content optional.Value[string],
	a optional.Value[author.Author],
	created optional.Value[time.Time],
) Document {
	return Document{id: id, title: title, content: content, author: a, created: created}
}

// ID returns the document identifier ("" until first save).
func (d *Document) ID() string { return d.id }

// Title returns the title, if any.
func (d *Document) Title() optional.Value[string] { return d.title }

// Content returns the text content, if any.
func (d *Document) Content() optional.Value[string] { return d.content }

// Author returns the author, if any.
func (d *Document) Author() optional.Value[author.Author] { return d.author }

// Created returns the creation timestamp, if any.
func (d *Document) Created() optional.Value[time.Time] { return d.created }

// IsNew reports whether the document has no identifier yet.
func (d *Document) IsNew() bool { return d.id == "" }

// WithID returns a copy with the given identifier.
func (d *Document) WithID(id string) Document {
	c := *d
	c.id = id
	return c
}

// WithCreated returns a copy with the given creation timestamp.
func (d *Document) WithCreated(created optional.Value[time.Time]) Document {
	c := *d
	c.created = created
	return c
}

// Equal reports whether two documents hold the same values.
// Timestamps are compared with time.Time.Equal.
func (d *Document) Equal(o *Document) bool {
	if d.id != o.id || d.title != o.title || d.content != o.content || d.author != o.author {
		return false
	}
	dt, dok := d.created.Get()
	ot, ook := o.created.Get()
	if dok != ook {
		return false
	}
	return !dok || dt.Equal(ot)
}
