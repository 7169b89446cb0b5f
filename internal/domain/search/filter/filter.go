package filter

import (
	"strings"
	"time"

	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
	"github.com/kailas-cloud/docstore/internal/domain/search/request"
	"github.com/kailas-cloud/docstore/pkg/optional"
)

var _ domdoc.Matcher = Expression{}

// Condition is one predicate group evaluated against a document.
type Condition interface {
	// Name identifies the group in search logs.
	Name() string
	Matches(doc *domdoc.Document) bool
}

// Expression is the AND of its conditions. An empty expression matches everything.
type Expression struct {
	must []Condition
}

// NewExpression creates an Expression from conditions.
func NewExpression(must ...Condition) Expression {
	return Expression{must: must}
}

// FromRequest builds an Expression, skipping criteria that constrain nothing.
func FromRequest(req *request.Request) Expression {
	var must []Condition
	if len(req.TitlePrefixes()) > 0 {
		must = append(must, NewTitlePrefix(req.TitlePrefixes()))
	}
	if len(req.ContainsContents()) > 0 {
		must = append(must, NewContentContains(req.ContainsContents()))
	}
	if len(req.AuthorIDs()) > 0 {
		must = append(must, NewAuthorIn(req.AuthorIDs()))
	}
	if req.CreatedFrom().IsPresent() || req.CreatedTo().IsPresent() {
		must = append(must, NewCreatedBetween(req.CreatedFrom(), req.CreatedTo()))
	}
	return NewExpression(must...)
}

// Must returns the conditions.
func (e Expression) Must() []Condition { return e.must }

// Names returns the condition names in evaluation order.
func (e Expression) Names() []string {
	names := make([]string, 0, len(e.must))
	for _, c := range e.must {
		names = append(names, c.Name())
	}
	return names
}

// Matches reports whether doc passes every condition.
func (e Expression) Matches(doc *domdoc.Document) bool {
	for _, c := range e.must {
		if !c.Matches(doc) {
			return false
		}
	}
	return true
}

// TitlePrefix matches documents whose title starts with any prefix (case-sensitive).
type TitlePrefix struct {
	prefixes []string
}

// NewTitlePrefix creates a TitlePrefix condition.
func NewTitlePrefix(prefixes []string) TitlePrefix {
	return TitlePrefix{prefixes: prefixes}
}

// Name implements Condition.
func (TitlePrefix) Name() string { return "title_prefix" }

// Matches implements Condition. An empty prefix list matches everything;
// otherwise an absent title never matches.
func (c TitlePrefix) Matches(doc *domdoc.Document) bool {
	if len(c.prefixes) == 0 {
		return true
	}
	title, ok := doc.Title().Get()
	if !ok {
		return false
	}
	for _, p := range c.prefixes {
		if strings.HasPrefix(title, p) {
			return true
		}
	}
	return false
}

// ContentContains matches documents whose content contains any substring (case-sensitive).
type ContentContains struct {
	substrings []string
}

// NewContentContains creates a ContentContains condition.
func NewContentContains(substrings []string) ContentContains {
	return ContentContains{substrings: substrings}
}

// Name implements Condition.
func (ContentContains) Name() string { return "content_contains" }

// Matches implements Condition.
func (c ContentContains) Matches(doc *domdoc.Document) bool {
	if len(c.substrings) == 0 {
		return true
	}
	content, ok := doc.Content().Get()
	if !ok {
		return false
	}
	for _, s := range c.substrings {
		if strings.Contains(content, s) {
			return true
		}
	}
	return false
}

// AuthorIn matches documents whose author id is in the set.
type AuthorIn struct {
	ids map[string]struct{}
}

// NewAuthorIn creates an AuthorIn condition.
func NewAuthorIn(ids []string) AuthorIn {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return AuthorIn{ids: set}
}

// Name implements Condition.
func (AuthorIn) Name() string { return "author_in" }

// Matches implements Condition.
func (c AuthorIn) Matches(doc *domdoc.Document) bool {
	if len(c.ids) == 0 {
		return true
	}
	a, ok := doc.Author().Get()
	if !ok {
		return false
	}
	_, found := c.ids[a.ID()]
	return found
}

// CreatedBetween matches documents created within [from, to]. Both bounds are
// inclusive and either may be absent.
type CreatedBetween struct {
	from optional.Value[time.Time]
	to   optional.Value[time.Time]
}

// NewCreatedBetween creates a CreatedBetween condition.
func NewCreatedBetween(from, to optional.Value[time.Time]) CreatedBetween {
	return CreatedBetween{from: from, to: to}
}

// Name implements Condition.
func (CreatedBetween) Name() string { return "created_between" }

// Matches implements Condition. A document without a creation time fails any
// present bound.
func (c CreatedBetween) Matches(doc *domdoc.Document) bool {
	from, hasFrom := c.from.Get()
	to, hasTo := c.to.Get()
	if !hasFrom && !hasTo {
		return true
	}
	created, ok := doc.Created().Get()
	if !ok {
		return false
	}
	if hasFrom && created.Before(from) {
		return false
	}
	if hasTo && created.After(to) {
		return false
	}
	return true
}
