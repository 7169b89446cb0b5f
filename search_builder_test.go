package docstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kailas-cloud/docstore/pkg/optional"
)

func TestSearchBuilder_Request(t *testing.T) {
	from := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, 2, 15, 0, 0, 0, 0, time.UTC)

	req := newTestStore(t).Find().
		TitlePrefix("ABC", "DEF").
		Contains("different").
		Author("author1").
		Author("author2").
		CreatedFrom(from).
		CreatedTo(to).
		Request()

	assert.Equal(t, SearchRequest{
		TitlePrefixes:    []string{"ABC", "DEF"},
		ContainsContents: []string{"different"},
		AuthorIDs:        []string{"author1", "author2"},
		CreatedFrom:      optional.Of(from),
		CreatedTo:        optional.Of(to),
	}, req)
}

func TestSearchBuilder_Do(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	s.Save(ctx, Document{ID: "a", Title: optional.Of("ABC Doc"), Author: optional.Of(author1)})
	s.Save(ctx, Document{ID: "b", Title: optional.Of("ABC Doc"), Author: optional.Of(author2)})
	s.Save(ctx, Document{ID: "c", Title: optional.Of("XYZ Doc"), Author: optional.Of(author1)})

	assert.Equal(t, []string{"a"}, docIDs(s.Find().TitlePrefix("ABC").Author("author1").Do(ctx)))
	assert.ElementsMatch(t, []string{"a", "b", "c"}, docIDs(s.Find().Do(ctx)))
}
