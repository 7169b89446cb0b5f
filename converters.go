package docstore

import (
	"github.com/kailas-cloud/docstore/internal/domain/author"
	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
	"github.com/kailas-cloud/docstore/internal/domain/search/request"
	"github.com/kailas-cloud/docstore/pkg/optional"
)

func toInternalAuthor(a Author) author.Author {
	return author.New(a.ID, a.Name)
}

func fromInternalAuthor(a author.Author) Author {
	return Author{ID: a.ID(), Name: a.Name()}
}

func toInternalDocument(d Document) domdoc.Document {
	return domdoc.New(
		d.ID,
		d.Title,
		d.Content,
		optional.Map(d.Author, toInternalAuthor),
		d.Created,
	)
}

func fromInternalDocument(d *domdoc.Document) Document {
	return Document{
		ID:      d.ID(),
		Title:   d.Title(),
		Content: d.Content(),
		Author:  optional.Map(d.Author(), fromInternalAuthor),
		Created: d.Created(),
	}
}

func fromInternalDocuments(docs []domdoc.Document) []Document {
	out := make([]Document, len(docs))
	for i := range docs {
		out[i] = fromInternalDocument(&docs[i])
	}
	return out
}

func toInternalRequest(r SearchRequest) request.Request {
	return request.New(r.TitlePrefixes, r.ContainsContents, r.AuthorIDs, r.CreatedFrom, r.CreatedTo)
}
