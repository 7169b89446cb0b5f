// Package docstore is an in-memory document repository with upsert,
// point lookup and multi-criteria filtered search.
//
// # Basic use
//
//	store, err := docstore.New()
//	if err != nil {
//	    return err
//	}
//	doc := store.Save(ctx, docstore.Document{
//	    Title:  optional.Of("ABC Doc"),
//	    Author: optional.Of(docstore.Author{ID: "author1", Name: "John Doe"}),
//	})
//	found, ok := store.FindByID(ctx, doc.ID)
//
// # Search
//
// Every criterion is optional. Criteria are ANDed together; values inside a
// single criterion are ORed.
//
//	docs := store.Search(ctx, optional.Of(docstore.SearchRequest{
//	    TitlePrefixes: []string{"ABC"},
//	    CreatedFrom:   optional.Of(time.Now().Add(-time.Hour)),
//	}))
//
// or with the fluent builder:
//
//	docs := store.Find().TitlePrefix("ABC").Author("author1").Do(ctx)
//
// An absent request returns every stored document. Result order is unspecified.
package docstore
