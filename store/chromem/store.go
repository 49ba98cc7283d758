// Package chromem provides a persistent vector store backed by chromem-go.
package chromem

import (
	"context"
	"fmt"
	"runtime"

	chromemgo "github.com/philippgille/chromem-go"
	"github.com/savvyai/guardian/schema"
	"github.com/savvyai/guardian/store"
)

// Store is a vector store implementation using chromem-go.
type Store struct {
	db         *chromemgo.DB
	collection *chromemgo.Collection
}

// NewStore creates a new chromem-backed Store.
// If persistPath is empty, the store is in-memory only.
func NewStore(persistPath string, collectionName string) (*Store, error) {
	var db *chromemgo.DB
	if persistPath != "" {
		var err error
		db, err = chromemgo.NewPersistentDB(persistPath, false)
		if err != nil {
			return nil, fmt.Errorf("failed to create persistent chromem db: %w", err)
		}
	} else {
		db = chromemgo.NewDB()
	}

	// Embeddings are computed upstream and passed explicitly, so no
	// embedding function is registered on the collection.
	collection, err := db.GetOrCreateCollection(collectionName, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create collection: %w", err)
	}

	return &Store{
		db:         db,
		collection: collection,
	}, nil
}

// Add adds documents to the store and returns their IDs.
func (s *Store) Add(ctx context.Context, docs []schema.Document) ([]string, error) {
	chromemDocs := make([]chromemgo.Document, len(docs))
	ids := make([]string, len(docs))

	for i, doc := range docs {
		if doc.ID == "" {
			return nil, fmt.Errorf("document at index %d has no ID", i)
		}
		if len(doc.Embedding) == 0 {
			return nil, fmt.Errorf("document %s has no embedding", doc.ID)
		}

		// chromem-go metadata is map[string]string.
		meta := make(map[string]string, len(doc.Metadata))
		for k, v := range doc.Metadata {
			meta[k] = fmt.Sprintf("%v", v)
		}

		embedding32 := make([]float32, len(doc.Embedding))
		for j, v := range doc.Embedding {
			embedding32[j] = float32(v)
		}

		chromemDocs[i] = chromemgo.Document{
			ID:        doc.ID,
			Content:   doc.Text,
			Metadata:  meta,
			Embedding: embedding32,
		}
		ids[i] = doc.ID
	}

	if err := s.collection.AddDocuments(ctx, chromemDocs, runtime.NumCPU()); err != nil {
		return nil, fmt.Errorf("failed to add documents to chromem collection: %w", err)
	}

	return ids, nil
}

// Query finds the top-k most similar documents to the query embedding.
func (s *Store) Query(ctx context.Context, query schema.VectorStoreQuery) ([]schema.ScoredDocument, error) {
	// chromem-go errors when asked for more results than stored documents.
	topK := query.TopK
	if count := s.collection.Count(); topK > count {
		topK = count
	}
	if topK == 0 {
		return nil, nil
	}

	embedding32 := make([]float32, len(query.Embedding))
	for i, v := range query.Embedding {
		embedding32[i] = float32(v)
	}

	results, err := s.collection.QueryEmbedding(ctx, embedding32, topK, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query chromem collection: %w", err)
	}

	scored := make([]schema.ScoredDocument, len(results))
	for i, res := range results {
		meta := make(map[string]interface{}, len(res.Metadata))
		for k, v := range res.Metadata {
			meta[k] = v
		}
		scored[i] = schema.ScoredDocument{
			Document: schema.Document{
				ID:       res.ID,
				Text:     res.Content,
				Metadata: meta,
			},
			Score: float64(res.Similarity),
		}
	}
	return scored, nil
}

// Delete removes a document from the store by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.collection.Delete(ctx, nil, nil, id); err != nil {
		return fmt.Errorf("failed to delete document %s: %w", id, err)
	}
	return nil
}

var _ store.VectorStore = (*Store)(nil)
