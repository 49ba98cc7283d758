package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/savvyai/guardian/embedding"
	"github.com/savvyai/guardian/schema"
)

// MemoryStore is a simple in-memory vector store using cosine similarity.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]schema.Document
}

// NewMemoryStore creates a new MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs: make(map[string]schema.Document),
	}
}

// Add adds documents to the store and returns their IDs.
func (s *MemoryStore) Add(ctx context.Context, docs []schema.Document) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		if doc.ID == "" {
			return nil, errors.New("document ID cannot be empty")
		}
		if len(doc.Embedding) == 0 {
			return nil, fmt.Errorf("document %s has no embedding", doc.ID)
		}
		s.docs[doc.ID] = doc
		ids = append(ids, doc.ID)
	}
	return ids, nil
}

// Query finds the top-k most similar documents to the query embedding.
func (s *MemoryStore) Query(ctx context.Context, query schema.VectorStoreQuery) ([]schema.ScoredDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	scored := make([]schema.ScoredDocument, 0, len(s.docs))
	for id, doc := range s.docs {
		score, err := embedding.CosineSimilarity(query.Embedding, doc.Embedding)
		if err != nil {
			return nil, fmt.Errorf("failed to score document %s: %w", id, err)
		}
		scored = append(scored, schema.ScoredDocument{Document: doc, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if query.TopK > 0 && query.TopK < len(scored) {
		scored = scored[:query.TopK]
	}
	return scored, nil
}

// Delete removes a document from the store by ID.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.docs, id)
	return nil
}

// Len returns the number of stored documents.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.docs)
}

var _ VectorStore = (*MemoryStore)(nil)
