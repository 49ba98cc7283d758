// Package store provides vector stores for nearest-neighbor document search.
package store

import (
	"context"

	"github.com/savvyai/guardian/schema"
)

// VectorStore is the interface for storing and querying document embeddings.
// Implementations must be safe for concurrent reads.
type VectorStore interface {
	// Add adds documents to the store and returns their IDs.
	Add(ctx context.Context, docs []schema.Document) ([]string, error)
	// Query finds the top-k most similar documents to the query embedding,
	// most similar first. Fewer than top-k results is not an error.
	Query(ctx context.Context, query schema.VectorStoreQuery) ([]schema.ScoredDocument, error)
	// Delete removes a document from the store by ID.
	Delete(ctx context.Context, id string) error
}
