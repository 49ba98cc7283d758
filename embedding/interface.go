// Package embedding provides text embedding models for similarity search.
package embedding

import "context"

// Model is the interface for generating text embeddings.
type Model interface {
	// EmbedText generates an embedding for a document text.
	EmbedText(ctx context.Context, text string) ([]float64, error)
	// EmbedQuery generates an embedding for a query.
	// This is often the same as EmbedText, but some models treat them differently.
	EmbedQuery(ctx context.Context, query string) ([]float64, error)
}
