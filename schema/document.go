// Package schema defines the shared data types for the guardian service.
package schema

import (
	"github.com/google/uuid"
)

// Document represents a chunk of knowledge-base text.
type Document struct {
	ID        string                 `json:"id"`
	Text      string                 `json:"text"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Embedding []float64              `json:"embedding,omitempty"`
}

// NewDocument creates a new Document with a generated ID.
func NewDocument(text string) *Document {
	return &Document{
		ID:       uuid.New().String(),
		Text:     text,
		Metadata: make(map[string]interface{}),
	}
}

// ScoredDocument is a document paired with a similarity score.
type ScoredDocument struct {
	Document Document `json:"document"`
	Score    float64  `json:"score"`
}

// VectorStoreQuery is a nearest-neighbor query against a vector store.
type VectorStoreQuery struct {
	// Embedding is the query vector.
	Embedding []float64
	// TopK is the maximum number of results to return.
	TopK int
}
