// Package retriever turns user queries into retrieved context for generation.
package retriever

import (
	"context"
	"fmt"
	"strings"

	"github.com/savvyai/guardian/embedding"
	"github.com/savvyai/guardian/schema"
	"github.com/savvyai/guardian/store"
)

const (
	// DefaultTopK is the default number of documents to retrieve.
	DefaultTopK = 3
	// ExcerptLength is the number of characters kept in a source excerpt.
	ExcerptLength = 100
)

// Source identifies a document that contributed to the retrieved context.
type Source struct {
	// ID is the document identifier.
	ID string `json:"id"`
	// Content is a truncated excerpt of the document text.
	Content string `json:"content"`
}

// Result is the outcome of a retrieval: the context string fed to the
// generator and the sources it was assembled from, in relevance order.
type Result struct {
	Context string
	Sources []Source
}

// Retriever retrieves semantically relevant context from a vector store.
type Retriever struct {
	store      store.VectorStore
	embedModel embedding.Model
	topK       int
}

// Option configures a Retriever.
type Option func(*Retriever)

// WithTopK sets the number of documents to retrieve.
func WithTopK(topK int) Option {
	return func(r *Retriever) {
		r.topK = topK
	}
}

// New creates a new Retriever.
func New(vectorStore store.VectorStore, embedModel embedding.Model, opts ...Option) *Retriever {
	r := &Retriever{
		store:      vectorStore,
		embedModel: embedModel,
		topK:       DefaultTopK,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Retrieve embeds the query, finds the top-k most similar documents, and
// shapes them into a Result. Fewer hits than top-k, including zero, is not
// an error: the result simply carries less or no context.
func (r *Retriever) Retrieve(ctx context.Context, query string) (*Result, error) {
	if query == "" {
		return nil, fmt.Errorf("query must not be empty")
	}

	queryEmbedding, err := r.embedModel.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	scored, err := r.store.Query(ctx, schema.VectorStoreQuery{
		Embedding: queryEmbedding,
		TopK:      r.topK,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query vector store: %w", err)
	}

	parts := make([]string, 0, len(scored))
	sources := make([]Source, 0, len(scored))
	for _, s := range scored {
		parts = append(parts, s.Document.Text)
		sources = append(sources, Source{
			ID:      s.Document.ID,
			Content: excerpt(s.Document.Text),
		})
	}

	return &Result{
		Context: strings.Join(parts, "\n\n"),
		Sources: sources,
	}, nil
}

// excerpt truncates text to the first ExcerptLength characters and appends
// an ellipsis marker.
func excerpt(text string) string {
	runes := []rune(text)
	if len(runes) > ExcerptLength {
		runes = runes[:ExcerptLength]
	}
	return string(runes) + "..."
}
