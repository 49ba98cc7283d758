// Package ingest loads, chunks, embeds, and indexes knowledge-base content.
package ingest

import (
	"fmt"

	"github.com/savvyai/guardian/schema"
)

// SeedDocuments returns the built-in demo knowledge base.
// IDs follow the doc_<n> convention so responses cite stable sources.
func SeedDocuments() []schema.Document {
	texts := []string{
		"RAG (Retrieval Augmented Generation) is a technique that enhances LLM responses by first retrieving relevant information.",
		"Guardrails provide safety mechanisms for LLM outputs to prevent harmful content.",
		"Kubernetes is an open-source platform for managing containerized workloads and services.",
		"Docker containers package up code and all its dependencies so the application runs quickly and reliably.",
		"Python is a high-level, interpreted programming language known for its readability and versatility.",
	}

	docs := make([]schema.Document, len(texts))
	for i, text := range texts {
		docs[i] = schema.Document{
			ID:   fmt.Sprintf("doc_%d", i),
			Text: text,
		}
	}
	return docs
}
