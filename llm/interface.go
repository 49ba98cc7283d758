// Package llm provides the text-generation abstraction for the guardian
// service and its backend implementations.
package llm

import "context"

// Generator is the interface for text-completion backends.
// Implementations are responsible for enforcing the maxTokens budget.
type Generator interface {
	// Generate produces a completion for the given prompt.
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}
