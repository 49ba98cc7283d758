package llm

import (
	"context"
	"fmt"
	"strings"
)

// Canned answers returned by the mock backend for recognized topics.
const (
	mockRAGAnswer = "RAG (Retrieval Augmented Generation) is a technique that enhances AI generation " +
		"by first retrieving relevant information from a knowledge base. It helps LLMs provide " +
		"more factual and contextual responses."
	mockGuardrailAnswer = "Guardrails are safety mechanisms that ensure AI outputs meet specific criteria " +
		"like safety, relevance, and quality. They help prevent harmful, off-topic, or low-quality responses."
	mockKubernetesAnswer = "Kubernetes is an open-source platform for automating deployment, scaling, and " +
		"management of containerized applications. It groups containers into logical units for easy " +
		"management and discovery."
)

// MockGenerator is a rule-based Generator used for demos and tests.
// It dispatches on keywords in the user query and needs no external services.
type MockGenerator struct {
	// Response, if set, is returned for every prompt.
	Response string
	// Err, if set, is returned for every prompt.
	Err error
}

// NewMockGenerator creates a new rule-based MockGenerator.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// NewMockGeneratorWithResponse creates a MockGenerator with a fixed response.
func NewMockGeneratorWithResponse(response string) *MockGenerator {
	return &MockGenerator{Response: response}
}

// NewMockGeneratorWithError creates a MockGenerator that always fails.
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{Err: err}
}

// Generate produces a canned completion for the prompt, truncated to the
// token budget.
func (m *MockGenerator) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if m.Response != "" {
		return TruncateTokens(m.Response, maxTokens), nil
	}

	query := lastUserQuery(prompt)
	lower := strings.ToLower(query)

	var response string
	switch {
	case strings.Contains(lower, "rag"):
		response = mockRAGAnswer
	case strings.Contains(lower, "guardrail"):
		response = mockGuardrailAnswer
	case strings.Contains(lower, "kubernetes"):
		response = mockKubernetesAnswer
	default:
		topic := query
		if runes := []rune(topic); len(runes) > 30 {
			topic = string(runes[:30])
		}
		response = fmt.Sprintf("I understand your query about %s... Based on the retrieved information "+
			"and my knowledge, I can provide a comprehensive explanation. "+
			"[This would be a detailed response in a real implementation]", topic)
	}

	return TruncateTokens(response, maxTokens), nil
}

// lastUserQuery extracts the final user query from a formatted prompt.
// Prompts end with "User: <query>\nAssistant: " (see the prompt package).
func lastUserQuery(prompt string) string {
	idx := strings.LastIndex(prompt, "User: ")
	if idx < 0 {
		return prompt
	}
	query := prompt[idx+len("User: "):]
	if end := strings.Index(query, "\nAssistant:"); end >= 0 {
		query = query[:end]
	}
	return query
}

var _ Generator = (*MockGenerator)(nil)
