// Package prompt assembles generation-ready prompts from conversation state.
package prompt

import (
	"strings"

	"github.com/savvyai/guardian/llm"
)

// Format assembles the conversation history, retrieved context, and current
// query into a single prompt string. The layout is fixed: the generator
// conditions on it, so every byte matters.
//
// Token-budget enforcement belongs to the generator, not this layer.
func Format(query string, context string, history []llm.ChatMessage) string {
	var b strings.Builder

	for _, msg := range history {
		b.WriteString(string(msg.Role))
		b.WriteString(": ")
		b.WriteString(msg.Content)
		b.WriteString("\n")
	}

	if context != "" {
		b.WriteString("\nRelevant information:\n")
		b.WriteString(context)
		b.WriteString("\n\n")
	}

	b.WriteString("User: ")
	b.WriteString(query)
	b.WriteString("\nAssistant: ")

	return b.String()
}
