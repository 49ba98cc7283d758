// Package chat orchestrates retrieval, prompt formatting, generation, and
// guardrail validation for one chat request.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/savvyai/guardian/guardrails"
	"github.com/savvyai/guardian/llm"
	"github.com/savvyai/guardian/prompt"
	"github.com/savvyai/guardian/retriever"
)

// DefaultMaxTokens is the generation budget used when the caller does not
// specify one.
const DefaultMaxTokens = 1024

// ErrInvalidConversation is the base error for client-input failures.
// Transport layers map it to a client-error status.
var ErrInvalidConversation = errors.New("invalid conversation")

var (
	// ErrEmptyConversation is returned for a conversation with no messages.
	ErrEmptyConversation = fmt.Errorf("%w: conversation is empty", ErrInvalidConversation)
	// ErrLastMessageNotUser is returned when the conversation does not end
	// with a user message.
	ErrLastMessageNotUser = fmt.Errorf("%w: last message must be from user", ErrInvalidConversation)
)

// Response is the final answer for one chat request.
type Response struct {
	// Message is the moderated assistant reply.
	Message llm.ChatMessage `json:"message"`
	// Sources lists the documents that contributed retrieved context.
	Sources []retriever.Source `json:"sources,omitempty"`
}

// Retriever is the retrieval capability the engine depends on.
type Retriever interface {
	Retrieve(ctx context.Context, query string) (*retriever.Result, error)
}

// Engine composes the retrieval + validation pipeline.
// It holds no per-request state and is safe for concurrent use.
type Engine struct {
	retriever Retriever
	generator llm.Generator
	guards    *guardrails.Engine
	logger    *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates a new chat Engine.
func NewEngine(ret Retriever, gen llm.Generator, guards *guardrails.Engine, opts ...Option) *Engine {
	e := &Engine{
		retriever: ret,
		generator: gen,
		guards:    guards,
		logger:    slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Chat handles one request end to end: retrieve context for the last user
// message, format the prompt, generate, validate, and package the reply with
// its sources.
//
// A conversation that is empty or does not end with a user message fails
// with an error wrapping ErrInvalidConversation before any retrieval or
// generation happens. A generator failure does not fail the request: it is
// degraded to a textual error reply, since the engine's contract is to
// always produce a chat response or a structured client error.
func (e *Engine) Chat(ctx context.Context, messages []llm.ChatMessage, maxTokens int) (*Response, error) {
	if len(messages) == 0 {
		return nil, ErrEmptyConversation
	}
	last := messages[len(messages)-1]
	if last.Role != llm.MessageRoleUser {
		return nil, ErrLastMessageNotUser
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	query := last.Content
	history := messages[:len(messages)-1]

	result, err := e.retriever.Retrieve(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("retrieval failed: %w", err)
	}

	formatted := prompt.Format(query, result.Context, history)

	rawText, err := e.generator.Generate(ctx, formatted, maxTokens)
	if err != nil {
		e.logger.Error("generation failed, degrading to error reply", "error", err)
		rawText = fmt.Sprintf("I was unable to generate a response: %v", err)
	}

	validated := e.guards.Validate(rawText)

	e.logger.Info("chat handled",
		"history_len", len(history),
		"sources", len(result.Sources),
		"response_len", len(validated))

	return &Response{
		Message: llm.NewAssistantMessage(validated),
		Sources: result.Sources,
	}, nil
}
