package llm

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIGenerator implements the Generator interface for hosted OpenAI models.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

// NewOpenAIGenerator creates a new OpenAI-backed Generator.
// If apiKey is empty, OPENAI_API_KEY is used.
func NewOpenAIGenerator(model, apiKey string) *OpenAIGenerator {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}

	return &OpenAIGenerator{
		client: openai.NewClient(apiKey),
		model:  model,
		logger: slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

// NewOpenAIGeneratorWithClient creates an OpenAIGenerator with a custom client.
func NewOpenAIGeneratorWithClient(client *openai.Client, model string) *OpenAIGenerator {
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}

	return &OpenAIGenerator{
		client: client,
		model:  model,
		logger: slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

// Generate produces a completion for the prompt via the chat completions API.
func (o *OpenAIGenerator) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	o.logger.Info("Generate called", "model", o.model, "prompt_len", len(prompt))

	resp, err := o.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:     o.model,
			MaxTokens: maxTokens,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		},
	)
	if err != nil {
		o.logger.Error("Generate failed", "error", err)
		return "", fmt.Errorf("openai completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

var _ Generator = (*OpenAIGenerator)(nil)
