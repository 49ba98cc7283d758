package embedding

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIModel implements the Model interface using the OpenAI embeddings API.
type OpenAIModel struct {
	client *openai.Client
	model  openai.EmbeddingModel
	logger *slog.Logger
}

// NewOpenAIModel creates a new OpenAI embedding model.
// If apiKey is empty, OPENAI_API_KEY is used.
func NewOpenAIModel(apiKey string, modelName string) *OpenAIModel {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	model := openai.SmallEmbedding3
	if modelName != "" {
		model = openai.EmbeddingModel(modelName)
	}

	return &OpenAIModel{
		client: openai.NewClient(apiKey),
		model:  model,
		logger: slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

// NewOpenAIModelWithClient creates an OpenAIModel with a custom client.
func NewOpenAIModelWithClient(client *openai.Client, modelName string) *OpenAIModel {
	model := openai.SmallEmbedding3
	if modelName != "" {
		model = openai.EmbeddingModel(modelName)
	}

	return &OpenAIModel{
		client: client,
		model:  model,
		logger: slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

// EmbedText generates an embedding for a document text.
func (o *OpenAIModel) EmbedText(ctx context.Context, text string) ([]float64, error) {
	return o.getEmbedding(ctx, text)
}

// EmbedQuery generates an embedding for a query.
func (o *OpenAIModel) EmbedQuery(ctx context.Context, query string) ([]float64, error) {
	return o.getEmbedding(ctx, query)
}

func (o *OpenAIModel) getEmbedding(ctx context.Context, input string) ([]float64, error) {
	resp, err := o.client.CreateEmbeddings(
		ctx,
		openai.EmbeddingRequest{
			Input: []string{input},
			Model: o.model,
		},
	)
	if err != nil {
		o.logger.Error("embedding request failed", "model", o.model, "error", err)
		return nil, fmt.Errorf("openai embedding failed: %w", err)
	}

	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("openai returned no embeddings")
	}

	embedding := make([]float64, len(resp.Data[0].Embedding))
	for i, v := range resp.Data[0].Embedding {
		embedding[i] = float64(v)
	}
	return embedding, nil
}

var _ Model = (*OpenAIModel)(nil)
