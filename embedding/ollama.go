package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
)

const (
	// OllamaDefaultURL is the default Ollama API endpoint.
	OllamaDefaultURL = "http://localhost:11434"
	// OllamaDefaultModel is the default embedding model.
	OllamaDefaultModel = "nomic-embed-text"
)

// OllamaModel implements the Model interface using Ollama's embeddings API.
type OllamaModel struct {
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *slog.Logger
}

// OllamaOption configures an OllamaModel.
type OllamaOption func(*OllamaModel)

// WithOllamaBaseURL sets the base URL.
func WithOllamaBaseURL(baseURL string) OllamaOption {
	return func(o *OllamaModel) {
		o.baseURL = baseURL
	}
}

// WithOllamaModel sets the model.
func WithOllamaModel(model string) OllamaOption {
	return func(o *OllamaModel) {
		o.model = model
	}
}

// WithOllamaHTTPClient sets a custom HTTP client.
func WithOllamaHTTPClient(client *http.Client) OllamaOption {
	return func(o *OllamaModel) {
		o.httpClient = client
	}
}

// NewOllamaModel creates a new Ollama embedding model.
func NewOllamaModel(opts ...OllamaOption) *OllamaModel {
	o := &OllamaModel{
		baseURL:    OllamaDefaultURL,
		model:      OllamaDefaultModel,
		httpClient: http.DefaultClient,
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

type ollamaEmbeddingRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type ollamaEmbeddingResponse struct {
	Embedding []float64 `json:"embedding"`
}

// EmbedText generates an embedding for a document text.
func (o *OllamaModel) EmbedText(ctx context.Context, text string) ([]float64, error) {
	return o.getEmbedding(ctx, text)
}

// EmbedQuery generates an embedding for a query.
func (o *OllamaModel) EmbedQuery(ctx context.Context, query string) ([]float64, error) {
	return o.getEmbedding(ctx, query)
}

func (o *OllamaModel) getEmbedding(ctx context.Context, text string) ([]float64, error) {
	reqBody := ollamaEmbeddingRequest{
		Model:  o.model,
		Prompt: text,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", o.baseURL+"/api/embeddings", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ollama API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var result ollamaEmbeddingResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return result.Embedding, nil
}

var _ Model = (*OllamaModel)(nil)
