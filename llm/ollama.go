package llm

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
	// OllamaDefaultModel is used when no local model is configured.
	OllamaDefaultModel = "llama3.1"
)

// OllamaGenerator implements the Generator interface for local models served
// by Ollama.
type OllamaGenerator struct {
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *slog.Logger
}

// OllamaOption configures an OllamaGenerator.
type OllamaOption func(*OllamaGenerator)

// WithOllamaBaseURL sets the base URL.
func WithOllamaBaseURL(baseURL string) OllamaOption {
	return func(o *OllamaGenerator) {
		o.baseURL = baseURL
	}
}

// WithOllamaModel sets the model.
func WithOllamaModel(model string) OllamaOption {
	return func(o *OllamaGenerator) {
		o.model = model
	}
}

// WithOllamaHTTPClient sets a custom HTTP client.
func WithOllamaHTTPClient(client *http.Client) OllamaOption {
	return func(o *OllamaGenerator) {
		o.httpClient = client
	}
}

// NewOllamaGenerator creates a new Ollama-backed Generator.
func NewOllamaGenerator(opts ...OllamaOption) *OllamaGenerator {
	o := &OllamaGenerator{
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

// ollamaGenerateRequest represents a request to the Ollama generate API.
type ollamaGenerateRequest struct {
	Model   string                 `json:"model"`
	Prompt  string                 `json:"prompt"`
	Stream  bool                   `json:"stream"`
	Options map[string]interface{} `json:"options,omitempty"`
}

// ollamaGenerateResponse represents a response from the Ollama generate API.
type ollamaGenerateResponse struct {
	Model         string `json:"model"`
	CreatedAt     string `json:"created_at"`
	Response      string `json:"response"`
	Done          bool   `json:"done"`
	EvalCount     int    `json:"eval_count,omitempty"`
	TotalDuration int64  `json:"total_duration,omitempty"`
}

// Generate produces a completion for the prompt using the local model.
// The token budget maps to Ollama's num_predict option.
func (o *OllamaGenerator) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	o.logger.Info("Generate called", "model", o.model, "prompt_len", len(prompt))

	reqBody := ollamaGenerateRequest{
		Model:  o.model,
		Prompt: prompt,
		Stream: false,
	}
	if maxTokens > 0 {
		reqBody.Options = map[string]interface{}{"num_predict": maxTokens}
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", o.baseURL+"/api/generate", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("ollama API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var result ollamaGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return result.Response, nil
}

// Ping checks that the Ollama server is reachable.
// Used by the factory to decide whether the local backend is usable.
func (o *OllamaGenerator) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", o.baseURL+"/api/tags", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ollama is not reachable at %s: %w", o.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ollama returned status %d", resp.StatusCode)
	}
	return nil
}

var _ Generator = (*OllamaGenerator)(nil)
