package llm

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"
)

// BackendType selects the Generator implementation.
type BackendType string

const (
	// BackendMock uses the rule-based mock generator.
	BackendMock BackendType = "mock"
	// BackendLocal uses a local model served by Ollama.
	BackendLocal BackendType = "local"
	// BackendAPI uses a hosted OpenAI model.
	BackendAPI BackendType = "api"
)

// BackendOptions configures the Generator factory.
type BackendOptions struct {
	// Type selects the backend implementation.
	Type BackendType
	// LocalURL is the Ollama endpoint for the local backend.
	LocalURL string
	// LocalModel is the model name for the local backend.
	LocalModel string
	// APIModel is the model identifier for the api backend.
	APIModel string
	// APIKey is the key for the api backend. Falls back to OPENAI_API_KEY.
	APIKey string
	// Logger receives factory decisions. Defaults to a JSON slog logger.
	Logger *slog.Logger
	// HTTPClient overrides the client used by the local backend.
	HTTPClient *http.Client
}

const localProbeTimeout = 2 * time.Second

// NewGenerator constructs the Generator selected by opts.
// Backend selection happens once at startup; a local backend whose server is
// unreachable degrades to the mock backend with a logged warning rather than
// failing the process.
func NewGenerator(opts BackendOptions) Generator {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}

	switch opts.Type {
	case BackendLocal:
		ollamaOpts := []OllamaOption{}
		if opts.LocalURL != "" {
			ollamaOpts = append(ollamaOpts, WithOllamaBaseURL(opts.LocalURL))
		}
		if opts.LocalModel != "" {
			ollamaOpts = append(ollamaOpts, WithOllamaModel(opts.LocalModel))
		}
		if opts.HTTPClient != nil {
			ollamaOpts = append(ollamaOpts, WithOllamaHTTPClient(opts.HTTPClient))
		}
		gen := NewOllamaGenerator(ollamaOpts...)

		ctx, cancel := context.WithTimeout(context.Background(), localProbeTimeout)
		defer cancel()
		if err := gen.Ping(ctx); err != nil {
			logger.Warn("local model unavailable, falling back to mock backend",
				"model", opts.LocalModel, "error", err)
			return NewMockGenerator()
		}
		logger.Info("initialized local generator", "model", opts.LocalModel)
		return gen

	case BackendAPI:
		logger.Info("initialized api generator", "model", opts.APIModel)
		return NewOpenAIGenerator(opts.APIModel, opts.APIKey)

	case BackendMock:
		logger.Info("using mock generator")
		return NewMockGenerator()

	default:
		logger.Warn("unknown backend type, using mock generator", "type", string(opts.Type))
		return NewMockGenerator()
	}
}
