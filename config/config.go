// Package config assembles the process-wide configuration from the
// environment. It is read once at startup; request handling never touches
// ambient environment state.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/savvyai/guardian/llm"
	"github.com/savvyai/guardian/retriever"
)

// Defaults applied when the environment leaves a knob unset.
const (
	DefaultPort      = 8000
	DefaultModelType = llm.BackendMock
)

// Config is the immutable startup configuration.
type Config struct {
	// ModelType selects the generation backend (mock, local, api).
	ModelType llm.BackendType
	// LocalModelPath is the model name for the local backend.
	LocalModelPath string
	// OllamaHost is the endpoint for the local backend.
	OllamaHost string
	// APIModelName is the model identifier for the api backend.
	APIModelName string
	// APIKey authenticates against the hosted API.
	APIKey string
	// Port is the HTTP listen port.
	Port int
	// KnowledgeDir, if set, is a directory of files indexed at startup.
	KnowledgeDir string
	// GuardrailsConfig, if set, is a YAML rule file overriding the defaults.
	GuardrailsConfig string
	// ChromemPath, if set, enables the persistent vector store at that path.
	ChromemPath string
	// TopK is the number of documents retrieved per query.
	TopK int
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		ModelType:        DefaultModelType,
		LocalModelPath:   os.Getenv("LOCAL_MODEL_PATH"),
		OllamaHost:       os.Getenv("OLLAMA_HOST"),
		APIModelName:     os.Getenv("API_MODEL_NAME"),
		APIKey:           os.Getenv("OPENAI_API_KEY"),
		Port:             DefaultPort,
		KnowledgeDir:     os.Getenv("KNOWLEDGE_DIR"),
		GuardrailsConfig: os.Getenv("GUARDRAILS_CONFIG"),
		ChromemPath:      os.Getenv("CHROMEM_PATH"),
		TopK:             retriever.DefaultTopK,
	}

	if v := os.Getenv("LLM_MODEL_TYPE"); v != "" {
		cfg.ModelType = llm.BackendType(v)
	}

	if cfg.OllamaHost == "" {
		cfg.OllamaHost = llm.OllamaDefaultURL
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}

	if v := os.Getenv("RETRIEVAL_TOP_K"); v != "" {
		topK, err := strconv.Atoi(v)
		if err != nil || topK < 1 {
			return nil, fmt.Errorf("invalid RETRIEVAL_TOP_K %q", v)
		}
		cfg.TopK = topK
	}

	return cfg, nil
}

// ModelName reports the configured model name for the active backend.
func (c *Config) ModelName() string {
	switch c.ModelType {
	case llm.BackendLocal:
		if c.LocalModelPath != "" {
			return c.LocalModelPath
		}
		return llm.OllamaDefaultModel
	case llm.BackendAPI:
		if c.APIModelName != "" {
			return c.APIModelName
		}
		return "gpt-3.5-turbo"
	default:
		return "mock-model"
	}
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
