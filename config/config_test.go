package config

import (
	"testing"

	"github.com/savvyai/guardian/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"LLM_MODEL_TYPE", "LOCAL_MODEL_PATH", "OLLAMA_HOST", "PORT", "RETRIEVAL_TOP_K"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, llm.BackendMock, cfg.ModelType)
	assert.Equal(t, llm.OllamaDefaultURL, cfg.OllamaHost)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, 3, cfg.TopK)
	assert.Equal(t, "mock-model", cfg.ModelName())
	assert.Equal(t, ":8000", cfg.Addr())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LLM_MODEL_TYPE", "local")
	t.Setenv("LOCAL_MODEL_PATH", "llama3.1:8b")
	t.Setenv("OLLAMA_HOST", "http://ollama:11434")
	t.Setenv("PORT", "9090")
	t.Setenv("RETRIEVAL_TOP_K", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, llm.BackendLocal, cfg.ModelType)
	assert.Equal(t, "http://ollama:11434", cfg.OllamaHost)
	assert.Equal(t, "llama3.1:8b", cfg.ModelName())
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 5, cfg.TopK)
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadInvalidTopK(t *testing.T) {
	t.Setenv("RETRIEVAL_TOP_K", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestModelNameAPI(t *testing.T) {
	cfg := &Config{ModelType: llm.BackendAPI}
	assert.Equal(t, "gpt-3.5-turbo", cfg.ModelName())

	cfg.APIModelName = "gpt-4o"
	assert.Equal(t, "gpt-4o", cfg.ModelName())
}
