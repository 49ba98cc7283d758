package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllamaGeneratorGenerate(t *testing.T) {
	var gotReq ollamaGenerateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(ollamaGenerateResponse{
			Model:    "test-model",
			Response: "local answer",
			Done:     true,
		})
	}))
	defer server.Close()

	gen := NewOllamaGenerator(
		WithOllamaBaseURL(server.URL),
		WithOllamaModel("test-model"),
	)

	resp, err := gen.Generate(context.Background(), "hello", 256)
	require.NoError(t, err)
	assert.Equal(t, "local answer", resp)
	assert.Equal(t, "test-model", gotReq.Model)
	assert.Equal(t, "hello", gotReq.Prompt)
	assert.False(t, gotReq.Stream)
	assert.EqualValues(t, 256, gotReq.Options["num_predict"])
}

func TestOllamaGeneratorIgnoresAmbientEnvironment(t *testing.T) {
	// Endpoint selection flows through options from the startup config;
	// the constructor itself never consults the environment.
	t.Setenv("OLLAMA_HOST", "http://elsewhere:12345")

	gen := NewOllamaGenerator()
	assert.Equal(t, OllamaDefaultURL, gen.baseURL)

	gen = NewOllamaGenerator(WithOllamaBaseURL("http://configured:11434"))
	assert.Equal(t, "http://configured:11434", gen.baseURL)
}

func TestOllamaGeneratorServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	gen := NewOllamaGenerator(WithOllamaBaseURL(server.URL))

	_, err := gen.Generate(context.Background(), "hello", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestOllamaGeneratorPing(t *testing.T) {
	t.Run("reachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/tags", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		gen := NewOllamaGenerator(WithOllamaBaseURL(server.URL))
		assert.NoError(t, gen.Ping(context.Background()))
	})

	t.Run("unreachable", func(t *testing.T) {
		gen := NewOllamaGenerator(WithOllamaBaseURL("http://127.0.0.1:1"))
		assert.Error(t, gen.Ping(context.Background()))
	})
}
