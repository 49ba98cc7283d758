package llm

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewGeneratorMock(t *testing.T) {
	gen := NewGenerator(BackendOptions{Type: BackendMock, Logger: testLogger()})
	assert.IsType(t, &MockGenerator{}, gen)
}

func TestNewGeneratorUnknownTypeFallsBackToMock(t *testing.T) {
	gen := NewGenerator(BackendOptions{Type: "bogus", Logger: testLogger()})
	assert.IsType(t, &MockGenerator{}, gen)
}

func TestNewGeneratorAPI(t *testing.T) {
	gen := NewGenerator(BackendOptions{
		Type:     BackendAPI,
		APIModel: "gpt-4o",
		APIKey:   "test-key",
		Logger:   testLogger(),
	})
	assert.IsType(t, &OpenAIGenerator{}, gen)
}

func TestNewGeneratorLocal(t *testing.T) {
	t.Run("reachable server selects ollama", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		gen := NewGenerator(BackendOptions{
			Type:       BackendLocal,
			LocalURL:   server.URL,
			LocalModel: "llama3.1",
			Logger:     testLogger(),
		})
		assert.IsType(t, &OllamaGenerator{}, gen)
	})

	t.Run("unreachable server degrades to mock", func(t *testing.T) {
		gen := NewGenerator(BackendOptions{
			Type:       BackendLocal,
			LocalURL:   "http://127.0.0.1:1",
			LocalModel: "llama3.1",
			Logger:     testLogger(),
		})
		assert.IsType(t, &MockGenerator{}, gen)
	})
}
