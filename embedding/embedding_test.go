package embedding

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
		wantErr  bool
	}{
		{
			name:     "identical vectors",
			a:        []float64{1, 2, 3},
			b:        []float64{1, 2, 3},
			expected: 1.0,
		},
		{
			name:     "orthogonal vectors",
			a:        []float64{1, 0},
			b:        []float64{0, 1},
			expected: 0.0,
		},
		{
			name:     "opposite vectors",
			a:        []float64{1, 0},
			b:        []float64{-1, 0},
			expected: -1.0,
		},
		{
			name:    "mismatched lengths",
			a:       []float64{1, 2},
			b:       []float64{1, 2, 3},
			wantErr: true,
		},
		{
			name:    "zero vector",
			a:       []float64{0, 0},
			b:       []float64{1, 1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim, err := CosineSimilarity(tt.a, tt.b)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, sim, 1e-9)
		})
	}
}

func TestNormalize(t *testing.T) {
	v, err := Normalize([]float64{3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 0.6, v[0], 1e-9)
	assert.InDelta(t, 0.8, v[1], 1e-9)

	_, err = Normalize([]float64{0, 0})
	assert.Error(t, err)
}

func TestHashModelDeterminism(t *testing.T) {
	model := NewHashModel()
	ctx := context.Background()

	a, err := model.EmbedText(ctx, "retrieval augmented generation")
	require.NoError(t, err)
	b, err := model.EmbedQuery(ctx, "retrieval augmented generation")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, DefaultHashDimension)
}

func TestHashModelSimilarityOrdering(t *testing.T) {
	model := NewHashModel()
	ctx := context.Background()

	query, err := model.EmbedQuery(ctx, "what is kubernetes")
	require.NoError(t, err)
	related, err := model.EmbedText(ctx, "kubernetes manages containerized workloads")
	require.NoError(t, err)
	unrelated, err := model.EmbedText(ctx, "bananas are yellow fruit")
	require.NoError(t, err)

	simRelated, err := CosineSimilarity(query, related)
	require.NoError(t, err)
	simUnrelated, err := CosineSimilarity(query, unrelated)
	require.NoError(t, err)

	assert.Greater(t, simRelated, simUnrelated)
}

func TestHashModelNormalized(t *testing.T) {
	model := NewHashModel()

	v, err := model.EmbedText(context.Background(), "some words here")
	require.NoError(t, err)

	var norm float64
	for _, x := range v {
		norm += x * x
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-9)
}

func TestHashModelEmptyText(t *testing.T) {
	model := NewHashModel()

	v, err := model.EmbedText(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, v, DefaultHashDimension)
}

func TestOllamaModelEmbedding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/embeddings", r.URL.Path)
		var req ollamaEmbeddingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "nomic-embed-text", req.Model)
		json.NewEncoder(w).Encode(ollamaEmbeddingResponse{Embedding: []float64{0.1, 0.2, 0.3}})
	}))
	defer server.Close()

	model := NewOllamaModel(WithOllamaBaseURL(server.URL))

	v, err := model.EmbedQuery(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, v)
}

func TestMockModel(t *testing.T) {
	model := &MockModel{Embedding: []float64{1, 0}}

	v, err := model.EmbedText(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0}, v)
}
