package embedding

import (
	"context"
	"hash/fnv"
	"regexp"
	"strings"
)

// DefaultHashDimension is the vector dimension used by HashModel.
const DefaultHashDimension = 256

var wordPattern = regexp.MustCompile(`\p{L}+`)

// HashModel is a deterministic in-process embedding model.
// It hashes lowercased words into a fixed-size bag-of-words vector and
// L2-normalizes the result, so overlapping vocabulary yields cosine
// similarity. It stands in for a real sentence-embedding model when the
// service runs with no external providers.
type HashModel struct {
	dimension int
}

// NewHashModel creates a HashModel with the default dimension.
func NewHashModel() *HashModel {
	return &HashModel{dimension: DefaultHashDimension}
}

// NewHashModelWithDimension creates a HashModel with a custom dimension.
func NewHashModelWithDimension(dimension int) *HashModel {
	if dimension <= 0 {
		dimension = DefaultHashDimension
	}
	return &HashModel{dimension: dimension}
}

// EmbedText generates an embedding for a document text.
func (m *HashModel) EmbedText(ctx context.Context, text string) ([]float64, error) {
	return m.embed(text), nil
}

// EmbedQuery generates an embedding for a query.
func (m *HashModel) EmbedQuery(ctx context.Context, query string) ([]float64, error) {
	return m.embed(query), nil
}

func (m *HashModel) embed(text string) []float64 {
	vec := make([]float64, m.dimension)

	for _, word := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		h := fnv.New32a()
		h.Write([]byte(word))
		vec[int(h.Sum32())%m.dimension]++
	}

	if normalized, err := Normalize(vec); err == nil {
		return normalized
	}
	// Zero vector: no words in the input. Return as-is.
	return vec
}

var _ Model = (*HashModel)(nil)
