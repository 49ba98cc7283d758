package embedding

import "context"

// MockModel is a mock implementation of the Model interface.
type MockModel struct {
	Embedding []float64
	Err       error
}

func (m *MockModel) EmbedText(ctx context.Context, text string) ([]float64, error) {
	return m.Embedding, m.Err
}

func (m *MockModel) EmbedQuery(ctx context.Context, query string) ([]float64, error) {
	return m.Embedding, m.Err
}

var _ Model = (*MockModel)(nil)
