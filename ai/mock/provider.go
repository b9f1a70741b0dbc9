package mock

import "github.com/poiesic/kindred/ai"

// MockProvider is a test double for ai.AIProvider. It bundles the individual
// mocks so tests can reach in and inject behavior on any of them.
type MockProvider struct {
	MockEmbedder  *MockEmbedder
	MockExtractor *MockConceptExtractor
}

var _ ai.AIProvider = (*MockProvider)(nil)

// NewMockProvider creates a provider backed by fresh mocks.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		MockEmbedder:  NewMockEmbedder(),
		MockExtractor: NewMockConceptExtractor(),
	}
}

// Embedder returns the mock embedder.
func (m *MockProvider) Embedder() ai.Embedder {
	return m.MockEmbedder
}

// ConceptExtractor returns the mock extractor.
func (m *MockProvider) ConceptExtractor() ai.ConceptExtractor {
	return m.MockExtractor
}

// Close is a no-op.
func (m *MockProvider) Close() error {
	return nil
}
