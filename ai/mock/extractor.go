package mock

import (
	"context"

	"github.com/poiesic/kindred/ai"
)

// MockConceptExtractor is a test double for ai.ConceptExtractor.
type MockConceptExtractor struct {
	// ExtractConceptsFunc is called by ExtractConcepts if set.
	ExtractConceptsFunc func(ctx context.Context, text string) ([]ai.ExtractedConcept, error)

	// Concepts returned by the default behavior when no function is injected.
	Concepts []ai.ExtractedConcept

	callCount int
}

// NewMockConceptExtractor creates a mock extractor that returns no concepts
// by default.
func NewMockConceptExtractor() *MockConceptExtractor {
	return &MockConceptExtractor{}
}

// ExtractConcepts returns the injected behavior's result, or the configured
// Concepts slice.
func (m *MockConceptExtractor) ExtractConcepts(ctx context.Context, text string) ([]ai.ExtractedConcept, error) {
	m.callCount++

	if m.ExtractConceptsFunc != nil {
		return m.ExtractConceptsFunc(ctx, text)
	}
	return m.Concepts, nil
}

// CallCount returns the number of times ExtractConcepts was called.
func (m *MockConceptExtractor) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockConceptExtractor) Reset() {
	m.callCount = 0
	m.ExtractConceptsFunc = nil
	m.Concepts = nil
}
