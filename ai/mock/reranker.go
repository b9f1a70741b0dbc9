package mock

import (
	"context"

	"github.com/poiesic/kindred/ai"
)

// MockReranker is a test double for ai.Reranker.
type MockReranker struct {
	// RerankFunc is called by Rerank if set. If nil, the default behavior
	// returns identity scores in document order.
	RerankFunc func(ctx context.Context, query string, documents []string, topK int) ([]ai.RerankResult, error)

	callCount int
}

// NewMockReranker creates a mock reranker with default pass-through behavior.
func NewMockReranker() *MockReranker {
	return &MockReranker{}
}

// Rerank returns the injected behavior's result, or scores documents in
// their original order with linearly decreasing scores.
func (m *MockReranker) Rerank(ctx context.Context, query string, documents []string, topK int) ([]ai.RerankResult, error) {
	m.callCount++

	if m.RerankFunc != nil {
		return m.RerankFunc(ctx, query, documents, topK)
	}

	n := len(documents)
	if topK > 0 && topK < n {
		n = topK
	}
	results := make([]ai.RerankResult, n)
	for i := 0; i < n; i++ {
		score := 1.0
		if len(documents) > 1 {
			score = 1.0 - float64(i)/float64(len(documents))
		}
		results[i] = ai.RerankResult{DocumentIndex: i, Score: score}
	}
	return results, nil
}

// CallCount returns the number of times Rerank was called.
func (m *MockReranker) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockReranker) Reset() {
	m.callCount = 0
	m.RerankFunc = nil
}
