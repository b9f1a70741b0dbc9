package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// ConceptExtractor extracts structured business concepts from disclosure text.
// Implementations must be thread-safe for concurrent use.
type ConceptExtractor interface {
	// ExtractConcepts analyzes disclosure text and extracts the business
	// concepts it describes, with category, importance, development stage,
	// and detail fields. Returns an empty slice if no concepts are found.
	// Returns an error if concept extraction fails.
	ExtractConcepts(ctx context.Context, text string) ([]ExtractedConcept, error)
}

// Reranker refines an initial similarity ordering with a cross-encoder
// model. Implementations must be thread-safe for concurrent use.
type Reranker interface {
	// Rerank scores each document against the query.
	// An empty document list returns an empty result without a network
	// call. The service may return fewer results than documents; callers
	// treat that as a valid truncation, not an error.
	Rerank(ctx context.Context, query string, documents []string, topK int) ([]RerankResult, error)
}

// RerankResult is one cross-encoder score.
type RerankResult struct {
	// DocumentIndex is the position of the scored document in the request.
	DocumentIndex int

	// Score is the cross-encoder relevance score in [0,1].
	Score float64
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages Embedder and ConceptExtractor instances,
// ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// ConceptExtractor returns the concept extraction service.
	// The returned ConceptExtractor is safe for concurrent use.
	ConceptExtractor() ConceptExtractor

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
