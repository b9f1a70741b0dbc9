package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/kindred/ai"
	"github.com/poiesic/kindred/ai/mock"
	"github.com/poiesic/kindred/core"
	"github.com/poiesic/kindred/storage/badger"
)

// seedScenario sets up the canonical four-company scenario: the source
// company 600100 has two active concepts; company 600200 matches both
// probes with distinct target concepts (0.90 and 0.85), 600300 matches
// one probe at 0.80, 600400 matches the other at 0.70. Importance scores
// mirror the similarities so importance-only ranking preserves the
// similarity ordering.
func seedScenario(t *testing.T, repos *badger.MemoryRepositories) {
	t.Helper()
	seedCompany(t, repos, "600100", "Alpha Industrial", "Alpha")

	seedConcept(t, repos, "600100", "Alpha Industrial", "industrial robots", 0.9, []float32{1, 0, 0})
	seedConcept(t, repos, "600100", "Alpha Industrial", "motion control", 0.8, []float32{0, 1, 0})

	seedConcept(t, repos, "600200", "Beta Automation", "robot arms", 0.90, []float32{0.90, 0, 0.4358899})
	seedConcept(t, repos, "600200", "Beta Automation", "servo motors", 0.85, []float32{0, 0.85, 0.5267827})
	seedConcept(t, repos, "600300", "Gamma Precision", "cnc machining", 0.80, []float32{0.80, 0, 0.6})
	seedConcept(t, repos, "600400", "Delta Drives", "gear reducers", 0.70, []float32{0, 0.70, 0.7141428})
}

func newTestService(t *testing.T, repos *badger.MemoryRepositories, opts ...ServiceOption) *Service {
	t.Helper()
	searcher, err := NewSearcher(repos.Concepts, repos.Companies)
	require.NoError(t, err)
	ranker, err := NewRanker(DefaultWeights())
	require.NoError(t, err)
	filter, err := NewMarketFilter(repos.Market)
	require.NoError(t, err)
	service, err := NewService(searcher, ranker, filter, opts...)
	require.NoError(t, err)
	return service
}

func TestServiceSearch_EndToEnd(t *testing.T) {
	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()
	seedScenario(t, repos)

	service := newTestService(t, repos)

	result, err := service.Search(context.Background(), SearchRequest{
		Identifier:          "600100",
		TopK:                10,
		SimilarityThreshold: 0.6,
	})
	require.NoError(t, err)

	require.NotNil(t, result.Company)
	assert.Equal(t, "600100", result.Company.Code)
	assert.True(t, result.Query.IsCode)

	// Beta matched through two distinct target concepts, so it carries
	// two hits; aggregation by max puts it first.
	require.Len(t, result.Companies, 3)
	assert.Equal(t, "600200", result.Companies[0].CompanyCode)
	assert.InDelta(t, 0.90, result.Companies[0].RelevanceScore, 1e-6)
	assert.Len(t, result.Companies[0].Hits, 2)

	assert.Equal(t, "600300", result.Companies[1].CompanyCode)
	assert.InDelta(t, 0.80, result.Companies[1].RelevanceScore, 1e-6)

	assert.Equal(t, "600400", result.Companies[2].CompanyCode)
	assert.InDelta(t, 0.70, result.Companies[2].RelevanceScore, 1e-6)

	assert.Equal(t, 3, result.TotalBeforeFilter)
	assert.False(t, result.CapFilterApplied)
}

func TestServiceSearch_RerankDegradation(t *testing.T) {
	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()
	seedScenario(t, repos)

	reranker := mock.NewMockReranker()
	reranker.RerankFunc = func(ctx context.Context, query string, documents []string, topK int) ([]ai.RerankResult, error) {
		return nil, errors.New("rerank service down")
	}

	service := newTestService(t, repos, WithReranker(reranker))

	result, err := service.Search(context.Background(), SearchRequest{
		Identifier:          "600100",
		SimilarityThreshold: 0.6,
	})
	require.NoError(t, err, "rerank failure must not fail the search")
	require.Len(t, result.Companies, 3)
	// Importance-only degradation keeps the similarity-mirrored order.
	assert.Equal(t, "600200", result.Companies[0].CompanyCode)
	assert.Equal(t, 1, reranker.CallCount())
	for _, company := range result.Companies {
		for _, hit := range company.Hits {
			assert.Nil(t, hit.RerankScore)
		}
	}
}

func TestServiceSearch_RerankReorders(t *testing.T) {
	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()
	seedScenario(t, repos)

	// Score Gamma's document highest regardless of similarity.
	reranker := mock.NewMockReranker()
	reranker.RerankFunc = func(ctx context.Context, query string, documents []string, topK int) ([]ai.RerankResult, error) {
		results := make([]ai.RerankResult, len(documents))
		for i, doc := range documents {
			score := 0.1
			if doc == "Gamma Precision cnc machining" {
				score = 1.0
			}
			results[i] = ai.RerankResult{DocumentIndex: i, Score: score}
		}
		return results, nil
	}

	service := newTestService(t, repos, WithReranker(reranker))

	result, err := service.Search(context.Background(), SearchRequest{
		Identifier:          "600100",
		SimilarityThreshold: 0.6,
	})
	require.NoError(t, err)
	require.Len(t, result.Companies, 3)
	// Gamma: 0.7*1.0 + 0.3*0.80 = 0.94, ahead of Beta's 0.7*0.1 + 0.3*0.90 = 0.34.
	assert.Equal(t, "600300", result.Companies[0].CompanyCode)
	assert.InDelta(t, 0.94, result.Companies[0].RelevanceScore, 1e-6)
}

func TestServiceSearch_CacheHit(t *testing.T) {
	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()
	seedScenario(t, repos)

	reranker := mock.NewMockReranker()
	service := newTestService(t, repos,
		WithReranker(reranker),
		WithCache(16, time.Minute),
	)

	req := SearchRequest{Identifier: "600100", SimilarityThreshold: 0.6}
	first, err := service.Search(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 1, reranker.CallCount())

	second, err := service.Search(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, reranker.CallCount(), "cached result must skip the pipeline")
	assert.Equal(t, first, second)

	// A different request shape misses the cache.
	_, err = service.Search(context.Background(), SearchRequest{Identifier: "600100", TopK: 5, SimilarityThreshold: 0.6})
	require.NoError(t, err)
	assert.Equal(t, 2, reranker.CallCount())
}

func TestServiceSearch_Validation(t *testing.T) {
	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()

	service := newTestService(t, repos)
	ctx := context.Background()

	t.Run("empty identifier", func(t *testing.T) {
		_, err := service.Search(ctx, SearchRequest{})
		assert.Equal(t, ErrEmptyIdentifier, err)
	})

	t.Run("negative topK", func(t *testing.T) {
		_, err := service.Search(ctx, SearchRequest{Identifier: "600100", TopK: -1})
		assert.Equal(t, ErrInvalidTopK, err)
	})

	t.Run("threshold above one", func(t *testing.T) {
		_, err := service.Search(ctx, SearchRequest{Identifier: "600100", SimilarityThreshold: 1.2})
		assert.Equal(t, ErrInvalidThreshold, err)
	})

	t.Run("unknown company", func(t *testing.T) {
		_, err := service.Search(ctx, SearchRequest{Identifier: "999999"})
		assert.ErrorIs(t, err, core.ErrCompanyNotFound)
	})

	t.Run("unknown strategy option", func(t *testing.T) {
		searcher, err := NewSearcher(repos.Concepts, repos.Companies)
		require.NoError(t, err)
		ranker, err := NewRanker(DefaultWeights())
		require.NoError(t, err)
		filter, err := NewMarketFilter(repos.Market)
		require.NoError(t, err)
		_, err = NewService(searcher, ranker, filter, WithStrategy("median"))
		assert.ErrorIs(t, err, ErrUnknownStrategy)
	})
}
