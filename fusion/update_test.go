package fusion

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/kindred/ai"
	"github.com/poiesic/kindred/ai/mock"
	"github.com/poiesic/kindred/core"
	"github.com/poiesic/kindred/storage"
	"github.com/poiesic/kindred/storage/badger"
)

func aiConcept(name, category, stage string, importance float64) ai.ExtractedConcept {
	return ai.ExtractedConcept{
		Name:       name,
		Category:   category,
		Importance: importance,
		Stage:      stage,
	}
}

func stageExtraction(t *testing.T, repos *badger.MemoryRepositories, docID, companyCode string, concepts ...core.ExtractedConcept) {
	t.Helper()
	require.NoError(t, repos.Documents.PutExtraction(context.Background(), &core.ConceptExtraction{
		DocId:       docID,
		CompanyCode: companyCode,
		CompanyName: companyCode + " Co",
		Concepts:    concepts,
	}))
}

func validConcept(name string) core.ExtractedConcept {
	return core.ExtractedConcept{
		Name:            name,
		Category:        core.CategoryCore,
		ImportanceScore: 0.8,
		Stage:           core.StageGrowing,
		Details: core.ConceptDetails{
			Description: "a business line",
			Relations:   core.Relations{Customers: []string{"X"}},
		},
	}
}

func TestNewUpdater(t *testing.T) {
	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()
	provider := mock.NewMockProvider()

	t.Run("valid", func(t *testing.T) {
		u, err := NewUpdater(repos.Concepts, repos.Documents, provider)
		require.NoError(t, err)
		defer u.Release()
		assert.NotNil(t, u)
	})

	t.Run("nil concept repository", func(t *testing.T) {
		_, err := NewUpdater(nil, repos.Documents, provider)
		assert.Equal(t, ErrConceptRepositoryRequired, err)
	})

	t.Run("nil document repository", func(t *testing.T) {
		_, err := NewUpdater(repos.Concepts, nil, provider)
		assert.Equal(t, ErrDocumentRepositoryRequired, err)
	})

	t.Run("nil provider", func(t *testing.T) {
		_, err := NewUpdater(repos.Concepts, repos.Documents, nil)
		assert.Equal(t, ErrAIProviderRequired, err)
	})

	t.Run("invalid batch size", func(t *testing.T) {
		_, err := NewUpdater(repos.Concepts, repos.Documents, provider, WithBatchSize(0))
		assert.Error(t, err)
	})
}

func TestUpdateMasterData_CreateAndMerge(t *testing.T) {
	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()

	updater, err := NewUpdater(repos.Concepts, repos.Documents, mock.NewMockProvider())
	require.NoError(t, err)
	defer updater.Release()
	ctx := context.Background()

	stageExtraction(t, repos, "doc-1", "600100", validConcept("retail banking"), validConcept("cold storage"))

	result, err := updater.UpdateMasterData(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 2, result.TotalProcessed)

	created, err := repos.Concepts.GetMasterConcept(ctx, "600100", "retail banking")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, int64(1), created.Version)
	assert.NotEmpty(t, created.Vector, "new concepts must be embedded")

	// Second document touching one existing concept merges it.
	second := validConcept("retail banking")
	second.Details.Relations.Customers = []string{"X", "Y"}
	stageExtraction(t, repos, "doc-2", "600100", second)

	result, err = updater.UpdateMasterData(ctx, "doc-2")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 1, result.Updated)

	merged, err := repos.Concepts.GetMasterConcept(ctx, "600100", "retail banking")
	require.NoError(t, err)
	require.NotNil(t, merged)
	assert.Equal(t, int64(2), merged.Version)
	assert.Equal(t, []string{"X", "Y"}, merged.Details.Relations.Customers)
	assert.Equal(t, "doc-2", merged.LastUpdatedDocId)
}

func TestUpdateMasterData_RecreatesDeactivatedConcept(t *testing.T) {
	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()

	updater, err := NewUpdater(repos.Concepts, repos.Documents, mock.NewMockProvider())
	require.NoError(t, err)
	defer updater.Release()
	ctx := context.Background()

	stageExtraction(t, repos, "doc-1", "600100", validConcept("retail banking"))
	result, err := updater.UpdateMasterData(ctx, "doc-1")
	require.NoError(t, err)
	require.Equal(t, 1, result.Created)

	require.NoError(t, repos.Concepts.DeactivateConcept(ctx, "600100", "retail banking"))

	// A later document mentioning the concept again rebuilds it from
	// scratch instead of failing on the dead record.
	revived := validConcept("retail banking")
	revived.Details.Relations.Customers = []string{"Z"}
	stageExtraction(t, repos, "doc-2", "600100", revived)

	result, err = updater.UpdateMasterData(ctx, "doc-2")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, 0, result.Failed)

	concept, err := repos.Concepts.GetMasterConcept(ctx, "600100", "retail banking")
	require.NoError(t, err)
	require.NotNil(t, concept)
	assert.True(t, concept.IsActive)
	assert.Equal(t, int64(2), concept.Version, "version sequence continues over the dead record")
	assert.Equal(t, []string{"Z"}, concept.Details.Relations.Customers,
		"old cumulative state is not carried over")
	assert.Equal(t, "doc-2", concept.LastUpdatedDocId)
	assert.NotEmpty(t, concept.Vector)
}

func TestUpdateMasterData_SkipsInvalidConcepts(t *testing.T) {
	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()

	updater, err := NewUpdater(repos.Concepts, repos.Documents, mock.NewMockProvider())
	require.NoError(t, err)
	defer updater.Release()

	bad := validConcept("")
	stageExtraction(t, repos, "doc-1", "600100", validConcept("retail banking"), bad)

	result, err := updater.UpdateMasterData(context.Background(), "doc-1")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 0, result.Failed)
}

func TestUpdateMasterData_MissingDocument(t *testing.T) {
	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()

	updater, err := NewUpdater(repos.Concepts, repos.Documents, mock.NewMockProvider())
	require.NoError(t, err)
	defer updater.Release()

	_, err = updater.UpdateMasterData(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUpdateMasterData_EmbeddingFailureIsolated(t *testing.T) {
	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()

	provider := mock.NewMockProvider()
	provider.MockEmbedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		if text == "broken: a business line" {
			return nil, assert.AnError
		}
		return mock.DeterministicVector(text, 8), nil
	}

	updater, err := NewUpdater(repos.Concepts, repos.Documents, provider)
	require.NoError(t, err)
	defer updater.Release()

	stageExtraction(t, repos, "doc-1", "600100", validConcept("retail banking"), validConcept("broken"))

	result, err := updater.UpdateMasterData(context.Background(), "doc-1")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Failed)
}

// conflictRepo wraps a real repository and forces optimistic lock
// conflicts on the first failPuts write attempts.
type conflictRepo struct {
	storage.ConceptRepository

	mu       sync.Mutex
	putCalls int
	failPuts int
}

func (r *conflictRepo) PutMasterConcept(ctx context.Context, concept *core.MasterConcept, expectedVersion int64) error {
	r.mu.Lock()
	r.putCalls++
	calls := r.putCalls
	r.mu.Unlock()

	if calls <= r.failPuts {
		return &storage.ConflictError{
			CompanyCode: concept.CompanyCode,
			ConceptName: concept.ConceptName,
			Expected:    expectedVersion,
			Actual:      expectedVersion + 1,
		}
	}
	return r.ConceptRepository.PutMasterConcept(ctx, concept, expectedVersion)
}

func (r *conflictRepo) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.putCalls
}

func TestUpdateMasterData_OptimisticRetry(t *testing.T) {
	t.Run("conflict on every attempt surfaces after maxRetries", func(t *testing.T) {
		repos, err := badger.NewMemoryRepositories()
		require.NoError(t, err)
		defer repos.Close()

		repo := &conflictRepo{ConceptRepository: repos.Concepts, failPuts: 100}
		updater, err := NewUpdater(repo, repos.Documents, mock.NewMockProvider(),
			WithMaxRetries(3), WithRetryDelay(time.Millisecond))
		require.NoError(t, err)
		defer updater.Release()

		stageExtraction(t, repos, "doc-1", "600100", validConcept("retail banking"))

		result, err := updater.UpdateMasterData(context.Background(), "doc-1")
		require.NoError(t, err)
		assert.Equal(t, 1, result.Failed)
		assert.Equal(t, 3, repo.calls(), "exactly maxRetries write attempts")
	})

	t.Run("success on second attempt", func(t *testing.T) {
		repos, err := badger.NewMemoryRepositories()
		require.NoError(t, err)
		defer repos.Close()

		repo := &conflictRepo{ConceptRepository: repos.Concepts, failPuts: 1}
		updater, err := NewUpdater(repo, repos.Documents, mock.NewMockProvider(),
			WithMaxRetries(3), WithRetryDelay(time.Millisecond))
		require.NoError(t, err)
		defer updater.Release()

		stageExtraction(t, repos, "doc-1", "600100", validConcept("retail banking"))

		result, err := updater.UpdateMasterData(context.Background(), "doc-1")
		require.NoError(t, err)
		assert.Equal(t, 1, result.Created)
		assert.Equal(t, 0, result.Failed)
		assert.Equal(t, 2, repo.calls(), "exactly two attempts")
	})
}
