package fusion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/kindred/ai"
	"github.com/poiesic/kindred/core"
	"github.com/poiesic/kindred/resilience"
	"github.com/poiesic/kindred/storage"
)

const (
	defaultBatchSize  = 50
	defaultBatchDelay = 100 * time.Millisecond
	defaultMaxRetries = 3
	defaultRetryDelay = 100 * time.Millisecond
)

// Result summarizes one master-data update run.
type Result struct {
	Created        int
	Updated        int
	Skipped        int
	Failed         int
	TotalProcessed int
}

// Updater fuses staged document extractions into the master concept store.
// Concepts within a batch run concurrently over a worker pool; the
// read-merge-write for any single concept is sequential with bounded
// optimistic retries.
type Updater struct {
	conceptRepository  storage.ConceptRepository
	documentRepository storage.DocumentRepository
	embedder           ai.Embedder
	pool               *ants.Pool
	batchSize          int
	batchDelay         time.Duration
	maxRetries         int
	retryDelay         time.Duration
	logger             *slog.Logger
}

// UpdaterOption configures an Updater.
type UpdaterOption func(*Updater) error

// WithPoolSize sets the worker pool size for concurrent fusion.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) UpdaterOption {
	return func(u *Updater) error {
		if size < 1 {
			size = 1
		}
		if u.pool != nil {
			u.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		u.pool = pool
		return nil
	}
}

// WithBatchSize sets how many concepts are fused per batch. Default 50.
func WithBatchSize(size int) UpdaterOption {
	return func(u *Updater) error {
		if size < 1 {
			return fmt.Errorf("batch size must be positive, got %d", size)
		}
		u.batchSize = size
		return nil
	}
}

// WithBatchDelay sets the pause between batches. Default 100ms.
func WithBatchDelay(delay time.Duration) UpdaterOption {
	return func(u *Updater) error {
		if delay < 0 {
			delay = 0
		}
		u.batchDelay = delay
		return nil
	}
}

// WithMaxRetries sets the optimistic lock retry bound. Default 3.
func WithMaxRetries(attempts int) UpdaterOption {
	return func(u *Updater) error {
		if attempts < 1 {
			return resilience.ErrInvalidMaxAttempts
		}
		u.maxRetries = attempts
		return nil
	}
}

// WithRetryDelay sets the base backoff for optimistic retries; the wait
// after attempt k is delay*k. Default 100ms.
func WithRetryDelay(delay time.Duration) UpdaterOption {
	return func(u *Updater) error {
		if delay < 0 {
			delay = 0
		}
		u.retryDelay = delay
		return nil
	}
}

// WithUpdaterLogger sets a custom logger. Default is slog.Default().
func WithUpdaterLogger(logger *slog.Logger) UpdaterOption {
	return func(u *Updater) error {
		if logger == nil {
			logger = slog.Default()
		}
		u.logger = logger
		return nil
	}
}

// NewUpdater creates a master-data updater.
func NewUpdater(
	conceptRepository storage.ConceptRepository,
	documentRepository storage.DocumentRepository,
	provider ai.AIProvider,
	opts ...UpdaterOption,
) (*Updater, error) {
	if conceptRepository == nil {
		return nil, ErrConceptRepositoryRequired
	}
	if documentRepository == nil {
		return nil, ErrDocumentRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	u := &Updater{
		conceptRepository:  conceptRepository,
		documentRepository: documentRepository,
		embedder:           provider.Embedder(),
		pool:               pool,
		batchSize:          defaultBatchSize,
		batchDelay:         defaultBatchDelay,
		maxRetries:         defaultMaxRetries,
		retryDelay:         defaultRetryDelay,
		logger:             slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(u); err != nil {
			u.Release()
			return nil, err
		}
	}
	return u, nil
}

// Release releases the worker pool. The updater should not be used after
// calling Release.
func (u *Updater) Release() {
	if u.pool != nil {
		u.pool.Release()
	}
}

// UpdateMasterData fuses the staged extraction of one document into the
// master store. Each concept is created or merged independently; a
// failure on one concept is counted and does not stop the rest.
func (u *Updater) UpdateMasterData(ctx context.Context, docID string) (*Result, error) {
	extraction, err := u.documentRepository.GetExtraction(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("loading extraction %s: %w", docID, err)
	}

	result := &Result{TotalProcessed: len(extraction.Concepts)}
	if len(extraction.Concepts) == 0 {
		u.logger.Info("extraction has no concepts", "docId", docID)
		return result, nil
	}

	var mu sync.Mutex
	for start := 0; start < len(extraction.Concepts); start += u.batchSize {
		end := min(start+u.batchSize, len(extraction.Concepts))
		batch := extraction.Concepts[start:end]

		var wg sync.WaitGroup
		for _, concept := range batch {
			wg.Add(1)
			submitErr := u.pool.Submit(func() {
				defer wg.Done()
				outcome := u.fuseConcept(ctx, extraction, concept, docID)
				mu.Lock()
				switch outcome {
				case outcomeCreated:
					result.Created++
				case outcomeUpdated:
					result.Updated++
				case outcomeSkipped:
					result.Skipped++
				default:
					result.Failed++
				}
				mu.Unlock()
			})
			if submitErr != nil {
				wg.Done()
				mu.Lock()
				result.Failed++
				mu.Unlock()
				u.logger.Error("failed to submit fusion task", "docId", docID, "err", submitErr)
			}
		}
		wg.Wait()

		if end < len(extraction.Concepts) && u.batchDelay > 0 {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-time.After(u.batchDelay):
			}
		}
	}

	u.logger.Info("master data update finished",
		"docId", docID,
		"created", result.Created,
		"updated", result.Updated,
		"skipped", result.Skipped,
		"failed", result.Failed)
	return result, nil
}

type fuseOutcome int

const (
	outcomeFailed fuseOutcome = iota
	outcomeCreated
	outcomeUpdated
	outcomeSkipped
)

// fuseConcept performs the read-merge-write cycle for one concept.
// The whole cycle is retried on optimistic lock conflicts, so a record
// deleted between read and write is simply re-read (and then created) on
// the next attempt.
func (u *Updater) fuseConcept(ctx context.Context, extraction *core.ConceptExtraction, incoming core.ExtractedConcept, docID string) fuseOutcome {
	if err := core.ValidateExtractedConcept(&incoming); err != nil {
		u.logger.Warn("skipping invalid concept",
			"docId", docID, "concept", incoming.Name, "err", err)
		return outcomeSkipped
	}

	var outcome fuseOutcome
	err := resilience.RetryWithBackoff(ctx, func() error {
		existing, err := u.conceptRepository.GetMasterConcept(ctx, extraction.CompanyCode, incoming.Name)
		if err != nil {
			return err
		}

		// A deactivated record counts as absent: the concept is rebuilt
		// from the new extraction, continuing the old version sequence.
		if existing == nil || !existing.IsActive {
			concept, err := CreateFromNew(incoming, extraction.CompanyCode, extraction.CompanyName, docID)
			if err != nil {
				return err
			}
			vector, err := u.embedConcept(ctx, concept)
			if err != nil {
				return err
			}
			concept.Vector = vector

			var expectedVersion int64
			if existing != nil {
				concept.Version = existing.Version + 1
				expectedVersion = existing.Version
			}
			if err := u.conceptRepository.PutMasterConcept(ctx, concept, expectedVersion); err != nil {
				return err
			}
			outcome = outcomeCreated
			return nil
		}

		merged, err := Merge(existing, incoming, docID)
		if err != nil {
			return err
		}
		if err := u.conceptRepository.PutMasterConcept(ctx, merged, existing.Version); err != nil {
			return err
		}
		outcome = outcomeUpdated
		return nil
	}, u.maxRetries, u.retryDelay, func(err error) bool {
		return errors.Is(err, storage.ErrOptimisticLock)
	})

	if err != nil {
		u.logger.Error("concept fusion failed",
			"docId", docID,
			"companyCode", extraction.CompanyCode,
			"concept", incoming.Name,
			"err", err)
		return outcomeFailed
	}
	return outcome
}

// embedConcept builds the embedding text for a concept and returns the
// normalized vector.
func (u *Updater) embedConcept(ctx context.Context, concept *core.MasterConcept) ([]float32, error) {
	text := concept.ConceptName
	if concept.Details.Description != "" {
		text += ": " + concept.Details.Description
	}
	vector, err := u.embedder.EmbedText(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embedding concept %q: %w", concept.ConceptName, err)
	}
	return NormalizeVector(vector), nil
}
