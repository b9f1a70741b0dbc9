package badger

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/kindred/core"
	"github.com/poiesic/kindred/storage"
)

// DocumentRepository implements storage.DocumentRepository for BadgerDB.
// It stages per-document extraction output until fusion picks it up.
type DocumentRepository struct {
	backend *Backend
}

var _ storage.DocumentRepository = (*DocumentRepository)(nil)

// NewDocumentRepository creates a new DocumentRepository.
func NewDocumentRepository(backend *Backend) (*DocumentRepository, error) {
	return &DocumentRepository{
		backend: backend,
	}, nil
}

// Close releases resources. DocumentRepository has no resources to release.
func (r *DocumentRepository) Close() error {
	return nil
}

// PutExtraction stores the extraction result of one document.
func (r *DocumentRepository) PutExtraction(ctx context.Context, extraction *core.ConceptExtraction) error {
	if extraction.DocId == "" {
		return storage.ErrInvalidQuery
	}
	if extraction.ExtractedAt.IsZero() {
		extraction.ExtractedAt = time.Now().UTC()
	}
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeExtractionKey(extraction.DocId), storage.MarshalConceptExtraction(extraction)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetExtraction retrieves the extraction result of one document.
func (r *DocumentRepository) GetExtraction(ctx context.Context, docID string) (*core.ConceptExtraction, error) {
	var extraction *core.ConceptExtraction

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeExtractionKey(docID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			extraction, err = storage.UnmarshalConceptExtraction(val)
			return err
		})
	}, false)

	if err != nil {
		return nil, err
	}
	return extraction, nil
}
