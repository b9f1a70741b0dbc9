package badger

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/kindred/core"
	"github.com/poiesic/kindred/storage"
)

// ConceptRepository implements storage.ConceptRepository for BadgerDB.
//
// The nearest-neighbor search is a brute-force scan over all active concept
// records. Vectors are stored normalized, so cosine similarity reduces to a
// dot product.
type ConceptRepository struct {
	backend *Backend
}

var _ storage.ConceptRepository = (*ConceptRepository)(nil)

// NewConceptRepository creates a new ConceptRepository.
func NewConceptRepository(backend *Backend) (*ConceptRepository, error) {
	return &ConceptRepository{
		backend: backend,
	}, nil
}

// Close releases resources. ConceptRepository has no resources to release.
func (r *ConceptRepository) Close() error {
	return nil
}

// FindActiveConcepts returns the active master concepts of one company.
func (r *ConceptRepository) FindActiveConcepts(ctx context.Context, companyCode string) ([]*core.MasterConcept, error) {
	var concepts []*core.MasterConcept

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialConceptCompanyKey(companyCode)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var id core.ID
			err := iter.Item().Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalID(val)
				return err
			})
			if err != nil {
				return err
			}

			concept, err := readConcept(tx, makeConceptKey(id))
			if err != nil {
				return err
			}
			if concept == nil || !concept.IsActive {
				continue
			}
			concepts = append(concepts, concept)
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return concepts, nil
}

// KNNSearch finds active concepts similar to the given vector.
// Results are ordered by similarity descending and truncated to limit.
// The querying company is not excluded; that is the caller's job.
func (r *ConceptRepository) KNNSearch(ctx context.Context, vector []float32, minSimilarity float64, limit int) ([]core.CandidateHit, error) {
	if limit <= 0 {
		return nil, storage.ErrInvalidQuery
	}

	var hits []core.CandidateHit

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(conceptRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var concept *core.MasterConcept
			err := iter.Item().Value(func(val []byte) error {
				var err error
				concept, err = storage.UnmarshalMasterConcept(val)
				return err
			})
			if err != nil {
				return err
			}
			if concept == nil || !concept.IsActive {
				continue
			}

			// Skip records without embeddings
			if len(concept.Vector) == 0 {
				continue
			}

			// Cosine similarity (dot product for normalized vectors)
			similarity := float64(dotProduct(vector, concept.Vector))
			if similarity < minSimilarity {
				continue
			}
			if similarity > 1 {
				similarity = 1
			}

			hits = append(hits, core.CandidateHit{
				ConceptId:       concept.Id,
				CompanyCode:     concept.CompanyCode,
				CompanyName:     concept.CompanyName,
				ConceptName:     concept.ConceptName,
				Category:        concept.Category,
				ImportanceScore: concept.ImportanceScore,
				SimilarityScore: similarity,
			})
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}

	// Sort by similarity descending
	slices.SortFunc(hits, func(a, b core.CandidateHit) int {
		if a.SimilarityScore > b.SimilarityScore {
			return -1
		}
		if a.SimilarityScore < b.SimilarityScore {
			return 1
		}
		return 0
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

// GetMasterConcept retrieves one company's concept by name.
// Returns (nil, nil) when no such concept exists.
func (r *ConceptRepository) GetMasterConcept(ctx context.Context, companyCode, conceptName string) (*core.MasterConcept, error) {
	var concept *core.MasterConcept

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeConceptTupleKey(companyCode, conceptName))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		var id core.ID
		err = item.Value(func(val []byte) error {
			var err error
			id, err = storage.UnmarshalID(val)
			return err
		})
		if err != nil {
			return err
		}

		concept, err = readConcept(tx, makeConceptKey(id))
		return err
	}, false)

	if err != nil {
		return nil, err
	}
	return concept, nil
}

// PutMasterConcept writes a master concept using optimistic locking.
//
// expectedVersion 0 asserts the record does not exist yet; any other value
// must equal the stored version. A mismatch fails with a ConflictError.
// The version check and the write happen inside one BadgerDB transaction,
// so concurrent writers to the same record cannot lose updates.
func (r *ConceptRepository) PutMasterConcept(ctx context.Context, concept *core.MasterConcept, expectedVersion int64) error {
	if err := core.ValidateMasterConcept(concept); err != nil {
		return err
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		if concept.Id == 0 {
			concept.Id = core.IDFromContent(concept.Tuple())
		}

		key := makeConceptKey(concept.Id)
		existing, err := readConcept(tx, key)
		if err != nil {
			return err
		}

		var actual int64
		if existing != nil {
			actual = existing.Version
		}
		if actual != expectedVersion {
			return &storage.ConflictError{
				CompanyCode: concept.CompanyCode,
				ConceptName: concept.ConceptName,
				Expected:    expectedVersion,
				Actual:      actual,
			}
		}

		now := time.Now().UTC()
		if existing == nil {
			concept.InsertedAt = now
		} else {
			concept.InsertedAt = existing.InsertedAt
		}
		concept.UpdatedAt = now

		if err := tx.Set(key, storage.MarshalMasterConcept(concept)); err != nil {
			return err
		}

		// Maintain the tuple and company indexes
		idVal := storage.MarshalID(concept.Id)
		if err := tx.Set(makeConceptTupleKey(concept.CompanyCode, concept.ConceptName), idVal); err != nil {
			return err
		}
		if err := tx.Set(makeConceptCompanyKey(concept.CompanyCode, concept.Id), idVal); err != nil {
			return err
		}

		// Two transactions racing past the version check serialize at
		// commit; surface that as the same conflict class so callers
		// retry the whole read-merge-write cycle.
		if err := tx.Commit(); err != nil {
			if errors.Is(err, badger.ErrConflict) {
				return &storage.ConflictError{
					CompanyCode: concept.CompanyCode,
					ConceptName: concept.ConceptName,
					Expected:    expectedVersion,
					Actual:      actual,
				}
			}
			return err
		}
		return nil
	}, true)
}

// DeactivateConcept soft-deletes a concept. The record keeps its version;
// it stops appearing in FindActiveConcepts and KNNSearch.
func (r *ConceptRepository) DeactivateConcept(ctx context.Context, companyCode, conceptName string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		id := core.ConceptIDFor(companyCode, conceptName)
		key := makeConceptKey(id)

		concept, err := readConcept(tx, key)
		if err != nil {
			return err
		}
		if concept == nil {
			return storage.ErrNotFound
		}

		concept.IsActive = false
		concept.UpdatedAt = time.Now().UTC()

		if err := tx.Set(key, storage.MarshalMasterConcept(concept)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// readConcept reads and deserializes a master concept by key.
// Returns (nil, nil) when the key does not exist.
func readConcept(tx *badger.Txn, key []byte) (*core.MasterConcept, error) {
	item, err := tx.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var concept *core.MasterConcept
	err = item.Value(func(val []byte) error {
		var err error
		concept, err = storage.UnmarshalMasterConcept(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return concept, nil
}

// dotProduct calculates the dot product of two vectors.
func dotProduct(a, b []float32) float32 {
	var sum float32
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}
	for i := 0; i < minLen; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
