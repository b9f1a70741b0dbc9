package storage

import (
	"context"

	"github.com/poiesic/kindred/core"
)

// ConceptRepository provides operations for managing master business concepts.
// Implementations must be thread-safe and support concurrent access.
type ConceptRepository interface {
	// FindActiveConcepts returns the active master concepts of one company.
	// Returns an empty slice when the company has no active concepts.
	FindActiveConcepts(ctx context.Context, companyCode string) ([]*core.MasterConcept, error)

	// KNNSearch finds active concepts similar to the given vector.
	// Returns candidate hits with similarity >= minSimilarity, up to limit
	// results, ordered by similarity score (highest first). The source
	// company is NOT excluded here; exclusion is the caller's job.
	KNNSearch(ctx context.Context, vector []float32, minSimilarity float64, limit int) ([]core.CandidateHit, error)

	// GetMasterConcept retrieves one company's concept by name.
	// Returns (nil, nil) when no such concept exists.
	GetMasterConcept(ctx context.Context, companyCode, conceptName string) (*core.MasterConcept, error)

	// PutMasterConcept writes a master concept using optimistic locking.
	// expectedVersion is the version the caller read, or 0 when creating a
	// new record. A mismatch between expectedVersion and the stored version
	// fails with a ConflictError wrapping ErrOptimisticLock.
	PutMasterConcept(ctx context.Context, concept *core.MasterConcept, expectedVersion int64) error

	// DeactivateConcept soft-deletes a concept. The record and its version
	// history remain; it stops appearing in FindActiveConcepts and KNNSearch.
	DeactivateConcept(ctx context.Context, companyCode, conceptName string) error

	// Close closes the repository and releases resources.
	Close() error
}

// CompanyRepository provides operations for the company identity index.
type CompanyRepository interface {
	// PutCompanies upserts one or more companies.
	PutCompanies(ctx context.Context, companies ...*core.Company) error

	// GetCompany retrieves a company by exact code.
	// Returns ErrNotFound if the company doesn't exist.
	GetCompany(ctx context.Context, code string) (*core.Company, error)

	// AllCompanies returns every known company in ascending code order.
	AllCompanies(ctx context.Context) ([]*core.Company, error)

	// Close closes the repository and releases resources.
	Close() error
}

// MarketDataRepository provides access to per-company market snapshots.
type MarketDataRepository interface {
	// PutMarketData upserts market snapshots.
	PutMarketData(ctx context.Context, data ...core.MarketData) error

	// GetMarketData fetches snapshots for the given codes in one batch.
	// Codes without data are simply absent from the result map; absence is
	// not an error.
	GetMarketData(ctx context.Context, codes []string) (map[string]core.MarketData, error)

	// Close closes the repository and releases resources.
	Close() error
}

// DocumentRepository stages per-document extraction output for fusion.
type DocumentRepository interface {
	// PutExtraction stores the extraction result of one document.
	PutExtraction(ctx context.Context, extraction *core.ConceptExtraction) error

	// GetExtraction retrieves the extraction result of one document.
	// Returns ErrNotFound if the document was never extracted.
	GetExtraction(ctx context.Context, docID string) (*core.ConceptExtraction, error)

	// Close closes the repository and releases resources.
	Close() error
}
