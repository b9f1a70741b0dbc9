package search

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/poiesic/kindred/core"
	"github.com/poiesic/kindred/resilience"
	"github.com/poiesic/kindred/storage"
)

// ConceptQuery describes one similarity search over a company's concepts.
type ConceptQuery struct {
	CompanyCode         string
	TopK                int
	SimilarityThreshold float64
}

// Searcher fans a company's active concepts out as parallel k-NN probes
// and merges the hits into a deduplicated candidate list.
type Searcher struct {
	conceptRepository storage.ConceptRepository
	companyRepository storage.CompanyRepository
	breaker           *resilience.Breaker
	logger            *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithBreaker sets the circuit breaker guarding vector store access.
// When nil, k-NN calls go to the store directly.
func WithBreaker(breaker *resilience.Breaker) Option {
	return func(s *Searcher) error {
		s.breaker = breaker
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	conceptRepository storage.ConceptRepository,
	companyRepository storage.CompanyRepository,
	opts ...Option,
) (*Searcher, error) {
	if conceptRepository == nil {
		return nil, ErrConceptRepositoryRequired
	}
	if companyRepository == nil {
		return nil, ErrCompanyRepositoryRequired
	}

	s := &Searcher{
		conceptRepository: conceptRepository,
		companyRepository: companyRepository,
		logger:            slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// ResolveCompany maps a free-form identifier to a company. It tries, in
// order: exact code match, case-insensitive exact name match, and
// case-insensitive substring match against full and short names taking the
// first hit in code order. Returns core.ErrCompanyNotFound when nothing
// matches.
func (s *Searcher) ResolveCompany(ctx context.Context, identifier string) (*core.Company, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, fmt.Errorf("%w: %w", core.ErrCompanyNotFound, ErrEmptyIdentifier)
	}

	company, err := s.companyRepository.GetCompany(ctx, identifier)
	if err == nil {
		return company, nil
	}
	if !isNotFound(err) {
		return nil, fmt.Errorf("resolving company %q: %w", identifier, err)
	}

	companies, err := s.companyRepository.AllCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolving company %q: %w", identifier, err)
	}

	lowered := strings.ToLower(identifier)
	for _, c := range companies {
		if strings.EqualFold(c.Name, identifier) || strings.EqualFold(c.ShortName, identifier) {
			return c, nil
		}
	}
	for _, c := range companies {
		if strings.Contains(strings.ToLower(c.Name), lowered) ||
			strings.Contains(strings.ToLower(c.ShortName), lowered) {
			return c, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", core.ErrCompanyNotFound, identifier)
}

// SearchSimilarConcepts finds concepts of OTHER companies similar to the
// query company's active concepts. Each source concept probes the vector
// store independently; hits are merged, deduplicated by target concept
// keeping the highest similarity, sorted by similarity descending, and
// truncated to TopK. A company with no active concepts yields an empty
// result and no error.
func (s *Searcher) SearchSimilarConcepts(ctx context.Context, query ConceptQuery) ([]core.CandidateHit, error) {
	if query.TopK <= 0 {
		return nil, ErrInvalidTopK
	}
	if query.SimilarityThreshold < 0 || query.SimilarityThreshold > 1 {
		return nil, ErrInvalidThreshold
	}

	concepts, err := s.conceptRepository.FindActiveConcepts(ctx, query.CompanyCode)
	if err != nil {
		return nil, fmt.Errorf("%w: loading concepts for %s: %w", ErrDatabaseUnavailable, query.CompanyCode, err)
	}
	if len(concepts) == 0 {
		s.logger.Debug("company has no active concepts", "companyCode", query.CompanyCode)
		return []core.CandidateHit{}, nil
	}

	// Over-fetch per probe so company-level dedup still fills TopK.
	perProbeLimit := query.TopK * 2

	hitsPerConcept := make([][]core.CandidateHit, len(concepts))
	g, gctx := errgroup.WithContext(ctx)
	for i, concept := range concepts {
		if len(concept.Vector) == 0 {
			s.logger.Warn("active concept has no vector, skipping probe",
				"conceptId", concept.Id, "conceptName", concept.ConceptName)
			continue
		}
		g.Go(func() error {
			hits, err := s.knnSearch(gctx, concept.Vector, query.SimilarityThreshold, perProbeLimit)
			if err != nil {
				return fmt.Errorf("probe for concept %d (%s): %w", concept.Id, concept.ConceptName, err)
			}
			for j := range hits {
				hits[j].SourceConceptId = concept.Id
			}
			hitsPerConcept[i] = hits
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	// Fan-in: exclude the source company, keep the best similarity per
	// target concept.
	best := make(map[core.ID]core.CandidateHit)
	for _, hits := range hitsPerConcept {
		for _, hit := range hits {
			if hit.CompanyCode == query.CompanyCode {
				continue
			}
			if prev, ok := best[hit.ConceptId]; !ok || hit.SimilarityScore > prev.SimilarityScore {
				best[hit.ConceptId] = hit
			}
		}
	}

	merged := make([]core.CandidateHit, 0, len(best))
	for _, hit := range best {
		merged = append(merged, hit)
	}
	slices.SortStableFunc(merged, func(a, b core.CandidateHit) int {
		switch {
		case a.SimilarityScore > b.SimilarityScore:
			return -1
		case a.SimilarityScore < b.SimilarityScore:
			return 1
		default:
			return cmp.Compare(a.ConceptId, b.ConceptId)
		}
	})
	if len(merged) > query.TopK {
		merged = merged[:query.TopK]
	}

	s.logger.Debug("similarity fan-out complete",
		"companyCode", query.CompanyCode,
		"sourceConcepts", len(concepts),
		"candidates", len(merged))
	return merged, nil
}

func (s *Searcher) knnSearch(ctx context.Context, vector []float32, threshold float64, limit int) ([]core.CandidateHit, error) {
	if s.breaker == nil {
		return s.conceptRepository.KNNSearch(ctx, vector, threshold, limit)
	}
	return resilience.Do(s.breaker, ctx, func(ctx context.Context) ([]core.CandidateHit, error) {
		return s.conceptRepository.KNNSearch(ctx, vector, threshold, limit)
	})
}

func isNotFound(err error) bool {
	return err != nil && (errors.Is(err, storage.ErrNotFound) || errors.Is(err, core.ErrCompanyNotFound))
}
