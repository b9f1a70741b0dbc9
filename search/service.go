// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/poiesic/kindred/ai"
	"github.com/poiesic/kindred/core"
)

const (
	defaultTopK      = 20
	defaultThreshold = 0.60
)

// SearchRequest is one similarity search over the concept store.
// Zero-valued TopK and SimilarityThreshold take the service defaults
// (20 and 0.60).
type SearchRequest struct {
	Identifier          string
	TopK                int
	SimilarityThreshold float64
	Filters             Filters
}

// SearchResult is the full outcome of one search.
type SearchResult struct {
	Query               ParsedQuery
	Company             *core.Company
	Companies           []core.ScoredCompany
	CapFilterApplied    bool
	VolumeFilterApplied bool
	TotalBeforeFilter   int
}

// Service runs the full search pipeline: company resolution, concept
// fan-out, optional reranking, ranking, company aggregation, and market
// filtering.
type Service struct {
	searcher     *Searcher
	ranker       *Ranker
	marketFilter *MarketFilter
	reranker     ai.Reranker
	strategy     AggregationStrategy
	cache        *resultCache
	logger       *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service) error

// WithServiceLogger sets a custom logger. Default is slog.Default().
func WithServiceLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithReranker enables cross-encoder reranking of merged candidates.
// Rerank failures degrade to importance-only ranking; they never fail
// the search.
func WithReranker(reranker ai.Reranker) ServiceOption {
	return func(s *Service) error {
		s.reranker = reranker
		return nil
	}
}

// WithStrategy sets the company aggregation strategy. Default is max.
func WithStrategy(strategy AggregationStrategy) ServiceOption {
	return func(s *Service) error {
		switch strategy {
		case StrategyMax, StrategyAverage:
			s.strategy = strategy
			return nil
		default:
			return fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
		}
	}
}

// WithCache enables result caching with the given capacity and TTL.
// Non-positive values take the defaults (256 entries, 300s).
func WithCache(size int, ttl time.Duration) ServiceOption {
	return func(s *Service) error {
		s.cache = newResultCache(size, ttl)
		return nil
	}
}

// NewService wires the pipeline stages into a search service.
func NewService(searcher *Searcher, ranker *Ranker, marketFilter *MarketFilter, opts ...ServiceOption) (*Service, error) {
	if searcher == nil {
		return nil, ErrConceptRepositoryRequired
	}
	if ranker == nil {
		return nil, fmt.Errorf("%w: ranker required", ErrInvalidWeights)
	}
	if marketFilter == nil {
		return nil, ErrMarketDataRepositoryRequired
	}

	s := &Service{
		searcher:     searcher,
		ranker:       ranker,
		marketFilter: marketFilter,
		strategy:     StrategyMax,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Search runs the pipeline for one request.
func (s *Service) Search(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	return s.SearchWithMonitor(ctx, req, nil)
}

// SearchWithMonitor runs the pipeline with per-stage observation hooks.
func (s *Service) SearchWithMonitor(ctx context.Context, req SearchRequest, monitor SearchMonitor) (*SearchResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if req.Identifier == "" {
		return nil, ErrEmptyIdentifier
	}
	if req.TopK == 0 {
		req.TopK = defaultTopK
	}
	if req.SimilarityThreshold == 0 {
		req.SimilarityThreshold = defaultThreshold
	}
	if req.TopK < 0 {
		return nil, ErrInvalidTopK
	}
	if req.SimilarityThreshold < 0 || req.SimilarityThreshold > 1 {
		return nil, ErrInvalidThreshold
	}

	monitor.Start(req.Identifier)

	var key string
	if s.cache != nil {
		key = cacheKey(req.Identifier, req.TopK, req.SimilarityThreshold, req.Filters)
		if cached, ok := s.cache.get(key); ok {
			s.logger.Debug("search cache hit", "identifier", req.Identifier)
			monitor.Finish(cached)
			return cached, nil
		}
	}

	company, err := s.searcher.ResolveCompany(ctx, req.Identifier)
	if err != nil {
		return nil, err
	}
	monitor.AfterCompanyResolution(company)

	candidates, err := s.searcher.SearchSimilarConcepts(ctx, ConceptQuery{
		CompanyCode:         company.Code,
		TopK:                req.TopK,
		SimilarityThreshold: req.SimilarityThreshold,
	})
	if err != nil {
		return nil, err
	}
	monitor.AfterCandidateSearch(candidates)

	rerankScores := s.rerank(ctx, company, candidates, monitor)

	scored, err := s.ranker.Combine(candidates, rerankScores)
	if err != nil {
		return nil, err
	}
	monitor.AfterRanking(scored)

	aggregated, err := AggregateByCompany(scored, s.strategy)
	if err != nil {
		return nil, err
	}
	monitor.AfterAggregation(aggregated)

	filtered, err := s.marketFilter.ApplyFilters(ctx, aggregated, req.Filters)
	if err != nil {
		return nil, err
	}
	monitor.AfterMarketFilter(filtered)

	parserCandidates := make([]QueryCandidate, 0, len(filtered.Companies))
	for _, c := range filtered.Companies {
		parserCandidates = append(parserCandidates, QueryCandidate{
			CompanyCode: c.CompanyCode,
			CompanyName: c.CompanyName,
			Score:       c.RelevanceScore,
		})
	}

	result := &SearchResult{
		Query:               ResolveQuery(req.Identifier, parserCandidates),
		Company:             company,
		Companies:           filtered.Companies,
		CapFilterApplied:    filtered.CapFilterApplied,
		VolumeFilterApplied: filtered.VolumeFilterApplied,
		TotalBeforeFilter:   filtered.TotalBeforeFilter,
	}
	if s.cache != nil {
		s.cache.put(key, result)
	}
	monitor.Finish(result)
	return result, nil
}

// rerank scores merged candidates against the query company's name through
// the cross-encoder. Any failure degrades to importance-only ranking.
func (s *Service) rerank(ctx context.Context, company *core.Company, candidates []core.CandidateHit, monitor SearchMonitor) map[core.ID]float64 {
	if s.reranker == nil || len(candidates) == 0 {
		monitor.AfterRerank(nil, s.reranker != nil)
		return nil
	}

	documents := make([]string, len(candidates))
	for i, c := range candidates {
		documents[i] = c.CompanyName + " " + c.ConceptName
	}

	results, err := s.reranker.Rerank(ctx, company.Name, documents, len(documents))
	if err != nil {
		s.logger.Warn("rerank failed, degrading to importance-only ranking",
			"company", company.Code, "err", err)
		monitor.AfterRerank(nil, true)
		return nil
	}

	scores := make(map[core.ID]float64, len(results))
	for _, r := range results {
		if r.DocumentIndex < 0 || r.DocumentIndex >= len(candidates) {
			continue
		}
		scores[candidates[r.DocumentIndex].ConceptId] = r.Score
	}
	monitor.AfterRerank(scores, false)
	return scores
}
