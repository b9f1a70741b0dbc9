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
	"slices"
	"strings"

	"github.com/poiesic/kindred/core"
	"github.com/poiesic/kindred/storage"
)

// Tier maps a half-open value range [Min, Max) to a score. Values at or
// above the last tier's Max still take the last tier's score.
type Tier struct {
	Min   float64
	Max   float64
	Score float64
}

// scoreFor walks the tiers in order and returns the first matching score.
// Tiers must be ordered; values past the end fall into the last tier.
func scoreFor(tiers []Tier, value float64) float64 {
	for _, t := range tiers {
		if value >= t.Min && value < t.Max {
			return t.Score
		}
	}
	if len(tiers) == 0 {
		return 0
	}
	return tiers[len(tiers)-1].Score
}

// Filters are the market constraints applied after aggregation. Nil
// pointer fields mean "filter not requested".
type Filters struct {
	// MaxMarketCapCny excludes companies whose market cap meets or
	// exceeds this value, in CNY.
	MaxMarketCapCny *float64

	// MaxAvgVolume5Day excludes companies whose 5-day average traded
	// value meets or exceeds this value, in CNY.
	MaxAvgVolume5Day *float64
}

// DefaultFilters returns the standard small-cap screen: market cap under
// 8.5 billion CNY and 5-day average traded value under 200 million CNY.
func DefaultFilters() Filters {
	cap := 85e8
	vol := 2e8
	return Filters{MaxMarketCapCny: &cap, MaxAvgVolume5Day: &vol}
}

// FilterResult is the outcome of a market filtering pass.
type FilterResult struct {
	Companies           []core.ScoredCompany
	CapFilterApplied    bool
	VolumeFilterApplied bool
	AdvancedScoring     bool
	TotalBeforeFilter   int
}

// MarketFilter screens aggregated companies by market characteristics and
// computes the composite L score ordering the final result.
type MarketFilter struct {
	marketRepository storage.MarketDataRepository
	capTiers         []Tier
	volumeTiers      []Tier
	relevanceTiers   []Tier
	logger           *slog.Logger
}

// MarketFilterOption configures a MarketFilter.
type MarketFilterOption func(*MarketFilter) error

// WithMarketLogger sets a custom logger. Default is slog.Default().
func WithMarketLogger(logger *slog.Logger) MarketFilterOption {
	return func(f *MarketFilter) error {
		if logger == nil {
			logger = slog.Default()
		}
		f.logger = logger
		return nil
	}
}

// WithCapTiers overrides the market cap tier table.
func WithCapTiers(tiers []Tier) MarketFilterOption {
	return func(f *MarketFilter) error {
		if err := validateTiers(tiers); err != nil {
			return fmt.Errorf("cap tiers: %w", err)
		}
		f.capTiers = tiers
		return nil
	}
}

// WithVolumeTiers overrides the volume tier table.
func WithVolumeTiers(tiers []Tier) MarketFilterOption {
	return func(f *MarketFilter) error {
		if err := validateTiers(tiers); err != nil {
			return fmt.Errorf("volume tiers: %w", err)
		}
		f.volumeTiers = tiers
		return nil
	}
}

// WithRelevanceTiers maps continuous relevance scores onto discrete
// coefficients. Without this option the raw relevance score is used as
// the coefficient directly.
func WithRelevanceTiers(tiers []Tier) MarketFilterOption {
	return func(f *MarketFilter) error {
		if err := validateTiers(tiers); err != nil {
			return fmt.Errorf("relevance tiers: %w", err)
		}
		f.relevanceTiers = tiers
		return nil
	}
}

// DefaultCapTiers returns the standard market cap tiers: smaller caps
// score higher.
func DefaultCapTiers() []Tier {
	return []Tier{
		{Min: 60e8, Max: 85e8, Score: 1.0},
		{Min: 40e8, Max: 60e8, Score: 2.0},
		{Min: 0, Max: 40e8, Score: 3.0},
	}
}

// DefaultVolumeTiers returns the standard 5-day traded value tiers:
// thinner trading scores higher.
func DefaultVolumeTiers() []Tier {
	return []Tier{
		{Min: 1e8, Max: 2e8, Score: 1.0},
		{Min: 0.5e8, Max: 1e8, Score: 2.0},
		{Min: 0, Max: 0.5e8, Score: 3.0},
	}
}

// NewMarketFilter creates a market filter with the default tier tables.
func NewMarketFilter(marketRepository storage.MarketDataRepository, opts ...MarketFilterOption) (*MarketFilter, error) {
	if marketRepository == nil {
		return nil, ErrMarketDataRepositoryRequired
	}

	f := &MarketFilter{
		marketRepository: marketRepository,
		capTiers:         DefaultCapTiers(),
		volumeTiers:      DefaultVolumeTiers(),
		logger:           slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func validateTiers(tiers []Tier) error {
	if len(tiers) == 0 {
		return fmt.Errorf("tier table must not be empty")
	}
	for i, t := range tiers {
		if t.Min > t.Max {
			return fmt.Errorf("tier %d: min %.2f exceeds max %.2f", i, t.Min, t.Max)
		}
	}
	return nil
}

// ApplyFilters screens companies by the requested market constraints and
// attaches market sub-scores. When no filters are requested, companies
// pass through unscored in their input order. When market data cannot be
// fetched at all, filtering degrades gracefully: every company passes and
// AdvancedScoring is false.
func (f *MarketFilter) ApplyFilters(ctx context.Context, companies []core.AggregatedCompany, filters Filters) (FilterResult, error) {
	result := FilterResult{
		TotalBeforeFilter:   len(companies),
		CapFilterApplied:    filters.MaxMarketCapCny != nil,
		VolumeFilterApplied: filters.MaxAvgVolume5Day != nil,
	}

	if !result.CapFilterApplied && !result.VolumeFilterApplied {
		result.Companies = passthrough(companies)
		return result, nil
	}

	codes := make([]string, len(companies))
	for i, c := range companies {
		codes[i] = c.CompanyCode
	}
	marketData, err := f.marketRepository.GetMarketData(ctx, codes)
	if err != nil {
		f.logger.Warn("market data fetch failed, skipping market filters",
			"companies", len(companies), "err", err)
		result.Companies = passthrough(companies)
		return result, nil
	}
	if len(marketData) == 0 {
		f.logger.Warn("no market data available, skipping market filters",
			"companies", len(companies))
		result.Companies = passthrough(companies)
		return result, nil
	}
	result.AdvancedScoring = true

	scored := make([]core.ScoredCompany, 0, len(companies))
	for _, company := range companies {
		data, ok := marketData[company.CompanyCode]
		if !ok {
			f.logger.Debug("excluding company without market data",
				"companyCode", company.CompanyCode)
			continue
		}

		if result.CapFilterApplied {
			if data.MarketCapCny == nil || *data.MarketCapCny >= *filters.MaxMarketCapCny {
				continue
			}
		}
		if result.VolumeFilterApplied {
			if data.AvgVolume5Day == nil || *data.AvgVolume5Day >= *filters.MaxAvgVolume5Day {
				continue
			}
		}

		sc := core.ScoredCompany{
			AggregatedCompany: company,
			HasMarketData:     true,
		}
		if data.MarketCapCny != nil {
			sc.MarketCapScore = scoreFor(f.capTiers, *data.MarketCapCny)
		}
		if data.AvgVolume5Day != nil {
			sc.VolumeScore = scoreFor(f.volumeTiers, *data.AvgVolume5Day)
		}
		sc.RelevanceCoefficient = f.relevanceCoefficient(company.RelevanceScore)
		sc.FinalScore = sc.RelevanceCoefficient * (sc.MarketCapScore + sc.VolumeScore)
		scored = append(scored, sc)
	}

	slices.SortStableFunc(scored, func(a, b core.ScoredCompany) int {
		switch {
		case a.FinalScore > b.FinalScore:
			return -1
		case a.FinalScore < b.FinalScore:
			return 1
		default:
			return strings.Compare(a.CompanyCode, b.CompanyCode)
		}
	})

	result.Companies = scored
	return result, nil
}

func (f *MarketFilter) relevanceCoefficient(relevance float64) float64 {
	if len(f.relevanceTiers) == 0 {
		return relevance
	}
	return scoreFor(f.relevanceTiers, relevance)
}

// passthrough wraps companies unchanged when market scoring is off.
func passthrough(companies []core.AggregatedCompany) []core.ScoredCompany {
	out := make([]core.ScoredCompany, len(companies))
	for i, c := range companies {
		out[i] = core.ScoredCompany{
			AggregatedCompany:    c,
			RelevanceCoefficient: c.RelevanceScore,
			FinalScore:           c.RelevanceScore,
		}
	}
	return out
}
