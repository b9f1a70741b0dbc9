package search

import (
	"fmt"
	"slices"
	"strings"

	"github.com/poiesic/kindred/core"
)

// AggregationStrategy selects how per-hit scores roll up to a company score.
type AggregationStrategy string

const (
	// StrategyMax scores a company by its single best hit.
	StrategyMax AggregationStrategy = "max"

	// StrategyAverage scores a company by the mean of its hits.
	StrategyAverage AggregationStrategy = "average"
)

// AggregateByCompany groups scored hits by company and rolls each group up
// to a single relevance score using the given strategy. Hits within a
// company come back sorted best first; companies come back sorted by
// relevance descending, ties broken by company code ascending. An empty
// input yields an empty output.
func AggregateByCompany(hits []core.ScoredHit, strategy AggregationStrategy) ([]core.AggregatedCompany, error) {
	switch strategy {
	case StrategyMax, StrategyAverage:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}

	groups := make(map[string]*core.AggregatedCompany)
	order := make([]string, 0)
	for _, hit := range hits {
		group, ok := groups[hit.CompanyCode]
		if !ok {
			group = &core.AggregatedCompany{
				CompanyCode: hit.CompanyCode,
				CompanyName: hit.CompanyName,
			}
			groups[hit.CompanyCode] = group
			order = append(order, hit.CompanyCode)
		}
		group.Hits = append(group.Hits, hit)
	}

	companies := make([]core.AggregatedCompany, 0, len(groups))
	for _, code := range order {
		group := groups[code]
		sortHitsDesc(group.Hits)
		group.RelevanceScore = rollUp(group.Hits, strategy)
		companies = append(companies, *group)
	}

	sortCompanies(companies)
	return companies, nil
}

func rollUp(hits []core.ScoredHit, strategy AggregationStrategy) float64 {
	if len(hits) == 0 {
		return 0
	}
	switch strategy {
	case StrategyAverage:
		var sum float64
		for _, h := range hits {
			sum += h.FinalScore
		}
		return sum / float64(len(hits))
	default: // StrategyMax; hits are sorted best first
		return hits[0].FinalScore
	}
}

func sortHitsDesc(hits []core.ScoredHit) {
	slices.SortStableFunc(hits, func(a, b core.ScoredHit) int {
		switch {
		case a.FinalScore > b.FinalScore:
			return -1
		case a.FinalScore < b.FinalScore:
			return 1
		default:
			return 0
		}
	})
}

func sortCompanies(companies []core.AggregatedCompany) {
	slices.SortStableFunc(companies, func(a, b core.AggregatedCompany) int {
		switch {
		case a.RelevanceScore > b.RelevanceScore:
			return -1
		case a.RelevanceScore < b.RelevanceScore:
			return 1
		default:
			return strings.Compare(a.CompanyCode, b.CompanyCode)
		}
	})
}
