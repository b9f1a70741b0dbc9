package search

import "github.com/poiesic/kindred/core"

// SearchMonitor provides hooks to observe the search pipeline.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(identifier string)
	AfterCompanyResolution(company *core.Company)
	AfterCandidateSearch(hits []core.CandidateHit)
	AfterRerank(scores map[core.ID]float64, degraded bool)
	AfterRanking(hits []core.ScoredHit)
	AfterAggregation(companies []core.AggregatedCompany)
	AfterMarketFilter(result FilterResult)
	Finish(result *SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                                 {}
func (n *noopMonitor) AfterCompanyResolution(_ *core.Company)         {}
func (n *noopMonitor) AfterCandidateSearch(_ []core.CandidateHit)     {}
func (n *noopMonitor) AfterRerank(_ map[core.ID]float64, _ bool)      {}
func (n *noopMonitor) AfterRanking(_ []core.ScoredHit)                {}
func (n *noopMonitor) AfterAggregation(_ []core.AggregatedCompany)    {}
func (n *noopMonitor) AfterMarketFilter(_ FilterResult)               {}
func (n *noopMonitor) Finish(_ *SearchResult)                         {}
