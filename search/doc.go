// Package search implements the company similarity pipeline: a free-form
// identifier resolves to a company, its active business concepts fan out
// as parallel k-NN probes over the concept store, and the merged hits are
// reranked, scored, aggregated per company, and screened by market
// characteristics.
//
// The entry point is Service.Search. Individual stages (Searcher, Ranker,
// AggregateByCompany, MarketFilter, ResolveQuery) are exported so callers
// can compose a custom pipeline.
package search
