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
	"fmt"
	"math"
	"slices"

	"github.com/poiesic/kindred/core"
)

// Weights are the relative contributions of the two ranking signals.
// They must sum to 1 within a 0.01 tolerance.
type Weights struct {
	Rerank     float64
	Importance float64
}

// DefaultWeights returns the standard 0.7 rerank / 0.3 importance split.
func DefaultWeights() Weights {
	return Weights{Rerank: 0.7, Importance: 0.3}
}

// Ranker combines cross-encoder relevance with stored importance scores
// into a single final score per hit.
type Ranker struct {
	weights Weights
}

// NewRanker creates a ranker, validating the weights once so Combine
// never has to.
func NewRanker(weights Weights) (*Ranker, error) {
	sum := weights.Rerank + weights.Importance
	if math.Abs(sum-1.0) > 0.01 {
		return nil, fmt.Errorf("%w: rerank=%.3f importance=%.3f sum=%.3f",
			ErrInvalidWeights, weights.Rerank, weights.Importance, sum)
	}
	if weights.Rerank < 0 || weights.Importance < 0 {
		return nil, fmt.Errorf("%w: weights must be non-negative", ErrInvalidWeights)
	}
	return &Ranker{weights: weights}, nil
}

// Combine scores every candidate hit. A hit with a rerank score gets the
// weighted combination of both signals; a hit without one degrades to its
// importance score alone. Either input score outside [0,1] fails the whole
// call naming the offending concept. The result is sorted by final score
// descending; the sort is stable, so equal scores keep their input order.
func (r *Ranker) Combine(hits []core.CandidateHit, rerankScores map[core.ID]float64) ([]core.ScoredHit, error) {
	scored := make([]core.ScoredHit, 0, len(hits))
	for _, hit := range hits {
		if hit.ImportanceScore < 0 || hit.ImportanceScore > 1 {
			return nil, fmt.Errorf("concept %d: %w: importance %.4f",
				hit.ConceptId, core.ErrScoreOutOfRange, hit.ImportanceScore)
		}

		sh := core.ScoredHit{CandidateHit: hit}
		if rerank, ok := rerankScores[hit.ConceptId]; ok {
			if rerank < 0 || rerank > 1 {
				return nil, fmt.Errorf("concept %d: %w: rerank %.4f",
					hit.ConceptId, core.ErrScoreOutOfRange, rerank)
			}
			score := r.weights.Rerank*rerank + r.weights.Importance*hit.ImportanceScore
			// Weighted sum of in-range inputs can only exceed [0,1]
			// through float error; clamp anyway.
			sh.FinalScore = clamp01(score)
			sh.RerankScore = &rerank
		} else {
			sh.FinalScore = hit.ImportanceScore
		}
		scored = append(scored, sh)
	}

	slices.SortStableFunc(scored, func(a, b core.ScoredHit) int {
		switch {
		case a.FinalScore > b.FinalScore:
			return -1
		case a.FinalScore < b.FinalScore:
			return 1
		default:
			return 0
		}
	})
	return scored, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
