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

import "errors"

var (
	// ErrConceptRepositoryRequired is returned when a concept repository is not provided.
	ErrConceptRepositoryRequired = errors.New("concept repository required")

	// ErrCompanyRepositoryRequired is returned when a company repository is not provided.
	ErrCompanyRepositoryRequired = errors.New("company repository required")

	// ErrMarketDataRepositoryRequired is returned when a market data repository is not provided.
	ErrMarketDataRepositoryRequired = errors.New("market data repository required")

	// ErrDatabaseUnavailable is returned when the vector store cannot serve
	// a search, either because the circuit breaker is open or because the
	// backend itself failed.
	ErrDatabaseUnavailable = errors.New("concept database unavailable")

	// ErrInvalidWeights is returned when ranking weights do not sum to 1.
	ErrInvalidWeights = errors.New("ranking weights must sum to 1.0")

	// ErrUnknownStrategy is returned for an unrecognized aggregation strategy.
	ErrUnknownStrategy = errors.New("unknown aggregation strategy")

	// ErrInvalidTopK is returned when a search request asks for a
	// non-positive number of results.
	ErrInvalidTopK = errors.New("topK must be positive")

	// ErrInvalidThreshold is returned when a similarity threshold falls
	// outside [0,1].
	ErrInvalidThreshold = errors.New("similarity threshold must be in [0,1]")

	// ErrEmptyIdentifier is returned when a search request carries no
	// company identifier.
	ErrEmptyIdentifier = errors.New("company identifier required")
)
