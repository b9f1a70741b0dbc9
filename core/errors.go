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


package core

import "errors"

// Domain validation errors
var (
	// ErrCompanyNotFound indicates the target company identifier did not resolve.
	ErrCompanyNotFound = errors.New("company not found")

	// ErrInvalidConcept indicates a MasterConcept failed validation.
	ErrInvalidConcept = errors.New("invalid master concept")

	// ErrEmptyConceptName indicates the ConceptName field is empty.
	ErrEmptyConceptName = errors.New("concept name cannot be empty")

	// ErrEmptyCompanyCode indicates the CompanyCode field is empty.
	ErrEmptyCompanyCode = errors.New("company code cannot be empty")

	// ErrInvalidCategory indicates an invalid ConceptCategory value.
	ErrInvalidCategory = errors.New("invalid concept category")

	// ErrInvalidStage indicates an invalid DevelopmentStage value.
	ErrInvalidStage = errors.New("invalid development stage")

	// ErrScoreOutOfRange indicates a score outside the [0,1] interval.
	ErrScoreOutOfRange = errors.New("score out of range [0,1]")

	// ErrInvalidVersion indicates a non-positive record version.
	ErrInvalidVersion = errors.New("version must be positive")
)
