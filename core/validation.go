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

import "fmt"

// ValidateMasterConcept validates a MasterConcept according to domain rules.
//
// Validation rules:
//   - CompanyCode and ConceptName must not be empty
//   - Category and Stage must be valid enum values
//   - ImportanceScore must lie in [0,1]
//   - Version must be positive
//
// NOT validated (populated elsewhere):
//   - Vector (can be empty until embedded)
//   - Id (derived from the tuple on write)
func ValidateMasterConcept(concept *MasterConcept) error {
	if concept == nil {
		return fmt.Errorf("%w: concept is nil", ErrInvalidConcept)
	}

	if concept.CompanyCode == "" {
		return fmt.Errorf("%w: %w", ErrInvalidConcept, ErrEmptyCompanyCode)
	}

	if concept.ConceptName == "" {
		return fmt.Errorf("%w: %w", ErrInvalidConcept, ErrEmptyConceptName)
	}

	if err := ValidateCategory(concept.Category); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConcept, err)
	}

	if err := ValidateStage(concept.Stage); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConcept, err)
	}

	if err := ValidateScore(concept.ImportanceScore); err != nil {
		return fmt.Errorf("%w: importance: %w", ErrInvalidConcept, err)
	}

	if concept.Version < 1 {
		return fmt.Errorf("%w: %w", ErrInvalidConcept, ErrInvalidVersion)
	}

	return nil
}

// ValidateExtractedConcept validates a freshly extracted concept before fusion.
func ValidateExtractedConcept(concept *ExtractedConcept) error {
	if concept == nil {
		return fmt.Errorf("%w: concept is nil", ErrInvalidConcept)
	}

	if concept.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidConcept, ErrEmptyConceptName)
	}

	if err := ValidateCategory(concept.Category); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConcept, err)
	}

	if err := ValidateStage(concept.Stage); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConcept, err)
	}

	if err := ValidateScore(concept.ImportanceScore); err != nil {
		return fmt.Errorf("%w: importance: %w", ErrInvalidConcept, err)
	}

	return nil
}

// ValidateCategory validates that a ConceptCategory has a valid value.
func ValidateCategory(category ConceptCategory) error {
	switch category {
	case CategoryCore, CategoryEmerging, CategoryStrategic:
		return nil
	}
	return fmt.Errorf("%w: value %d", ErrInvalidCategory, category)
}

// ValidateStage validates that a DevelopmentStage has a valid value.
func ValidateStage(stage DevelopmentStage) error {
	switch stage {
	case StageExploring, StageGrowing, StageMature, StageDeclining:
		return nil
	}
	return fmt.Errorf("%w: value %d", ErrInvalidStage, stage)
}

// ValidateScore validates that a score lies in the closed interval [0,1].
func ValidateScore(score float64) error {
	if score < 0 || score > 1 {
		return fmt.Errorf("%w: %g", ErrScoreOutOfRange, score)
	}
	return nil
}
