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


package fusion

import (
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/poiesic/kindred/core"
)

// CreateFromNew builds a fresh master record from one extraction.
// The record starts at version 1, active, with its deterministic id
// derived from the company code and concept name.
func CreateFromNew(extracted core.ExtractedConcept, companyCode, companyName, docID string) (*core.MasterConcept, error) {
	if strings.TrimSpace(companyCode) == "" {
		return nil, core.ErrEmptyCompanyCode
	}
	if strings.TrimSpace(extracted.Name) == "" {
		return nil, core.ErrEmptyConceptName
	}

	now := time.Now().UTC()
	concept := &core.MasterConcept{
		Id:               core.ConceptIDFor(companyCode, extracted.Name),
		CompanyCode:      companyCode,
		CompanyName:      companyName,
		ConceptName:      extracted.Name,
		Category:         extracted.Category,
		ImportanceScore:  extracted.ImportanceScore,
		Stage:            extracted.Stage,
		Details:          cloneDetails(extracted.Details),
		Version:          1,
		IsActive:         true,
		LastUpdatedDocId: docID,
		InsertedAt:       now,
		UpdatedAt:        now,
	}
	if err := core.ValidateMasterConcept(concept); err != nil {
		return nil, err
	}
	return concept, nil
}

// Merge fuses a newer extraction into an existing master record and
// returns the successor record at version+1. The existing record is not
// modified.
//
// Field treatment follows the data's temporal nature. Point-in-time
// fields (importance, stage, category, metrics, recent event) are
// overwritten by the incoming extraction. Cumulative fields (customers,
// partners, subsidiaries, source sentences) are unioned, deduplicated,
// preserving first-seen order with the existing entries first. The longer
// of the two descriptions survives; Established is kept unless it was
// empty.
func Merge(existing *core.MasterConcept, incoming core.ExtractedConcept, docID string) (*core.MasterConcept, error) {
	if existing == nil {
		return nil, fmt.Errorf("%w: nil existing", ErrTupleMismatch)
	}
	if !existing.IsActive {
		return nil, fmt.Errorf("%w: %s", ErrInactiveExisting, existing.Tuple())
	}
	if !strings.EqualFold(existing.ConceptName, incoming.Name) {
		return nil, fmt.Errorf("%w: existing %q, incoming %q",
			ErrTupleMismatch, existing.ConceptName, incoming.Name)
	}

	merged := *existing
	merged.Details = cloneDetails(existing.Details)

	// Point-in-time fields: the newer extraction wins.
	merged.Category = incoming.Category
	merged.ImportanceScore = incoming.ImportanceScore
	merged.Stage = incoming.Stage
	if len(incoming.Details.Metrics) > 0 {
		merged.Details.Metrics = maps.Clone(incoming.Details.Metrics)
	}
	if incoming.Details.Timeline.RecentEvent != "" {
		merged.Details.Timeline.RecentEvent = incoming.Details.Timeline.RecentEvent
	}
	if merged.Details.Timeline.Established == "" {
		merged.Details.Timeline.Established = incoming.Details.Timeline.Established
	}

	// Cumulative fields: union, existing entries first.
	merged.Details.Relations.Customers = union(existing.Details.Relations.Customers, incoming.Details.Relations.Customers)
	merged.Details.Relations.Partners = union(existing.Details.Relations.Partners, incoming.Details.Relations.Partners)
	merged.Details.Relations.Subsidiaries = union(existing.Details.Relations.Subsidiaries, incoming.Details.Relations.Subsidiaries)
	merged.Details.SourceSentences = union(existing.Details.SourceSentences, incoming.Details.SourceSentences)

	if len(incoming.Details.Description) > len(merged.Details.Description) {
		merged.Details.Description = incoming.Details.Description
	}
	for k, v := range incoming.Details.Extras {
		if merged.Details.Extras == nil {
			merged.Details.Extras = make(map[string]string)
		}
		merged.Details.Extras[k] = v
	}

	merged.Version = existing.Version + 1
	merged.LastUpdatedDocId = docID
	merged.UpdatedAt = time.Now().UTC()

	if err := core.ValidateMasterConcept(&merged); err != nil {
		return nil, err
	}
	return &merged, nil
}

// union merges two string sets preserving first-seen order.
func union(a, b []string) []string {
	if len(a) == 0 {
		return dedupe(b)
	}
	if len(b) == 0 {
		return dedupe(a)
	}
	return dedupe(append(append(make([]string, 0, len(a)+len(b)), a...), b...))
}

func cloneDetails(d core.ConceptDetails) core.ConceptDetails {
	out := d
	out.Metrics = maps.Clone(d.Metrics)
	out.Extras = maps.Clone(d.Extras)
	out.SourceSentences = append([]string(nil), d.SourceSentences...)
	out.Relations.Customers = append([]string(nil), d.Relations.Customers...)
	out.Relations.Partners = append([]string(nil), d.Relations.Partners...)
	out.Relations.Subsidiaries = append([]string(nil), d.Relations.Subsidiaries...)
	return out
}
