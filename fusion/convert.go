package fusion

import (
	"fmt"
	"strings"

	"github.com/poiesic/kindred/ai"
	"github.com/poiesic/kindred/core"
)

// ConvertExtracted maps a raw extraction onto the typed domain shape,
// validating the label fields and the importance range.
func ConvertExtracted(ec ai.ExtractedConcept) (core.ExtractedConcept, error) {
	name := strings.TrimSpace(ec.Name)
	if name == "" {
		return core.ExtractedConcept{}, core.ErrEmptyConceptName
	}

	category, err := core.ParseConceptCategory(ec.Category)
	if err != nil {
		return core.ExtractedConcept{}, fmt.Errorf("concept %q: %w", name, err)
	}
	stage, err := core.ParseDevelopmentStage(ec.Stage)
	if err != nil {
		return core.ExtractedConcept{}, fmt.Errorf("concept %q: %w", name, err)
	}
	if err := core.ValidateScore(ec.Importance); err != nil {
		return core.ExtractedConcept{}, fmt.Errorf("concept %q: %w", name, err)
	}

	return core.ExtractedConcept{
		Name:            name,
		Category:        category,
		ImportanceScore: ec.Importance,
		Stage:           stage,
		Details: core.ConceptDetails{
			Description: strings.TrimSpace(ec.Description),
			Timeline: core.Timeline{
				Established: strings.TrimSpace(ec.Established),
				RecentEvent: strings.TrimSpace(ec.RecentEvent),
			},
			Metrics: ec.Metrics,
			Relations: core.Relations{
				Customers:    dedupe(ec.Customers),
				Partners:     dedupe(ec.Partners),
				Subsidiaries: dedupe(ec.Subsidiaries),
			},
			SourceSentences: dedupe(ec.SourceSentences),
			Extras:          ec.Extras,
		},
	}, nil
}

// dedupe removes duplicates preserving first-seen order. Blank entries
// are dropped.
func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
