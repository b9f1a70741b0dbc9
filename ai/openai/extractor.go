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


package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"

	"github.com/poiesic/kindred/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// ConceptExtractor implements ai.ConceptExtractor using OpenAI-compatible chat APIs.
type ConceptExtractor struct {
	client        llms.Model
	minImportance float64
	logger        *slog.Logger
}

// concept is an internal type used for JSON unmarshaling.
// It matches the structure expected from the LLM.
type concept struct {
	Concept         string             `json:"concept"`
	Category        string             `json:"category"`
	Importance      float64            `json:"importance"`
	Stage           string             `json:"stage"`
	Description     string             `json:"description"`
	Established     string             `json:"established"`
	RecentEvent     string             `json:"recent_event"`
	Metrics         map[string]float64 `json:"metrics"`
	Customers       []string           `json:"customers"`
	Partners        []string           `json:"partners"`
	Subsidiaries    []string           `json:"subsidiaries"`
	SourceSentences []string           `json:"source_sentences"`
}

// analysis is the wrapper structure for the LLM's JSON response.
type analysis struct {
	BusinessConcepts []concept `json:"business_concepts"`
}

// newConceptExtractor is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newConceptExtractor(config *ai.Config) (*ConceptExtractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for chat/extraction
	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.ExtractorHost),
		openai.WithToken("none"),
		openai.WithModel(config.ExtractorModel),
	)
	if err != nil {
		return nil, err
	}

	return &ConceptExtractor{
		client:        client,
		minImportance: config.MinImportance,
		logger:        slog.Default().With("component", "openai-extractor"),
	}, nil
}

// NewConceptExtractor creates a new concept extractor using the provided configuration.
//
// Returns ai.ConceptExtractor interface to enforce abstraction.
func NewConceptExtractor(config *ai.Config) (ai.ConceptExtractor, error) {
	return newConceptExtractor(config)
}

// ExtractConcepts extracts structured business concepts from disclosure text.
// It applies importance filtering and returns only concepts above the minimum threshold.
func (e *ConceptExtractor) ExtractConcepts(ctx context.Context, text string) ([]ai.ExtractedConcept, error) {
	systemPrompt := buildSystemPrompt()
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(text),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result analysis
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := e.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			e.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			e.logger.Debug("no choices returned from model")
			return []ai.ExtractedConcept{}, nil
		}

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(response.Choices[0].Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			e.logger.Warn("error parsing extraction response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		// Success
		lastErr = nil
		break
	}

	if lastErr != nil {
		e.logger.Error("failed to parse extraction response after retries", "err", lastErr)
		return nil, lastErr
	}

	// Filter by importance and convert to ai.ExtractedConcept
	extracted := make([]ai.ExtractedConcept, 0, len(result.BusinessConcepts))
	for _, c := range result.BusinessConcepts {
		if c.Importance < e.minImportance {
			continue
		}
		extracted = append(extracted, ai.ExtractedConcept{
			Name:            strings.ToLower(strings.TrimSpace(c.Concept)),
			Category:        c.Category,
			Importance:      c.Importance,
			Stage:           c.Stage,
			Description:     c.Description,
			Established:     c.Established,
			RecentEvent:     c.RecentEvent,
			Metrics:         c.Metrics,
			Customers:       c.Customers,
			Partners:        c.Partners,
			Subsidiaries:    c.Subsidiaries,
			SourceSentences: c.SourceSentences,
		})
	}

	// Sort by importance (descending)
	slices.SortFunc(extracted, func(a, b ai.ExtractedConcept) int {
		if a.Importance == b.Importance {
			return 0
		}
		if a.Importance < b.Importance {
			return 1
		}
		return -1
	})

	e.logger.Debug("extracted business concepts",
		"total", len(result.BusinessConcepts),
		"filtered", len(extracted))

	return extracted, nil
}
