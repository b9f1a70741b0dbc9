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
	"log/slog"

	"github.com/poiesic/kindred/ai"
)

// Provider bundles the two OpenAI-compatible services the ingestion path
// needs: concept-text embeddings and LLM concept extraction. Both may
// point at the same local endpoint or at separate ones (ai.Config).
type Provider struct {
	config    *ai.Config
	embedder  *Embedder
	extractor *ConceptExtractor
	logger    *slog.Logger
}

var _ ai.AIProvider = (*Provider)(nil)

// NewProvider creates an AI provider backed by OpenAI-compatible services.
// The config is validated and normalized before use.
//
// Returns ai.AIProvider rather than *Provider so callers stay decoupled
// from the OpenAI wiring.
func NewProvider(config *ai.Config) (ai.AIProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	embedder, err := newEmbedder(config)
	if err != nil {
		return nil, err
	}

	extractor, err := newConceptExtractor(config)
	if err != nil {
		return nil, err
	}

	return &Provider{
		config:    config,
		embedder:  embedder,
		extractor: extractor,
		logger:    slog.Default().With("component", "openai-provider"),
	}, nil
}

// Embedder returns the concept-text embedding service.
func (p *Provider) Embedder() ai.Embedder {
	return p.embedder
}

// ConceptExtractor returns the disclosure-text extraction service.
func (p *Provider) ConceptExtractor() ai.ConceptExtractor {
	return p.extractor
}

// Close releases resources held by the provider.
// The underlying HTTP clients hold no persistent connections that need
// explicit shutdown.
func (p *Provider) Close() error {
	return nil
}
