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


package ai

import (
	"errors"
	"strings"
)

// Config holds configuration for AI service providers.
type Config struct {
	// EmbeddingHost is the base URL for the embedding service API.
	// Example: "http://localhost:11434/v1" for local OpenAI-compatible server
	EmbeddingHost string

	// ExtractorHost is the base URL for the extraction service API.
	// Example: "http://localhost:11434/v1" for local OpenAI-compatible server
	ExtractorHost string

	// RerankHost is the base URL for the cross-encoder rerank service.
	// Empty disables reranking; search falls back to similarity and
	// importance scoring alone.
	RerankHost string

	// EmbeddingModel is the model identifier to use for text embeddings.
	// Example: "embeddinggemma", "text-embedding-3-small"
	EmbeddingModel string

	// ExtractorModel is the model identifier to use for concept extraction.
	// Example: "qwen2.5:3b", "gpt-4o-mini"
	ExtractorModel string

	// MinImportance is the minimum importance score [0,1] for extracted
	// concepts. Concepts below this threshold are filtered out.
	// Default: 0.3
	MinImportance float64
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithEmbeddingHost sets the embedding service host URL.
func WithEmbeddingHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
	}
}

// WithExtractorHost sets the extraction service host URL.
func WithExtractorHost(host string) ConfigOption {
	return func(c *Config) {
		c.ExtractorHost = host
	}
}

// WithHost sets both embedding and extractor hosts to the same URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
		c.ExtractorHost = host
	}
}

// WithRerankHost sets the cross-encoder rerank service host URL.
func WithRerankHost(host string) ConfigOption {
	return func(c *Config) {
		c.RerankHost = host
	}
}

// WithEmbeddingModel sets the embedding model identifier.
func WithEmbeddingModel(model string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingModel = model
	}
}

// WithExtractorModel sets the extractor model identifier.
func WithExtractorModel(model string) ConfigOption {
	return func(c *Config) {
		c.ExtractorModel = model
	}
}

// WithMinImportance sets the minimum importance threshold for concept extraction.
func WithMinImportance(min float64) ConfigOption {
	return func(c *Config) {
		c.MinImportance = min
	}
}

// DefaultConfig returns a Config with sensible defaults for local OpenAI-compatible services.
// By default, both embedding and extractor use the same host and reranking
// is disabled.
func DefaultConfig() *Config {
	defaultHost := "http://localhost:11434/v1"
	return &Config{
		EmbeddingHost:  defaultHost,
		ExtractorHost:  defaultHost,
		EmbeddingModel: "embeddinggemma",
		ExtractorModel: "qwen2.5:3b",
		MinImportance:  0.3,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
// This is the recommended way to create a Config with custom settings.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Validation errors
var (
	ErrEmptyEmbeddingHost   = errors.New("embedding host cannot be empty")
	ErrEmptyExtractorHost   = errors.New("extractor host cannot be empty")
	ErrEmptyEmbeddingModel  = errors.New("embedding model cannot be empty")
	ErrEmptyExtractorModel  = errors.New("extractor model cannot be empty")
	ErrInvalidMinImportance = errors.New("min importance must lie in [0,1]")
)

// Validate checks the configuration and normalizes host URLs.
func (c *Config) Validate() error {
	c.EmbeddingHost = strings.TrimRight(strings.TrimSpace(c.EmbeddingHost), "/")
	c.ExtractorHost = strings.TrimRight(strings.TrimSpace(c.ExtractorHost), "/")
	c.RerankHost = strings.TrimRight(strings.TrimSpace(c.RerankHost), "/")

	if c.EmbeddingHost == "" {
		return ErrEmptyEmbeddingHost
	}
	if c.ExtractorHost == "" {
		return ErrEmptyExtractorHost
	}
	if c.EmbeddingModel == "" {
		return ErrEmptyEmbeddingModel
	}
	if c.ExtractorModel == "" {
		return ErrEmptyExtractorModel
	}
	if c.MinImportance < 0 || c.MinImportance > 1 {
		return ErrInvalidMinImportance
	}
	return nil
}
