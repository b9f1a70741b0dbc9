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


package kindred

import (
	"log/slog"

	"github.com/poiesic/kindred/ai"
	"github.com/poiesic/kindred/ai/openai"
	"github.com/poiesic/kindred/ai/rerank"
	"github.com/poiesic/kindred/fusion"
	"github.com/poiesic/kindred/resilience"
	"github.com/poiesic/kindred/search"
	"github.com/poiesic/kindred/storage"
	"github.com/poiesic/kindred/storage/badger"
)

// Database is the root facade: one open store plus the wired services.
type Database struct {
	backend      *badger.Backend
	conceptRepo  storage.ConceptRepository
	companyRepo  storage.CompanyRepository
	marketRepo   storage.MarketDataRepository
	documentRepo storage.DocumentRepository
	provider     ai.AIProvider
	reranker     ai.Reranker
	breaker      *resilience.Breaker
	logger       *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig      *ai.Config
	breakerConfig resilience.BreakerConfig
}

// WithAIConfig overrides the AI provider configuration.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithBreakerConfig overrides the circuit breaker configuration guarding
// the vector store.
func WithBreakerConfig(config resilience.BreakerConfig) DatabaseOption {
	return func(o *databaseOptions) {
		o.breakerConfig = config
	}
}

// NewDatabase opens the concept store at filePath and wires the services.
func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{
		aiConfig:      ai.DefaultConfig(),
		breakerConfig: resilience.DefaultBreakerConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	conceptRepo, err := badger.NewConceptRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	companyRepo, err := badger.NewCompanyRepository(backend)
	if err != nil {
		conceptRepo.Close()
		backend.Close()
		return nil, err
	}

	marketRepo, err := badger.NewMarketDataRepository(backend)
	if err != nil {
		companyRepo.Close()
		conceptRepo.Close()
		backend.Close()
		return nil, err
	}

	documentRepo, err := badger.NewDocumentRepository(backend)
	if err != nil {
		marketRepo.Close()
		companyRepo.Close()
		conceptRepo.Close()
		backend.Close()
		return nil, err
	}

	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		documentRepo.Close()
		marketRepo.Close()
		companyRepo.Close()
		conceptRepo.Close()
		backend.Close()
		return nil, err
	}

	breaker, err := resilience.NewBreaker(options.breakerConfig)
	if err != nil {
		provider.Close()
		documentRepo.Close()
		marketRepo.Close()
		companyRepo.Close()
		conceptRepo.Close()
		backend.Close()
		return nil, err
	}

	db := &Database{
		backend:      backend,
		conceptRepo:  conceptRepo,
		companyRepo:  companyRepo,
		marketRepo:   marketRepo,
		documentRepo: documentRepo,
		provider:     provider,
		breaker:      breaker,
		logger:       slog.Default(),
	}

	if options.aiConfig.RerankHost != "" {
		reranker, err := rerank.NewClient(options.aiConfig.RerankHost)
		if err != nil {
			db.Close()
			return nil, err
		}
		db.reranker = reranker
	}

	return db, nil
}

// Close shuts the services down, storage last.
func (db *Database) Close() error {
	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing AI provider", "err", err)
	}

	if err := db.documentRepo.Close(); err != nil {
		db.logger.Error("error closing document repository", "err", err)
		return err
	}
	if err := db.marketRepo.Close(); err != nil {
		db.logger.Error("error closing market data repository", "err", err)
		return err
	}
	if err := db.companyRepo.Close(); err != nil {
		db.logger.Error("error closing company repository", "err", err)
		return err
	}
	if err := db.conceptRepo.Close(); err != nil {
		db.logger.Error("error closing concept repository", "err", err)
		return err
	}

	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) ConceptRepository() storage.ConceptRepository {
	return db.conceptRepo
}

func (db *Database) CompanyRepository() storage.CompanyRepository {
	return db.companyRepo
}

func (db *Database) MarketDataRepository() storage.MarketDataRepository {
	return db.marketRepo
}

func (db *Database) DocumentRepository() storage.DocumentRepository {
	return db.documentRepo
}

// NewSearchService wires the full search pipeline against this database.
// The circuit breaker and, when configured, the reranker are attached
// automatically; extra options may override the defaults.
func (db *Database) NewSearchService(opts ...search.ServiceOption) (*search.Service, error) {
	searcher, err := search.NewSearcher(db.conceptRepo, db.companyRepo, search.WithBreaker(db.breaker))
	if err != nil {
		return nil, err
	}
	ranker, err := search.NewRanker(search.DefaultWeights())
	if err != nil {
		return nil, err
	}
	filter, err := search.NewMarketFilter(db.marketRepo)
	if err != nil {
		return nil, err
	}

	if db.reranker != nil {
		opts = append([]search.ServiceOption{search.WithReranker(db.reranker)}, opts...)
	}
	return search.NewService(searcher, ranker, filter, opts...)
}

// NewUpdater wires the master-data fusion path against this database.
func (db *Database) NewUpdater(opts ...fusion.UpdaterOption) (*fusion.Updater, error) {
	return fusion.NewUpdater(db.conceptRepo, db.documentRepo, db.provider, opts...)
}
