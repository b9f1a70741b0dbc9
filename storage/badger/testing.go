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


package badger

import "github.com/poiesic/kindred/storage"

// MemoryRepositories bundles in-memory repositories for testing.
type MemoryRepositories struct {
	Concepts  storage.ConceptRepository
	Companies storage.CompanyRepository
	Market    storage.MarketDataRepository
	Documents storage.DocumentRepository
	Backend   *Backend
}

// Close closes all repositories and the backend.
func (m *MemoryRepositories) Close() {
	m.Documents.Close()
	m.Market.Close()
	m.Companies.Close()
	m.Concepts.Close()
	m.Backend.Close()
}

// NewMemoryRepositories creates in-memory repositories for testing.
// Caller must call Close when done.
func NewMemoryRepositories() (*MemoryRepositories, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, err
	}

	concepts, err := NewConceptRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	companies, err := NewCompanyRepository(backend)
	if err != nil {
		concepts.Close()
		backend.Close()
		return nil, err
	}

	market, err := NewMarketDataRepository(backend)
	if err != nil {
		companies.Close()
		concepts.Close()
		backend.Close()
		return nil, err
	}

	documents, err := NewDocumentRepository(backend)
	if err != nil {
		market.Close()
		companies.Close()
		concepts.Close()
		backend.Close()
		return nil, err
	}

	return &MemoryRepositories{
		Concepts:  concepts,
		Companies: companies,
		Market:    market,
		Documents: documents,
		Backend:   backend,
	}, nil
}
