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

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/kindred/core"
	"github.com/poiesic/kindred/storage"
)

// CompanyRepository implements storage.CompanyRepository for BadgerDB.
type CompanyRepository struct {
	backend *Backend
}

var _ storage.CompanyRepository = (*CompanyRepository)(nil)

// NewCompanyRepository creates a new CompanyRepository.
func NewCompanyRepository(backend *Backend) (*CompanyRepository, error) {
	return &CompanyRepository{
		backend: backend,
	}, nil
}

// Close releases resources. CompanyRepository has no resources to release.
func (r *CompanyRepository) Close() error {
	return nil
}

// PutCompanies upserts one or more companies.
func (r *CompanyRepository) PutCompanies(ctx context.Context, companies ...*core.Company) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, company := range companies {
			if company.Code == "" {
				return core.ErrEmptyCompanyCode
			}
			if err := tx.Set(makeCompanyKey(company.Code), storage.MarshalCompany(company)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetCompany retrieves a company by exact code.
func (r *CompanyRepository) GetCompany(ctx context.Context, code string) (*core.Company, error) {
	var company *core.Company

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeCompanyKey(code))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			company, err = storage.UnmarshalCompany(val)
			return err
		})
	}, false)

	if err != nil {
		return nil, err
	}
	return company, nil
}

// AllCompanies returns every known company in ascending code order.
// BadgerDB iterates keys lexicographically, and the code is the key
// suffix, so no extra sort is needed.
func (r *CompanyRepository) AllCompanies(ctx context.Context) ([]*core.Company, error) {
	var companies []*core.Company

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(companyRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var company *core.Company
			err := iter.Item().Value(func(val []byte) error {
				var err error
				company, err = storage.UnmarshalCompany(val)
				return err
			})
			if err != nil {
				return err
			}
			companies = append(companies, company)
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return companies, nil
}
