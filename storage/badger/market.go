package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/kindred/core"
	"github.com/poiesic/kindred/storage"
)

// MarketDataRepository implements storage.MarketDataRepository for BadgerDB.
type MarketDataRepository struct {
	backend *Backend
}

var _ storage.MarketDataRepository = (*MarketDataRepository)(nil)

// NewMarketDataRepository creates a new MarketDataRepository.
func NewMarketDataRepository(backend *Backend) (*MarketDataRepository, error) {
	return &MarketDataRepository{
		backend: backend,
	}, nil
}

// Close releases resources. MarketDataRepository has no resources to release.
func (r *MarketDataRepository) Close() error {
	return nil
}

// PutMarketData upserts market snapshots.
func (r *MarketDataRepository) PutMarketData(ctx context.Context, data ...core.MarketData) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for i := range data {
			if data[i].CompanyCode == "" {
				return core.ErrEmptyCompanyCode
			}
			if err := tx.Set(makeMarketKey(data[i].CompanyCode), storage.MarshalMarketData(&data[i])); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetMarketData fetches snapshots for the given codes in one batch.
// Codes without a snapshot are absent from the result map.
func (r *MarketDataRepository) GetMarketData(ctx context.Context, codes []string) (map[string]core.MarketData, error) {
	result := make(map[string]core.MarketData, len(codes))

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, code := range codes {
			item, err := tx.Get(makeMarketKey(code))
			if errors.Is(err, badger.ErrKeyNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			err = item.Value(func(val []byte) error {
				md, err := storage.UnmarshalMarketData(val)
				if err != nil {
					return err
				}
				result[code] = *md
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return result, nil
}
