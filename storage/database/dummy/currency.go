package dummydb

import (
	"context"
	"sort"
	"time"

	"github.com/acadex/backend/core/currency"
)

type currencyRepository struct {
	db *currencyTable
}

var _ currency.Repository = (*currencyRepository)(nil) // interface compliance check

func NewCurrencyRepository(db *DB) *currencyRepository {
	return &currencyRepository{db: db.currency}
}

func (repo *currencyRepository) CreateCurrency(_ context.Context, cur currency.Currency) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[cur.ID] = &cur
	return nil
}

func (repo *currencyRepository) QueryAllCurrencies(_ context.Context) ([]currency.Currency, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	currencies := make([]currency.Currency, 0, len(repo.db.table))
	for _, cur := range repo.db.table {
		currencies = append(currencies, *cur)
	}
	sort.Slice(currencies, func(i, j int) bool { return currencies[i].Name < currencies[j].Name })
	return currencies, nil
}

func (repo *currencyRepository) GetCurrencyByID(_ context.Context, id string) (currency.Currency, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if cur, ok := repo.db.table[id]; ok {
		return *cur, nil
	}
	return currency.Currency{}, currency.ErrNotFound
}

func (repo *currencyRepository) UpdateCurrency(_ context.Context, cur currency.Currency) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[cur.ID]; !ok {
		return currency.ErrNotFound
	}
	repo.db.table[cur.ID] = &cur
	return nil
}

func (repo *currencyRepository) SetCurrencyActive(_ context.Context, id string, isActive bool) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	cur, ok := repo.db.table[id]
	if !ok {
		return currency.ErrNotFound
	}
	cur.IsActive = isActive
	cur.UpdatedAt = time.Now().UTC()
	return nil
}
