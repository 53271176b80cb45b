package dummydb

import (
	"context"
	"sort"
	"time"

	"github.com/acadex/backend/core/paymethod"
)

type paymentMethodRepository struct {
	db *paymethodTable
}

var _ paymethod.Repository = (*paymentMethodRepository)(nil) // interface compliance check

func NewPaymentMethodRepository(db *DB) *paymentMethodRepository {
	return &paymentMethodRepository{db: db.paymethod}
}

func (repo *paymentMethodRepository) CreatePaymentMethod(_ context.Context, pm paymethod.PaymentMethod) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[pm.ID] = &pm
	return nil
}

func (repo *paymentMethodRepository) QueryAllPaymentMethods(_ context.Context) ([]paymethod.PaymentMethod, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	methods := make([]paymethod.PaymentMethod, 0, len(repo.db.table))
	for _, pm := range repo.db.table {
		methods = append(methods, *pm)
	}
	sort.Slice(methods, func(i, j int) bool { return methods[i].Name < methods[j].Name })
	return methods, nil
}

func (repo *paymentMethodRepository) GetPaymentMethodByID(_ context.Context, id string) (paymethod.PaymentMethod, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if pm, ok := repo.db.table[id]; ok {
		return *pm, nil
	}
	return paymethod.PaymentMethod{}, paymethod.ErrNotFound
}

func (repo *paymentMethodRepository) UpdatePaymentMethod(_ context.Context, pm paymethod.PaymentMethod) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[pm.ID]; !ok {
		return paymethod.ErrNotFound
	}
	repo.db.table[pm.ID] = &pm
	return nil
}

func (repo *paymentMethodRepository) SetPaymentMethodStatus(_ context.Context, id string, status int) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	pm, ok := repo.db.table[id]
	if !ok {
		return paymethod.ErrNotFound
	}
	pm.Status = status
	pm.UpdatedAt = time.Now().UTC()
	return nil
}
