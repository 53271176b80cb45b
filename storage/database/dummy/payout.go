package dummydb

import (
	"context"
	"sort"
	"time"

	"github.com/acadex/backend/core/payout"
)

type payoutRepository struct {
	db *payoutTable
}

var _ payout.Repository = (*payoutRepository)(nil) // interface compliance check

func NewPayoutRepository(db *DB) *payoutRepository {
	return &payoutRepository{db: db.payout}
}

func (repo *payoutRepository) CreatePayout(_ context.Context, po payout.Payout) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[po.ID] = &po
	return nil
}

func (repo *payoutRepository) QueryAllPayouts(_ context.Context) ([]payout.Payout, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	payouts := make([]payout.Payout, 0, len(repo.db.table))
	for _, po := range repo.db.table {
		payouts = append(payouts, *po)
	}
	sort.Slice(payouts, func(i, j int) bool { return payouts[i].CreatedAt.Before(payouts[j].CreatedAt) })
	return payouts, nil
}

func (repo *payoutRepository) FilterPayouts(_ context.Context, f payout.Filter) ([]payout.Payout, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var payouts []payout.Payout
	for _, po := range repo.db.table {
		if !po.IsActive {
			continue
		}
		if f.Month != "" && po.Month != f.Month {
			continue
		}
		if f.ProfessorID != "" && po.ProfessorID != f.ProfessorID {
			continue
		}
		payouts = append(payouts, *po)
	}
	sort.Slice(payouts, func(i, j int) bool { return payouts[i].CreatedAt.Before(payouts[j].CreatedAt) })
	return payouts, nil
}

func (repo *payoutRepository) GetPayoutByID(_ context.Context, id string) (payout.Payout, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if po, ok := repo.db.table[id]; ok {
		return *po, nil
	}
	return payout.Payout{}, payout.ErrNotFound
}

func (repo *payoutRepository) UpdatePayout(_ context.Context, po payout.Payout) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[po.ID]; !ok {
		return payout.ErrNotFound
	}
	repo.db.table[po.ID] = &po
	return nil
}

func (repo *payoutRepository) SetPayoutActive(_ context.Context, id string, isActive bool) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	po, ok := repo.db.table[id]
	if !ok {
		return payout.ErrNotFound
	}
	po.IsActive = isActive
	po.UpdatedAt = time.Now().UTC()
	return nil
}
