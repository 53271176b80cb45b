package dummydb

import (
	"context"
	"sort"
	"time"

	"github.com/acadex/backend/core/plan"
)

type planRepository struct {
	db *planTable
}

var _ plan.Repository = (*planRepository)(nil) // interface compliance check

func NewPlanRepository(db *DB) *planRepository {
	return &planRepository{db: db.plan}
}

func (repo *planRepository) CreatePlan(_ context.Context, pln plan.Plan) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[pln.ID] = &pln
	return nil
}

func (repo *planRepository) QueryAllPlans(_ context.Context) ([]plan.Plan, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	plans := make([]plan.Plan, 0, len(repo.db.table))
	for _, pln := range repo.db.table {
		plans = append(plans, *pln)
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].Name < plans[j].Name })
	return plans, nil
}

func (repo *planRepository) GetPlanByID(_ context.Context, id string) (plan.Plan, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if pln, ok := repo.db.table[id]; ok {
		return *pln, nil
	}
	return plan.Plan{}, plan.ErrNotFound
}

func (repo *planRepository) UpdatePlan(_ context.Context, pln plan.Plan) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[pln.ID]; !ok {
		return plan.ErrNotFound
	}
	repo.db.table[pln.ID] = &pln
	return nil
}

func (repo *planRepository) SetPlanActive(_ context.Context, id string, isActive bool) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	pln, ok := repo.db.table[id]
	if !ok {
		return plan.ErrNotFound
	}
	pln.IsActive = isActive
	pln.UpdatedAt = time.Now().UTC()
	return nil
}
