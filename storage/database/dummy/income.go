package dummydb

import (
	"context"
	"sort"
	"time"

	"github.com/acadex/backend/core/income"
)

type incomeRepository struct {
	db *incomeTable
}

var _ income.Repository = (*incomeRepository)(nil) // interface compliance check

func NewIncomeRepository(db *DB) *incomeRepository {
	return &incomeRepository{db: db.income}
}

func (repo *incomeRepository) CreateIncome(_ context.Context, inc income.Income) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[inc.ID] = &inc
	return nil
}

func (repo *incomeRepository) QueryAllIncomes(_ context.Context) ([]income.Income, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	incomes := make([]income.Income, 0, len(repo.db.table))
	for _, inc := range repo.db.table {
		incomes = append(incomes, *inc)
	}
	sort.Slice(incomes, func(i, j int) bool { return incomes[i].CreatedAt.Before(incomes[j].CreatedAt) })
	return incomes, nil
}

func (repo *incomeRepository) FilterIncomes(_ context.Context, f income.Filter) ([]income.Income, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var incomes []income.Income
	for _, inc := range repo.db.table {
		if !inc.IsActive {
			continue
		}
		if f.Month != "" && (!inc.IncomeDate.Valid || !f.Month.Contains(inc.IncomeDate.Time)) {
			continue
		}
		if f.ProfessorID != "" && inc.ProfessorID != f.ProfessorID {
			continue
		}
		if f.EnrollmentID != "" && inc.EnrollmentID != f.EnrollmentID {
			continue
		}
		incomes = append(incomes, *inc)
	}
	sort.Slice(incomes, func(i, j int) bool { return incomes[i].CreatedAt.Before(incomes[j].CreatedAt) })
	return incomes, nil
}

func (repo *incomeRepository) GetIncomeByID(_ context.Context, id string) (income.Income, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if inc, ok := repo.db.table[id]; ok {
		return *inc, nil
	}
	return income.Income{}, income.ErrNotFound
}

func (repo *incomeRepository) UpdateIncome(_ context.Context, inc income.Income) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[inc.ID]; !ok {
		return income.ErrNotFound
	}
	repo.db.table[inc.ID] = &inc
	return nil
}

func (repo *incomeRepository) SetIncomeActive(_ context.Context, id string, isActive bool) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	inc, ok := repo.db.table[id]
	if !ok {
		return income.ErrNotFound
	}
	inc.IsActive = isActive
	inc.UpdatedAt = time.Now().UTC()
	return nil
}
