package dummydb

import (
	"context"
	"sort"

	"github.com/acadex/backend/core"
	"github.com/acadex/backend/core/accounting"
)

type reportRepository struct {
	db *reportTable
}

var _ accounting.Repository = (*reportRepository)(nil) // interface compliance check

func NewReportRepository(db *DB) *reportRepository {
	return &reportRepository{db: db.report}
}

func (repo *reportRepository) SaveReport(_ context.Context, rpt accounting.MonthlyReport) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[rpt.Month]; ok {
		return accounting.ErrMonthExists
	}
	repo.db.table[rpt.Month] = &rpt
	return nil
}

func (repo *reportRepository) QueryReportRefs(_ context.Context) ([]accounting.ReportRef, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	refs := make([]accounting.ReportRef, 0, len(repo.db.table))
	for _, rpt := range repo.db.table {
		refs = append(refs, accounting.ReportRef{ID: rpt.ID, Month: rpt.Month, CreatedAt: rpt.CreatedAt})
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].Month > refs[j].Month })
	return refs, nil
}

func (repo *reportRepository) GetReportByMonth(_ context.Context, month core.Month) (accounting.MonthlyReport, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if rpt, ok := repo.db.table[month]; ok {
		return *rpt, nil
	}
	return accounting.MonthlyReport{}, accounting.ErrNotFound
}
