package dummydb

import (
	"context"
	"sort"
	"time"

	"github.com/acadex/backend/core/enrollment"
)

type enrollmentRepository struct {
	db       *enrollmentTable
	students *studentTable
}

var _ enrollment.Repository = (*enrollmentRepository)(nil) // interface compliance check

func NewEnrollmentRepository(db *DB) *enrollmentRepository {
	return &enrollmentRepository{db: db.enrollment, students: db.student}
}

func (repo *enrollmentRepository) withNames(enr enrollment.Enrollment) enrollment.Enrollment {
	repo.students.RLock()
	defer repo.students.RUnlock()

	names := make([]string, 0, len(enr.StudentIDs))
	for _, id := range enr.StudentIDs {
		if std, ok := repo.students.table[id]; ok {
			names = append(names, std.Name)
		}
	}
	enr.SetStudentNames(names)
	return enr
}

func (repo *enrollmentRepository) CreateEnrollment(_ context.Context, enr enrollment.Enrollment) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[enr.ID] = &enr
	return nil
}

func (repo *enrollmentRepository) QueryAllEnrollments(_ context.Context) ([]enrollment.Enrollment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	enrs := make([]enrollment.Enrollment, 0, len(repo.db.table))
	for _, enr := range repo.db.table {
		enrs = append(enrs, repo.withNames(*enr))
	}
	sort.Slice(enrs, func(i, j int) bool { return enrs[i].CreatedAt.Before(enrs[j].CreatedAt) })
	return enrs, nil
}

func (repo *enrollmentRepository) GetEnrollmentByID(_ context.Context, id string) (enrollment.Enrollment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if enr, ok := repo.db.table[id]; ok {
		return repo.withNames(*enr), nil
	}
	return enrollment.Enrollment{}, enrollment.ErrNotFound
}

func (repo *enrollmentRepository) UpdateEnrollment(_ context.Context, enr enrollment.Enrollment) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[enr.ID]; !ok {
		return enrollment.ErrNotFound
	}
	repo.db.table[enr.ID] = &enr
	return nil
}

func (repo *enrollmentRepository) SetEnrollmentStatus(_ context.Context, id, status string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	enr, ok := repo.db.table[id]
	if !ok {
		return enrollment.ErrNotFound
	}
	enr.Status = status
	enr.UpdatedAt = time.Now().UTC()
	return nil
}
