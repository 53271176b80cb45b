package dummydb

import (
	"context"
	"sort"
	"time"

	"github.com/acadex/backend/core/professor"
)

type professorRepository struct {
	db *professorTable
}

var _ professor.Repository = (*professorRepository)(nil) // interface compliance check

func NewProfessorRepository(db *DB) *professorRepository {
	return &professorRepository{db: db.professor}
}

func (repo *professorRepository) CreateProfessor(_ context.Context, prof professor.Professor) (professor.Professor, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[prof.ID] = &prof
	return prof, nil
}

func (repo *professorRepository) QueryAllProfessors(_ context.Context) ([]professor.Professor, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	professors := make([]professor.Professor, 0, len(repo.db.table))
	for _, prof := range repo.db.table {
		professors = append(professors, *prof)
	}
	sort.Slice(professors, func(i, j int) bool { return professors[i].Name < professors[j].Name })
	return professors, nil
}

func (repo *professorRepository) GetProfessorByID(_ context.Context, id string) (professor.Professor, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if prof, ok := repo.db.table[id]; ok {
		return *prof, nil
	}
	return professor.Professor{}, professor.ErrNotFound
}

func (repo *professorRepository) GetSpecialProfessor(_ context.Context) (professor.Professor, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, prof := range repo.db.table {
		if prof.Special {
			return *prof, nil
		}
	}
	return professor.Professor{}, professor.ErrNotFound
}

func (repo *professorRepository) UpdateProfessor(_ context.Context, prof professor.Professor) (professor.Professor, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[prof.ID]; !ok {
		return professor.Professor{}, professor.ErrNotFound
	}
	repo.db.table[prof.ID] = &prof
	return prof, nil
}

func (repo *professorRepository) SetProfessorActive(_ context.Context, id string, active bool) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	prof, ok := repo.db.table[id]
	if !ok {
		return professor.ErrNotFound
	}
	prof.IsActive = active
	prof.UpdatedAt = time.Now().UTC()
	return nil
}
