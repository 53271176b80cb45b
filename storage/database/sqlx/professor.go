package sqlxrepos

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/friendsofgo/errors"
	"github.com/jmoiron/sqlx"
	"github.com/volatiletech/null/v8"

	"github.com/acadex/backend/core/professor"
)

type professorRow struct {
	ID               string          `db:"id"`
	Name             string          `db:"name"`
	CINumber         string          `db:"ci_number"`
	DOB              null.Time       `db:"dob"`
	Address          string          `db:"address"`
	Email            string          `db:"email"`
	Phone            string          `db:"phone"`
	Occupation       string          `db:"occupation"`
	StartDate        null.Time       `db:"start_date"`
	EmergencyContact json.RawMessage `db:"emergency_contact"`
	PaymentAccounts  json.RawMessage `db:"payment_accounts"`
	Special          bool            `db:"special"`
	IsActive         bool            `db:"is_active"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

func (r professorRow) model() (professor.Professor, error) {
	prof := professor.Professor{
		ID:         r.ID,
		Name:       r.Name,
		CINumber:   r.CINumber,
		DOB:        r.DOB,
		Address:    r.Address,
		Email:      r.Email,
		Phone:      r.Phone,
		Occupation: r.Occupation,
		StartDate:  r.StartDate,
		Special:    r.Special,
		IsActive:   r.IsActive,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
	if len(r.EmergencyContact) > 0 {
		if err := json.Unmarshal(r.EmergencyContact, &prof.EmergencyContact); err != nil {
			return professor.Professor{}, errors.Wrap(err, "decoding emergency contact")
		}
	}
	if len(r.PaymentAccounts) > 0 {
		if err := json.Unmarshal(r.PaymentAccounts, &prof.PaymentAccounts); err != nil {
			return professor.Professor{}, errors.Wrap(err, "decoding payment accounts")
		}
	}
	return prof, nil
}

type professorRepository struct {
	db *sqlx.DB
}

var _ professor.Repository = (*professorRepository)(nil) // interface compliance check

func NewProfessorRepository(db *sqlx.DB) *professorRepository {
	return &professorRepository{db: db}
}

func (repo *professorRepository) CreateProfessor(ctx context.Context, prof professor.Professor) (professor.Professor, error) {
	contact, accounts, err := encodeProfessor(prof)
	if err != nil {
		return professor.Professor{}, err
	}
	_, err = repo.db.ExecContext(ctx,
		`INSERT INTO professor (
			id, name, ci_number, dob, address, email, phone, occupation, start_date,
			emergency_contact, payment_accounts, special, is_active, created_at, updated_at
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		prof.ID, prof.Name, prof.CINumber, prof.DOB, prof.Address, prof.Email,
		prof.Phone, prof.Occupation, prof.StartDate, contact, accounts,
		prof.Special, prof.IsActive, prof.CreatedAt, prof.UpdatedAt,
	)
	if err != nil {
		return professor.Professor{}, errors.Wrap(err, "inserting professor")
	}
	return prof, nil
}

func (repo *professorRepository) QueryAllProfessors(ctx context.Context) ([]professor.Professor, error) {
	var rows []professorRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM professor ORDER BY name`); err != nil {
		return nil, errors.Wrap(err, "querying professors")
	}
	professors := make([]professor.Professor, 0, len(rows))
	for _, r := range rows {
		prof, err := r.model()
		if err != nil {
			return nil, err
		}
		professors = append(professors, prof)
	}
	return professors, nil
}

func (repo *professorRepository) getProfessor(ctx context.Context, query string, args ...interface{}) (professor.Professor, error) {
	var r professorRow
	if err := repo.db.GetContext(ctx, &r, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return professor.Professor{}, professor.ErrNotFound
		}
		return professor.Professor{}, errors.Wrap(err, "getting professor")
	}
	return r.model()
}

func (repo *professorRepository) GetProfessorByID(ctx context.Context, id string) (professor.Professor, error) {
	return repo.getProfessor(ctx, `SELECT * FROM professor WHERE id = $1`, id)
}

func (repo *professorRepository) GetSpecialProfessor(ctx context.Context) (professor.Professor, error) {
	return repo.getProfessor(ctx, `SELECT * FROM professor WHERE special`)
}

func (repo *professorRepository) UpdateProfessor(ctx context.Context, prof professor.Professor) (professor.Professor, error) {
	contact, accounts, err := encodeProfessor(prof)
	if err != nil {
		return professor.Professor{}, err
	}
	res, err := repo.db.ExecContext(ctx,
		`UPDATE professor SET
			name = $2, ci_number = $3, dob = $4, address = $5, email = $6, phone = $7,
			occupation = $8, start_date = $9, emergency_contact = $10,
			payment_accounts = $11, special = $12, updated_at = $13
		 WHERE id = $1`,
		prof.ID, prof.Name, prof.CINumber, prof.DOB, prof.Address, prof.Email,
		prof.Phone, prof.Occupation, prof.StartDate, contact, accounts,
		prof.Special, prof.UpdatedAt,
	)
	if err != nil {
		return professor.Professor{}, errors.Wrap(err, "updating professor")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return professor.Professor{}, professor.ErrNotFound
	}
	return prof, nil
}

func (repo *professorRepository) SetProfessorActive(ctx context.Context, id string, active bool) error {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE professor SET is_active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return errors.Wrap(err, "setting professor active")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return professor.ErrNotFound
	}
	return nil
}

func encodeProfessor(prof professor.Professor) (contact, accounts []byte, err error) {
	if contact, err = json.Marshal(prof.EmergencyContact); err != nil {
		return nil, nil, errors.Wrap(err, "encoding emergency contact")
	}
	if prof.PaymentAccounts == nil {
		prof.PaymentAccounts = []professor.PaymentAccount{}
	}
	if accounts, err = json.Marshal(prof.PaymentAccounts); err != nil {
		return nil, nil, errors.Wrap(err, "encoding payment accounts")
	}
	return contact, accounts, nil
}
