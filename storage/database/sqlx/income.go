package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/friendsofgo/errors"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"

	"github.com/acadex/backend/core/income"
)

type incomeRow struct {
	ID              string          `db:"id"`
	DepositName     string          `db:"deposit_name"`
	Amount          decimal.Decimal `db:"amount"`
	CurrencyID      string          `db:"currency_id"`
	ProfessorID     string          `db:"professor_id"`
	PaymentMethodID string          `db:"payment_method_id"`
	EnrollmentID    string          `db:"enrollment_id"`
	Note            string          `db:"note"`
	IncomeDate      null.Time       `db:"income_date"`
	IsActive        bool            `db:"is_active"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

func (r incomeRow) model() income.Income {
	return income.Income(r)
}

type incomeRepository struct {
	db *sqlx.DB
}

var _ income.Repository = (*incomeRepository)(nil) // interface compliance check

func NewIncomeRepository(db *sqlx.DB) *incomeRepository {
	return &incomeRepository{db: db}
}

func (repo *incomeRepository) CreateIncome(ctx context.Context, inc income.Income) error {
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO income (
			id, deposit_name, amount, currency_id, professor_id, payment_method_id,
			enrollment_id, note, income_date, is_active, created_at, updated_at
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		inc.ID, inc.DepositName, inc.Amount, inc.CurrencyID, inc.ProfessorID,
		inc.PaymentMethodID, inc.EnrollmentID, inc.Note, inc.IncomeDate,
		inc.IsActive, inc.CreatedAt, inc.UpdatedAt,
	)
	return errors.Wrap(err, "inserting income")
}

func (repo *incomeRepository) QueryAllIncomes(ctx context.Context) ([]income.Income, error) {
	var rows []incomeRow
	err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM income ORDER BY income_date DESC NULLS LAST`)
	if err != nil {
		return nil, errors.Wrap(err, "querying incomes")
	}
	return rowsToIncomes(rows), nil
}

func (repo *incomeRepository) FilterIncomes(ctx context.Context, f income.Filter) ([]income.Income, error) {
	query := `SELECT * FROM income WHERE is_active`
	var args []interface{}
	if f.Month != "" {
		args = append(args, f.Month.Time(), f.Month.Time().AddDate(0, 1, 0))
		query += ` AND income_date >= $1 AND income_date < $2`
	}
	if f.ProfessorID != "" {
		args = append(args, f.ProfessorID)
		query += ` AND professor_id = ` + dollar(len(args))
	}
	if f.EnrollmentID != "" {
		args = append(args, f.EnrollmentID)
		query += ` AND enrollment_id = ` + dollar(len(args))
	}
	query += ` ORDER BY income_date`

	var rows []incomeRow
	if err := repo.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "filtering incomes")
	}
	return rowsToIncomes(rows), nil
}

func (repo *incomeRepository) GetIncomeByID(ctx context.Context, id string) (income.Income, error) {
	var r incomeRow
	if err := repo.db.GetContext(ctx, &r, `SELECT * FROM income WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return income.Income{}, income.ErrNotFound
		}
		return income.Income{}, errors.Wrap(err, "getting income")
	}
	return r.model(), nil
}

func (repo *incomeRepository) UpdateIncome(ctx context.Context, inc income.Income) error {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE income SET
			deposit_name = $2, amount = $3, currency_id = $4, professor_id = $5,
			payment_method_id = $6, enrollment_id = $7, note = $8, income_date = $9,
			updated_at = $10
		 WHERE id = $1`,
		inc.ID, inc.DepositName, inc.Amount, inc.CurrencyID, inc.ProfessorID,
		inc.PaymentMethodID, inc.EnrollmentID, inc.Note, inc.IncomeDate, inc.UpdatedAt,
	)
	if err != nil {
		return errors.Wrap(err, "updating income")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return income.ErrNotFound
	}
	return nil
}

func (repo *incomeRepository) SetIncomeActive(ctx context.Context, id string, isActive bool) error {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE income SET is_active = $2, updated_at = now() WHERE id = $1`, id, isActive)
	if err != nil {
		return errors.Wrap(err, "setting income active")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return income.ErrNotFound
	}
	return nil
}

func rowsToIncomes(rows []incomeRow) []income.Income {
	incomes := make([]income.Income, 0, len(rows))
	for _, r := range rows {
		incomes = append(incomes, r.model())
	}
	return incomes
}
