package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/friendsofgo/errors"
	"github.com/jmoiron/sqlx"

	"github.com/acadex/backend/core/currency"
)

type currencyRow struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r currencyRow) model() currency.Currency {
	return currency.Currency(r)
}

type currencyRepository struct {
	db *sqlx.DB
}

var _ currency.Repository = (*currencyRepository)(nil) // interface compliance check

func NewCurrencyRepository(db *sqlx.DB) *currencyRepository {
	return &currencyRepository{db: db}
}

func (repo *currencyRepository) CreateCurrency(ctx context.Context, cur currency.Currency) error {
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO currency (id, name, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		cur.ID, cur.Name, cur.IsActive, cur.CreatedAt, cur.UpdatedAt,
	)
	return errors.Wrap(err, "inserting currency")
}

func (repo *currencyRepository) QueryAllCurrencies(ctx context.Context) ([]currency.Currency, error) {
	var rows []currencyRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM currency ORDER BY name`); err != nil {
		return nil, errors.Wrap(err, "querying currencies")
	}
	currencies := make([]currency.Currency, 0, len(rows))
	for _, r := range rows {
		currencies = append(currencies, r.model())
	}
	return currencies, nil
}

func (repo *currencyRepository) GetCurrencyByID(ctx context.Context, id string) (currency.Currency, error) {
	var r currencyRow
	if err := repo.db.GetContext(ctx, &r, `SELECT * FROM currency WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return currency.Currency{}, currency.ErrNotFound
		}
		return currency.Currency{}, errors.Wrap(err, "getting currency")
	}
	return r.model(), nil
}

func (repo *currencyRepository) UpdateCurrency(ctx context.Context, cur currency.Currency) error {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE currency SET name = $2, updated_at = $3 WHERE id = $1`,
		cur.ID, cur.Name, cur.UpdatedAt,
	)
	if err != nil {
		return errors.Wrap(err, "updating currency")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return currency.ErrNotFound
	}
	return nil
}

func (repo *currencyRepository) SetCurrencyActive(ctx context.Context, id string, isActive bool) error {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE currency SET is_active = $2, updated_at = now() WHERE id = $1`, id, isActive)
	if err != nil {
		return errors.Wrap(err, "setting currency active")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return currency.ErrNotFound
	}
	return nil
}
