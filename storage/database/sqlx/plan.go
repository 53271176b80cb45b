package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/friendsofgo/errors"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/acadex/backend/core/plan"
)

type planRow struct {
	ID           string          `db:"id"`
	Name         string          `db:"name"`
	Duration     string          `db:"duration"`
	Hours        decimal.Decimal `db:"hours"`
	Price        decimal.Decimal `db:"price"`
	PricePerHour decimal.Decimal `db:"price_per_hour"`
	IsActive     bool            `db:"is_active"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

func (r planRow) model() plan.Plan {
	return plan.Plan{
		ID:           r.ID,
		Name:         r.Name,
		Duration:     r.Duration,
		Hours:        r.Hours,
		Price:        r.Price,
		PricePerHour: r.PricePerHour,
		IsActive:     r.IsActive,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type planRepository struct {
	db *sqlx.DB
}

var _ plan.Repository = (*planRepository)(nil) // interface compliance check

func NewPlanRepository(db *sqlx.DB) *planRepository {
	return &planRepository{db: db}
}

func (repo *planRepository) CreatePlan(ctx context.Context, pln plan.Plan) error {
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO plan (id, name, duration, hours, price, price_per_hour, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		pln.ID, pln.Name, pln.Duration, pln.Hours, pln.Price, pln.PricePerHour,
		pln.IsActive, pln.CreatedAt, pln.UpdatedAt,
	)
	return errors.Wrap(err, "inserting plan")
}

func (repo *planRepository) QueryAllPlans(ctx context.Context) ([]plan.Plan, error) {
	var rows []planRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM plan ORDER BY name`); err != nil {
		return nil, errors.Wrap(err, "querying plans")
	}
	plans := make([]plan.Plan, 0, len(rows))
	for _, r := range rows {
		plans = append(plans, r.model())
	}
	return plans, nil
}

func (repo *planRepository) GetPlanByID(ctx context.Context, id string) (plan.Plan, error) {
	var r planRow
	if err := repo.db.GetContext(ctx, &r, `SELECT * FROM plan WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return plan.Plan{}, plan.ErrNotFound
		}
		return plan.Plan{}, errors.Wrap(err, "getting plan")
	}
	return r.model(), nil
}

func (repo *planRepository) UpdatePlan(ctx context.Context, pln plan.Plan) error {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE plan SET name = $2, duration = $3, hours = $4, price = $5, price_per_hour = $6, updated_at = $7
		 WHERE id = $1`,
		pln.ID, pln.Name, pln.Duration, pln.Hours, pln.Price, pln.PricePerHour, pln.UpdatedAt,
	)
	if err != nil {
		return errors.Wrap(err, "updating plan")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return plan.ErrNotFound
	}
	return nil
}

func (repo *planRepository) SetPlanActive(ctx context.Context, id string, isActive bool) error {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE plan SET is_active = $2, updated_at = now() WHERE id = $1`, id, isActive)
	if err != nil {
		return errors.Wrap(err, "setting plan active")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return plan.ErrNotFound
	}
	return nil
}
