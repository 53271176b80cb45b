package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/friendsofgo/errors"
	"github.com/jmoiron/sqlx"

	"github.com/acadex/backend/core/paymethod"
)

type paymentMethodRow struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Type        string    `db:"type"`
	Description string    `db:"description"`
	Status      int       `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r paymentMethodRow) model() paymethod.PaymentMethod {
	return paymethod.PaymentMethod(r)
}

type paymentMethodRepository struct {
	db *sqlx.DB
}

var _ paymethod.Repository = (*paymentMethodRepository)(nil) // interface compliance check

func NewPaymentMethodRepository(db *sqlx.DB) *paymentMethodRepository {
	return &paymentMethodRepository{db: db}
}

func (repo *paymentMethodRepository) CreatePaymentMethod(ctx context.Context, pm paymethod.PaymentMethod) error {
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO payment_method (id, name, type, description, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		pm.ID, pm.Name, pm.Type, pm.Description, pm.Status, pm.CreatedAt, pm.UpdatedAt,
	)
	return errors.Wrap(err, "inserting payment method")
}

func (repo *paymentMethodRepository) QueryAllPaymentMethods(ctx context.Context) ([]paymethod.PaymentMethod, error) {
	var rows []paymentMethodRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM payment_method ORDER BY name`); err != nil {
		return nil, errors.Wrap(err, "querying payment methods")
	}
	methods := make([]paymethod.PaymentMethod, 0, len(rows))
	for _, r := range rows {
		methods = append(methods, r.model())
	}
	return methods, nil
}

func (repo *paymentMethodRepository) GetPaymentMethodByID(ctx context.Context, id string) (paymethod.PaymentMethod, error) {
	var r paymentMethodRow
	if err := repo.db.GetContext(ctx, &r, `SELECT * FROM payment_method WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return paymethod.PaymentMethod{}, paymethod.ErrNotFound
		}
		return paymethod.PaymentMethod{}, errors.Wrap(err, "getting payment method")
	}
	return r.model(), nil
}

func (repo *paymentMethodRepository) UpdatePaymentMethod(ctx context.Context, pm paymethod.PaymentMethod) error {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE payment_method SET name = $2, type = $3, description = $4, status = $5, updated_at = $6
		 WHERE id = $1`,
		pm.ID, pm.Name, pm.Type, pm.Description, pm.Status, pm.UpdatedAt,
	)
	if err != nil {
		return errors.Wrap(err, "updating payment method")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return paymethod.ErrNotFound
	}
	return nil
}

func (repo *paymentMethodRepository) SetPaymentMethodStatus(ctx context.Context, id string, status int) error {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE payment_method SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return errors.Wrap(err, "setting payment method status")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return paymethod.ErrNotFound
	}
	return nil
}
