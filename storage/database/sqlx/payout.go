package sqlxrepos

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/friendsofgo/errors"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"

	"github.com/acadex/backend/core"
	"github.com/acadex/backend/core/payout"
)

type payoutRow struct {
	ID              string          `db:"id"`
	ProfessorID     string          `db:"professor_id"`
	Month           string          `db:"month"`
	Details         json.RawMessage `db:"details"`
	Subtotal        decimal.Decimal `db:"subtotal"`
	Discount        decimal.Decimal `db:"discount"`
	Total           decimal.Decimal `db:"total"`
	PaymentMethodID null.String     `db:"payment_method_id"`
	PaidAt          null.Time       `db:"paid_at"`
	Notes           string          `db:"notes"`
	IsActive        bool            `db:"is_active"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

func (r payoutRow) model() (payout.Payout, error) {
	po := payout.Payout{
		ID:              r.ID,
		ProfessorID:     r.ProfessorID,
		Month:           core.Month(r.Month),
		Subtotal:        r.Subtotal,
		Discount:        r.Discount,
		Total:           r.Total,
		PaymentMethodID: r.PaymentMethodID.String,
		PaidAt:          r.PaidAt,
		Notes:           r.Notes,
		IsActive:        r.IsActive,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if len(r.Details) > 0 {
		if err := json.Unmarshal(r.Details, &po.Details); err != nil {
			return payout.Payout{}, errors.Wrap(err, "decoding payout details")
		}
	}
	return po, nil
}

type payoutRepository struct {
	db *sqlx.DB
}

var _ payout.Repository = (*payoutRepository)(nil) // interface compliance check

func NewPayoutRepository(db *sqlx.DB) *payoutRepository {
	return &payoutRepository{db: db}
}

func (repo *payoutRepository) CreatePayout(ctx context.Context, po payout.Payout) error {
	details, err := json.Marshal(po.Details)
	if err != nil {
		return errors.Wrap(err, "encoding payout details")
	}
	_, err = repo.db.ExecContext(ctx,
		`INSERT INTO payout (
			id, professor_id, month, details, subtotal, discount, total,
			payment_method_id, paid_at, notes, is_active, created_at, updated_at
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		po.ID, po.ProfessorID, string(po.Month), details, po.Subtotal, po.Discount,
		po.Total, null.NewString(po.PaymentMethodID, po.PaymentMethodID != ""),
		po.PaidAt, po.Notes, po.IsActive, po.CreatedAt, po.UpdatedAt,
	)
	return errors.Wrap(err, "inserting payout")
}

func (repo *payoutRepository) QueryAllPayouts(ctx context.Context) ([]payout.Payout, error) {
	var rows []payoutRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM payout ORDER BY month DESC`); err != nil {
		return nil, errors.Wrap(err, "querying payouts")
	}
	return rowsToPayouts(rows)
}

func (repo *payoutRepository) FilterPayouts(ctx context.Context, f payout.Filter) ([]payout.Payout, error) {
	query := `SELECT * FROM payout WHERE is_active`
	var args []interface{}
	if f.Month != "" {
		args = append(args, string(f.Month))
		query += ` AND month = ` + dollar(len(args))
	}
	if f.ProfessorID != "" {
		args = append(args, f.ProfessorID)
		query += ` AND professor_id = ` + dollar(len(args))
	}
	query += ` ORDER BY created_at`

	var rows []payoutRow
	if err := repo.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "filtering payouts")
	}
	return rowsToPayouts(rows)
}

func (repo *payoutRepository) GetPayoutByID(ctx context.Context, id string) (payout.Payout, error) {
	var r payoutRow
	if err := repo.db.GetContext(ctx, &r, `SELECT * FROM payout WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return payout.Payout{}, payout.ErrNotFound
		}
		return payout.Payout{}, errors.Wrap(err, "getting payout")
	}
	return r.model()
}

func (repo *payoutRepository) UpdatePayout(ctx context.Context, po payout.Payout) error {
	details, err := json.Marshal(po.Details)
	if err != nil {
		return errors.Wrap(err, "encoding payout details")
	}
	res, err := repo.db.ExecContext(ctx,
		`UPDATE payout SET
			professor_id = $2, month = $3, details = $4, subtotal = $5, discount = $6,
			total = $7, payment_method_id = $8, paid_at = $9, notes = $10, updated_at = $11
		 WHERE id = $1`,
		po.ID, po.ProfessorID, string(po.Month), details, po.Subtotal, po.Discount,
		po.Total, null.NewString(po.PaymentMethodID, po.PaymentMethodID != ""),
		po.PaidAt, po.Notes, po.UpdatedAt,
	)
	if err != nil {
		return errors.Wrap(err, "updating payout")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return payout.ErrNotFound
	}
	return nil
}

func (repo *payoutRepository) SetPayoutActive(ctx context.Context, id string, isActive bool) error {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE payout SET is_active = $2, updated_at = now() WHERE id = $1`, id, isActive)
	if err != nil {
		return errors.Wrap(err, "setting payout active")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return payout.ErrNotFound
	}
	return nil
}

func rowsToPayouts(rows []payoutRow) ([]payout.Payout, error) {
	payouts := make([]payout.Payout, 0, len(rows))
	for _, r := range rows {
		po, err := r.model()
		if err != nil {
			return nil, err
		}
		payouts = append(payouts, po)
	}
	return payouts, nil
}
