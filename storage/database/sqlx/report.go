package sqlxrepos

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/friendsofgo/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/acadex/backend/core"
	"github.com/acadex/backend/core/accounting"
)

// The saved report is written as one jsonb document under a unique
// month key, so a save either lands whole or not at all.
type reportRow struct {
	ID        string          `db:"id"`
	Month     string          `db:"month"`
	Body      json.RawMessage `db:"body"`
	CreatedAt time.Time       `db:"created_at"`
}

type reportRepository struct {
	db *sqlx.DB
}

var _ accounting.Repository = (*reportRepository)(nil) // interface compliance check

func NewReportRepository(db *sqlx.DB) *reportRepository {
	return &reportRepository{db: db}
}

func (repo *reportRepository) SaveReport(ctx context.Context, rpt accounting.MonthlyReport) error {
	body, err := json.Marshal(rpt)
	if err != nil {
		return errors.Wrap(err, "encoding report")
	}
	_, err = repo.db.ExecContext(ctx,
		`INSERT INTO monthly_report (id, month, body, created_at) VALUES ($1, $2, $3, $4)`,
		rpt.ID, string(rpt.Month), body, rpt.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return accounting.ErrMonthExists
		}
		return errors.Wrap(err, "inserting report")
	}
	return nil
}

func (repo *reportRepository) QueryReportRefs(ctx context.Context) ([]accounting.ReportRef, error) {
	var rows []struct {
		ID        string    `db:"id"`
		Month     string    `db:"month"`
		CreatedAt time.Time `db:"created_at"`
	}
	err := repo.db.SelectContext(ctx, &rows,
		`SELECT id, month, created_at FROM monthly_report ORDER BY month DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "querying report refs")
	}
	refs := make([]accounting.ReportRef, 0, len(rows))
	for _, r := range rows {
		refs = append(refs, accounting.ReportRef{
			ID:        r.ID,
			Month:     core.Month(r.Month),
			CreatedAt: r.CreatedAt,
		})
	}
	return refs, nil
}

func (repo *reportRepository) GetReportByMonth(ctx context.Context, month core.Month) (accounting.MonthlyReport, error) {
	var r reportRow
	err := repo.db.GetContext(ctx, &r, `SELECT * FROM monthly_report WHERE month = $1`, string(month))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return accounting.MonthlyReport{}, accounting.ErrNotFound
		}
		return accounting.MonthlyReport{}, errors.Wrap(err, "getting report")
	}
	var rpt accounting.MonthlyReport
	if err = json.Unmarshal(r.Body, &rpt); err != nil {
		return accounting.MonthlyReport{}, errors.Wrap(err, "decoding report")
	}
	rpt.ID = r.ID
	rpt.Month = core.Month(r.Month)
	rpt.CreatedAt = r.CreatedAt
	return rpt, nil
}
