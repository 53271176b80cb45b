package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/friendsofgo/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"

	"github.com/acadex/backend/core/enrollment"
)

type enrollmentRow struct {
	ID              string          `db:"id"`
	PlanID          string          `db:"plan_id"`
	ProfessorID     string          `db:"professor_id"`
	StudentIDs      pq.StringArray  `db:"student_ids"`
	Type            string          `db:"type"`
	ScheduledDays   pq.StringArray  `db:"scheduled_days"`
	PurchaseDate    null.Time       `db:"purchase_date"`
	PricePerStudent decimal.Decimal `db:"price_per_student"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	Status          string          `db:"status"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

func (r enrollmentRow) model() enrollment.Enrollment {
	return enrollment.Enrollment{
		ID:              r.ID,
		PlanID:          r.PlanID,
		ProfessorID:     r.ProfessorID,
		StudentIDs:      r.StudentIDs,
		Type:            r.Type,
		ScheduledDays:   r.ScheduledDays,
		PurchaseDate:    r.PurchaseDate,
		PricePerStudent: r.PricePerStudent,
		TotalAmount:     r.TotalAmount,
		Status:          r.Status,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

type enrollmentRepository struct {
	db *sqlx.DB
}

var _ enrollment.Repository = (*enrollmentRepository)(nil) // interface compliance check

func NewEnrollmentRepository(db *sqlx.DB) *enrollmentRepository {
	return &enrollmentRepository{db: db}
}

// resolveStudentNames fills each enrollment's display names from the
// student table, preserving the order the students were enrolled in.
func (repo *enrollmentRepository) resolveStudentNames(ctx context.Context, enrs []enrollment.Enrollment) error {
	idSet := make(map[string]bool)
	for _, enr := range enrs {
		for _, id := range enr.StudentIDs {
			idSet[id] = true
		}
	}
	if len(idSet) == 0 {
		return nil
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	var rows []struct {
		ID   string `db:"id"`
		Name string `db:"name"`
	}
	err := repo.db.SelectContext(ctx, &rows,
		`SELECT id, name FROM student WHERE id = ANY($1)`, pq.StringArray(ids))
	if err != nil {
		return errors.Wrap(err, "resolving student names")
	}
	names := make(map[string]string, len(rows))
	for _, r := range rows {
		names[r.ID] = r.Name
	}

	for i := range enrs {
		resolved := make([]string, 0, len(enrs[i].StudentIDs))
		for _, id := range enrs[i].StudentIDs {
			if name, ok := names[id]; ok {
				resolved = append(resolved, name)
			}
		}
		enrs[i].SetStudentNames(resolved)
	}
	return nil
}

func (repo *enrollmentRepository) CreateEnrollment(ctx context.Context, enr enrollment.Enrollment) error {
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO enrollment (
			id, plan_id, professor_id, student_ids, type, scheduled_days,
			purchase_date, price_per_student, total_amount, status, created_at, updated_at
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		enr.ID, enr.PlanID, enr.ProfessorID, pq.StringArray(enr.StudentIDs), enr.Type,
		pq.StringArray(enr.ScheduledDays), enr.PurchaseDate, enr.PricePerStudent,
		enr.TotalAmount, enr.Status, enr.CreatedAt, enr.UpdatedAt,
	)
	return errors.Wrap(err, "inserting enrollment")
}

func (repo *enrollmentRepository) QueryAllEnrollments(ctx context.Context) ([]enrollment.Enrollment, error) {
	var rows []enrollmentRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM enrollment ORDER BY created_at`); err != nil {
		return nil, errors.Wrap(err, "querying enrollments")
	}
	enrs := make([]enrollment.Enrollment, 0, len(rows))
	for _, r := range rows {
		enrs = append(enrs, r.model())
	}
	if err := repo.resolveStudentNames(ctx, enrs); err != nil {
		return nil, err
	}
	return enrs, nil
}

func (repo *enrollmentRepository) GetEnrollmentByID(ctx context.Context, id string) (enrollment.Enrollment, error) {
	var r enrollmentRow
	if err := repo.db.GetContext(ctx, &r, `SELECT * FROM enrollment WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return enrollment.Enrollment{}, enrollment.ErrNotFound
		}
		return enrollment.Enrollment{}, errors.Wrap(err, "getting enrollment")
	}
	enrs := []enrollment.Enrollment{r.model()}
	if err := repo.resolveStudentNames(ctx, enrs); err != nil {
		return enrollment.Enrollment{}, err
	}
	return enrs[0], nil
}

func (repo *enrollmentRepository) UpdateEnrollment(ctx context.Context, enr enrollment.Enrollment) error {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE enrollment SET
			plan_id = $2, professor_id = $3, student_ids = $4, type = $5,
			scheduled_days = $6, purchase_date = $7, price_per_student = $8,
			total_amount = $9, status = $10, updated_at = $11
		 WHERE id = $1`,
		enr.ID, enr.PlanID, enr.ProfessorID, pq.StringArray(enr.StudentIDs), enr.Type,
		pq.StringArray(enr.ScheduledDays), enr.PurchaseDate, enr.PricePerStudent,
		enr.TotalAmount, enr.Status, enr.UpdatedAt,
	)
	if err != nil {
		return errors.Wrap(err, "updating enrollment")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return enrollment.ErrNotFound
	}
	return nil
}

func (repo *enrollmentRepository) SetEnrollmentStatus(ctx context.Context, id, status string) error {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE enrollment SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return errors.Wrap(err, "setting enrollment status")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return enrollment.ErrNotFound
	}
	return nil
}
