package sqlxrepos

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/friendsofgo/errors"
	"github.com/jmoiron/sqlx"
	"github.com/volatiletech/null/v8"

	"github.com/acadex/backend/core/student"
)

type studentRow struct {
	ID                 string          `db:"id"`
	StudentCode        string          `db:"student_code"`
	Name               string          `db:"name"`
	DOB                null.Time       `db:"dob"`
	Gender             string          `db:"gender"`
	RepresentativeName null.String     `db:"representative_name"`
	Email              string          `db:"email"`
	Phone              string          `db:"phone"`
	Address            string          `db:"address"`
	City               string          `db:"city"`
	Country            string          `db:"country"`
	Occupation         string          `db:"occupation"`
	EnrollmentDate     null.Time       `db:"enrollment_date"`
	Language           string          `db:"language"`
	StartDate          null.Time       `db:"start_date"`
	Status             string          `db:"status"`
	Notes              json.RawMessage `db:"notes"`
	IsActive           bool            `db:"is_active"`
	CreatedAt          time.Time       `db:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at"`
}

func (r studentRow) model() (student.Student, error) {
	std := student.Student{
		ID:                 r.ID,
		StudentCode:        r.StudentCode,
		Name:               r.Name,
		DOB:                r.DOB,
		Gender:             r.Gender,
		RepresentativeName: r.RepresentativeName,
		Email:              r.Email,
		Phone:              r.Phone,
		Address:            r.Address,
		City:               r.City,
		Country:            r.Country,
		Occupation:         r.Occupation,
		EnrollmentDate:     r.EnrollmentDate,
		Language:           r.Language,
		StartDate:          r.StartDate,
		Status:             r.Status,
		IsActive:           r.IsActive,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
	if len(r.Notes) > 0 {
		if err := json.Unmarshal(r.Notes, &std.Notes); err != nil {
			return student.Student{}, errors.Wrap(err, "decoding student notes")
		}
	}
	return std, nil
}

type studentRepository struct {
	db *sqlx.DB
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *sqlx.DB) *studentRepository {
	return &studentRepository{db: db}
}

func (repo *studentRepository) CreateStudent(ctx context.Context, std student.Student) (student.Student, error) {
	notes, err := json.Marshal(std.Notes)
	if err != nil {
		return student.Student{}, errors.Wrap(err, "encoding student notes")
	}
	_, err = repo.db.ExecContext(ctx,
		`INSERT INTO student (
			id, student_code, name, dob, gender, representative_name, email, phone,
			address, city, country, occupation, enrollment_date, language, start_date,
			status, notes, is_active, created_at, updated_at
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`,
		std.ID, std.StudentCode, std.Name, std.DOB, std.Gender, std.RepresentativeName,
		std.Email, std.Phone, std.Address, std.City, std.Country, std.Occupation,
		std.EnrollmentDate, std.Language, std.StartDate, std.Status, notes,
		std.IsActive, std.CreatedAt, std.UpdatedAt,
	)
	if err != nil {
		return student.Student{}, errors.Wrap(err, "inserting student")
	}
	return std, nil
}

func (repo *studentRepository) QueryAllStudents(ctx context.Context) ([]student.Student, error) {
	var rows []studentRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM student ORDER BY name`); err != nil {
		return nil, errors.Wrap(err, "querying students")
	}
	students := make([]student.Student, 0, len(rows))
	for _, r := range rows {
		std, err := r.model()
		if err != nil {
			return nil, err
		}
		students = append(students, std)
	}
	return students, nil
}

func (repo *studentRepository) GetStudentByID(ctx context.Context, id string) (student.Student, error) {
	var r studentRow
	if err := repo.db.GetContext(ctx, &r, `SELECT * FROM student WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return student.Student{}, student.ErrNotFound
		}
		return student.Student{}, errors.Wrap(err, "getting student")
	}
	return r.model()
}

func (repo *studentRepository) UpdateStudent(ctx context.Context, std student.Student) (student.Student, error) {
	notes, err := json.Marshal(std.Notes)
	if err != nil {
		return student.Student{}, errors.Wrap(err, "encoding student notes")
	}
	res, err := repo.db.ExecContext(ctx,
		`UPDATE student SET
			student_code = $2, name = $3, dob = $4, gender = $5, representative_name = $6,
			email = $7, phone = $8, address = $9, city = $10, country = $11,
			occupation = $12, enrollment_date = $13, language = $14, start_date = $15,
			status = $16, notes = $17, updated_at = $18
		 WHERE id = $1`,
		std.ID, std.StudentCode, std.Name, std.DOB, std.Gender, std.RepresentativeName,
		std.Email, std.Phone, std.Address, std.City, std.Country, std.Occupation,
		std.EnrollmentDate, std.Language, std.StartDate, std.Status, notes, std.UpdatedAt,
	)
	if err != nil {
		return student.Student{}, errors.Wrap(err, "updating student")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return student.Student{}, student.ErrNotFound
	}
	return std, nil
}

func (repo *studentRepository) SetStudentActive(ctx context.Context, id string, isActive bool) error {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE student SET is_active = $2, updated_at = now() WHERE id = $1`, id, isActive)
	if err != nil {
		return errors.Wrap(err, "setting student active")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return student.ErrNotFound
	}
	return nil
}
