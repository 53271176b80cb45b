package student

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"github.com/acadex/backend/core"
)

var ErrNotFound = errors.New("student not found")

type (
	Repository interface {
		CreateStudent(ctx context.Context, std Student) (Student, error)
		QueryAllStudents(ctx context.Context) ([]Student, error)
		GetStudentByID(ctx context.Context, id string) (Student, error)
		UpdateStudent(ctx context.Context, std Student) (Student, error)
		SetStudentActive(ctx context.Context, id string, active bool) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, ns NewStudent) (Student, error) {
	now := time.Now().UTC()
	std := Student{
		ID:        uuid.New().String(),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := applyFields(&std, ns); err != nil {
		return Student{}, err
	}
	if std.Status == "" {
		std.Status = StatusActive
	}
	return svc.repo.CreateStudent(ctx, std)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Student, error) {
	return svc.repo.QueryAllStudents(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Student, error) {
	return svc.repo.GetStudentByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id string, us UpdateStudent) (Student, error) {
	std, err := svc.repo.GetStudentByID(ctx, id)
	if err != nil {
		return Student{}, err
	}
	if err = applyFields(&std, us.NewStudent); err != nil {
		return Student{}, err
	}
	std.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateStudent(ctx, std)
}

func (svc *Service) Archive(ctx context.Context, id string) error {
	return svc.repo.SetStudentActive(ctx, id, false)
}

func (svc *Service) Restore(ctx context.Context, id string) error {
	return svc.repo.SetStudentActive(ctx, id, true)
}

func applyFields(std *Student, ns NewStudent) error {
	dob, err := core.ParseDate(ns.DOB)
	if err != nil {
		return err
	}
	enrolled, err := core.ParseDate(ns.EnrollmentDate)
	if err != nil {
		return err
	}
	started, err := core.ParseDate(ns.StartDate)
	if err != nil {
		return err
	}

	std.StudentCode = ns.StudentCode
	std.Name = ns.Name
	std.DOB = dob
	std.Gender = ns.Gender
	std.RepresentativeName = null.NewString(ns.RepresentativeName, ns.RepresentativeName != "")
	std.Email = ns.Email
	std.Phone = ns.Phone
	std.Address = ns.Address
	std.City = ns.City
	std.Country = ns.Country
	std.Occupation = ns.Occupation
	std.EnrollmentDate = enrolled
	std.Language = ns.Language
	std.StartDate = started
	std.Status = ns.Status
	std.Notes = ns.Notes
	return nil
}
