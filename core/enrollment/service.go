package enrollment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/acadex/backend/core"
)

var ErrNotFound = errors.New("enrollment not found")

type Repository interface {
	CreateEnrollment(ctx context.Context, enr Enrollment) error
	QueryAllEnrollments(ctx context.Context) ([]Enrollment, error)
	GetEnrollmentByID(ctx context.Context, id string) (Enrollment, error)
	UpdateEnrollment(ctx context.Context, enr Enrollment) error
	SetEnrollmentStatus(ctx context.Context, id, status string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, ne NewEnrollment) (Enrollment, error) {
	purchased, err := core.ParseDate(ne.PurchaseDate)
	if err != nil {
		return Enrollment{}, err
	}
	now := time.Now().UTC()
	enr := Enrollment{
		ID:              uuid.New().String(),
		PlanID:          ne.PlanID,
		ProfessorID:     ne.ProfessorID,
		StudentIDs:      ne.StudentIDs,
		Type:            ne.Type,
		ScheduledDays:   ne.ScheduledDays,
		PurchaseDate:    purchased,
		PricePerStudent: ne.PricePerStudent,
		TotalAmount:     ne.TotalAmount,
		Status:          StatusActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err = svc.repo.CreateEnrollment(ctx, enr); err != nil {
		return Enrollment{}, errors.Wrap(err, "creating enrollment")
	}
	return enr, nil
}

func (svc *Service) QueryAll(ctx context.Context) ([]Enrollment, error) {
	return svc.repo.QueryAllEnrollments(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Enrollment, error) {
	return svc.repo.GetEnrollmentByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id string, ue UpdateEnrollment) (Enrollment, error) {
	enr, err := svc.repo.GetEnrollmentByID(ctx, id)
	if err != nil {
		return Enrollment{}, err
	}
	purchased, err := core.ParseDate(ue.PurchaseDate)
	if err != nil {
		return Enrollment{}, err
	}
	enr.PlanID = ue.PlanID
	enr.ProfessorID = ue.ProfessorID
	enr.StudentIDs = ue.StudentIDs
	enr.Type = ue.Type
	enr.ScheduledDays = ue.ScheduledDays
	enr.PurchaseDate = purchased
	enr.PricePerStudent = ue.PricePerStudent
	enr.TotalAmount = ue.TotalAmount
	if ue.Status != "" {
		enr.Status = ue.Status
	}
	enr.UpdatedAt = time.Now().UTC()
	if err = svc.repo.UpdateEnrollment(ctx, enr); err != nil {
		return Enrollment{}, errors.Wrap(err, "updating enrollment")
	}
	return enr, nil
}

func (svc *Service) Cancel(ctx context.Context, id string) error {
	return svc.repo.SetEnrollmentStatus(ctx, id, StatusCancelled)
}

func (svc *Service) Restore(ctx context.Context, id string) error {
	return svc.repo.SetEnrollmentStatus(ctx, id, StatusActive)
}
