package plan

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("plan not found")

type Repository interface {
	CreatePlan(ctx context.Context, pln Plan) error
	QueryAllPlans(ctx context.Context) ([]Plan, error)
	GetPlanByID(ctx context.Context, id string) (Plan, error)
	UpdatePlan(ctx context.Context, pln Plan) error
	SetPlanActive(ctx context.Context, id string, isActive bool) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, np NewPlan) (Plan, error) {
	now := time.Now().UTC()
	pln := Plan{
		ID:           uuid.New().String(),
		Name:         np.Name,
		Duration:     np.Duration,
		Hours:        np.Hours,
		Price:        np.Price,
		PricePerHour: np.PricePerHour,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := svc.repo.CreatePlan(ctx, pln); err != nil {
		return Plan{}, errors.Wrap(err, "creating plan")
	}
	return pln, nil
}

func (svc *Service) QueryAll(ctx context.Context) ([]Plan, error) {
	return svc.repo.QueryAllPlans(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Plan, error) {
	return svc.repo.GetPlanByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id string, up UpdatePlan) (Plan, error) {
	pln, err := svc.repo.GetPlanByID(ctx, id)
	if err != nil {
		return Plan{}, err
	}
	pln.Name = up.Name
	pln.Duration = up.Duration
	pln.Hours = up.Hours
	pln.Price = up.Price
	pln.PricePerHour = up.PricePerHour
	pln.UpdatedAt = time.Now().UTC()
	if err = svc.repo.UpdatePlan(ctx, pln); err != nil {
		return Plan{}, errors.Wrap(err, "updating plan")
	}
	return pln, nil
}

func (svc *Service) Archive(ctx context.Context, id string) error {
	return svc.repo.SetPlanActive(ctx, id, false)
}

func (svc *Service) Restore(ctx context.Context, id string) error {
	return svc.repo.SetPlanActive(ctx, id, true)
}
