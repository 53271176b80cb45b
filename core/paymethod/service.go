package paymethod

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("payment method not found")

type Repository interface {
	CreatePaymentMethod(ctx context.Context, pm PaymentMethod) error
	QueryAllPaymentMethods(ctx context.Context) ([]PaymentMethod, error)
	GetPaymentMethodByID(ctx context.Context, id string) (PaymentMethod, error)
	UpdatePaymentMethod(ctx context.Context, pm PaymentMethod) error
	SetPaymentMethodStatus(ctx context.Context, id string, status int) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, npm NewPaymentMethod) (PaymentMethod, error) {
	now := time.Now().UTC()
	pm := PaymentMethod{
		ID:          uuid.New().String(),
		Name:        npm.Name,
		Type:        npm.Type,
		Description: npm.Description,
		Status:      StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := svc.repo.CreatePaymentMethod(ctx, pm); err != nil {
		return PaymentMethod{}, errors.Wrap(err, "creating payment method")
	}
	return pm, nil
}

func (svc *Service) QueryAll(ctx context.Context) ([]PaymentMethod, error) {
	return svc.repo.QueryAllPaymentMethods(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (PaymentMethod, error) {
	return svc.repo.GetPaymentMethodByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id string, upm UpdatePaymentMethod) (PaymentMethod, error) {
	pm, err := svc.repo.GetPaymentMethodByID(ctx, id)
	if err != nil {
		return PaymentMethod{}, err
	}
	pm.Name = upm.Name
	pm.Type = upm.Type
	pm.Description = upm.Description
	if upm.Status != nil {
		pm.Status = *upm.Status
	}
	pm.UpdatedAt = time.Now().UTC()
	if err = svc.repo.UpdatePaymentMethod(ctx, pm); err != nil {
		return PaymentMethod{}, errors.Wrap(err, "updating payment method")
	}
	return pm, nil
}

func (svc *Service) Archive(ctx context.Context, id string) error {
	return svc.repo.SetPaymentMethodStatus(ctx, id, StatusInactive)
}

func (svc *Service) Restore(ctx context.Context, id string) error {
	return svc.repo.SetPaymentMethodStatus(ctx, id, StatusActive)
}
