package currency

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("currency not found")

type Repository interface {
	CreateCurrency(ctx context.Context, cur Currency) error
	QueryAllCurrencies(ctx context.Context) ([]Currency, error)
	GetCurrencyByID(ctx context.Context, id string) (Currency, error)
	UpdateCurrency(ctx context.Context, cur Currency) error
	SetCurrencyActive(ctx context.Context, id string, isActive bool) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nc NewCurrency) (Currency, error) {
	now := time.Now().UTC()
	cur := Currency{
		ID:        uuid.New().String(),
		Name:      nc.Name,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := svc.repo.CreateCurrency(ctx, cur); err != nil {
		return Currency{}, errors.Wrap(err, "creating currency")
	}
	return cur, nil
}

func (svc *Service) QueryAll(ctx context.Context) ([]Currency, error) {
	return svc.repo.QueryAllCurrencies(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Currency, error) {
	return svc.repo.GetCurrencyByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id string, uc UpdateCurrency) (Currency, error) {
	cur, err := svc.repo.GetCurrencyByID(ctx, id)
	if err != nil {
		return Currency{}, err
	}
	cur.Name = uc.Name
	cur.UpdatedAt = time.Now().UTC()
	if err = svc.repo.UpdateCurrency(ctx, cur); err != nil {
		return Currency{}, errors.Wrap(err, "updating currency")
	}
	return cur, nil
}

func (svc *Service) Archive(ctx context.Context, id string) error {
	return svc.repo.SetCurrencyActive(ctx, id, false)
}

func (svc *Service) Restore(ctx context.Context, id string) error {
	return svc.repo.SetCurrencyActive(ctx, id, true)
}
