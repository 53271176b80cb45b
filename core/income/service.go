package income

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/acadex/backend/core"
)

var ErrNotFound = errors.New("income not found")

// Filter narrows income queries. Zero values mean "any".
type Filter struct {
	Month        core.Month
	ProfessorID  string
	EnrollmentID string
}

type Repository interface {
	CreateIncome(ctx context.Context, inc Income) error
	QueryAllIncomes(ctx context.Context) ([]Income, error)
	FilterIncomes(ctx context.Context, f Filter) ([]Income, error)
	GetIncomeByID(ctx context.Context, id string) (Income, error)
	UpdateIncome(ctx context.Context, inc Income) error
	SetIncomeActive(ctx context.Context, id string, isActive bool) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, ni NewIncome) (Income, error) {
	date, err := core.ParseDate(ni.IncomeDate)
	if err != nil {
		return Income{}, err
	}
	now := time.Now().UTC()
	inc := Income{
		ID:              uuid.New().String(),
		DepositName:     ni.DepositName,
		Amount:          ni.Amount,
		CurrencyID:      ni.CurrencyID,
		ProfessorID:     ni.ProfessorID,
		PaymentMethodID: ni.PaymentMethodID,
		EnrollmentID:    ni.EnrollmentID,
		Note:            ni.Note,
		IncomeDate:      date,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err = svc.repo.CreateIncome(ctx, inc); err != nil {
		return Income{}, errors.Wrap(err, "creating income")
	}
	return inc, nil
}

func (svc *Service) QueryAll(ctx context.Context) ([]Income, error) {
	return svc.repo.QueryAllIncomes(ctx)
}

func (svc *Service) Filter(ctx context.Context, f Filter) ([]Income, error) {
	return svc.repo.FilterIncomes(ctx, f)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Income, error) {
	return svc.repo.GetIncomeByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id string, ui UpdateIncome) (Income, error) {
	inc, err := svc.repo.GetIncomeByID(ctx, id)
	if err != nil {
		return Income{}, err
	}
	date, err := core.ParseDate(ui.IncomeDate)
	if err != nil {
		return Income{}, err
	}
	inc.DepositName = ui.DepositName
	inc.Amount = ui.Amount
	inc.CurrencyID = ui.CurrencyID
	inc.ProfessorID = ui.ProfessorID
	inc.PaymentMethodID = ui.PaymentMethodID
	inc.EnrollmentID = ui.EnrollmentID
	inc.Note = ui.Note
	inc.IncomeDate = date
	inc.UpdatedAt = time.Now().UTC()
	if err = svc.repo.UpdateIncome(ctx, inc); err != nil {
		return Income{}, errors.Wrap(err, "updating income")
	}
	return inc, nil
}

func (svc *Service) Archive(ctx context.Context, id string) error {
	return svc.repo.SetIncomeActive(ctx, id, false)
}

func (svc *Service) Restore(ctx context.Context, id string) error {
	return svc.repo.SetIncomeActive(ctx, id, true)
}
