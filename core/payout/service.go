package payout

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/acadex/backend/core"
)

var ErrNotFound = errors.New("payout not found")

// Filter narrows payout queries. Zero values mean "any".
type Filter struct {
	Month       core.Month
	ProfessorID string
}

type Repository interface {
	CreatePayout(ctx context.Context, po Payout) error
	QueryAllPayouts(ctx context.Context) ([]Payout, error)
	FilterPayouts(ctx context.Context, f Filter) ([]Payout, error)
	GetPayoutByID(ctx context.Context, id string) (Payout, error)
	UpdatePayout(ctx context.Context, po Payout) error
	SetPayoutActive(ctx context.Context, id string, isActive bool) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, np NewPayout) (Payout, error) {
	month, err := core.ParseMonth(np.Month)
	if err != nil {
		return Payout{}, err
	}
	paidAt, err := core.ParseDate(np.PaidAt)
	if err != nil {
		return Payout{}, err
	}
	now := time.Now().UTC()
	po := Payout{
		ID:              uuid.New().String(),
		ProfessorID:     np.ProfessorID,
		Month:           month,
		Details:         np.Details,
		Discount:        np.Discount,
		PaymentMethodID: np.PaymentMethodID,
		PaidAt:          paidAt,
		Notes:           np.Notes,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	computeTotals(&po)
	if err = svc.repo.CreatePayout(ctx, po); err != nil {
		return Payout{}, errors.Wrap(err, "creating payout")
	}
	return po, nil
}

func (svc *Service) QueryAll(ctx context.Context) ([]Payout, error) {
	return svc.repo.QueryAllPayouts(ctx)
}

func (svc *Service) Filter(ctx context.Context, f Filter) ([]Payout, error) {
	return svc.repo.FilterPayouts(ctx, f)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Payout, error) {
	return svc.repo.GetPayoutByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id string, up UpdatePayout) (Payout, error) {
	po, err := svc.repo.GetPayoutByID(ctx, id)
	if err != nil {
		return Payout{}, err
	}
	month, err := core.ParseMonth(up.Month)
	if err != nil {
		return Payout{}, err
	}
	paidAt, err := core.ParseDate(up.PaidAt)
	if err != nil {
		return Payout{}, err
	}
	po.ProfessorID = up.ProfessorID
	po.Month = month
	po.Details = up.Details
	po.Discount = up.Discount
	po.PaymentMethodID = up.PaymentMethodID
	po.PaidAt = paidAt
	po.Notes = up.Notes
	po.UpdatedAt = time.Now().UTC()
	computeTotals(&po)
	if err = svc.repo.UpdatePayout(ctx, po); err != nil {
		return Payout{}, errors.Wrap(err, "updating payout")
	}
	return po, nil
}

func (svc *Service) Archive(ctx context.Context, id string) error {
	return svc.repo.SetPayoutActive(ctx, id, false)
}

func (svc *Service) Restore(ctx context.Context, id string) error {
	return svc.repo.SetPayoutActive(ctx, id, true)
}

// computeTotals rederives per-detail and payout totals from the taught
// hours and rates, ignoring whatever the client sent.
func computeTotals(po *Payout) {
	subtotal := decimal.Zero
	for i := range po.Details {
		det := &po.Details[i]
		det.TotalPerEnrollment = det.HoursTaught.Mul(det.PayPerHour)
		subtotal = subtotal.Add(det.TotalPerEnrollment)
	}
	po.Subtotal = subtotal
	po.Total = subtotal.Sub(po.Discount)
}
