package payout

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"

	"github.com/acadex/backend/core"
)

// Detail is the per-enrollment breakdown of a payout.
type Detail struct {
	EnrollmentID       string          `json:"enrollmentId" validate:"required"`
	HoursTaught        decimal.Decimal `json:"hoursTaught"`
	PayPerHour         decimal.Decimal `json:"payPerHour"`
	TotalPerEnrollment decimal.Decimal `json:"totalPerEnrollment"`
}

// Payout is a month's payment made to a professor, itemized by enrollment.
type Payout struct {
	ID          string     `json:"id"`
	ProfessorID string     `json:"professorId"`
	Month       core.Month `json:"month"`
	Details     []Detail   `json:"details"`
	// Subtotal is the sum of the detail totals. Total = Subtotal - Discount.
	Subtotal        decimal.Decimal `json:"subtotal"`
	Discount        decimal.Decimal `json:"discount"`
	Total           decimal.Decimal `json:"total"`
	PaymentMethodID string          `json:"paymentMethodId"`
	PaidAt          null.Time       `json:"paidAt"`
	Notes           string          `json:"notes"`
	IsActive        bool            `json:"isActive"`
	CreatedAt       time.Time       `json:"createdAt"` // UTC
	UpdatedAt       time.Time       `json:"updatedAt"` // UTC
}

type NewPayout struct {
	ProfessorID     string          `json:"professorId" validate:"required"`
	Month           string          `json:"month" validate:"required"`
	Details         []Detail        `json:"details" validate:"required,min=1,dive"`
	Discount        decimal.Decimal `json:"discount"`
	PaymentMethodID string          `json:"paymentMethodId"`
	PaidAt          string          `json:"paidAt" validate:"omitempty,datetime=2006-01-02"`
	Notes           string          `json:"notes"`
}

func (np *NewPayout) Validate() error {
	if err := core.Validate.Struct(np); err != nil {
		return err
	}
	if _, err := core.ParseMonth(np.Month); err != nil {
		return core.NewValidationError(err, core.FieldError{Field: "month", Error: "invalid month, expected YYYY-MM"})
	}
	return nil
}

type UpdatePayout struct {
	NewPayout
}

func (up *UpdatePayout) Validate() error {
	return up.NewPayout.Validate()
}
