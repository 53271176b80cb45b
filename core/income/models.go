package income

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"

	"github.com/acadex/backend/core"
)

// Income is a payment received from a student against an enrollment.
type Income struct {
	ID              string          `json:"id"`
	DepositName     string          `json:"depositName"`
	Amount          decimal.Decimal `json:"amount"`
	CurrencyID      string          `json:"currencyId"`
	ProfessorID     string          `json:"professorId"`
	PaymentMethodID string          `json:"paymentMethodId"`
	EnrollmentID    string          `json:"enrollmentId"`
	Note            string          `json:"note"`
	IncomeDate      null.Time       `json:"incomeDate"`
	IsActive        bool            `json:"isActive"`
	CreatedAt       time.Time       `json:"createdAt"` // UTC
	UpdatedAt       time.Time       `json:"updatedAt"` // UTC
}

type NewIncome struct {
	DepositName     string          `json:"depositName" validate:"required"`
	Amount          decimal.Decimal `json:"amount"`
	CurrencyID      string          `json:"currencyId" validate:"required"`
	ProfessorID     string          `json:"professorId" validate:"required"`
	PaymentMethodID string          `json:"paymentMethodId" validate:"required"`
	EnrollmentID    string          `json:"enrollmentId" validate:"required"`
	Note            string          `json:"note"`
	IncomeDate      string          `json:"incomeDate" validate:"omitempty,datetime=2006-01-02"`
}

func (ni *NewIncome) Validate() error {
	ni.DepositName = core.CleanString(ni.DepositName)
	return core.Validate.Struct(ni)
}

type UpdateIncome struct {
	NewIncome
}

func (ui *UpdateIncome) Validate() error {
	return ui.NewIncome.Validate()
}
