package plan

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/acadex/backend/core"
)

// Plan is a sellable course package.
type Plan struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Duration string `json:"duration"`
	// Hours is the total contracted hours the plan covers.
	Hours decimal.Decimal `json:"hours"`
	Price decimal.Decimal `json:"price"`
	// PricePerHour is the contracted student rate used by the payout report.
	PricePerHour decimal.Decimal `json:"pricePerHour"`
	IsActive     bool            `json:"isActive"`
	CreatedAt    time.Time       `json:"createdAt"` // UTC
	UpdatedAt    time.Time       `json:"updatedAt"` // UTC
}

type NewPlan struct {
	Name         string          `json:"name" validate:"required"`
	Duration     string          `json:"duration"`
	Hours        decimal.Decimal `json:"hours"`
	Price        decimal.Decimal `json:"price"`
	PricePerHour decimal.Decimal `json:"pricePerHour"`
}

func (np *NewPlan) Validate() error {
	np.Name = core.CleanString(np.Name)
	return core.Validate.Struct(np)
}

type UpdatePlan struct {
	NewPlan
}

func (up *UpdatePlan) Validate() error {
	return up.NewPlan.Validate()
}
