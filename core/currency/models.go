package currency

import (
	"time"

	"github.com/acadex/backend/core"
)

// Currency is a money denomination incomes are recorded in.
type Currency struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"` // UTC
	UpdatedAt time.Time `json:"updatedAt"` // UTC
}

type NewCurrency struct {
	Name string `json:"name" validate:"required"`
}

func (nc *NewCurrency) Validate() error {
	nc.Name = core.CleanString(nc.Name)
	return core.Validate.Struct(nc)
}

type UpdateCurrency struct {
	NewCurrency
}

func (uc *UpdateCurrency) Validate() error {
	return uc.NewCurrency.Validate()
}
