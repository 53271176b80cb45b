package paymethod

import (
	"time"

	"github.com/acadex/backend/core"
)

const (
	StatusInactive = 0
	StatusActive   = 1
)

// PaymentMethod is a way money comes in or goes out (bank transfer,
// cash, mobile payment).
type PaymentMethod struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Status      int       `json:"status"`
	CreatedAt   time.Time `json:"createdAt"` // UTC
	UpdatedAt   time.Time `json:"updatedAt"` // UTC
}

type NewPaymentMethod struct {
	Name        string `json:"name" validate:"required"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

func (npm *NewPaymentMethod) Validate() error {
	npm.Name = core.CleanString(npm.Name)
	npm.Type = core.CleanString(npm.Type)
	return core.Validate.Struct(npm)
}

type UpdatePaymentMethod struct {
	NewPaymentMethod
	Status *int `json:"status" validate:"omitempty,oneof=0 1"`
}

func (upm *UpdatePaymentMethod) Validate() error {
	upm.Name = core.CleanString(upm.Name)
	upm.Type = core.CleanString(upm.Type)
	return core.Validate.Struct(upm)
}
