package professor

import (
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/acadex/backend/core"
)

// PaymentAccount is one of a Professor's bank accounts for payouts.
type PaymentAccount struct {
	BankName      string      `json:"bankName" validate:"required"`
	AccountType   null.String `json:"accountType"`
	AccountNumber null.String `json:"accountNumber"`
	HolderName    null.String `json:"holderName"`
	HolderCI      null.String `json:"holderCI"`
	HolderEmail   null.String `json:"holderEmail"`
	HolderAddress null.String `json:"holderAddress"`
	RoutingNumber null.String `json:"routingNumber"`
}

type EmergencyContact struct {
	Name  null.String `json:"name"`
	Phone null.String `json:"phone"`
}

type Professor struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	CINumber         string           `json:"ciNumber"`
	DOB              null.Time        `json:"dob"`
	Address          string           `json:"address"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	Occupation       string           `json:"occupation"`
	StartDate        null.Time        `json:"startDate"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`
	PaymentAccounts  []PaymentAccount `json:"paymentData"`
	// Special marks the (at most one) professor paid a flat amount per
	// enrollment instead of the hourly split.
	Special   bool      `json:"special"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"` // UTC
	UpdatedAt time.Time `json:"updatedAt"` // UTC
}

// NewProfessor contains information needed to register a new Professor.
type NewProfessor struct {
	Name             string           `json:"name" validate:"required"`
	CINumber         string           `json:"ciNumber" validate:"required"`
	DOB              string           `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Address          string           `json:"address"`
	Email            string           `json:"email" validate:"omitempty,email"`
	Phone            string           `json:"phone"`
	Occupation       string           `json:"occupation"`
	StartDate        string           `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`
	PaymentAccounts  []PaymentAccount `json:"paymentData" validate:"omitempty,dive"`
	Special          bool             `json:"special"`
}

func (np *NewProfessor) Validate() error {
	np.Name = core.CleanString(np.Name)
	np.CINumber = core.CleanString(np.CINumber)
	np.Email = core.CleanString(np.Email, true /* lower */)
	return core.Validate.Struct(np)
}

// UpdateProfessor carries a full replacement of a Professor's editable fields.
type UpdateProfessor struct {
	NewProfessor
}

func (up *UpdateProfessor) Validate() error {
	return up.NewProfessor.Validate()
}
