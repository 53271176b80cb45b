package enrollment

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"

	"github.com/acadex/backend/core"
)

const (
	TypeSingle = "single"
	TypeCouple = "couple"
	TypeGroup  = "group"

	StatusActive    = "active"
	StatusCancelled = "cancelled"
)

// Enrollment ties one or more students to a professor under a plan.
type Enrollment struct {
	ID          string   `json:"id"`
	PlanID      string   `json:"planId"`
	ProfessorID string   `json:"professorId"`
	StudentIDs  []string `json:"studentIds"`
	// studentNames is populated by the repository from the student refs.
	studentNames []string

	Type            string          `json:"type"`
	ScheduledDays   []string        `json:"scheduledDays"`
	PurchaseDate    null.Time       `json:"purchaseDate"`
	PricePerStudent decimal.Decimal `json:"pricePerStudent"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"` // UTC
	UpdatedAt       time.Time       `json:"updatedAt"` // UTC
}

// StudentNames returns the display string shown on reports,
// the students' names joined with ", ".
func (e *Enrollment) StudentNames() string {
	return strings.Join(e.studentNames, ", ")
}

// SetStudentNames is called by repositories after resolving student refs.
func (e *Enrollment) SetStudentNames(names []string) { e.studentNames = names }

type NewEnrollment struct {
	PlanID          string          `json:"planId" validate:"required"`
	ProfessorID     string          `json:"professorId" validate:"required"`
	StudentIDs      []string        `json:"studentIds" validate:"required,min=1"`
	Type            string          `json:"type" validate:"required,oneof=single couple group"`
	ScheduledDays   []string        `json:"scheduledDays" validate:"dive,weekday"`
	PurchaseDate    string          `json:"purchaseDate" validate:"omitempty,datetime=2006-01-02"`
	PricePerStudent decimal.Decimal `json:"pricePerStudent"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
}

func (ne *NewEnrollment) Validate() error {
	for i, day := range ne.ScheduledDays {
		ne.ScheduledDays[i] = core.CleanString(day)
	}
	return core.Validate.Struct(ne)
}

type UpdateEnrollment struct {
	NewEnrollment
	Status string `json:"status" validate:"omitempty,oneof=active cancelled"`
}

func (ue *UpdateEnrollment) Validate() error {
	for i, day := range ue.ScheduledDays {
		ue.ScheduledDays[i] = core.CleanString(day)
	}
	return core.Validate.Struct(ue)
}
