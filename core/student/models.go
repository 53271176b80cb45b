package student

import (
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/acadex/backend/core"
)

// Statuses a Student moves through.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusGraduate = "graduated"
)

// Note is a dated free-text annotation on a Student's record.
type Note struct {
	Date time.Time `json:"date"`
	Text string    `json:"text"`
}

type Student struct {
	ID                 string      `json:"id"`
	StudentCode        string      `json:"studentCode"`
	Name               string      `json:"name"`
	DOB                null.Time   `json:"dob"`
	Gender             string      `json:"gender"`
	RepresentativeName null.String `json:"representativeName"`
	Email              string      `json:"email"`
	Phone              string      `json:"phone"`
	Address            string      `json:"address"`
	City               string      `json:"city"`
	Country            string      `json:"country"`
	Occupation         string      `json:"occupation"`
	EnrollmentDate     null.Time   `json:"enrollmentDate"`
	Language           string      `json:"language"`
	StartDate          null.Time   `json:"startDate"`
	Status             string      `json:"status"`
	Notes              []Note      `json:"notes"`
	IsActive           bool        `json:"isActive"`
	CreatedAt          time.Time   `json:"createdAt"` // UTC
	UpdatedAt          time.Time   `json:"updatedAt"` // UTC
}

// NewStudent contains information needed to register a new Student.
type NewStudent struct {
	StudentCode        string `json:"studentCode" validate:"required"`
	Name               string `json:"name" validate:"required"`
	DOB                string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Gender             string `json:"gender"`
	RepresentativeName string `json:"representativeName"`
	Email              string `json:"email" validate:"omitempty,email"`
	Phone              string `json:"phone"`
	Address            string `json:"address"`
	City               string `json:"city"`
	Country            string `json:"country"`
	Occupation         string `json:"occupation"`
	EnrollmentDate     string `json:"enrollmentDate" validate:"omitempty,datetime=2006-01-02"`
	Language           string `json:"language"`
	StartDate          string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	Status             string `json:"status" validate:"omitempty,oneof=active inactive graduated"`
	Notes              []Note `json:"notes"`
}

func (ns *NewStudent) Validate() error {
	ns.StudentCode = core.CleanString(ns.StudentCode)
	ns.Name = core.CleanString(ns.Name)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	return core.Validate.Struct(ns)
}

// UpdateStudent carries a full replacement of a Student's editable fields.
type UpdateStudent struct {
	NewStudent
}

func (us *UpdateStudent) Validate() error {
	return us.NewStudent.Validate()
}
