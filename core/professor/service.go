package professor

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/acadex/backend/core"
)

var (
	ErrNotFound      = errors.New("professor not found")
	ErrSpecialExists = errors.New("a special professor already exists")
)

type (
	Repository interface {
		CreateProfessor(ctx context.Context, prof Professor) (Professor, error)
		QueryAllProfessors(ctx context.Context) ([]Professor, error)
		GetProfessorByID(ctx context.Context, id string) (Professor, error)
		// GetSpecialProfessor returns ErrNotFound when no professor is flagged special.
		GetSpecialProfessor(ctx context.Context) (Professor, error)
		UpdateProfessor(ctx context.Context, prof Professor) (Professor, error)
		SetProfessorActive(ctx context.Context, id string, active bool) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// checkSpecial enforces the at-most-one special professor invariant.
func (svc *Service) checkSpecial(ctx context.Context, excludeID string) error {
	existing, err := svc.repo.GetSpecialProfessor(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.ID == excludeID {
		return nil
	}
	return core.NewValidationError(
		ErrSpecialExists,
		core.FieldError{Field: "special", Error: ErrSpecialExists.Error()},
	)
}

func (svc *Service) Create(ctx context.Context, np NewProfessor) (Professor, error) {
	if np.Special {
		if err := svc.checkSpecial(ctx, ""); err != nil {
			return Professor{}, err
		}
	}

	dob, err := core.ParseDate(np.DOB)
	if err != nil {
		return Professor{}, err
	}
	started, err := core.ParseDate(np.StartDate)
	if err != nil {
		return Professor{}, err
	}

	now := time.Now().UTC()
	prof := Professor{
		ID:               uuid.New().String(),
		Name:             np.Name,
		CINumber:         np.CINumber,
		DOB:              dob,
		Address:          np.Address,
		Email:            np.Email,
		Phone:            np.Phone,
		Occupation:       np.Occupation,
		StartDate:        started,
		EmergencyContact: np.EmergencyContact,
		PaymentAccounts:  np.PaymentAccounts,
		Special:          np.Special,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	return svc.repo.CreateProfessor(ctx, prof)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Professor, error) {
	return svc.repo.QueryAllProfessors(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Professor, error) {
	return svc.repo.GetProfessorByID(ctx, id)
}

func (svc *Service) GetSpecial(ctx context.Context) (Professor, error) {
	return svc.repo.GetSpecialProfessor(ctx)
}

func (svc *Service) Update(ctx context.Context, id string, up UpdateProfessor) (Professor, error) {
	prof, err := svc.repo.GetProfessorByID(ctx, id)
	if err != nil {
		return Professor{}, err
	}
	if up.Special {
		if err = svc.checkSpecial(ctx, id); err != nil {
			return Professor{}, err
		}
	}

	dob, err := core.ParseDate(up.DOB)
	if err != nil {
		return Professor{}, err
	}
	started, err := core.ParseDate(up.StartDate)
	if err != nil {
		return Professor{}, err
	}

	prof.Name = up.Name
	prof.CINumber = up.CINumber
	prof.DOB = dob
	prof.Address = up.Address
	prof.Email = up.Email
	prof.Phone = up.Phone
	prof.Occupation = up.Occupation
	prof.StartDate = started
	prof.EmergencyContact = up.EmergencyContact
	prof.PaymentAccounts = up.PaymentAccounts
	prof.Special = up.Special
	prof.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateProfessor(ctx, prof)
}

func (svc *Service) Archive(ctx context.Context, id string) error {
	return svc.repo.SetProfessorActive(ctx, id, false)
}

func (svc *Service) Restore(ctx context.Context, id string) error {
	return svc.repo.SetProfessorActive(ctx, id, true)
}
