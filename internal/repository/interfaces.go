package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/flatbook/internal/domain"
)

// ErrNotFound marks a lookup whose target row does not exist. All other
// repository failures are collaborator errors and propagate wrapped.
var ErrNotFound = errors.New("not found")

type PersonRepo interface {
	Create(ctx context.Context, p *domain.Person) error
	GetByNRIC(ctx context.Context, nric string) (*domain.Person, error)
	List(ctx context.Context) ([]*domain.Person, error)
	Update(ctx context.Context, p *domain.Person) error
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByName(ctx context.Context, name string) (*domain.Project, error)
	// List returns projects ordered by name, case-insensitive.
	List(ctx context.Context, visibleOnly bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	SetVisibility(ctx context.Context, id string, visible bool) error
	Delete(ctx context.Context, id string) error
	// AddOfficer appends an officer to the project's approved roster.
	AddOfficer(ctx context.Context, projectID, officerNRIC string) error
	// DecrementUnits takes one unit off the flat type's remaining stock.
	// Returns false without modifying anything when no units remain.
	DecrementUnits(ctx context.Context, projectID string, kind domain.FlatKind) (bool, error)
}

type ApplicationRepo interface {
	Create(ctx context.Context, a *domain.Application) error
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	// GetActiveByApplicant returns the applicant's application whose status
	// is not a terminal rejection, or ErrNotFound.
	GetActiveByApplicant(ctx context.Context, nric string) (*domain.Application, error)
	ListByApplicant(ctx context.Context, nric string) ([]*domain.Application, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Application, error)
	Update(ctx context.Context, a *domain.Application) error
}

type RegistrationRepo interface {
	Create(ctx context.Context, r *domain.OfficerRegistration) error
	GetByID(ctx context.Context, id string) (*domain.OfficerRegistration, error)
	ListByOfficer(ctx context.Context, nric string) ([]*domain.OfficerRegistration, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.OfficerRegistration, error)
	Update(ctx context.Context, r *domain.OfficerRegistration) error
}

type EnquiryRepo interface {
	Create(ctx context.Context, e *domain.Enquiry) error
	GetByID(ctx context.Context, id string) (*domain.Enquiry, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Enquiry, error)
	ListByAuthor(ctx context.Context, nric string) ([]*domain.Enquiry, error)
	Update(ctx context.Context, e *domain.Enquiry) error
	Delete(ctx context.Context, id string) error
}
