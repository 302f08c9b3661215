package service

import (
	"context"
	"time"

	"github.com/alexanderramin/flatbook/internal/domain"
)

// EligibleProject pairs a project with the flat types the person may apply
// for within it.
type EligibleProject struct {
	Project   *domain.Project
	FlatTypes []domain.FlatType
}

type EligibilityService interface {
	// EligibleProjects returns the projects the person may apply to, each
	// restricted to the flat types their marital status and age allow,
	// ordered by project name (case-insensitive). A person ruled out by the
	// age gate gets domain.ErrIneligibleAge and no projects at all.
	EligibleProjects(ctx context.Context, nric string, now time.Time) ([]EligibleProject, error)
}

type ApplicationService interface {
	Submit(ctx context.Context, applicantNRIC, projectID string, kind domain.FlatKind, now time.Time) (*domain.Application, error)
	TransitionStatus(ctx context.Context, applicationID string, newStatus domain.ApplicationStatus) error
	RequestWithdrawal(ctx context.Context, applicationID string) error
	// ResolveWithdrawal approves or rejects a pending withdrawal. Rejection
	// returns the application to its pre-withdrawal status.
	ResolveWithdrawal(ctx context.Context, applicationID string, approved bool) error
	// Book flips a SUCCESSFUL application to BOOKED and takes one unit off
	// the flat type's stock, atomically.
	Book(ctx context.Context, applicationID string) (*domain.Application, error)
	GetByID(ctx context.Context, applicationID string) (*domain.Application, error)
	GetActiveByApplicant(ctx context.Context, nric string) (*domain.Application, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Application, error)
}

type RegistrationService interface {
	// RegistrableProjects returns the projects the officer can currently
	// register for, ordered by name (case-insensitive).
	RegistrableProjects(ctx context.Context, officerNRIC string, now time.Time) ([]*domain.Project, error)
	Register(ctx context.Context, officerNRIC, projectID string, now time.Time) (*domain.OfficerRegistration, error)
	// Approve moves a PENDING registration to SUCCESSFUL and appends the
	// officer to the project roster.
	Approve(ctx context.Context, registrationID string) error
	Reject(ctx context.Context, registrationID string) error
	ListByOfficer(ctx context.Context, nric string) ([]*domain.OfficerRegistration, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.OfficerRegistration, error)
}

type EnquiryService interface {
	Create(ctx context.Context, authorNRIC, projectID, text string) (*domain.Enquiry, error)
	Edit(ctx context.Context, enquiryID, newText string) error
	Delete(ctx context.Context, enquiryID string) error
	Reply(ctx context.Context, enquiryID, message string, now time.Time) error
	GetByID(ctx context.Context, enquiryID string) (*domain.Enquiry, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Enquiry, error)
	ListByAuthor(ctx context.Context, nric string) ([]*domain.Enquiry, error)
}

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByName(ctx context.Context, name string) (*domain.Project, error)
	List(ctx context.Context, visibleOnly bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	SetVisibility(ctx context.Context, id string, visible bool) error
	// Delete removes the project; its applications, registrations and
	// enquiries go with it.
	Delete(ctx context.Context, id string) error
}

type PersonService interface {
	Register(ctx context.Context, p *domain.Person) error
	GetByNRIC(ctx context.Context, nric string) (*domain.Person, error)
	List(ctx context.Context) ([]*domain.Person, error)
}
