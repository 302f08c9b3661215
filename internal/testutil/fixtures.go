package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/flatbook/internal/domain"
	"github.com/google/uuid"
)

var testNRICCounter atomic.Int64

// NextNRIC returns a unique, well-formed NRIC for fixtures.
func NextNRIC() string {
	return fmt.Sprintf("S%07dA", testNRICCounter.Add(1))
}

// Person options
type PersonOption func(*domain.Person)

func WithAge(age int) PersonOption {
	return func(p *domain.Person) {
		p.Age = age
	}
}

func WithMaritalStatus(s domain.MaritalStatus) PersonOption {
	return func(p *domain.Person) {
		p.MaritalStatus = s
	}
}

func WithRole(r domain.Role) PersonOption {
	return func(p *domain.Person) {
		p.Role = r
	}
}

func NewTestPerson(name string, opts ...PersonOption) *domain.Person {
	now := time.Now().UTC()
	p := &domain.Person{
		NRIC:          NextNRIC(),
		Name:          name,
		Age:           36,
		MaritalStatus: domain.MaritalMarried,
		Role:          domain.RoleApplicant,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Project options
type ProjectOption func(*domain.Project)

func WithPeriod(open, close time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.OpenDate = open
		p.CloseDate = close
	}
}

func WithFlatTypes(fts ...domain.FlatType) ProjectOption {
	return func(p *domain.Project) {
		p.FlatTypes = fts
	}
}

func WithVisible(v bool) ProjectOption {
	return func(p *domain.Project) {
		p.Visible = v
	}
}

func WithOfficerSlots(n int) ProjectOption {
	return func(p *domain.Project) {
		p.OfficerSlots = n
	}
}

func NewTestProject(name, managerNRIC string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:           uuid.New().String(),
		Name:         name,
		ManagerNRIC:  managerNRIC,
		Neighborhood: "Yishun",
		FlatTypes: []domain.FlatType{
			{Kind: domain.FlatTwoRoom, UnitsRemaining: 10, PriceSGD: 150000},
			{Kind: domain.FlatThreeRoom, UnitsRemaining: 10, PriceSGD: 250000},
		},
		OpenDate:     now.AddDate(0, -1, 0),
		CloseDate:    now.AddDate(0, 6, 0),
		OfficerSlots: 3,
		Visible:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Application options
type ApplicationOption func(*domain.Application)

func WithAppStatus(s domain.ApplicationStatus) ApplicationOption {
	return func(a *domain.Application) {
		a.Status = s
	}
}

func NewTestApplication(applicantNRIC, projectID string, kind domain.FlatKind, opts ...ApplicationOption) *domain.Application {
	now := time.Now().UTC()
	a := &domain.Application{
		ID:            uuid.New().String(),
		ApplicantNRIC: applicantNRIC,
		ProjectID:     projectID,
		FlatKind:      kind,
		Status:        domain.AppPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Registration options
type RegistrationOption func(*domain.OfficerRegistration)

func WithRegStatus(s domain.RegistrationStatus) RegistrationOption {
	return func(r *domain.OfficerRegistration) {
		r.Status = s
	}
}

func NewTestRegistration(officerNRIC, projectID string, opts ...RegistrationOption) *domain.OfficerRegistration {
	now := time.Now().UTC()
	r := &domain.OfficerRegistration{
		ID:          uuid.New().String(),
		OfficerNRIC: officerNRIC,
		ProjectID:   projectID,
		Status:      domain.RegPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func NewTestEnquiry(authorNRIC, projectID, text string) *domain.Enquiry {
	return &domain.Enquiry{
		ID:         uuid.New().String(),
		AuthorNRIC: authorNRIC,
		ProjectID:  projectID,
		Text:       text,
		CreatedAt:  time.Now().UTC(),
	}
}
