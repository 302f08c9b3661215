package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/flatbook/internal/domain"
	"github.com/alexanderramin/flatbook/internal/repository"
)

type eligibilityService struct {
	persons       repository.PersonRepo
	projects      repository.ProjectRepo
	applications  repository.ApplicationRepo
	registrations repository.RegistrationRepo
}

func NewEligibilityService(
	persons repository.PersonRepo,
	projects repository.ProjectRepo,
	applications repository.ApplicationRepo,
	registrations repository.RegistrationRepo,
) EligibilityService {
	return &eligibilityService{
		persons:       persons,
		projects:      projects,
		applications:  applications,
		registrations: registrations,
	}
}

func (s *eligibilityService) EligibleProjects(ctx context.Context, nric string, now time.Time) ([]EligibleProject, error) {
	person, err := s.persons.GetByNRIC(ctx, nric)
	if err != nil {
		return nil, err
	}
	if !person.CanApply() {
		return nil, nil
	}

	projects, err := s.projects.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("loading projects: %w", err)
	}

	regs, err := s.registrations.ListByOfficer(ctx, person.NRIC)
	if err != nil {
		return nil, fmt.Errorf("loading registrations: %w", err)
	}

	ownApp, err := activeApplicationOrNil(ctx, s.applications, person.NRIC)
	if err != nil {
		return nil, err
	}

	return filterEligible(person, projects, regs, ownApp, now)
}

// filterEligible applies the eligibility rules to a loaded snapshot of state.
// The age gate rules the whole person out at once: a SINGLE applicant under
// 35 or a MARRIED one under 21 gets ErrIneligibleAge regardless of which
// projects exist.
func filterEligible(
	person *domain.Person,
	projects []*domain.Project,
	regs []*domain.OfficerRegistration,
	ownApp *domain.Application,
	now time.Time,
) ([]EligibleProject, error) {
	switch person.MaritalStatus {
	case domain.MaritalSingle:
		if person.Age < 35 {
			return nil, domain.ErrIneligibleAge
		}
	case domain.MaritalMarried:
		if person.Age < 21 {
			return nil, domain.ErrIneligibleAge
		}
	}

	blocked := map[string]bool{}
	for _, reg := range regs {
		if reg.Blocking() {
			blocked[reg.ProjectID] = true
		}
	}
	if ownApp != nil {
		blocked[ownApp.ProjectID] = true
	}

	var result []EligibleProject
	for _, p := range projects {
		if !p.IsOpenAt(now) {
			continue
		}
		if blocked[p.ID] {
			continue
		}

		retained := retainedFlatTypes(person, p)
		if len(retained) == 0 {
			continue
		}
		result = append(result, EligibleProject{Project: p, FlatTypes: retained})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return strings.ToLower(result[i].Project.Name) < strings.ToLower(result[j].Project.Name)
	})
	return result, nil
}

// retainedFlatTypes filters a project's flat types by the person's marital
// status. Singles (35 and over) are restricted to two-room flats; married
// applicants may take either kind. Exhausted stock does not remove a type
// here; that only matters at booking time.
func retainedFlatTypes(person *domain.Person, p *domain.Project) []domain.FlatType {
	if person.MaritalStatus == domain.MaritalMarried {
		return p.FlatTypes
	}
	var retained []domain.FlatType
	for _, ft := range p.FlatTypes {
		if ft.Kind == domain.FlatTwoRoom {
			retained = append(retained, ft)
		}
	}
	return retained
}

// activeApplicationOrNil loads the person's active application, mapping the
// not-found case to nil.
func activeApplicationOrNil(ctx context.Context, apps repository.ApplicationRepo, nric string) (*domain.Application, error) {
	app, err := apps.GetActiveByApplicant(ctx, nric)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading active application: %w", err)
	}
	return app, nil
}
