package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/flatbook/internal/db"
	"github.com/alexanderramin/flatbook/internal/domain"
	"github.com/alexanderramin/flatbook/internal/repository"
	"github.com/google/uuid"
)

type registrationService struct {
	registrations repository.RegistrationRepo
	projects      repository.ProjectRepo
	persons       repository.PersonRepo
	applications  repository.ApplicationRepo
	uow           db.UnitOfWork
	observer      UseCaseObserver
}

func NewRegistrationService(
	registrations repository.RegistrationRepo,
	projects repository.ProjectRepo,
	persons repository.PersonRepo,
	applications repository.ApplicationRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) RegistrationService {
	return &registrationService{
		registrations: registrations,
		projects:      projects,
		persons:       persons,
		applications:  applications,
		uow:           uow,
		observer:      useCaseObserverOrNoop(observers),
	}
}

func (s *registrationService) RegistrableProjects(ctx context.Context, officerNRIC string, now time.Time) ([]*domain.Project, error) {
	officerNRIC = domain.NormalizeNRIC(officerNRIC)

	officer, err := s.persons.GetByNRIC(ctx, officerNRIC)
	if err != nil {
		return nil, err
	}
	if !officer.CanRegister() {
		return nil, nil
	}

	projects, err := s.projects.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("loading projects: %w", err)
	}

	snapshot, err := s.loadOfficerSnapshot(ctx, officerNRIC)
	if err != nil {
		return nil, err
	}

	var result []*domain.Project
	for _, p := range projects {
		if snapshot.registrable(p, now) == nil {
			result = append(result, p)
		}
	}
	// Project listing is already name-ordered.
	return result, nil
}

func (s *registrationService) Register(ctx context.Context, officerNRIC, projectID string, now time.Time) (created *domain.OfficerRegistration, err error) {
	officerNRIC = domain.NormalizeNRIC(officerNRIC)
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "register-officer",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"officer": officerNRIC, "project": projectID},
		})
	}()

	officer, err := s.persons.GetByNRIC(ctx, officerNRIC)
	if err != nil {
		return nil, err
	}
	if !officer.CanRegister() {
		return nil, fmt.Errorf("%s does not hold officer capability: %w", officerNRIC, domain.ErrNotRegistrable)
	}

	reg := &domain.OfficerRegistration{
		ID:          uuid.New().String(),
		OfficerNRIC: officerNRIC,
		ProjectID:   projectID,
		Status:      domain.RegPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// The predicate is re-evaluated on fresh state at write time; the list
	// the officer chose from may be stale.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRegs := repository.NewSQLiteRegistrationRepo(tx)
		txProjects := repository.NewSQLiteProjectRepo(tx)
		txApps := repository.NewSQLiteApplicationRepo(tx)

		project, err := txProjects.GetByID(ctx, projectID)
		if err != nil {
			return err
		}

		snapshot, err := loadOfficerSnapshot(ctx, txRegs, txProjects, txApps, officerNRIC)
		if err != nil {
			return err
		}
		if err := snapshot.registrable(project, now); err != nil {
			return err
		}

		return txRegs.Create(ctx, reg)
	})
	if err != nil {
		return nil, err
	}
	return reg, nil
}

func (s *registrationService) Approve(ctx context.Context, registrationID string) error {
	// Status change and roster append commit together.
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRegs := repository.NewSQLiteRegistrationRepo(tx)
		txProjects := repository.NewSQLiteProjectRepo(tx)

		reg, err := txRegs.GetByID(ctx, registrationID)
		if err != nil {
			return err
		}
		if err := reg.Approve(time.Now().UTC()); err != nil {
			return err
		}
		if err := txRegs.Update(ctx, reg); err != nil {
			return err
		}
		return txProjects.AddOfficer(ctx, reg.ProjectID, reg.OfficerNRIC)
	})
}

func (s *registrationService) Reject(ctx context.Context, registrationID string) error {
	reg, err := s.registrations.GetByID(ctx, registrationID)
	if err != nil {
		return err
	}
	if err := reg.Reject(time.Now().UTC()); err != nil {
		return err
	}
	return s.registrations.Update(ctx, reg)
}

func (s *registrationService) ListByOfficer(ctx context.Context, nric string) ([]*domain.OfficerRegistration, error) {
	return s.registrations.ListByOfficer(ctx, nric)
}

func (s *registrationService) ListByProject(ctx context.Context, projectID string) ([]*domain.OfficerRegistration, error) {
	return s.registrations.ListByProject(ctx, projectID)
}

// officerSnapshot is the state the registrability predicate runs against:
// the officer's registrations, the projects those registrations target, and
// the officer's own active application.
type officerSnapshot struct {
	regs        []*domain.OfficerRegistration
	regProjects map[string]*domain.Project
	ownApp      *domain.Application
}

func (s *registrationService) loadOfficerSnapshot(ctx context.Context, officerNRIC string) (*officerSnapshot, error) {
	return loadOfficerSnapshot(ctx, s.registrations, s.projects, s.applications, officerNRIC)
}

func loadOfficerSnapshot(
	ctx context.Context,
	regs repository.RegistrationRepo,
	projects repository.ProjectRepo,
	apps repository.ApplicationRepo,
	officerNRIC string,
) (*officerSnapshot, error) {
	existing, err := regs.ListByOfficer(ctx, officerNRIC)
	if err != nil {
		return nil, fmt.Errorf("loading registrations: %w", err)
	}

	regProjects := make(map[string]*domain.Project, len(existing))
	for _, reg := range existing {
		if _, ok := regProjects[reg.ProjectID]; ok {
			continue
		}
		p, err := projects.GetByID(ctx, reg.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("loading registered project %s: %w", reg.ProjectID, err)
		}
		regProjects[reg.ProjectID] = p
	}

	ownApp, err := activeApplicationOrNil(ctx, apps, officerNRIC)
	if err != nil {
		return nil, err
	}

	return &officerSnapshot{regs: existing, regProjects: regProjects, ownApp: ownApp}, nil
}

// registrable checks the full predicate for one candidate project. A nil
// return means registrable; otherwise the error wraps ErrNotRegistrable with
// the failed condition.
func (snap *officerSnapshot) registrable(p *domain.Project, now time.Time) error {
	if !p.IsOpenAt(now) {
		return fmt.Errorf("project %q is not open: %w", p.Name, domain.ErrNotRegistrable)
	}
	if p.OfficerSlots <= 0 {
		return fmt.Errorf("project %q has no officer slots: %w", p.Name, domain.ErrNotRegistrable)
	}
	if snap.ownApp != nil && snap.ownApp.ProjectID == p.ID {
		return fmt.Errorf("officer is applying to project %q: %w", p.Name, domain.ErrNotRegistrable)
	}
	for _, reg := range snap.regs {
		if reg.ProjectID == p.ID {
			return fmt.Errorf("already registered for project %q: %w", p.Name, domain.ErrNotRegistrable)
		}
	}
	for _, reg := range snap.regs {
		if !reg.Blocking() {
			continue
		}
		other, ok := snap.regProjects[reg.ProjectID]
		if !ok {
			continue
		}
		if p.OverlapsPeriod(other) {
			return fmt.Errorf("project %q overlaps registered project %q: %w", p.Name, other.Name, domain.ErrNotRegistrable)
		}
	}
	return nil
}
