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

type applicationService struct {
	applications repository.ApplicationRepo
	projects     repository.ProjectRepo
	eligibility  EligibilityService
	uow          db.UnitOfWork
	observer     UseCaseObserver
}

func NewApplicationService(
	applications repository.ApplicationRepo,
	projects repository.ProjectRepo,
	eligibility EligibilityService,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ApplicationService {
	return &applicationService{
		applications: applications,
		projects:     projects,
		eligibility:  eligibility,
		uow:          uow,
		observer:     useCaseObserverOrNoop(observers),
	}
}

func (s *applicationService) Submit(ctx context.Context, applicantNRIC, projectID string, kind domain.FlatKind, now time.Time) (app *domain.Application, err error) {
	applicantNRIC = domain.NormalizeNRIC(applicantNRIC)
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "submit-application",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"applicant": applicantNRIC, "project": projectID, "flat_kind": kind},
		})
	}()

	// Eligibility is evaluated against freshly loaded state, not a list the
	// caller computed earlier.
	eligible, err := s.eligibility.EligibleProjects(ctx, applicantNRIC, now)
	if err != nil {
		return nil, err
	}
	if !containsOffer(eligible, projectID, kind) {
		return nil, fmt.Errorf("project %s, flat type %s: %w", projectID, kind, domain.ErrNotEligible)
	}

	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !project.InApplicationPeriod(now) {
		return nil, fmt.Errorf("project %q: %w", project.Name, domain.ErrApplicationPeriodClosed)
	}

	app = &domain.Application{
		ID:            uuid.New().String(),
		ApplicantNRIC: applicantNRIC,
		ProjectID:     projectID,
		FlatKind:      kind,
		Status:        domain.AppPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// The duplicate check and the insert share one transaction so a racing
	// submit cannot slip a second active application in between.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txApps := repository.NewSQLiteApplicationRepo(tx)
		existing, err := activeApplicationOrNil(ctx, txApps, applicantNRIC)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("application %s is still %s: %w", existing.ID, existing.Status, domain.ErrDuplicateActiveApplication)
		}
		return txApps.Create(ctx, app)
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (s *applicationService) TransitionStatus(ctx context.Context, applicationID string, newStatus domain.ApplicationStatus) error {
	app, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}
	if err := app.Transition(newStatus, time.Now().UTC()); err != nil {
		return err
	}
	return s.applications.Update(ctx, app)
}

func (s *applicationService) RequestWithdrawal(ctx context.Context, applicationID string) error {
	return s.TransitionStatus(ctx, applicationID, domain.AppWithdrawalPending)
}

func (s *applicationService) ResolveWithdrawal(ctx context.Context, applicationID string, approved bool) error {
	if approved {
		return s.TransitionStatus(ctx, applicationID, domain.AppWithdrawalSuccessful)
	}
	return s.TransitionStatus(ctx, applicationID, domain.AppWithdrawalUnsuccessful)
}

func (s *applicationService) Book(ctx context.Context, applicationID string) (booked *domain.Application, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "book-flat",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"application": applicationID},
		})
	}()

	// Inventory decrement and status change commit together or not at all.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txApps := repository.NewSQLiteApplicationRepo(tx)
		txProjects := repository.NewSQLiteProjectRepo(tx)

		app, err := txApps.GetByID(ctx, applicationID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if err := app.Book(now); err != nil {
			return err
		}

		ok, err := txProjects.DecrementUnits(ctx, app.ProjectID, app.FlatKind)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("project %s, flat type %s: %w", app.ProjectID, app.FlatKind, domain.ErrNoUnitsAvailable)
		}

		if err := txApps.Update(ctx, app); err != nil {
			return err
		}
		booked = app
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booked, nil
}

func (s *applicationService) GetByID(ctx context.Context, applicationID string) (*domain.Application, error) {
	return s.applications.GetByID(ctx, applicationID)
}

func (s *applicationService) GetActiveByApplicant(ctx context.Context, nric string) (*domain.Application, error) {
	return s.applications.GetActiveByApplicant(ctx, nric)
}

func (s *applicationService) ListByProject(ctx context.Context, projectID string) ([]*domain.Application, error) {
	return s.applications.ListByProject(ctx, projectID)
}

func containsOffer(eligible []EligibleProject, projectID string, kind domain.FlatKind) bool {
	for _, ep := range eligible {
		if ep.Project.ID != projectID {
			continue
		}
		for _, ft := range ep.FlatTypes {
			if ft.Kind == kind {
				return true
			}
		}
	}
	return false
}
