package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/flatbook/internal/domain"
	"github.com/alexanderramin/flatbook/internal/repository"
	"github.com/google/uuid"
)

type projectService struct {
	projects repository.ProjectRepo
	persons  repository.PersonRepo
}

func NewProjectService(projects repository.ProjectRepo, persons repository.PersonRepo) ProjectService {
	return &projectService{projects: projects, persons: persons}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if err := p.Validate(); err != nil {
		return err
	}

	manager, err := s.persons.GetByNRIC(ctx, p.ManagerNRIC)
	if err != nil {
		return err
	}
	if manager.Role != domain.RoleManager {
		return fmt.Errorf("%s is not a manager", manager.NRIC)
	}

	if existing, err := s.projects.GetByName(ctx, p.Name); err == nil {
		return fmt.Errorf("project name %q is already taken by %s", p.Name, existing.ID)
	} else if !isNotFound(err) {
		return err
	}

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) GetByName(ctx context.Context, name string) (*domain.Project, error) {
	return s.projects.GetByName(ctx, name)
}

func (s *projectService) List(ctx context.Context, visibleOnly bool) ([]*domain.Project, error) {
	return s.projects.List(ctx, visibleOnly)
}

func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	if err := p.Validate(); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, p)
}

func (s *projectService) SetVisibility(ctx context.Context, id string, visible bool) error {
	if _, err := s.projects.GetByID(ctx, id); err != nil {
		return err
	}
	return s.projects.SetVisibility(ctx, id, visible)
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	if _, err := s.projects.GetByID(ctx, id); err != nil {
		return err
	}
	return s.projects.Delete(ctx, id)
}
