package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/flatbook/internal/domain"
	"github.com/alexanderramin/flatbook/internal/repository"
)

type personService struct {
	persons repository.PersonRepo
}

func NewPersonService(persons repository.PersonRepo) PersonService {
	return &personService{persons: persons}
}

func (s *personService) Register(ctx context.Context, p *domain.Person) error {
	p.NRIC = domain.NormalizeNRIC(p.NRIC)
	if err := p.Validate(); err != nil {
		return err
	}

	if _, err := s.persons.GetByNRIC(ctx, p.NRIC); err == nil {
		return fmt.Errorf("NRIC %s is already registered", p.NRIC)
	} else if !isNotFound(err) {
		return err
	}

	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.persons.Create(ctx, p)
}

func (s *personService) GetByNRIC(ctx context.Context, nric string) (*domain.Person, error) {
	return s.persons.GetByNRIC(ctx, nric)
}

func (s *personService) List(ctx context.Context) ([]*domain.Person, error) {
	return s.persons.List(ctx)
}
