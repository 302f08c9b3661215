package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/flatbook/internal/domain"
	"github.com/alexanderramin/flatbook/internal/repository"
	"github.com/google/uuid"
)

type enquiryService struct {
	enquiries repository.EnquiryRepo
	projects  repository.ProjectRepo
}

func NewEnquiryService(enquiries repository.EnquiryRepo, projects repository.ProjectRepo) EnquiryService {
	return &enquiryService{enquiries: enquiries, projects: projects}
}

func (s *enquiryService) Create(ctx context.Context, authorNRIC, projectID, text string) (*domain.Enquiry, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("enquiry text: %w", domain.ErrEmptyText)
	}
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	e := &domain.Enquiry{
		ID:         uuid.New().String(),
		AuthorNRIC: domain.NormalizeNRIC(authorNRIC),
		ProjectID:  projectID,
		Text:       text,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.enquiries.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *enquiryService) Edit(ctx context.Context, enquiryID, newText string) error {
	e, err := s.enquiries.GetByID(ctx, enquiryID)
	if err != nil {
		return err
	}
	if err := e.Edit(newText); err != nil {
		return err
	}
	return s.enquiries.Update(ctx, e)
}

// Delete removes the enquiry. Unlike Edit there is no reply lock.
func (s *enquiryService) Delete(ctx context.Context, enquiryID string) error {
	return s.enquiries.Delete(ctx, enquiryID)
}

func (s *enquiryService) Reply(ctx context.Context, enquiryID, message string, now time.Time) error {
	e, err := s.enquiries.GetByID(ctx, enquiryID)
	if err != nil {
		return err
	}
	if err := e.SetReply(message, now); err != nil {
		return err
	}
	return s.enquiries.Update(ctx, e)
}

func (s *enquiryService) GetByID(ctx context.Context, enquiryID string) (*domain.Enquiry, error) {
	return s.enquiries.GetByID(ctx, enquiryID)
}

func (s *enquiryService) ListByProject(ctx context.Context, projectID string) ([]*domain.Enquiry, error) {
	return s.enquiries.ListByProject(ctx, projectID)
}

func (s *enquiryService) ListByAuthor(ctx context.Context, nric string) ([]*domain.Enquiry, error) {
	return s.enquiries.ListByAuthor(ctx, nric)
}
