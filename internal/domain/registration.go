package domain

import (
	"fmt"
	"time"
)

type OfficerRegistration struct {
	ID          string
	OfficerNRIC string
	ProjectID   string
	Status      RegistrationStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Blocking reports whether the registration counts for conflict checks.
// Only a rejected registration stops blocking.
func (r *OfficerRegistration) Blocking() bool {
	return r.Status != RegUnsuccessful
}

// Approve moves the registration from PENDING to SUCCESSFUL.
func (r *OfficerRegistration) Approve(now time.Time) error {
	if r.Status != RegPending {
		return fmt.Errorf("registration is %s, not PENDING: %w", r.Status, ErrInvalidTransition)
	}
	r.Status = RegSuccessful
	r.UpdatedAt = now
	return nil
}

// Reject moves the registration from PENDING to UNSUCCESSFUL.
func (r *OfficerRegistration) Reject(now time.Time) error {
	if r.Status != RegPending {
		return fmt.Errorf("registration is %s, not PENDING: %w", r.Status, ErrInvalidTransition)
	}
	r.Status = RegUnsuccessful
	r.UpdatedAt = now
	return nil
}
