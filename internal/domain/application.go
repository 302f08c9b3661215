package domain

import (
	"fmt"
	"time"
)

type Application struct {
	ID            string
	ApplicantNRIC string
	ProjectID     string
	FlatKind      FlatKind
	Status        ApplicationStatus
	// PriorStatus records the pre-withdrawal status while a withdrawal is
	// pending so an unsuccessful withdrawal can restore it.
	PriorStatus ApplicationStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// appTransitions is the set of legal status edges.
var appTransitions = map[ApplicationStatus][]ApplicationStatus{
	AppPending:           {AppSuccessful, AppUnsuccessful, AppWithdrawalPending},
	AppSuccessful:        {AppBooked, AppWithdrawalPending},
	AppWithdrawalPending: {AppWithdrawalSuccessful, AppWithdrawalUnsuccessful},
}

// CanTransition reports whether from -> to is a legal status edge.
func CanTransition(from, to ApplicationStatus) bool {
	for _, next := range appTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Active reports whether the application still counts against the
// one-active-application rule. Only terminal rejections release it.
func (a *Application) Active() bool {
	return a.Status != AppUnsuccessful && a.Status != AppWithdrawalSuccessful
}

// Transition moves the application to newStatus, validating the edge.
// Entering WITHDRAWAL_PENDING records the prior status; resolving a
// withdrawal as unsuccessful restores it instead of parking the
// application in a dead state.
func (a *Application) Transition(newStatus ApplicationStatus, now time.Time) error {
	if !CanTransition(a.Status, newStatus) {
		return fmt.Errorf("application %s -> %s: %w", a.Status, newStatus, ErrInvalidTransition)
	}
	switch newStatus {
	case AppWithdrawalPending:
		a.PriorStatus = a.Status
		a.Status = AppWithdrawalPending
	case AppWithdrawalUnsuccessful:
		if a.PriorStatus == "" {
			return fmt.Errorf("application has no pre-withdrawal status: %w", ErrInvalidTransition)
		}
		a.Status = a.PriorStatus
		a.PriorStatus = ""
	default:
		a.Status = newStatus
		a.PriorStatus = ""
	}
	a.UpdatedAt = now
	return nil
}

// Book marks the application booked. Only legal from SUCCESSFUL; the
// caller is responsible for decrementing flat inventory in the same
// transaction.
func (a *Application) Book(now time.Time) error {
	if a.Status != AppSuccessful {
		return fmt.Errorf("application is %s, not SUCCESSFUL: %w", a.Status, ErrInvalidTransition)
	}
	a.Status = AppBooked
	a.UpdatedAt = now
	return nil
}
