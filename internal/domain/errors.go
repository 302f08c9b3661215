package domain

import "errors"

var (
	// ErrIneligibleAge marks a person whose marital status and age rule out
	// every project, not just the one under evaluation.
	ErrIneligibleAge = errors.New("ineligible by age and marital status")

	ErrNotEligible = errors.New("not eligible for this project and flat type")

	ErrApplicationPeriodClosed = errors.New("application period is closed")

	ErrDuplicateActiveApplication = errors.New("an active application already exists")

	ErrInvalidTransition = errors.New("invalid status transition")

	ErrNoUnitsAvailable = errors.New("no units remaining for this flat type")

	ErrNotRegistrable = errors.New("project is not registrable for this officer")

	ErrAlreadyReplied = errors.New("enquiry already has a reply")

	ErrEmptyText = errors.New("text must not be blank")
)
