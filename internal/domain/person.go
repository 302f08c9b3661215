package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var nricPattern = regexp.MustCompile(`^[TS][0-9]{7}[A-Z]$`)

type Person struct {
	NRIC          string
	Name          string
	Age           int
	MaritalStatus MaritalStatus
	Role          Role
	PasswordHash  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NormalizeNRIC uppercases an NRIC for storage and comparison.
// NRICs are matched case-insensitively everywhere.
func NormalizeNRIC(nric string) string {
	return strings.ToUpper(strings.TrimSpace(nric))
}

// ValidateNRIC checks the national ID format: T or S, seven digits, one
// trailing letter (e.g. S1234567A). Case-insensitive.
func ValidateNRIC(nric string) error {
	if !nricPattern.MatchString(NormalizeNRIC(nric)) {
		return fmt.Errorf("NRIC %q must be T or S, 7 digits, then a letter (e.g. S1234567A)", nric)
	}
	return nil
}

// Validate checks the person's fields before persistence.
func (p *Person) Validate() error {
	if err := ValidateNRIC(p.NRIC); err != nil {
		return err
	}
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.Age < 0 {
		return fmt.Errorf("age must not be negative")
	}
	switch p.MaritalStatus {
	case MaritalSingle, MaritalMarried:
	default:
		return fmt.Errorf("marital status %q must be SINGLE or MARRIED", p.MaritalStatus)
	}
	switch p.Role {
	case RoleApplicant, RoleOfficer, RoleManager:
	default:
		return fmt.Errorf("role %q must be APPLICANT, OFFICER or MANAGER", p.Role)
	}
	return nil
}

// CanApply reports whether the person carries applicant capability.
// Officers also hold applicant capability; managers do not apply.
func (p *Person) CanApply() bool {
	return p.Role == RoleApplicant || p.Role == RoleOfficer
}

// CanRegister reports whether the person can register as a project officer.
func (p *Person) CanRegister() bool {
	return p.Role == RoleOfficer
}
