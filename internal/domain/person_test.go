package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateNRIC(t *testing.T) {
	cases := []struct {
		name string
		nric string
		ok   bool
	}{
		{"valid S", "S1234567A", true},
		{"valid T", "T7654321Z", true},
		{"lowercase accepted", "s1234567a", true},
		{"wrong prefix", "G1234567A", false},
		{"six digits", "S123456A", false},
		{"eight digits", "S12345678A", false},
		{"missing suffix", "S1234567", false},
		{"digit suffix", "S12345678", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateNRIC(tc.nric)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestPersonValidate(t *testing.T) {
	valid := Person{
		NRIC:          "S1234567A",
		Name:          "Tan Wei Ling",
		Age:           36,
		MaritalStatus: MaritalSingle,
		Role:          RoleApplicant,
	}

	p := valid
	assert.NoError(t, p.Validate())

	p = valid
	p.Age = -1
	assert.Error(t, p.Validate())

	p = valid
	p.Name = ""
	assert.Error(t, p.Validate())

	p = valid
	p.MaritalStatus = "DIVORCED"
	assert.Error(t, p.Validate())

	p = valid
	p.Role = "ADMIN"
	assert.Error(t, p.Validate())
}

func TestCapabilities(t *testing.T) {
	applicant := Person{Role: RoleApplicant}
	officer := Person{Role: RoleOfficer}
	manager := Person{Role: RoleManager}

	assert.True(t, applicant.CanApply())
	assert.False(t, applicant.CanRegister())

	assert.True(t, officer.CanApply(), "officers also carry applicant capability")
	assert.True(t, officer.CanRegister())

	assert.False(t, manager.CanApply())
	assert.False(t, manager.CanRegister())
}
