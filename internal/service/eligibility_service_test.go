package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/flatbook/internal/domain"
	"github.com/alexanderramin/flatbook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEligibility_SingleUnder35_NoProjectsAtAll(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	manager := env.seedManager(t)
	env.seedProject(t, "Open Project", manager.NRIC)

	applicant := env.seedPerson(t, "Young Single",
		testutil.WithAge(34), testutil.WithMaritalStatus(domain.MaritalSingle))

	result, err := env.eligibility.EligibleProjects(ctx, applicant.NRIC, time.Now().UTC())
	require.ErrorIs(t, err, domain.ErrIneligibleAge)
	assert.Empty(t, result, "age gate rules out every project, not just one")
}

func TestEligibility_MarriedUnder21_NoProjects(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	manager := env.seedManager(t)
	env.seedProject(t, "Open Project", manager.NRIC)

	applicant := env.seedPerson(t, "Young Married",
		testutil.WithAge(20), testutil.WithMaritalStatus(domain.MaritalMarried))

	_, err := env.eligibility.EligibleProjects(ctx, applicant.NRIC, time.Now().UTC())
	assert.ErrorIs(t, err, domain.ErrIneligibleAge)
}

func TestEligibility_SingleOver35_TwoRoomOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	manager := env.seedManager(t)
	env.seedProject(t, "Mixed Types", manager.NRIC)

	applicant := env.seedPerson(t, "Eligible Single",
		testutil.WithAge(35), testutil.WithMaritalStatus(domain.MaritalSingle))

	result, err := env.eligibility.EligibleProjects(ctx, applicant.NRIC, time.Now().UTC())
	require.NoError(t, err)
	require.Len(t, result, 1)
	for _, ft := range result[0].FlatTypes {
		assert.Equal(t, domain.FlatTwoRoom, ft.Kind, "singles only see two-room flats")
	}
}

func TestEligibility_SingleOver35_ThreeRoomOnlyProjectExcluded(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	manager := env.seedManager(t)
	env.seedProject(t, "Three Room Only", manager.NRIC, testutil.WithFlatTypes(
		domain.FlatType{Kind: domain.FlatThreeRoom, UnitsRemaining: 5, PriceSGD: 250000},
	))

	applicant := env.seedPerson(t, "Single",
		testutil.WithAge(40), testutil.WithMaritalStatus(domain.MaritalSingle))

	result, err := env.eligibility.EligibleProjects(ctx, applicant.NRIC, time.Now().UTC())
	require.NoError(t, err)
	assert.Empty(t, result, "no retained flat types excludes the project")
}

func TestEligibility_MarriedOver21_BothKinds(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	manager := env.seedManager(t)
	env.seedProject(t, "Mixed Types", manager.NRIC)

	applicant := env.seedPerson(t, "Married",
		testutil.WithAge(21), testutil.WithMaritalStatus(domain.MaritalMarried))

	result, err := env.eligibility.EligibleProjects(ctx, applicant.NRIC, time.Now().UTC())
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Len(t, result[0].FlatTypes, 2)
}

func TestEligibility_ZeroUnitsDoesNotExclude(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	manager := env.seedManager(t)
	env.seedProject(t, "Sold Out", manager.NRIC, testutil.WithFlatTypes(
		domain.FlatType{Kind: domain.FlatTwoRoom, UnitsRemaining: 0, PriceSGD: 150000},
	))

	applicant := env.seedPerson(t, "Married", testutil.WithAge(30))

	result, err := env.eligibility.EligibleProjects(ctx, applicant.NRIC, time.Now().UTC())
	require.NoError(t, err)
	require.Len(t, result, 1, "exhausted stock only blocks booking, not eligibility")
}

func TestEligibility_HiddenAndClosedProjectsExcluded(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	manager := env.seedManager(t)

	env.seedProject(t, "Hidden", manager.NRIC, testutil.WithVisible(false))
	env.seedProject(t, "Closed", manager.NRIC,
		testutil.WithPeriod(date(2020, 1, 1), date(2020, 12, 31)))
	env.seedProject(t, "Open", manager.NRIC)

	applicant := env.seedPerson(t, "Married", testutil.WithAge(30))

	result, err := env.eligibility.EligibleProjects(ctx, applicant.NRIC, time.Now().UTC())
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Open", result[0].Project.Name)
}

func TestEligibility_ExcludesProjectOfOwnRegistration(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	manager := env.seedManager(t)
	registered := env.seedProject(t, "Registered Here", manager.NRIC)
	env.seedProject(t, "Somewhere Else", manager.NRIC)

	officer := env.seedPerson(t, "Officer",
		testutil.WithAge(30), testutil.WithRole(domain.RoleOfficer))
	reg := testutil.NewTestRegistration(officer.NRIC, registered.ID)
	require.NoError(t, env.registrations.Create(ctx, reg))

	result, err := env.eligibility.EligibleProjects(ctx, officer.NRIC, time.Now().UTC())
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Somewhere Else", result[0].Project.Name,
		"a registered officer cannot apply to the same project")
}

func TestEligibility_RejectedRegistrationDoesNotBlock(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	manager := env.seedManager(t)
	proj := env.seedProject(t, "Rejected Here", manager.NRIC)

	officer := env.seedPerson(t, "Officer",
		testutil.WithAge(30), testutil.WithRole(domain.RoleOfficer))
	reg := testutil.NewTestRegistration(officer.NRIC, proj.ID,
		testutil.WithRegStatus(domain.RegUnsuccessful))
	require.NoError(t, env.registrations.Create(ctx, reg))

	result, err := env.eligibility.EligibleProjects(ctx, officer.NRIC, time.Now().UTC())
	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestEligibility_ExcludesProjectOfOwnApplication(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	manager := env.seedManager(t)
	applied := env.seedProject(t, "Already Applied", manager.NRIC)
	env.seedProject(t, "Fresh", manager.NRIC)

	applicant := env.seedPerson(t, "Applicant", testutil.WithAge(30))
	app := testutil.NewTestApplication(applicant.NRIC, applied.ID, domain.FlatTwoRoom)
	require.NoError(t, env.applications.Create(ctx, app))

	result, err := env.eligibility.EligibleProjects(ctx, applicant.NRIC, time.Now().UTC())
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Fresh", result[0].Project.Name)
}

func TestEligibility_OrderedByNameCaseInsensitive(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	manager := env.seedManager(t)

	env.seedProject(t, "beta court", manager.NRIC)
	env.seedProject(t, "Alpha Rise", manager.NRIC)
	env.seedProject(t, "Charlie View", manager.NRIC)

	applicant := env.seedPerson(t, "Married", testutil.WithAge(30))

	result, err := env.eligibility.EligibleProjects(ctx, applicant.NRIC, time.Now().UTC())
	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, "Alpha Rise", result[0].Project.Name)
	assert.Equal(t, "beta court", result[1].Project.Name)
	assert.Equal(t, "Charlie View", result[2].Project.Name)
}

func TestEligibility_ManagerGetsNothing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	manager := env.seedManager(t)
	env.seedProject(t, "Open", manager.NRIC)

	result, err := env.eligibility.EligibleProjects(ctx, manager.NRIC, time.Now().UTC())
	require.NoError(t, err)
	assert.Empty(t, result, "managers do not hold applicant capability")
}
