package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/flatbook/internal/db"
	"github.com/alexanderramin/flatbook/internal/domain"
	"github.com/alexanderramin/flatbook/internal/repository"
	"github.com/alexanderramin/flatbook/internal/testutil"
	"github.com/stretchr/testify/require"
)

// testEnv bundles the repositories and services most tests need.
type testEnv struct {
	db            *sql.DB
	uow           db.UnitOfWork
	persons       repository.PersonRepo
	projects      repository.ProjectRepo
	applications  repository.ApplicationRepo
	registrations repository.RegistrationRepo
	enquiries     repository.EnquiryRepo

	eligibility   EligibilityService
	appService    ApplicationService
	regService    RegistrationService
	enqService    EnquiryService
	projService   ProjectService
	personService PersonService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	env := &testEnv{
		db:            database,
		uow:           uow,
		persons:       repository.NewSQLitePersonRepo(database),
		projects:      repository.NewSQLiteProjectRepo(database),
		applications:  repository.NewSQLiteApplicationRepo(database),
		registrations: repository.NewSQLiteRegistrationRepo(database),
		enquiries:     repository.NewSQLiteEnquiryRepo(database),
	}
	env.eligibility = NewEligibilityService(env.persons, env.projects, env.applications, env.registrations)
	env.appService = NewApplicationService(env.applications, env.projects, env.eligibility, uow)
	env.regService = NewRegistrationService(env.registrations, env.projects, env.persons, env.applications, uow)
	env.enqService = NewEnquiryService(env.enquiries, env.projects)
	env.projService = NewProjectService(env.projects, env.persons)
	env.personService = NewPersonService(env.persons)
	return env
}

func (env *testEnv) seedPerson(t *testing.T, name string, opts ...testutil.PersonOption) *domain.Person {
	t.Helper()
	p := testutil.NewTestPerson(name, opts...)
	require.NoError(t, env.persons.Create(context.Background(), p))
	return p
}

func (env *testEnv) seedManager(t *testing.T) *domain.Person {
	t.Helper()
	return env.seedPerson(t, "Manager", testutil.WithRole(domain.RoleManager))
}

func (env *testEnv) seedProject(t *testing.T, name, managerNRIC string, opts ...testutil.ProjectOption) *domain.Project {
	t.Helper()
	p := testutil.NewTestProject(name, managerNRIC, opts...)
	require.NoError(t, env.projects.Create(context.Background(), p))
	return p
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}
