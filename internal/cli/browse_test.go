package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/flatbook/internal/domain"
	"github.com/alexanderramin/flatbook/internal/repository"
	"github.com/alexanderramin/flatbook/internal/service"
	"github.com/alexanderramin/flatbook/internal/teatest"
	"github.com/alexanderramin/flatbook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp wires an App against a fresh in-memory database and seeds a
// manager plus two visible projects.
func newTestApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	persons := repository.NewSQLitePersonRepo(database)
	projects := repository.NewSQLiteProjectRepo(database)
	applications := repository.NewSQLiteApplicationRepo(database)
	registrations := repository.NewSQLiteRegistrationRepo(database)
	enquiries := repository.NewSQLiteEnquiryRepo(database)

	eligibility := service.NewEligibilityService(persons, projects, applications, registrations)

	app := &App{
		Persons:       service.NewPersonService(persons),
		Projects:      service.NewProjectService(projects, persons),
		Eligibility:   eligibility,
		Applications:  service.NewApplicationService(applications, projects, eligibility, uow),
		Registrations: service.NewRegistrationService(registrations, projects, persons, applications, uow),
		Enquiries:     service.NewEnquiryService(enquiries, projects),
	}

	ctx := context.Background()
	manager := testutil.NewTestPerson("Manager", testutil.WithRole(domain.RoleManager))
	require.NoError(t, persons.Create(ctx, manager))
	require.NoError(t, projects.Create(ctx, testutil.NewTestProject("Acacia Breeze", manager.NRIC)))
	require.NoError(t, projects.Create(ctx, testutil.NewTestProject("Yishun Glen", manager.NRIC)))

	return app
}

func TestBrowse_ListsProjects(t *testing.T) {
	app := newTestApp(t)

	d := teatest.New(t, newBrowseModel(app))
	d.DrainInit()

	view := d.View()
	assert.Contains(t, view, "Acacia Breeze")
	assert.Contains(t, view, "Yishun Glen")
}

func TestBrowse_EnterShowsDetailAndEscReturns(t *testing.T) {
	app := newTestApp(t)

	d := teatest.New(t, newBrowseModel(app))
	d.DrainInit()

	d.PressDown()
	d.PressEnter()

	view := d.View()
	assert.Contains(t, view, "YISHUN GLEN", "detail header is the uppercased project name")
	assert.Contains(t, view, "FLAT TYPES")

	d.PressEsc()
	view = d.View()
	assert.Contains(t, view, "Acacia Breeze")
	assert.NotContains(t, view, "FLAT TYPES")
}

func TestBrowse_FilterNarrowsList(t *testing.T) {
	app := newTestApp(t)

	d := teatest.New(t, newBrowseModel(app))
	d.DrainInit()

	d.PressKey('/')
	d.Type("yishun")
	d.PressEnter()

	view := d.View()
	assert.Contains(t, view, "Yishun Glen")
	assert.NotContains(t, view, "Acacia Breeze")
}

func TestBrowse_QuitKey(t *testing.T) {
	app := newTestApp(t)

	d := teatest.New(t, newBrowseModel(app))
	d.DrainInit()

	d.PressKey('q')
	assert.True(t, d.Quitting)
}
