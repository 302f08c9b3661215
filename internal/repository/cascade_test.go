package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/flatbook/internal/domain"
	"github.com/alexanderramin/flatbook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Deleting a project must take its applications, officer registrations and
// enquiries with it; the store enforces this through foreign keys.
func TestCascadeDelete_ProjectChildren(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	manager := seedManager(t, ctx, db)

	projRepo := NewSQLiteProjectRepo(db)
	appRepo := NewSQLiteApplicationRepo(db)
	regRepo := NewSQLiteRegistrationRepo(db)
	enqRepo := NewSQLiteEnquiryRepo(db)

	proj := testutil.NewTestProject("Cascade Court", manager)
	require.NoError(t, projRepo.Create(ctx, proj))

	app := testutil.NewTestApplication("S1111111A", proj.ID, domain.FlatTwoRoom)
	require.NoError(t, appRepo.Create(ctx, app))

	reg := testutil.NewTestRegistration("T2222222B", proj.ID)
	require.NoError(t, regRepo.Create(ctx, reg))

	enq := testutil.NewTestEnquiry("S3333333C", proj.ID, "Surviving this?")
	require.NoError(t, enqRepo.Create(ctx, enq))

	require.NoError(t, projRepo.AddOfficer(ctx, proj.ID, "T2222222B"))

	require.NoError(t, projRepo.Delete(ctx, proj.ID))

	_, err := appRepo.GetByID(ctx, app.ID)
	assert.ErrorIs(t, err, ErrNotFound, "application should be cascade-deleted")

	_, err = regRepo.GetByID(ctx, reg.ID)
	assert.ErrorIs(t, err, ErrNotFound, "registration should be cascade-deleted")

	_, err = enqRepo.GetByID(ctx, enq.ID)
	assert.ErrorIs(t, err, ErrNotFound, "enquiry should be cascade-deleted")

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM flat_types WHERE project_id = ?`, proj.ID).Scan(&count))
	assert.Zero(t, count, "flat types should be cascade-deleted")

	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM project_officers WHERE project_id = ?`, proj.ID).Scan(&count))
	assert.Zero(t, count, "roster should be cascade-deleted")
}

func TestCascadeDelete_LeavesOtherProjectsAlone(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	manager := seedManager(t, ctx, db)

	projRepo := NewSQLiteProjectRepo(db)
	appRepo := NewSQLiteApplicationRepo(db)

	doomed := testutil.NewTestProject("Doomed", manager)
	kept := testutil.NewTestProject("Kept", manager)
	require.NoError(t, projRepo.Create(ctx, doomed))
	require.NoError(t, projRepo.Create(ctx, kept))

	keptApp := testutil.NewTestApplication("S7777777G", kept.ID, domain.FlatTwoRoom)
	require.NoError(t, appRepo.Create(ctx, keptApp))

	require.NoError(t, projRepo.Delete(ctx, doomed.ID))

	fetched, err := appRepo.GetByID(ctx, keptApp.ID)
	require.NoError(t, err)
	assert.Equal(t, kept.ID, fetched.ProjectID)
}
