package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/flatbook/internal/domain"
	"github.com/alexanderramin/flatbook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	manager := seedManager(t, ctx, db)

	projRepo := NewSQLiteProjectRepo(db)
	proj := testutil.NewTestProject("RegProj", manager)
	require.NoError(t, projRepo.Create(ctx, proj))

	repo := NewSQLiteRegistrationRepo(db)
	reg := testutil.NewTestRegistration("T1111111A", proj.ID)
	require.NoError(t, repo.Create(ctx, reg))

	fetched, err := repo.GetByID(ctx, reg.ID)
	require.NoError(t, err)
	assert.Equal(t, "T1111111A", fetched.OfficerNRIC)
	assert.Equal(t, domain.RegPending, fetched.Status)
}

func TestRegistrationRepo_DuplicatePairRejected(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	manager := seedManager(t, ctx, db)

	projRepo := NewSQLiteProjectRepo(db)
	proj := testutil.NewTestProject("DupProj", manager)
	require.NoError(t, projRepo.Create(ctx, proj))

	repo := NewSQLiteRegistrationRepo(db)
	require.NoError(t, repo.Create(ctx, testutil.NewTestRegistration("T2222222B", proj.ID)))

	err := repo.Create(ctx, testutil.NewTestRegistration("T2222222B", proj.ID))
	assert.Error(t, err, "same (officer, project) pair is unique")
}

func TestRegistrationRepo_ListByOfficer(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	manager := seedManager(t, ctx, db)

	projRepo := NewSQLiteProjectRepo(db)
	a := testutil.NewTestProject("Proj A", manager)
	b := testutil.NewTestProject("Proj B", manager)
	require.NoError(t, projRepo.Create(ctx, a))
	require.NoError(t, projRepo.Create(ctx, b))

	repo := NewSQLiteRegistrationRepo(db)
	require.NoError(t, repo.Create(ctx, testutil.NewTestRegistration("T3333333C", a.ID)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestRegistration("T3333333C", b.ID)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestRegistration("T4444444D", a.ID)))

	regs, err := repo.ListByOfficer(ctx, "t3333333c")
	require.NoError(t, err)
	assert.Len(t, regs, 2)
}

func TestRegistrationRepo_UpdateStatus(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	manager := seedManager(t, ctx, db)

	projRepo := NewSQLiteProjectRepo(db)
	proj := testutil.NewTestProject("StatusProj", manager)
	require.NoError(t, projRepo.Create(ctx, proj))

	repo := NewSQLiteRegistrationRepo(db)
	reg := testutil.NewTestRegistration("T5555555E", proj.ID)
	require.NoError(t, repo.Create(ctx, reg))

	require.NoError(t, reg.Approve(reg.UpdatedAt))
	require.NoError(t, repo.Update(ctx, reg))

	fetched, err := repo.GetByID(ctx, reg.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RegSuccessful, fetched.Status)
}
