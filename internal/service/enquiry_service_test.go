package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/flatbook/internal/domain"
	"github.com/alexanderramin/flatbook/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnquiry_Lifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	manager := env.seedManager(t)
	proj := env.seedProject(t, "Enquiry Proj", manager.NRIC)
	author := env.seedPerson(t, "Author")

	enq, err := env.enqService.Create(ctx, author.NRIC, proj.ID, "When is the showflat open?")
	require.NoError(t, err)

	require.NoError(t, env.enqService.Edit(ctx, enq.ID, "When does booking start?"))
	fetched, err := env.enqService.GetByID(ctx, enq.ID)
	require.NoError(t, err)
	assert.Equal(t, "When does booking start?", fetched.Text)

	require.NoError(t, env.enqService.Reply(ctx, enq.ID, "March", time.Now().UTC()))

	// A replied enquiry is locked for editing; its text stays as-is.
	err = env.enqService.Edit(ctx, enq.ID, "Never mind")
	require.ErrorIs(t, err, domain.ErrAlreadyReplied)

	fetched, err = env.enqService.GetByID(ctx, enq.ID)
	require.NoError(t, err)
	assert.Equal(t, "When does booking start?", fetched.Text)
	assert.Equal(t, "March", fetched.Reply)
	assert.True(t, fetched.Replied())

	// Delete works regardless of reply state.
	require.NoError(t, env.enqService.Delete(ctx, enq.ID))
	_, err = env.enqService.GetByID(ctx, enq.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEnquiry_CreateRejectsBlankText(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	manager := env.seedManager(t)
	proj := env.seedProject(t, "Enquiry Proj", manager.NRIC)
	author := env.seedPerson(t, "Author")

	_, err := env.enqService.Create(ctx, author.NRIC, proj.ID, "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyText)
}

func TestEnquiry_EditRejectsBlankText(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	manager := env.seedManager(t)
	proj := env.seedProject(t, "Enquiry Proj", manager.NRIC)
	author := env.seedPerson(t, "Author")

	enq, err := env.enqService.Create(ctx, author.NRIC, proj.ID, "Original text")
	require.NoError(t, err)

	err = env.enqService.Edit(ctx, enq.ID, "")
	assert.ErrorIs(t, err, domain.ErrEmptyText)
}

func TestEnquiry_ReplyOverwriteAllowed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	manager := env.seedManager(t)
	proj := env.seedProject(t, "Enquiry Proj", manager.NRIC)
	author := env.seedPerson(t, "Author")

	enq, err := env.enqService.Create(ctx, author.NRIC, proj.ID, "How many units left?")
	require.NoError(t, err)

	now := time.Now().UTC()
	require.NoError(t, env.enqService.Reply(ctx, enq.ID, "Ten", now))
	require.NoError(t, env.enqService.Reply(ctx, enq.ID, "Nine", now.Add(time.Hour)))

	fetched, err := env.enqService.GetByID(ctx, enq.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nine", fetched.Reply)
}

func TestEnquiry_CreateRequiresExistingProject(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	author := env.seedPerson(t, "Author")

	_, err := env.enqService.Create(ctx, author.NRIC, "no-such-project", "Hello?")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEnquiry_Listings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	manager := env.seedManager(t)
	projA := env.seedProject(t, "Proj A", manager.NRIC)
	projB := env.seedProject(t, "Proj B", manager.NRIC)
	alice := env.seedPerson(t, "Alice")
	bob := env.seedPerson(t, "Bob")

	_, err := env.enqService.Create(ctx, alice.NRIC, projA.ID, "Alice on A")
	require.NoError(t, err)
	_, err = env.enqService.Create(ctx, alice.NRIC, projB.ID, "Alice on B")
	require.NoError(t, err)
	_, err = env.enqService.Create(ctx, bob.NRIC, projA.ID, "Bob on A")
	require.NoError(t, err)

	byProject, err := env.enqService.ListByProject(ctx, projA.ID)
	require.NoError(t, err)
	assert.Len(t, byProject, 2)

	byAuthor, err := env.enqService.ListByAuthor(ctx, alice.NRIC)
	require.NoError(t, err)
	assert.Len(t, byAuthor, 2)
}
