package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freecrm-dev/freecrm/internal/models"
	"github.com/freecrm-dev/freecrm/internal/types"
)

func TestAddProjectDefaultsStatus(t *testing.T) {
	database := newTestDB(t)
	owner := createUser(t, database, "owner@example.com")

	project, err := AddProject(database, owner.ID, ProjectInput{Title: "Site", Status: "shipping-it"})
	require.NoError(t, err)
	assert.Equal(t, types.ProjectDiscussion, project.Status)
	assert.Nil(t, project.ClientID)
}

func TestAddProjectValidation(t *testing.T) {
	database := newTestDB(t)
	owner := createUser(t, database, "owner@example.com")

	_, err := AddProject(database, owner.ID, ProjectInput{Title: "   "})
	assert.ErrorIs(t, err, ErrValidation)

	negative := decimal.NewNullDecimal(decimal.NewFromInt(-100))
	_, err = AddProject(database, owner.ID, ProjectInput{Title: "Site", Budget: negative})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAddProjectForeignClientReference(t *testing.T) {
	database := newTestDB(t)
	alice := createUser(t, database, "alice@example.com")
	bob := createUser(t, database, "bob@example.com")

	client, err := AddClient(database, alice.ID, ClientInput{Name: "Ada", Email: "ada@client.com"})
	require.NoError(t, err)

	_, err = AddProject(database, bob.ID, ProjectInput{Title: "Steal", ClientID: &client.ID})
	assert.ErrorIs(t, err, ErrReference)

	// No write happened.
	var count int64
	require.NoError(t, database.Model(&models.Project{}).Where("user_id = ?", bob.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestEditProjectFullReplace(t *testing.T) {
	database := newTestDB(t)
	owner := createUser(t, database, "owner@example.com")

	client, err := AddClient(database, owner.ID, ClientInput{Name: "Ada", Email: "ada@client.com"})
	require.NoError(t, err)

	budget := decimal.NewNullDecimal(decimal.NewFromInt(1500))
	project, err := AddProject(database, owner.ID, ProjectInput{
		Title:    "Site",
		ClientID: &client.ID,
		Status:   "in_progress",
		Budget:   budget,
	})
	require.NoError(t, err)

	// Full-row semantics: omitted optional fields are cleared, not kept.
	updated, err := EditProject(database, owner.ID, project.ID, ProjectInput{Title: "Site v2"})
	require.NoError(t, err)
	assert.Equal(t, "Site v2", updated.Title)
	assert.Nil(t, updated.ClientID)
	assert.Equal(t, types.ProjectDiscussion, updated.Status)
	assert.False(t, updated.Budget.Valid)
}

func TestCompleteProject(t *testing.T) {
	database := newTestDB(t)
	owner := createUser(t, database, "owner@example.com")
	stranger := createUser(t, database, "stranger@example.com")

	project, err := AddProject(database, owner.ID, ProjectInput{Title: "Site", Status: "paused"})
	require.NoError(t, err)

	completed, err := CompleteProject(database, stranger.ID, project.ID)
	require.NoError(t, err)
	assert.False(t, completed)

	completed, err = CompleteProject(database, owner.ID, project.ID)
	require.NoError(t, err)
	assert.True(t, completed)

	// Unconditional: completing again stays completed.
	completed, err = CompleteProject(database, owner.ID, project.ID)
	require.NoError(t, err)
	assert.True(t, completed)

	var reloaded models.Project
	require.NoError(t, database.First(&reloaded, project.ID).Error)
	assert.Equal(t, types.ProjectCompleted, reloaded.Status)
}

func TestDeleteProjectDetachesPayments(t *testing.T) {
	database := newTestDB(t)
	owner := createUser(t, database, "owner@example.com")

	project, err := AddProject(database, owner.ID, ProjectInput{Title: "Site"})
	require.NoError(t, err)

	amount := decimal.NewNullDecimal(decimal.NewFromInt(500))
	payment, err := AddPayment(database, owner.ID, PaymentInput{ProjectID: &project.ID, Amount: amount})
	require.NoError(t, err)

	deleted, err := DeleteProject(database, owner.ID, project.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	var survivor models.Payment
	require.NoError(t, database.First(&survivor, payment.ID).Error)
	assert.Nil(t, survivor.ProjectID)
}
