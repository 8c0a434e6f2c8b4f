package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freecrm-dev/freecrm/internal/models"
	"github.com/freecrm-dev/freecrm/internal/types"
)

func TestImportClients(t *testing.T) {
	database := newTestDB(t)
	owner := createUser(t, database, "owner@example.com")

	csvData := "\ufeffname,email,contact,status,notes,extra\n" +
		"Ada,Ada@X.com,@ada,cold,likes math,ignored\n" +
		"Grace,grace@navy.mil,,no-such-status,,ignored\n"

	report, err := ImportClients(database, owner.ID, strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 2, report.Imported)
	assert.Equal(t, 0, report.Skipped)

	var ada models.Client
	require.NoError(t, database.Where("user_id = ? AND email = ?", owner.ID, "ada@x.com").First(&ada).Error)
	assert.Equal(t, "Ada", ada.Name)
	assert.Equal(t, "@ada", ada.Contact)
	assert.Equal(t, types.ClientCold, ada.Status)
	assert.Equal(t, "likes math", ada.Notes)
	require.NotNil(t, ada.LastContact)
	assert.Equal(t, today(), *ada.LastContact)

	var grace models.Client
	require.NoError(t, database.Where("user_id = ? AND email = ?", owner.ID, "grace@navy.mil").First(&grace).Error)
	assert.Equal(t, types.ClientActive, grace.Status)
}

func TestImportClientsDuplicateWithinBatch(t *testing.T) {
	database := newTestDB(t)
	owner := createUser(t, database, "owner@example.com")

	csvData := "name,email\nAda,ada@x.com\nAda,ada@x.com\n"

	report, err := ImportClients(database, owner.ID, strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)
	assert.Equal(t, 1, report.Skipped)
}

func TestImportClientsSkipsExistingAndIncomplete(t *testing.T) {
	database := newTestDB(t)
	owner := createUser(t, database, "owner@example.com")

	_, err := AddClient(database, owner.ID, ClientInput{Name: "Ada", Email: "ada@x.com"})
	require.NoError(t, err)

	csvData := "name,email\n" +
		"Ada,ADA@X.COM\n" + // already a client, case-insensitive
		",missing-name@x.com\n" +
		"No Email,\n" +
		"Grace,grace@x.com\n"

	report, err := ImportClients(database, owner.ID, strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)
	assert.Equal(t, 3, report.Skipped)
}

func TestImportClientsMissingHeaderColumn(t *testing.T) {
	database := newTestDB(t)
	owner := createUser(t, database, "owner@example.com")

	_, err := ImportClients(database, owner.ID, strings.NewReader("name,contact\nAda,@ada\n"))
	assert.ErrorIs(t, err, ErrBadFormat)

	_, err = ImportClients(database, owner.ID, strings.NewReader(""))
	assert.ErrorIs(t, err, ErrBadFormat)

	// Store untouched either way.
	var count int64
	require.NoError(t, database.Model(&models.Client{}).Where("user_id = ?", owner.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestImportClientsMalformedRowRollsBackBatch(t *testing.T) {
	database := newTestDB(t)
	owner := createUser(t, database, "owner@example.com")

	// Second data row has a stray quote, which is a structural failure.
	csvData := "name,email\nAda,ada@x.com\n\"Grace,grace@x.com\n"

	_, err := ImportClients(database, owner.ID, strings.NewReader(csvData))
	assert.ErrorIs(t, err, ErrBadFormat)

	var count int64
	require.NoError(t, database.Model(&models.Client{}).Where("user_id = ?", owner.ID).Count(&count).Error)
	assert.Zero(t, count, "no partial import on malformed csv")
}

func TestImportClientsRejectsInvalidUTF8(t *testing.T) {
	database := newTestDB(t)
	owner := createUser(t, database, "owner@example.com")

	_, err := ImportClients(database, owner.ID, strings.NewReader("name,email\nAda,\xff\xfe\n"))
	assert.ErrorIs(t, err, ErrBadFormat)
}
