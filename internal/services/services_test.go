package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/freecrm-dev/freecrm/db"
	"github.com/freecrm-dev/freecrm/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	// A single connection keeps every statement on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.Migrate(database))

	return database
}

func createUser(t *testing.T, database *gorm.DB, email string) *models.User {
	t.Helper()

	user, err := Register(database, "Test User", email, "secret123", "secret123")
	require.NoError(t, err)

	return user
}
