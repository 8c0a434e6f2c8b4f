package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/freecrm-dev/freecrm/internal/models"
	"github.com/freecrm-dev/freecrm/internal/types"
)

func addProject(t *testing.T, database *gorm.DB, ownerID uint, title string) *models.Project {
	t.Helper()

	project, err := AddProject(database, ownerID, ProjectInput{Title: title})
	require.NoError(t, err)

	return project
}

func TestAddPaymentValidation(t *testing.T) {
	database := newTestDB(t)
	owner := createUser(t, database, "owner@example.com")
	project := addProject(t, database, owner.ID, "Site")

	amount := decimal.NewNullDecimal(decimal.NewFromInt(100))

	_, err := AddPayment(database, owner.ID, PaymentInput{Amount: amount})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = AddPayment(database, owner.ID, PaymentInput{ProjectID: &project.ID})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAddPaymentForeignProjectReference(t *testing.T) {
	database := newTestDB(t)
	alice := createUser(t, database, "alice@example.com")
	bob := createUser(t, database, "bob@example.com")
	project := addProject(t, database, alice.ID, "Site")

	amount := decimal.NewNullDecimal(decimal.NewFromInt(100))
	_, err := AddPayment(database, bob.ID, PaymentInput{ProjectID: &project.ID, Amount: amount})
	assert.ErrorIs(t, err, ErrReference)
}

func TestAddPaymentDefaultsStatus(t *testing.T) {
	database := newTestDB(t)
	owner := createUser(t, database, "owner@example.com")
	project := addProject(t, database, owner.ID, "Site")

	amount := decimal.NewNullDecimal(decimal.RequireFromString("199.99"))
	payment, err := AddPayment(database, owner.ID, PaymentInput{
		ProjectID: &project.ID,
		Amount:    amount,
		Status:    "overdue",
	})
	require.NoError(t, err)
	assert.Equal(t, types.PaymentPending, payment.Status)
	assert.True(t, payment.Amount.Equal(decimal.RequireFromString("199.99")))
}

func TestMarkPaidIsIdempotent(t *testing.T) {
	database := newTestDB(t)
	owner := createUser(t, database, "owner@example.com")
	project := addProject(t, database, owner.ID, "Site")

	amount := decimal.NewNullDecimal(decimal.NewFromInt(100))
	payment, err := AddPayment(database, owner.ID, PaymentInput{ProjectID: &project.ID, Amount: amount})
	require.NoError(t, err)

	marked, err := MarkPaid(database, owner.ID, payment.ID)
	require.NoError(t, err)
	assert.True(t, marked)

	marked, err = MarkPaid(database, owner.ID, payment.ID)
	require.NoError(t, err)
	assert.True(t, marked)

	var reloaded models.Payment
	require.NoError(t, database.First(&reloaded, payment.ID).Error)
	assert.Equal(t, types.PaymentPaid, reloaded.Status)
}

func TestMarkPaidForeignPayment(t *testing.T) {
	database := newTestDB(t)
	owner := createUser(t, database, "owner@example.com")
	stranger := createUser(t, database, "stranger@example.com")
	project := addProject(t, database, owner.ID, "Site")

	amount := decimal.NewNullDecimal(decimal.NewFromInt(100))
	payment, err := AddPayment(database, owner.ID, PaymentInput{ProjectID: &project.ID, Amount: amount})
	require.NoError(t, err)

	marked, err := MarkPaid(database, stranger.ID, payment.ID)
	require.NoError(t, err)
	assert.False(t, marked)
}
