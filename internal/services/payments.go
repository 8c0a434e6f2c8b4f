package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/freecrm-dev/freecrm/internal/models"
	"github.com/freecrm-dev/freecrm/internal/types"
)

type PaymentInput struct {
	ProjectID *uint
	Amount    decimal.NullDecimal
	Status    string
	DueDate   *time.Time
	Comment   string
}

func ListPayments(database *gorm.DB, ownerID uint) ([]models.Payment, error) {
	var payments []models.Payment

	err := database.Preload("Project").Preload("Project.Client").
		Where("user_id = ?", ownerID).
		Order("due_date DESC").
		Find(&payments).Error

	return payments, err
}

func AddPayment(database *gorm.DB, ownerID uint, input PaymentInput) (*models.Payment, error) {
	input, err := validatePaymentInput(database, ownerID, input)

	if err != nil {
		return nil, err
	}

	payment := models.Payment{
		UserID:    ownerID,
		ProjectID: input.ProjectID,
		Amount:    input.Amount.Decimal,
		Status:    types.ParsePaymentStatus(input.Status),
		DueDate:   input.DueDate,
		Comment:   input.Comment,
	}

	if err := database.Create(&payment).Error; err != nil {
		return nil, err
	}

	return &payment, nil
}

func EditPayment(database *gorm.DB, ownerID, paymentID uint, input PaymentInput) (*models.Payment, error) {
	var payment models.Payment

	if err := database.Where("id = ? AND user_id = ?", paymentID, ownerID).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	input, err := validatePaymentInput(database, ownerID, input)

	if err != nil {
		return nil, err
	}

	payment.ProjectID = input.ProjectID
	payment.Amount = input.Amount.Decimal
	payment.Status = types.ParsePaymentStatus(input.Status)
	payment.DueDate = input.DueDate
	payment.Comment = input.Comment

	if err := database.Save(&payment).Error; err != nil {
		return nil, err
	}

	return &payment, nil
}

func DeletePayment(database *gorm.DB, ownerID, paymentID uint) (bool, error) {
	result := database.Where("id = ? AND user_id = ?", paymentID, ownerID).Delete(&models.Payment{})

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// MarkPaid sets the status to paid unconditionally, so marking an already
// paid payment succeeds and stays paid.
func MarkPaid(database *gorm.DB, ownerID, paymentID uint) (bool, error) {
	result := database.Model(&models.Payment{}).
		Where("id = ? AND user_id = ?", paymentID, ownerID).
		Update("status", types.PaymentPaid)

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func validatePaymentInput(database *gorm.DB, ownerID uint, input PaymentInput) (PaymentInput, error) {
	input.Comment = strings.TrimSpace(input.Comment)

	if input.ProjectID == nil || !input.Amount.Valid {
		return input, fmt.Errorf("%w: project and amount are required", ErrValidation)
	}

	var project models.Project

	if err := database.Where("id = ? AND user_id = ?", *input.ProjectID, ownerID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return input, fmt.Errorf("%w: project %d", ErrReference, *input.ProjectID)
		}
		return input, err
	}

	return input, nil
}
