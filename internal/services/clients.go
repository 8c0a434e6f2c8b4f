package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/freecrm-dev/freecrm/internal/models"
	"github.com/freecrm-dev/freecrm/internal/types"
)

// Permissive on purpose: non-empty local part and domain, at least one dot
// in the domain, no whitespace.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type ClientInput struct {
	Name    string
	Email   string
	Contact string
	Status  string
	Notes   string
}

// today returns the current date with the time part dropped, for the
// server-side last_contact stamp.
func today() time.Time {
	year, month, day := time.Now().UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func ListClients(database *gorm.DB, ownerID uint) ([]models.Client, error) {
	var clients []models.Client

	err := database.Where("user_id = ?", ownerID).Order("last_contact DESC").Find(&clients).Error

	return clients, err
}

func AddClient(database *gorm.DB, ownerID uint, input ClientInput) (*models.Client, error) {
	input, err := validateClientInput(input)

	if err != nil {
		return nil, err
	}

	stamp := today()

	client := models.Client{
		UserID:      ownerID,
		Name:        input.Name,
		Email:       input.Email,
		Contact:     input.Contact,
		Status:      types.ParseClientStatus(input.Status),
		LastContact: &stamp,
		Notes:       input.Notes,
	}

	if err := database.Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

func EditClient(database *gorm.DB, ownerID, clientID uint, input ClientInput) (*models.Client, error) {
	var client models.Client

	if err := database.Where("id = ? AND user_id = ?", clientID, ownerID).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	input, err := validateClientInput(input)

	if err != nil {
		return nil, err
	}

	stamp := today()

	client.Name = input.Name
	client.Email = input.Email
	client.Contact = input.Contact
	client.Status = types.ParseClientStatus(input.Status)
	client.LastContact = &stamp
	client.Notes = input.Notes

	if err := database.Save(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// DeleteClient reports whether a row was actually removed. Zero rows
// affected is not an error: the id either never existed or belongs to
// someone else, and the caller must not learn which.
func DeleteClient(database *gorm.DB, ownerID, clientID uint) (bool, error) {
	result := database.Where("id = ? AND user_id = ?", clientID, ownerID).Delete(&models.Client{})

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func validateClientInput(input ClientInput) (ClientInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = NormalizeEmail(input.Email)
	input.Contact = strings.TrimSpace(input.Contact)
	input.Notes = strings.TrimSpace(input.Notes)

	if input.Name == "" || input.Email == "" {
		return input, fmt.Errorf("%w: name and email are required", ErrValidation)
	}

	if !emailPattern.MatchString(input.Email) {
		return input, fmt.Errorf("%w: invalid email address", ErrValidation)
	}

	return input, nil
}
