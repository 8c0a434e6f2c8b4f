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

type ProjectInput struct {
	Title       string
	ClientID    *uint
	Status      string
	Budget      decimal.NullDecimal
	Deadline    *time.Time
	Description string
}

func ListProjects(database *gorm.DB, ownerID uint) ([]models.Project, error) {
	var projects []models.Project

	err := database.Preload("Client").
		Where("user_id = ?", ownerID).
		Order("deadline DESC").
		Find(&projects).Error

	return projects, err
}

func AddProject(database *gorm.DB, ownerID uint, input ProjectInput) (*models.Project, error) {
	input, err := validateProjectInput(database, ownerID, input)

	if err != nil {
		return nil, err
	}

	project := models.Project{
		UserID:      ownerID,
		ClientID:    input.ClientID,
		Title:       input.Title,
		Status:      types.ParseProjectStatus(input.Status),
		Budget:      input.Budget,
		Deadline:    input.Deadline,
		Description: input.Description,
	}

	if err := database.Create(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

func EditProject(database *gorm.DB, ownerID, projectID uint, input ProjectInput) (*models.Project, error) {
	var project models.Project

	if err := database.Where("id = ? AND user_id = ?", projectID, ownerID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	input, err := validateProjectInput(database, ownerID, input)

	if err != nil {
		return nil, err
	}

	project.ClientID = input.ClientID
	project.Title = input.Title
	project.Status = types.ParseProjectStatus(input.Status)
	project.Budget = input.Budget
	project.Deadline = input.Deadline
	project.Description = input.Description

	if err := database.Save(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

func DeleteProject(database *gorm.DB, ownerID, projectID uint) (bool, error) {
	result := database.Where("id = ? AND user_id = ?", projectID, ownerID).Delete(&models.Project{})

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// CompleteProject sets the status to completed regardless of the current
// one. Reports false when the project is missing or foreign-owned.
func CompleteProject(database *gorm.DB, ownerID, projectID uint) (bool, error) {
	result := database.Model(&models.Project{}).
		Where("id = ? AND user_id = ?", projectID, ownerID).
		Update("status", types.ProjectCompleted)

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func validateProjectInput(database *gorm.DB, ownerID uint, input ProjectInput) (ProjectInput, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)

	if input.Title == "" {
		return input, fmt.Errorf("%w: title is required", ErrValidation)
	}

	if input.Budget.Valid && input.Budget.Decimal.IsNegative() {
		return input, fmt.Errorf("%w: budget must not be negative", ErrValidation)
	}

	if input.ClientID != nil {
		var client models.Client

		if err := database.Where("id = ? AND user_id = ?", *input.ClientID, ownerID).First(&client).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return input, fmt.Errorf("%w: client %d", ErrReference, *input.ClientID)
			}
			return input, err
		}
	}

	return input, nil
}
