package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/freecrm-dev/freecrm/internal/models"
)

// Identity is the session identity issued on successful authentication.
// It carries no capabilities beyond the owner id; every record service
// trusts it as the ownership filter.
type Identity struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func Register(database *gorm.DB, name, email, password, confirm string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)

	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrValidation)
	}

	if password != confirm {
		return nil, fmt.Errorf("%w: passwords do not match", ErrValidation)
	}

	var existing models.User

	err := database.Where("email = ?", email).First(&existing).Error

	if err == nil {
		return nil, ErrConflict
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(passwordHash),
	}

	if err := database.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func Authenticate(database *gorm.DB, email, password string) (Identity, error) {
	email = NormalizeEmail(email)

	var user models.User

	err := database.Where("email = ?", email).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Identity{}, ErrInvalidCredentials
		}
		return Identity{}, err
	}

	// A malformed stored hash makes CompareHashAndPassword error out, which
	// is an authentication failure rather than a crash.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return Identity{}, ErrInvalidCredentials
	}

	return Identity{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}
