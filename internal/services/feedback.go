package services

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/freecrm-dev/freecrm/internal/models"
)

type FeedbackInput struct {
	Name    string
	Message string
	Type    string
}

// RecordFeedback stores a feedback entry and appends it to the feedback
// log. Name falls back to the sender's account name, type to "feedback".
func RecordFeedback(database *gorm.DB, feedbackLog zerolog.Logger, sender Identity, input FeedbackInput) error {
	message := strings.TrimSpace(input.Message)

	if message == "" {
		return fmt.Errorf("%w: message is required", ErrValidation)
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = sender.Name
	}

	feedbackType := strings.TrimSpace(input.Type)
	if feedbackType == "" {
		feedbackType = "feedback"
	}

	userID := sender.ID

	entry := models.Feedback{
		UserID:  &userID,
		Name:    name,
		Message: message,
		Type:    feedbackType,
	}

	if err := database.Create(&entry).Error; err != nil {
		return err
	}

	feedbackLog.Info().
		Str("type", strings.ToUpper(feedbackType)).
		Str("name", name).
		Str("email", sender.Email).
		Msg(message)

	return nil
}
