package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freecrm-dev/freecrm/internal/services"
	"github.com/freecrm-dev/freecrm/internal/utils"
)

type FeedbackRequest struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (h *Handler) CreateFeedback(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req FeedbackRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	sender := services.Identity{ID: currentUser.ID, Name: currentUser.Name, Email: currentUser.Email}

	err = services.RecordFeedback(h.DB, h.FeedbackLog, sender, services.FeedbackInput{
		Name:    req.Name,
		Message: req.Message,
		Type:    req.Type,
	})

	if err != nil {
		h.serviceError(ctx, err, "failed to record feedback")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
