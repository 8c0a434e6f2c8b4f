package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freecrm-dev/freecrm/internal/services"
	"github.com/freecrm-dev/freecrm/internal/utils"
)

func (h *Handler) GetDashboard(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	summary, err := services.Dashboard(h.DB, userID)

	if err != nil {
		h.serviceError(ctx, err, "failed to build dashboard")
		return
	}

	ctx.JSON(http.StatusOK, summary)
}
