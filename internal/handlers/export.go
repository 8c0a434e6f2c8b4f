package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freecrm-dev/freecrm/internal/i18n"
	"github.com/freecrm-dev/freecrm/internal/services"
	"github.com/freecrm-dev/freecrm/internal/utils"
)

func (h *Handler) Export(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	lang := ctx.DefaultQuery("lang", i18n.DefaultLang)

	archive, err := services.ExportArchive(h.DB, userID, lang)

	if err != nil {
		h.serviceError(ctx, err, "failed to export data")
		return
	}

	ctx.Header("Content-Disposition", "attachment; filename="+services.ExportArchiveName)
	ctx.Data(http.StatusOK, "application/zip", archive)
}
