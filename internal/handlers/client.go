package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freecrm-dev/freecrm/internal/models"
	"github.com/freecrm-dev/freecrm/internal/services"
	"github.com/freecrm-dev/freecrm/internal/utils"
)

type ClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Contact string `json:"contact"`
	Status  string `json:"status"`
	Notes   string `json:"notes"`
}

type ClientResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Contact     string `json:"contact"`
	Status      string `json:"status"`
	LastContact string `json:"last_contact"`
	Notes       string `json:"notes"`
}

func clientResponse(client models.Client) ClientResponse {
	return ClientResponse{
		ID:          client.ID,
		Name:        client.Name,
		Email:       client.Email,
		Contact:     client.Contact,
		Status:      string(client.Status),
		LastContact: formatDate(client.LastContact),
		Notes:       client.Notes,
	}
}

func (h *Handler) ListClients(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	clients, err := services.ListClients(h.DB, userID)

	if err != nil {
		h.serviceError(ctx, err, "failed to list clients")
		return
	}

	response := make([]ClientResponse, 0, len(clients))

	for _, client := range clients {
		response = append(response, clientResponse(client))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *Handler) CreateClient(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req ClientRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	client, err := services.AddClient(h.DB, userID, services.ClientInput{
		Name:    req.Name,
		Email:   req.Email,
		Contact: req.Contact,
		Status:  req.Status,
		Notes:   req.Notes,
	})

	if err != nil {
		h.serviceError(ctx, err, "failed to create client")
		return
	}

	ctx.JSON(http.StatusCreated, clientResponse(*client))
}

func (h *Handler) UpdateClient(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	clientID, err := paramID(ctx, "client_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID"})
		return
	}

	var req ClientRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	client, err := services.EditClient(h.DB, userID, clientID, services.ClientInput{
		Name:    req.Name,
		Email:   req.Email,
		Contact: req.Contact,
		Status:  req.Status,
		Notes:   req.Notes,
	})

	if err != nil {
		h.serviceError(ctx, err, "failed to update client")
		return
	}

	ctx.JSON(http.StatusOK, clientResponse(*client))
}

func (h *Handler) DeleteClient(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	clientID, err := paramID(ctx, "client_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID"})
		return
	}

	deleted, err := services.DeleteClient(h.DB, userID, clientID)

	if err != nil {
		h.serviceError(ctx, err, "failed to delete client")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func (h *Handler) ImportClients(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	fileHeader, err := ctx.FormFile("csv_file")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "CSV file is required"})
		return
	}

	file, err := fileHeader.Open()

	if err != nil {
		h.Log.Error().Err(err).Msg("failed to open uploaded file")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	defer file.Close()

	report, err := services.ImportClients(h.DB, userID, file)

	if err != nil {
		h.serviceError(ctx, err, "failed to import clients")
		return
	}

	ctx.JSON(http.StatusOK, report)
}
