package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/freecrm-dev/freecrm/internal/models"
	"github.com/freecrm-dev/freecrm/internal/services"
	"github.com/freecrm-dev/freecrm/internal/utils"
)

type ProjectRequest struct {
	Title       string              `json:"title" binding:"required"`
	ClientID    *uint               `json:"client_id"`
	Status      string              `json:"status"`
	Budget      decimal.NullDecimal `json:"budget"`
	Deadline    string              `json:"deadline"`
	Description string              `json:"description"`
}

type ProjectResponse struct {
	ID          uint                `json:"id"`
	Title       string              `json:"title"`
	ClientID    *uint               `json:"client_id"`
	ClientName  string              `json:"client_name"`
	Status      string              `json:"status"`
	Budget      decimal.NullDecimal `json:"budget"`
	Deadline    string              `json:"deadline"`
	Description string              `json:"description"`
}

func projectResponse(project models.Project) ProjectResponse {
	response := ProjectResponse{
		ID:          project.ID,
		Title:       project.Title,
		ClientID:    project.ClientID,
		Status:      string(project.Status),
		Budget:      project.Budget,
		Deadline:    formatDate(project.Deadline),
		Description: project.Description,
	}

	if project.Client != nil {
		response.ClientName = project.Client.Name
	}

	return response
}

func (h *Handler) ListProjects(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projects, err := services.ListProjects(h.DB, userID)

	if err != nil {
		h.serviceError(ctx, err, "failed to list projects")
		return
	}

	response := make([]ProjectResponse, 0, len(projects))

	for _, project := range projects {
		response = append(response, projectResponse(project))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *Handler) CreateProject(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req ProjectRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	deadline, err := parseDate(req.Deadline)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deadline, expected YYYY-MM-DD"})
		return
	}

	project, err := services.AddProject(h.DB, userID, services.ProjectInput{
		Title:       req.Title,
		ClientID:    req.ClientID,
		Status:      req.Status,
		Budget:      req.Budget,
		Deadline:    deadline,
		Description: req.Description,
	})

	if err != nil {
		h.serviceError(ctx, err, "failed to create project")
		return
	}

	ctx.JSON(http.StatusCreated, projectResponse(*project))
}

func (h *Handler) UpdateProject(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := paramID(ctx, "project_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	var req ProjectRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	deadline, err := parseDate(req.Deadline)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deadline, expected YYYY-MM-DD"})
		return
	}

	project, err := services.EditProject(h.DB, userID, projectID, services.ProjectInput{
		Title:       req.Title,
		ClientID:    req.ClientID,
		Status:      req.Status,
		Budget:      req.Budget,
		Deadline:    deadline,
		Description: req.Description,
	})

	if err != nil {
		h.serviceError(ctx, err, "failed to update project")
		return
	}

	ctx.JSON(http.StatusOK, projectResponse(*project))
}

func (h *Handler) DeleteProject(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := paramID(ctx, "project_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	deleted, err := services.DeleteProject(h.DB, userID, projectID)

	if err != nil {
		h.serviceError(ctx, err, "failed to delete project")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func (h *Handler) CompleteProject(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := paramID(ctx, "project_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	completed, err := services.CompleteProject(h.DB, userID, projectID)

	if err != nil {
		h.serviceError(ctx, err, "failed to complete project")
		return
	}

	if !completed {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "completed"})
}
