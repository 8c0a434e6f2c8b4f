package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/freecrm-dev/freecrm/internal/services"
)

// Handler bundles the dependencies every route needs. The database handle
// is injected here once and threaded into each service call.
type Handler struct {
	DB          *gorm.DB
	Log         zerolog.Logger
	FeedbackLog zerolog.Logger
	Domain      string
}

func New(database *gorm.DB, log, feedbackLog zerolog.Logger, domain string) *Handler {
	return &Handler{DB: database, Log: log, FeedbackLog: feedbackLog, Domain: domain}
}

// serviceError maps the service error taxonomy onto HTTP responses. Store
// errors are logged and surfaced as a generic message only.
func (h *Handler) serviceError(ctx *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrBadFormat):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrReference):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrConflict):
		ctx.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
	case errors.Is(err, services.ErrInvalidCredentials):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
	case errors.Is(err, services.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		h.Log.Error().Err(err).Msg(action)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func paramID(ctx *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)

	if err != nil {
		return 0, err
	}

	return uint(id), nil
}

// parseDate parses an optional YYYY-MM-DD form value.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	date, err := time.Parse("2006-01-02", value)

	if err != nil {
		return nil, err
	}

	return &date, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
