package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/freecrm-dev/freecrm/internal/models"
	"github.com/freecrm-dev/freecrm/internal/services"
	"github.com/freecrm-dev/freecrm/internal/utils"
)

type PaymentRequest struct {
	ProjectID *uint               `json:"project_id"`
	Amount    decimal.NullDecimal `json:"amount"`
	Status    string              `json:"status"`
	DueDate   string              `json:"due_date"`
	Comment   string              `json:"comment"`
}

type PaymentResponse struct {
	ID           uint            `json:"id"`
	ProjectID    *uint           `json:"project_id"`
	ProjectTitle string          `json:"project_title"`
	ClientName   string          `json:"client_name"`
	Amount       decimal.Decimal `json:"amount"`
	Status       string          `json:"status"`
	DueDate      string          `json:"due_date"`
	Comment      string          `json:"comment"`
}

func paymentResponse(payment models.Payment) PaymentResponse {
	response := PaymentResponse{
		ID:        payment.ID,
		ProjectID: payment.ProjectID,
		Amount:    payment.Amount,
		Status:    string(payment.Status),
		DueDate:   formatDate(payment.DueDate),
		Comment:   payment.Comment,
	}

	if payment.Project != nil {
		response.ProjectTitle = payment.Project.Title
		if payment.Project.Client != nil {
			response.ClientName = payment.Project.Client.Name
		}
	}

	return response
}

func (h *Handler) ListPayments(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	payments, err := services.ListPayments(h.DB, userID)

	if err != nil {
		h.serviceError(ctx, err, "failed to list payments")
		return
	}

	response := make([]PaymentResponse, 0, len(payments))

	for _, payment := range payments {
		response = append(response, paymentResponse(payment))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *Handler) CreatePayment(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req PaymentRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	dueDate, err := parseDate(req.DueDate)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid due date, expected YYYY-MM-DD"})
		return
	}

	payment, err := services.AddPayment(h.DB, userID, services.PaymentInput{
		ProjectID: req.ProjectID,
		Amount:    req.Amount,
		Status:    req.Status,
		DueDate:   dueDate,
		Comment:   req.Comment,
	})

	if err != nil {
		h.serviceError(ctx, err, "failed to create payment")
		return
	}

	ctx.JSON(http.StatusCreated, paymentResponse(*payment))
}

func (h *Handler) UpdatePayment(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	paymentID, err := paramID(ctx, "payment_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment ID"})
		return
	}

	var req PaymentRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	dueDate, err := parseDate(req.DueDate)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid due date, expected YYYY-MM-DD"})
		return
	}

	payment, err := services.EditPayment(h.DB, userID, paymentID, services.PaymentInput{
		ProjectID: req.ProjectID,
		Amount:    req.Amount,
		Status:    req.Status,
		DueDate:   dueDate,
		Comment:   req.Comment,
	})

	if err != nil {
		h.serviceError(ctx, err, "failed to update payment")
		return
	}

	ctx.JSON(http.StatusOK, paymentResponse(*payment))
}

func (h *Handler) DeletePayment(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	paymentID, err := paramID(ctx, "payment_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment ID"})
		return
	}

	deleted, err := services.DeletePayment(h.DB, userID, paymentID)

	if err != nil {
		h.serviceError(ctx, err, "failed to delete payment")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func (h *Handler) MarkPaymentPaid(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	paymentID, err := paramID(ctx, "payment_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment ID"})
		return
	}

	marked, err := services.MarkPaid(h.DB, userID, paymentID)

	if err != nil {
		h.serviceError(ctx, err, "failed to mark payment paid")
		return
	}

	if !marked {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "paid"})
}
