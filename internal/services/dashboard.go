package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/freecrm-dev/freecrm/internal/models"
	"github.com/freecrm-dev/freecrm/internal/types"
)

type UpcomingDeadline struct {
	Title      string `json:"title"`
	ClientName string `json:"client_name"`
	Deadline   string `json:"deadline"`
}

type DashboardSummary struct {
	ActiveClients     int64              `json:"active_clients"`
	PendingAmount     decimal.Decimal    `json:"pending_amount"`
	UpcomingDeadlines []UpcomingDeadline `json:"upcoming_deadlines"`
}

// Dashboard summarizes the owner's book: active client count, total of
// pending payments and the three nearest future deadlines.
func Dashboard(database *gorm.DB, ownerID uint) (DashboardSummary, error) {
	summary := DashboardSummary{
		PendingAmount:     decimal.Zero,
		UpcomingDeadlines: []UpcomingDeadline{},
	}

	err := database.Model(&models.Client{}).
		Where("user_id = ? AND status = ?", ownerID, types.ClientActive).
		Count(&summary.ActiveClients).Error

	if err != nil {
		return summary, err
	}

	var pending []models.Payment

	err = database.Where("user_id = ? AND status = ?", ownerID, types.PaymentPending).Find(&pending).Error

	if err != nil {
		return summary, err
	}

	for _, payment := range pending {
		summary.PendingAmount = summary.PendingAmount.Add(payment.Amount)
	}

	var upcoming []models.Project

	err = database.Preload("Client").
		Where("user_id = ? AND deadline >= ?", ownerID, today()).
		Order("deadline").
		Limit(3).
		Find(&upcoming).Error

	if err != nil {
		return summary, err
	}

	for _, project := range upcoming {
		deadline := UpcomingDeadline{
			Title:    project.Title,
			Deadline: formatDate(project.Deadline),
		}
		if project.Client != nil {
			deadline.ClientName = project.Client.Name
		}
		summary.UpcomingDeadlines = append(summary.UpcomingDeadlines, deadline)
	}

	return summary, nil
}
