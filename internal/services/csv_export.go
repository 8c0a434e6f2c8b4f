package services

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/freecrm-dev/freecrm/internal/i18n"
	"github.com/freecrm-dev/freecrm/internal/models"
)

// ExportArchiveName is the download filename for the CSV bundle.
const ExportArchiveName = "crm_export.zip"

// ExportArchive bundles the caller's clients, projects and payments into a
// zip of three semicolon-delimited, BOM-prefixed CSV files with localized
// headers. Pure read, no mutation.
func ExportArchive(database *gorm.DB, ownerID uint, lang string) ([]byte, error) {
	if !i18n.Supported(lang) {
		lang = i18n.DefaultLang
	}

	var clients []models.Client

	if err := database.Where("user_id = ?", ownerID).Order("name").Find(&clients).Error; err != nil {
		return nil, err
	}

	clientRows := make([][]string, 0, len(clients))

	for _, c := range clients {
		clientRows = append(clientRows, []string{
			c.Name, c.Email, c.Contact, string(c.Status), formatDate(c.LastContact), c.Notes,
		})
	}

	clientsCSV, err := writeCSV(headers(lang, "client_name", "email", "contact", "status", "last_contact", "notes"), clientRows)

	if err != nil {
		return nil, err
	}

	var projects []models.Project

	if err := database.Preload("Client").Where("user_id = ?", ownerID).Order("title").Find(&projects).Error; err != nil {
		return nil, err
	}

	projectRows := make([][]string, 0, len(projects))

	for _, p := range projects {
		clientName := ""
		if p.Client != nil {
			clientName = p.Client.Name
		}
		projectRows = append(projectRows, []string{
			p.Title, clientName, string(p.Status), formatBudget(p.Budget), formatDate(p.Deadline), p.Description,
		})
	}

	projectsCSV, err := writeCSV(headers(lang, "project_name", "client", "status", "budget", "deadline", "description"), projectRows)

	if err != nil {
		return nil, err
	}

	var payments []models.Payment

	if err := database.Preload("Project").Where("user_id = ?", ownerID).Order("due_date DESC").Find(&payments).Error; err != nil {
		return nil, err
	}

	paymentRows := make([][]string, 0, len(payments))

	for _, p := range payments {
		projectTitle := ""
		if p.Project != nil {
			projectTitle = p.Project.Title
		}
		paymentRows = append(paymentRows, []string{
			projectTitle, p.Amount.String(), string(p.Status), formatDate(p.DueDate), p.Comment,
		})
	}

	paymentsCSV, err := writeCSV(headers(lang, "project", "amount", "payment_status", "due_date", "comment"), paymentRows)

	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	archive := zip.NewWriter(&buf)

	entries := []struct {
		name string
		data []byte
	}{
		{"clients.csv", clientsCSV},
		{"projects.csv", projectsCSV},
		{"payments.csv", paymentsCSV},
	}

	for _, entry := range entries {
		w, err := archive.Create(entry.name)

		if err != nil {
			return nil, err
		}

		if _, err := w.Write(entry.data); err != nil {
			return nil, err
		}
	}

	if err := archive.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func headers(lang string, keys ...string) []string {
	out := make([]string, len(keys))

	for i, key := range keys {
		out[i] = i18n.T(lang, key)
	}

	return out
}

func writeCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)

	writer := csv.NewWriter(&buf)
	writer.Comma = ';'

	if err := writer.Write(header); err != nil {
		return nil, err
	}

	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatBudget(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}
