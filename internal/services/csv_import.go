package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/freecrm-dev/freecrm/internal/models"
	"github.com/freecrm-dev/freecrm/internal/types"
)

const utf8BOM = "\ufeff"

// ImportReport carries the two counters the caller shows the user.
type ImportReport struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// ImportClients bulk-loads clients from a comma-delimited CSV stream. The
// header row must contain at least "name" and "email"; extra columns are
// ignored. Rows missing name or email and rows duplicating an email the
// user already has (including earlier rows of the same batch) are counted
// as skipped, not failed. A structural problem with the CSV fails the
// whole import: everything runs in one transaction, so nothing is
// committed in that case.
func ImportClients(database *gorm.DB, ownerID uint, r io.Reader) (ImportReport, error) {
	var report ImportReport

	data, err := io.ReadAll(r)

	if err != nil {
		return report, err
	}

	content := strings.TrimPrefix(string(data), utf8BOM)

	if !utf8.ValidString(content) {
		return report, fmt.Errorf("%w: not valid UTF-8", ErrBadFormat)
	}

	reader := csv.NewReader(strings.NewReader(content))

	header, err := reader.Read()

	if err != nil {
		return report, fmt.Errorf("%w: missing header row", ErrBadFormat)
	}

	columns := make(map[string]int, len(header))

	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	nameIdx, hasName := columns["name"]
	emailIdx, hasEmail := columns["email"]

	if !hasName || !hasEmail {
		return report, fmt.Errorf("%w: header must contain name and email columns", ErrBadFormat)
	}

	err = database.Transaction(func(tx *gorm.DB) error {
		var existing []string

		if err := tx.Model(&models.Client{}).Where("user_id = ?", ownerID).Pluck("email", &existing).Error; err != nil {
			return err
		}

		seen := make(map[string]bool, len(existing))

		for _, email := range existing {
			if email != "" {
				seen[strings.ToLower(email)] = true
			}
		}

		for {
			record, err := reader.Read()

			if errors.Is(err, io.EOF) {
				break
			}

			if err != nil {
				// Ragged or unparsable row: reject the whole batch.
				return fmt.Errorf("%w: %v", ErrBadFormat, err)
			}

			name := strings.TrimSpace(field(record, nameIdx))
			email := NormalizeEmail(field(record, emailIdx))

			if name == "" || email == "" {
				report.Skipped++
				continue
			}

			if seen[email] {
				report.Skipped++
				continue
			}

			stamp := today()

			client := models.Client{
				UserID:      ownerID,
				Name:        name,
				Email:       email,
				Contact:     strings.TrimSpace(field(record, columnOr(columns, "contact"))),
				Status:      types.ParseClientStatus(strings.TrimSpace(field(record, columnOr(columns, "status")))),
				LastContact: &stamp,
				Notes:       strings.TrimSpace(field(record, columnOr(columns, "notes"))),
			}

			if err := tx.Create(&client).Error; err != nil {
				return err
			}

			seen[email] = true
			report.Imported++
		}

		return nil
	})

	if err != nil {
		return ImportReport{}, err
	}

	return report, nil
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}

func columnOr(columns map[string]int, name string) int {
	if idx, ok := columns[name]; ok {
		return idx
	}
	return -1
}
