package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/freecrm-dev/freecrm/internal/models"
)

// Connect opens the database and returns the handle. The handle is passed
// down explicitly; there is no package-level connection.
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func Migrate(database *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.Client{},
		&models.Project{},
		&models.Payment{},
		&models.Feedback{},
		&models.SystemAlert{},
		&models.SystemSetting{},
	}

	migrator := database.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := database.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	return seedSettings(database)
}

func seedSettings(database *gorm.DB) error {
	setting := models.SystemSetting{Key: "service_status", Value: []byte(`"green"`)}
	return database.Where(models.SystemSetting{Key: setting.Key}).FirstOrCreate(&setting).Error
}
