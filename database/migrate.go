package database

import (
	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate keeps the schema in step with the model structs. Order matters
// for the foreign keys.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Job{},
		&models.Application{},
		&models.RefreshToken{},
	)
}
