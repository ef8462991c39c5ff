package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/LeonardoBai12/PokemonSimplifiedAPI/internal/infrastructure/repositories"
)

// Open creates a new database connection. TranslateError is required so that
// uniqueness violations surface as gorm.ErrDuplicatedKey across drivers.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// AutoMigrate creates or updates the user and card tables
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&repositories.DBUser{}, &repositories.DBCard{}); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}
	return nil
}
