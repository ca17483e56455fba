package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/yungbote/eerste-dingen/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&types.ClientPreference{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}
