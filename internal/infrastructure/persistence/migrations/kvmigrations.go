package migrations

import (
	"gorm.io/gorm"

	"civicpulse/internal/infrastructure/persistence/models"
)

// MigrateKVTables creates the key-value table used by the database backend.
func MigrateKVTables(db *gorm.DB) error {
	return db.AutoMigrate(&models.KVEntryModel{})
}
