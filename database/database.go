package database

import (
	"fmt"
	"os"

	"shiftpoint-backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost user=postgres password=postgres dbname=shiftpoint port=5432 sslmode=disable"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	// Ensure PostgreSQL has gen_random_uuid() available (pgcrypto extension).
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		return fmt.Errorf("failed to enable pgcrypto extension: %w", err)
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.FunctionRole{},
		&models.Task{},
		&models.TimeRecord{},
		&models.RefreshToken{},
	)
}

// OwnerRegistered reports whether an owner account already exists.
// The deployment supports exactly one owner; the first registration wins
// and every later attempt is rejected.
func OwnerRegistered(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleOwner).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
