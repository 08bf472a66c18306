// Package sqlite stores daily logs and the profile in a local SQLite file
// through gorm.
package sqlite

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/JonnyWalker81/wellness/backend/internal/models"
)

// Open connects to the database file at path (":memory:" for an in-memory
// database).
func Open(path string) (*gorm.DB, error) {
	gormLog := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %q: %w", path, err)
	}
	return db, nil
}

// Migrate creates or updates the daily_logs and user_profile tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.DailyLog{}, &models.UserProfile{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
