package main

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/JonnyWalker81/wellness/backend/internal/config"
	"github.com/JonnyWalker81/wellness/backend/internal/logger"
	"github.com/JonnyWalker81/wellness/backend/internal/repository"
	"github.com/JonnyWalker81/wellness/backend/internal/repository/sqlite"
	"github.com/JonnyWalker81/wellness/backend/pkg/supabase"
)

type repositories struct {
	logs     repository.DailyLogRepository
	profiles repository.ProfileRepository
	close    func() error
}

// openRepositories builds the repositories for the configured driver.
// SQLite databases are migrated on open.
func openRepositories(storage config.StorageConfig) (*repositories, error) {
	switch storage.Driver {
	case config.DriverSupabase:
		logger.Info("using supabase storage", logger.String("url", storage.Supabase.URL))
		client := supabase.NewClient(storage.Supabase.URL, storage.Supabase.ServiceKey)
		return &repositories{
			logs:     repository.NewDailyLogRepository(client),
			profiles: repository.NewProfileRepository(client),
			close:    func() error { return nil },
		}, nil

	case config.DriverSQLite:
		logger.Info("using sqlite storage", logger.String("path", storage.SQLite.Path))
		db, err := openSQLite(storage.SQLite.Path)
		if err != nil {
			return nil, err
		}
		return &repositories{
			logs:     sqlite.NewDailyLogRepository(db),
			profiles: sqlite.NewProfileRepository(db),
			close: func() error {
				sqlDB, err := db.DB()
				if err != nil {
					return err
				}
				return sqlDB.Close()
			},
		}, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", storage.Driver)
}

func openSQLite(path string) (*gorm.DB, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, err
	}
	if err := sqlite.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
