package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JonnyWalker81/wellness/backend/internal/config"
	"github.com/JonnyWalker81/wellness/backend/internal/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the SQLite schema",
	Long:  `Create the daily_logs and user_profile tables in the configured SQLite database. The hosted schema is managed in Supabase.`,
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	if cfg.Storage.Driver != config.DriverSQLite {
		return fmt.Errorf("migrate only applies to the %s driver (configured: %s)", config.DriverSQLite, cfg.Storage.Driver)
	}

	db, err := openSQLite(cfg.Storage.SQLite.Path)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	logger.Info("schema migrated", logger.String("path", cfg.Storage.SQLite.Path))
	return nil
}
