package main

import (
	"flag"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"notes-api/internal/database"
)

func main() {
	var (
		dbPath  = flag.String("db", "./data/notes.db", "Database file path")
		action  = flag.String("action", "up", "Migration action: up, down, version")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	absDBPath, err := filepath.Abs(*dbPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to get absolute database path")
	}

	logger.WithFields(logrus.Fields{
		"db_path": absDBPath,
		"action":  *action,
	}).Info("Starting migration tool")

	manager := database.NewMigrationManager(absDBPath, logger)

	switch *action {
	case "up":
		if err := manager.RunMigrations(); err != nil {
			logger.WithError(err).Fatal("Migration up failed")
		}
	case "down":
		if err := manager.RollbackMigration(); err != nil {
			logger.WithError(err).Fatal("Migration down failed")
		}
	case "version":
		if err := showVersion(manager); err != nil {
			logger.WithError(err).Fatal("Failed to get migration status")
		}
	default:
		logger.WithField("action", *action).Fatal("Unknown action. Use: up, down, version")
	}

	logger.Info("Migration tool completed successfully")
}

func showVersion(manager *database.MigrationManager) error {
	info, err := manager.GetMigrationStatus()
	if err != nil {
		return err
	}

	if !info.Applied {
		fmt.Println("No migrations applied")
		return nil
	}

	fmt.Printf("Version: %d\n", info.Version)
	fmt.Printf("Dirty:   %t\n", info.Dirty)
	return nil
}
