package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// MigrationInfo contains information about the applied schema version
type MigrationInfo struct {
	Version uint
	Dirty   bool
	Applied bool
}

// MigrationManager applies the embedded schema migrations. Each operation
// uses its own connection because closing a migrate instance also closes
// the database handle it was given.
type MigrationManager struct {
	dbPath string
	logger *logrus.Logger
}

// NewMigrationManager creates a new migration manager for the database at dbPath
func NewMigrationManager(dbPath string, logger *logrus.Logger) *MigrationManager {
	if logger == nil {
		logger = logrus.New()
	}
	return &MigrationManager{
		dbPath: dbPath,
		logger: logger,
	}
}

// RunMigrations executes all pending migrations
func (m *MigrationManager) RunMigrations() error {
	m.logger.Info("Starting database migrations...")

	return m.withMigrate(func(mg *migrate.Migrate) error {
		version, dirty, err := mg.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			return fmt.Errorf("failed to get current migration version: %w", err)
		}

		if dirty {
			m.logger.Warn("Database is in dirty state, attempting to force version")
			if err := mg.Force(int(version)); err != nil {
				return fmt.Errorf("failed to force migration version: %w", err)
			}
		}

		if err := mg.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		newVersion, _, err := mg.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			return fmt.Errorf("failed to get new migration version: %w", err)
		}

		m.logger.WithFields(logrus.Fields{
			"previous_version": version,
			"new_version":      newVersion,
		}).Info("Migrations completed successfully")
		return nil
	})
}

// RollbackMigration rolls back the last migration
func (m *MigrationManager) RollbackMigration() error {
	m.logger.Info("Rolling back last migration...")

	return m.withMigrate(func(mg *migrate.Migrate) error {
		if _, _, err := mg.Version(); err != nil {
			if errors.Is(err, migrate.ErrNilVersion) {
				return fmt.Errorf("no migrations to rollback")
			}
			return fmt.Errorf("failed to get current migration version: %w", err)
		}

		if err := mg.Steps(-1); err != nil {
			return fmt.Errorf("failed to rollback migration: %w", err)
		}

		m.logger.Info("Rollback completed successfully")
		return nil
	})
}

// GetMigrationStatus returns the current migration status
func (m *MigrationManager) GetMigrationStatus() (*MigrationInfo, error) {
	info := &MigrationInfo{}

	err := m.withMigrate(func(mg *migrate.Migrate) error {
		version, dirty, err := mg.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get migration version: %w", err)
		}

		info.Version = version
		info.Dirty = dirty
		info.Applied = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	return info, nil
}

func (m *MigrationManager) withMigrate(fn func(mg *migrate.Migrate) error) error {
	db, err := Open(m.dbPath, m.logger)
	if err != nil {
		return err
	}

	mg, err := m.initMigrate(db)
	if err != nil {
		db.Close()
		return err
	}
	defer mg.Close()

	return fn(mg)
}

// initMigrate initializes the migrate instance over the embedded source
func (m *MigrationManager) initMigrate(db *sql.DB) (*migrate.Migrate, error) {
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to open migration source: %w", err)
	}

	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create database driver: %w", err)
	}

	mg, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return mg, nil
}
