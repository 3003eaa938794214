package server

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"notes-api/internal/auth"
	"notes-api/internal/config"
	"notes-api/internal/database"
	"notes-api/internal/handlers"
	"notes-api/internal/repositories"
	"notes-api/internal/repositories/dynamo"
	"notes-api/internal/repositories/sqlite"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Logger     *logrus.Logger
	Notes      repositories.NoteRepository
	Handler    *handlers.NoteHandler
	Router     *handlers.Router
	Authorizer *auth.Authorizer
}

// NewContainer creates a new dependency injection container. The authorizer
// is only built when a Cognito user pool is configured.
func NewContainer(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	if logger == nil {
		logger = logrus.New()
	}

	repo, err := NewNoteRepository(ctx, cfg.Store, logger)
	if err != nil {
		return nil, err
	}

	handler := handlers.NewNoteHandler(repo, logger)
	container := &Container{
		Config:  cfg,
		Logger:  logger,
		Notes:   repo,
		Handler: handler,
		Router:  handlers.NewRouter(handler, logger),
	}

	if cfg.Cognito.Enabled() {
		authorizer, err := NewAuthorizer(cfg.Cognito, logger)
		if err != nil {
			_ = repo.Close()
			return nil, err
		}
		container.Authorizer = authorizer
	}

	return container, nil
}

// NewNoteRepository opens the note store selected by cfg.Backend
func NewNoteRepository(ctx context.Context, cfg config.StoreConfig, logger *logrus.Logger) (repositories.NoteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid store configuration: %w", err)
	}

	switch cfg.Backend {
	case config.BackendSQLite:
		if err := database.NewMigrationManager(cfg.SQLitePath, logger).RunMigrations(); err != nil {
			return nil, fmt.Errorf("failed to migrate note store: %w", err)
		}
		db, err := database.Open(cfg.SQLitePath, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open note store: %w", err)
		}
		return sqlite.NewNoteRepository(db, logger), nil
	default:
		client, err := dynamo.NewClient(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
		}
		return dynamo.NewNoteRepository(client, cfg.TableName, logger), nil
	}
}

// NewAuthorizer builds a token authorizer trusting the configured user pool
func NewAuthorizer(cfg config.CognitoConfig, logger *logrus.Logger) (*auth.Authorizer, error) {
	verifier, err := auth.NewVerifier(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create token verifier: %w", err)
	}
	return auth.NewAuthorizer(verifier, logger), nil
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.Notes != nil {
		if err := c.Notes.Close(); err != nil {
			return fmt.Errorf("failed to close note store: %w", err)
		}
	}
	return nil
}
