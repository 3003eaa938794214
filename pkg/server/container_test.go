package server

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"notes-api/internal/config"
	"notes-api/internal/repositories/sqlite"
	"notes-api/pkg/lambda"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Environment: "test",
		Port:        "8081",
		LogLevel:    "fatal",
		Store: config.StoreConfig{
			Backend:    config.BackendSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "notes.db"),
		},
	}
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)
	return logger
}

// TestNewContainer verifies that the container wires a working note API
func TestNewContainer(t *testing.T) {
	container, err := NewContainer(context.Background(), testConfig(t), quietLogger())
	if err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}
	defer container.Close()

	if _, ok := container.Notes.(*sqlite.NoteRepository); !ok {
		t.Errorf("Expected sqlite repository, got %T", container.Notes)
	}
	if container.Authorizer != nil {
		t.Error("Expected no authorizer without a user pool")
	}

	ctx := context.Background()
	resp := container.Router.Route(ctx, &lambda.Request{
		Method: http.MethodPost,
		Path:   "/notes",
		Body:   []byte(`{"id":"n1","title":"t","body":"b"}`),
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 on create, got %d (%s)", resp.StatusCode, resp.Body)
	}

	resp = container.Router.Route(ctx, &lambda.Request{Method: http.MethodGet, Path: "/notes/n1"})
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200 on get, got %d", resp.StatusCode)
	}
}

func TestNewContainer_InvalidStore(t *testing.T) {
	cfg := testConfig(t)
	cfg.Store = config.StoreConfig{Backend: config.BackendDynamoDB}

	if _, err := NewContainer(context.Background(), cfg, quietLogger()); err == nil {
		t.Fatal("Expected error for a DynamoDB store without a table name")
	}
}

func TestConnectionManager(t *testing.T) {
	cm := &ConnectionManager{}
	ctx := context.Background()

	if cm.IsHealthy() {
		t.Error("Expected uninitialized manager to be unhealthy")
	}

	if err := cm.Initialize(ctx, testConfig(t)); err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}
	if !cm.IsHealthy() {
		t.Error("Expected initialized manager to be healthy")
	}

	first, err := cm.GetContainer(ctx)
	if err != nil {
		t.Fatalf("GetContainer() failed: %v", err)
	}
	second, err := cm.GetContainer(ctx)
	if err != nil {
		t.Fatalf("GetContainer() failed: %v", err)
	}
	if first != second {
		t.Error("Expected the warm container to be reused")
	}

	if err := cm.Cleanup(); err != nil {
		t.Fatalf("Cleanup() failed: %v", err)
	}
	if cm.IsHealthy() {
		t.Error("Expected manager to be unhealthy after cleanup")
	}

	rebuilt, err := cm.GetContainer(ctx)
	if err != nil {
		t.Fatalf("GetContainer() after cleanup failed: %v", err)
	}
	defer cm.Cleanup()
	if rebuilt == first {
		t.Error("Expected a fresh container after cleanup")
	}
}
