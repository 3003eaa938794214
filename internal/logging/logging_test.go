package logging

import (
	"testing"

	"github.com/sirupsen/logrus"

	"notes-api/internal/config"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"warn", logrus.WarnLevel},
		{"not-a-level", logrus.InfoLevel},
		{"", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := New(&config.Config{LogLevel: tt.level})
			if logger.GetLevel() != tt.want {
				t.Errorf("Expected level %v, got %v", tt.want, logger.GetLevel())
			}
		})
	}
}

func TestNewProductionUsesJSON(t *testing.T) {
	logger := New(&config.Config{Environment: "production", LogLevel: "info"})
	if _, ok := logger.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("Expected JSON formatter in production, got %T", logger.Formatter)
	}
}
