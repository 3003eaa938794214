// Package logging builds the logrus logger shared by the Lambda functions
// and the local server.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"

	"notes-api/internal/config"
)

// New creates a logger for the given configuration. Lambda output goes to
// CloudWatch, so it is emitted as JSON; local runs use the text formatter.
func New(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if config.IsServerlessMode() || cfg.IsProduction() {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger
}
