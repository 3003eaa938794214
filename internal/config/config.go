package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store backends
const (
	BackendDynamoDB = "dynamodb"
	BackendSQLite   = "sqlite"
)

// ErrMissingSetting is returned when a required setting is absent
var ErrMissingSetting = errors.New("missing required setting")

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	LogLevel    string
	Store       StoreConfig
	Cognito     CognitoConfig
	RateLimit   RateLimitConfig
}

// StoreConfig holds note store configuration
type StoreConfig struct {
	Backend     string // "dynamodb" or "sqlite"
	TableName   string
	Region      string
	Endpoint    string
	MaxAttempts int
	Timeout     time.Duration
	SQLitePath  string
}

// CognitoConfig identifies the user pool and app client trusted by the authorizer
type CognitoConfig struct {
	UserPoolID  string
	WebClientID string
	Region      string
}

// RateLimitConfig holds local server rate limiting settings
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8081")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("STORE_BACKEND", BackendDynamoDB)
	v.SetDefault("STORE_MAX_ATTEMPTS", 3)
	v.SetDefault("STORE_TIMEOUT", "5s")
	v.SetDefault("SQLITE_PATH", "./data/notes.db")
	v.SetDefault("RATE_LIMIT_RPS", 20)
	v.SetDefault("RATE_LIMIT_BURST", 40)

	region := v.GetString("AWS_REGION")

	config := &Config{
		Environment: v.GetString("ENVIRONMENT"),
		Port:        v.GetString("PORT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		Store: StoreConfig{
			Backend:     v.GetString("STORE_BACKEND"),
			TableName:   v.GetString("NOTES_TABLE_NAME"),
			Region:      region,
			Endpoint:    v.GetString("DYNAMODB_ENDPOINT"),
			MaxAttempts: v.GetInt("STORE_MAX_ATTEMPTS"),
			Timeout:     v.GetDuration("STORE_TIMEOUT"),
			SQLitePath:  v.GetString("SQLITE_PATH"),
		},
		Cognito: CognitoConfig{
			UserPoolID:  v.GetString("COGNITO_USERPOOL_ID"),
			WebClientID: v.GetString("COGNITO_WEBCLIENT_ID"),
			Region:      region,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             v.GetInt("RATE_LIMIT_BURST"),
		},
	}

	return config, nil
}

// Validate checks that the selected backend has what it needs
func (s StoreConfig) Validate() error {
	switch s.Backend {
	case BackendDynamoDB:
		if s.TableName == "" {
			return fmt.Errorf("%w: NOTES_TABLE_NAME", ErrMissingSetting)
		}
	case BackendSQLite:
		if s.SQLitePath == "" {
			return fmt.Errorf("%w: SQLITE_PATH", ErrMissingSetting)
		}
	default:
		return fmt.Errorf("unsupported store backend %q", s.Backend)
	}
	return nil
}

// Enabled reports whether a user pool and client are configured
func (c CognitoConfig) Enabled() bool {
	return c.UserPoolID != "" && c.WebClientID != ""
}

// Validate returns an error naming the first missing Cognito setting
func (c CognitoConfig) Validate() error {
	if c.UserPoolID == "" {
		return fmt.Errorf("%w: COGNITO_USERPOOL_ID", ErrMissingSetting)
	}
	if c.WebClientID == "" {
		return fmt.Errorf("%w: COGNITO_WEBCLIENT_ID", ErrMissingSetting)
	}
	return nil
}

// Issuer returns the token issuer URL of the configured user pool
func (c CognitoConfig) Issuer() string {
	return fmt.Sprintf("https://cognito-idp.%s.amazonaws.com/%s", c.Region, c.UserPoolID)
}

// JWKSURL returns the location of the user pool signing keys
func (c CognitoConfig) JWKSURL() string {
	return c.Issuer() + "/.well-known/jwks.json"
}

// IsProduction reports whether the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

