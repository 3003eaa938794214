package main

import (
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"notes-api/internal/auth"
	"notes-api/internal/config"
	"notes-api/internal/logging"
	"notes-api/pkg/server"
)

var authorizer *auth.Authorizer

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	authorizer, err = server.NewAuthorizer(cfg.Cognito, logging.New(cfg))
	if err != nil {
		panic("Failed to initialize authorizer: " + err.Error())
	}
}

func main() {
	awslambda.Start(authorizer.Handle)
}
