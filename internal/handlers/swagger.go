package handlers

// @title Notes API
// @version 1.0
// @description Serverless CRUD API for notes, gated by a Cognito identity token authorizer

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Cognito identity token, optionally prefixed with "Bearer ".

// @tag.name notes
// @tag.description Note management operations
