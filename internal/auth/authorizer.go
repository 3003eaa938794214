package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

// DefaultPrincipal is the principal id placed on every Allow decision
const DefaultPrincipal = "user"

// invalidTokenMessage is the body of the rejection response
const invalidTokenMessage = "Error: Invalid JWT Token"

// Authorizer turns a bearer token into an authorization decision
type Authorizer struct {
	verifier TokenVerifier
	logger   *logrus.Logger
}

// NewAuthorizer creates an authorizer backed by verifier
func NewAuthorizer(verifier TokenVerifier, logger *logrus.Logger) *Authorizer {
	if logger == nil {
		logger = logrus.New()
	}
	return &Authorizer{
		verifier: verifier,
		logger:   logger,
	}
}

// Authorize verifies the token exactly once. A verified token yields an
// Allow decision scoped to the requested method ARN; any verification
// failure is returned as an error wrapping ErrInvalidToken.
func (a *Authorizer) Authorize(ctx context.Context, event events.APIGatewayCustomAuthorizerRequest) (*Decision, error) {
	token := ExtractBearer(event.AuthorizationToken)

	claims, err := a.verifier.Verify(ctx, token)
	if err != nil {
		a.logger.WithError(err).WithField("method_arn", event.MethodArn).Warn("Token validation failed")
		return nil, err
	}

	a.logger.WithFields(logrus.Fields{
		"sub":        claims.Subject,
		"username":   claims.Username,
		"method_arn": event.MethodArn,
	}).Info("Token verified")

	decision := GeneratePolicy(DefaultPrincipal, Allow, event.MethodArn)
	return &decision, nil
}

// Handle is the Lambda entry point. It never returns an error: a rejected
// token produces an HTTP-shaped 500 response as data, which is what
// existing API consumers already handle.
func (a *Authorizer) Handle(ctx context.Context, event events.APIGatewayCustomAuthorizerRequest) (interface{}, error) {
	decision, err := a.Authorize(ctx, event)
	if err != nil {
		return RejectionResponse(), nil
	}
	return decision, nil
}

// RejectionResponse is the response returned when a token fails verification
func RejectionResponse() events.APIGatewayProxyResponse {
	body, err := json.Marshal(invalidTokenMessage)
	if err != nil {
		body = []byte(fmt.Sprintf("%q", invalidTokenMessage))
	}
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusInternalServerError,
		Body:       string(body),
	}
}

// ExtractBearer strips an optional "Bearer " prefix from an authorization value
func ExtractBearer(value string) string {
	value = strings.TrimSpace(value)
	if len(value) > 7 && strings.EqualFold(value[:7], "Bearer ") {
		return strings.TrimSpace(value[7:])
	}
	return value
}
