package middleware

import (
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gin-gonic/gin"

	"notes-api/internal/auth"
)

// PrincipalKey is the key used to store the authorized principal in context
const PrincipalKey = "principal_id"

// Authentication runs the same authorizer the API Gateway deployment uses.
// The method ARN is synthesized from the local request so the resulting
// policy is scoped the same way.
func Authentication(authorizer *auth.Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		event := events.APIGatewayCustomAuthorizerRequest{
			Type:               "TOKEN",
			AuthorizationToken: c.GetHeader("Authorization"),
			MethodArn:          localMethodArn(c),
		}

		decision, err := authorizer.Authorize(c.Request.Context(), event)
		if err != nil || decision.PolicyDocument == nil {
			rejection := auth.RejectionResponse()
			c.Data(rejection.StatusCode, "application/json", []byte(rejection.Body))
			c.Abort()
			return
		}

		c.Set(PrincipalKey, decision.PrincipalID)
		c.Next()
	}
}

func localMethodArn(c *gin.Context) string {
	return fmt.Sprintf("arn:aws:execute-api:local:000000000000:notes-api/local/%s%s", c.Request.Method, c.Request.URL.Path)
}
