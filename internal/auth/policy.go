package auth

import (
	"github.com/aws/aws-lambda-go/events"
)

// Effect is the outcome of an IAM policy statement
type Effect string

// Policy effects
const (
	Allow Effect = "Allow"
	Deny  Effect = "Deny"
)

const (
	policyVersion = "2012-10-17"
	invokeAction  = "execute-api:Invoke"
)

// Decision is the custom authorizer response consumed by API Gateway.
// PolicyDocument is nil, and omitted from the JSON, when no decision could
// be made; callers must not read that as an explicit deny.
type Decision struct {
	PrincipalID    string                                   `json:"principalId"`
	PolicyDocument *events.APIGatewayCustomAuthorizerPolicy `json:"policyDocument,omitempty"`
	Context        map[string]interface{}                   `json:"context,omitempty"`
}

// GeneratePolicy builds the decision for principalID. When effect or
// resource is empty the policy document is left out.
func GeneratePolicy(principalID string, effect Effect, resource string) Decision {
	decision := Decision{PrincipalID: principalID}

	if effect != "" && resource != "" {
		decision.PolicyDocument = &events.APIGatewayCustomAuthorizerPolicy{
			Version: policyVersion,
			Statement: []events.IAMPolicyStatement{
				{
					Action:   []string{invokeAction},
					Effect:   string(effect),
					Resource: []string{resource},
				},
			},
		}
	}

	decision.Context = map[string]interface{}{
		"foo": "bar",
	}

	return decision
}
