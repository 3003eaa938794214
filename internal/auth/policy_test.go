package auth

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

const testMethodArn = "arn:aws:execute-api:us-east-1:123456789012:abcdef123/dev/GET/notes"

func TestGeneratePolicy(t *testing.T) {
	decision := GeneratePolicy("user", Allow, testMethodArn)

	if decision.PrincipalID != "user" {
		t.Errorf("Expected principal user, got %q", decision.PrincipalID)
	}
	if decision.PolicyDocument == nil {
		t.Fatal("Expected a policy document")
	}
	if decision.PolicyDocument.Version != "2012-10-17" {
		t.Errorf("Unexpected policy version %q", decision.PolicyDocument.Version)
	}
	if len(decision.PolicyDocument.Statement) != 1 {
		t.Fatalf("Expected one statement, got %d", len(decision.PolicyDocument.Statement))
	}

	statement := decision.PolicyDocument.Statement[0]
	if statement.Effect != "Allow" {
		t.Errorf("Expected effect Allow, got %q", statement.Effect)
	}
	if len(statement.Action) != 1 || statement.Action[0] != "execute-api:Invoke" {
		t.Errorf("Unexpected action %v", statement.Action)
	}
	if len(statement.Resource) != 1 || statement.Resource[0] != testMethodArn {
		t.Errorf("Unexpected resource %v", statement.Resource)
	}
	if decision.Context["foo"] != "bar" {
		t.Errorf("Expected static context foo=bar, got %v", decision.Context)
	}
}

func TestGeneratePolicy_OmitsDocument(t *testing.T) {
	tests := []struct {
		name     string
		effect   Effect
		resource string
	}{
		{"no effect", "", testMethodArn},
		{"no resource", Deny, ""},
		{"neither", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := GeneratePolicy("user", tt.effect, tt.resource)

			if decision.PrincipalID != "user" {
				t.Errorf("Expected principal user, got %q", decision.PrincipalID)
			}
			if decision.PolicyDocument != nil {
				t.Errorf("Expected no policy document, got %+v", decision.PolicyDocument)
			}

			encoded, err := json.Marshal(decision)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if strings.Contains(string(encoded), "policyDocument") {
				t.Errorf("Expected policyDocument to be absent from %s", encoded)
			}
		})
	}
}
