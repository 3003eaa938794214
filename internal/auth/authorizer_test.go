package auth

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"
)

type stubVerifier struct {
	claims *Claims
	err    error
	calls  int
	tokens []string
}

func (s *stubVerifier) Verify(ctx context.Context, token string) (*Claims, error) {
	s.calls++
	s.tokens = append(s.tokens, token)
	return s.claims, s.err
}

func newTestAuthorizer(verifier TokenVerifier) *Authorizer {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return NewAuthorizer(verifier, logger)
}

func authorizerEvent(token string) events.APIGatewayCustomAuthorizerRequest {
	return events.APIGatewayCustomAuthorizerRequest{
		Type:               "TOKEN",
		AuthorizationToken: token,
		MethodArn:          testMethodArn,
	}
}

func TestAuthorizer_Verified(t *testing.T) {
	verifier := &stubVerifier{claims: validClaims()}
	authorizer := newTestAuthorizer(verifier)

	decision, err := authorizer.Authorize(context.Background(), authorizerEvent("Bearer abc.def.ghi"))
	if err != nil {
		t.Fatalf("Authorize() failed: %v", err)
	}

	if verifier.calls != 1 {
		t.Errorf("Expected exactly one verification, got %d", verifier.calls)
	}
	if verifier.tokens[0] != "abc.def.ghi" {
		t.Errorf("Expected bearer prefix stripped, got %q", verifier.tokens[0])
	}
	if decision.PrincipalID != DefaultPrincipal {
		t.Errorf("Expected principal %q, got %q", DefaultPrincipal, decision.PrincipalID)
	}
	statement := decision.PolicyDocument.Statement[0]
	if statement.Effect != string(Allow) || statement.Resource[0] != testMethodArn {
		t.Errorf("Expected Allow on %s, got %+v", testMethodArn, statement)
	}
}

func TestAuthorizer_Rejected(t *testing.T) {
	verifier := &stubVerifier{err: ErrInvalidToken}
	authorizer := newTestAuthorizer(verifier)

	decision, err := authorizer.Authorize(context.Background(), authorizerEvent("abc"))
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("Expected ErrInvalidToken, got %v", err)
	}
	if decision != nil {
		t.Errorf("Expected no decision, got %+v", decision)
	}
	if verifier.calls != 1 {
		t.Errorf("Expected exactly one verification, got %d", verifier.calls)
	}
}

func TestAuthorizer_Handle(t *testing.T) {
	t.Run("Allow", func(t *testing.T) {
		authorizer := newTestAuthorizer(&stubVerifier{claims: validClaims()})

		resp, err := authorizer.Handle(context.Background(), authorizerEvent("abc"))
		if err != nil {
			t.Fatalf("Handle() returned error: %v", err)
		}
		decision, ok := resp.(*Decision)
		if !ok {
			t.Fatalf("Expected *Decision, got %T", resp)
		}
		if decision.PolicyDocument == nil {
			t.Error("Expected a policy document")
		}
	})

	t.Run("Rejected", func(t *testing.T) {
		authorizer := newTestAuthorizer(&stubVerifier{err: ErrInvalidToken})

		resp, err := authorizer.Handle(context.Background(), authorizerEvent("abc"))
		if err != nil {
			t.Fatalf("Handle() must not return an error, got %v", err)
		}
		rejection, ok := resp.(events.APIGatewayProxyResponse)
		if !ok {
			t.Fatalf("Expected APIGatewayProxyResponse, got %T", resp)
		}
		if rejection.StatusCode != http.StatusInternalServerError {
			t.Errorf("Expected status 500, got %d", rejection.StatusCode)
		}
		if rejection.Body != `"Error: Invalid JWT Token"` {
			t.Errorf("Unexpected body %s", rejection.Body)
		}
	})
}

func TestAuthorizer_EndToEndWithSignedToken(t *testing.T) {
	signer := newTestSigner(t)
	authorizer := newTestAuthorizer(NewVerifierWithKeyfunc(testCognito, signer.keyfunc))

	decision, err := authorizer.Authorize(context.Background(), authorizerEvent(signer.sign(t, validClaims())))
	if err != nil {
		t.Fatalf("Authorize() failed: %v", err)
	}
	if decision.PolicyDocument.Statement[0].Resource[0] != testMethodArn {
		t.Errorf("Expected decision scoped to method ARN, got %+v", decision.PolicyDocument)
	}

	expired := validClaims()
	expired.ExpiresAt = nil
	if _, err := authorizer.Authorize(context.Background(), authorizerEvent(signer.sign(t, expired))); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}

func TestExtractBearer(t *testing.T) {
	tests := map[string]string{
		"Bearer abc":   "abc",
		"bearer abc":   "abc",
		"  abc  ":      "abc",
		"abc":          "abc",
		"Bearer":       "Bearer",
		"Bearer  x.y ": "x.y",
	}

	for input, want := range tests {
		if got := ExtractBearer(input); got != want {
			t.Errorf("ExtractBearer(%q) = %q, want %q", input, got, want)
		}
	}
}
