package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"

	"notes-api/internal/config"
)

// TokenUseID is the token_use claim carried by Cognito identity tokens
const TokenUseID = "id"

// Claims represents the Cognito identity token claims the authorizer reads
type Claims struct {
	TokenUse string `json:"token_use"`
	Username string `json:"cognito:username"`
	Email    string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// TokenVerifier validates a bearer token and returns its claims
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}

// Verifier checks Cognito identity tokens against a user pool and app client
type Verifier struct {
	issuer   string
	clientID string
	keyfunc  jwt.Keyfunc
}

// NewVerifier creates a verifier whose signing keys are fetched from the
// user pool JWKS endpoint and cached for the life of the process
func NewVerifier(cfg config.CognitoConfig) (*Verifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	jwks, err := keyfunc.NewDefault([]string{cfg.JWKSURL()})
	if err != nil {
		return nil, fmt.Errorf("failed to create JWKS keyfunc: %w", err)
	}

	return NewVerifierWithKeyfunc(cfg, jwks.Keyfunc), nil
}

// NewVerifierWithKeyfunc creates a verifier that resolves signing keys with kf
func NewVerifierWithKeyfunc(cfg config.CognitoConfig, kf jwt.Keyfunc) *Verifier {
	return &Verifier{
		issuer:   cfg.Issuer(),
		clientID: cfg.WebClientID,
		keyfunc:  kf,
	}
}

// Verify validates signature, expiry, issuer, audience and token use
func (v *Verifier) Verify(ctx context.Context, token string) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("%w: empty token", ErrInvalidToken)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, v.keyfunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.clientID),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("%w: unexpected claims", ErrInvalidToken)
	}

	if claims.TokenUse != TokenUseID {
		return nil, fmt.Errorf("%w: token use %q is not %q", ErrInvalidToken, claims.TokenUse, TokenUseID)
	}

	return claims, nil
}
