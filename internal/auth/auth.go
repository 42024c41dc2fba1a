package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoToken      = errors.New("no identity token")
	ErrTokenExpired = errors.New("identity token expired")
	ErrOpaqueToken  = errors.New("identity token carries no readable claims")
)

// TokenSource supplies the identity token attached to every club API call.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Identity is what the client can read from the identity token. The token
// is verified by the club API, not here.
type Identity struct {
	Subject   string
	Email     string
	ExpiresAt time.Time
}

// ParseIdentity reads the claims of a JWT identity token without verifying
// its signature. Tokens that are not JWTs yield ErrOpaqueToken.
func ParseIdentity(token string) (Identity, error) {
	claims := jwt.MapClaims{}

	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrOpaqueToken, err)
	}

	var id Identity

	id.Subject, _ = claims.GetSubject()
	id.Email, _ = claims["email"].(string)

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		id.ExpiresAt = exp.Time
	}

	return id, nil
}

// StaticToken is a token handed over by the identity provider at startup.
type StaticToken string

// Token returns the token unless it is empty or a JWT past its expiry.
func (t StaticToken) Token(_ context.Context) (string, error) {
	token := strings.TrimSpace(string(t))
	if token == "" {
		return "", ErrNoToken
	}

	id, err := ParseIdentity(token)
	if err == nil && !id.ExpiresAt.IsZero() && time.Now().After(id.ExpiresAt) {
		return "", fmt.Errorf("%w at %s", ErrTokenExpired, id.ExpiresAt.Format(time.RFC3339))
	}

	return token, nil
}

// Email resolves the buyer's email, preferring the token's email claim over
// the configured fallback.
func Email(token, fallback string) string {
	if id, err := ParseIdentity(token); err == nil && id.Email != "" {
		return id.Email
	}

	return fallback
}
