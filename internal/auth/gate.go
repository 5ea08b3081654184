// Package auth guards the protected route groups with a bearer token check.
package auth

import (
	"errors"
	"strings"

	"github.com/tair/favorites-service/pkg/apperror"
	pkgauth "github.com/tair/favorites-service/pkg/auth"
	"github.com/tair/favorites-service/pkg/catalog"
)

const bearerScheme = "Bearer"

// TokenVerifier checks a raw token.
type TokenVerifier interface {
	Verify(token string) (*pkgauth.Claims, error)
}

// Gate validates Authorization headers.
type Gate struct {
	tokens TokenVerifier
}

func NewGate(tokens TokenVerifier) *Gate {
	return &Gate{tokens: tokens}
}

// Authenticate returns the raw bearer token when the header carries a valid,
// unexpired one. Missing credentials and a wrong scheme are 403; a token
// that fails verification is 401.
func (g *Gate) Authenticate(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	token = strings.TrimSpace(token)
	if !ok || scheme == "" || token == "" {
		return "", apperror.Forbidden(catalog.Unauthenticated)
	}
	if scheme != bearerScheme {
		return "", apperror.Forbidden(catalog.InvalidCredentialsScheme)
	}
	if _, err := g.tokens.Verify(token); err != nil {
		return "", apperror.Unauthorized(catalog.InvalidOrExpiredToken).WithCause(err)
	}
	return token, nil
}

// IsDenied reports whether err came from the gate.
func IsDenied(err error) bool {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		return false
	}
	switch appErr.Kind {
	case catalog.Unauthenticated, catalog.InvalidCredentialsScheme, catalog.InvalidOrExpiredToken:
		return true
	}
	return false
}
