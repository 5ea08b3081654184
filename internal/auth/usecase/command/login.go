package command

import (
	"context"
	"fmt"

	"github.com/tair/favorites-service/pkg/apperror"
	"github.com/tair/favorites-service/pkg/auth"
	"github.com/tair/favorites-service/pkg/catalog"
)

// Credentials is the single operator account allowed to log in.
type Credentials struct {
	Login    string
	Password string // plain text or a bcrypt hash
}

// TokenIssuer signs access tokens.
type TokenIssuer interface {
	Issue(login string) (string, error)
}

// LoginCommand represents the command to log in
type LoginCommand struct {
	Login    string
	Password string
}

// LoginResponse represents the response after successful login
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// LoginHandler handles login command
type LoginHandler struct {
	operator Credentials
	tokens   TokenIssuer
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(operator Credentials, tokens TokenIssuer) *LoginHandler {
	return &LoginHandler{operator: operator, tokens: tokens}
}

// Handle issues a token when both login and password match the operator.
func (h *LoginHandler) Handle(_ context.Context, cmd LoginCommand) (*LoginResponse, error) {
	if cmd.Login == "" || cmd.Login != h.operator.Login || !auth.CheckPassword(h.operator.Password, cmd.Password) {
		return nil, apperror.Unauthorized(catalog.LoginFailure)
	}

	token, err := h.tokens.Issue(cmd.Login)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to issue token: %w", err))
	}

	return &LoginResponse{AccessToken: token}, nil
}
