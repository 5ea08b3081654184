package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/favorites-service/pkg/apperror"
	"github.com/tair/favorites-service/pkg/auth"
	"github.com/tair/favorites-service/pkg/catalog"
)

type failingIssuer struct{}

func (failingIssuer) Issue(string) (string, error) { return "", errors.New("signing failed") }

func TestLogin(t *testing.T) {
	tokens, err := auth.NewTokenManager("secret", "HS256", time.Minute)
	require.NoError(t, err)
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)

	for name, configured := range map[string]string{"plain": "s3cret", "bcrypt": hash} {
		t.Run(name, func(t *testing.T) {
			h := NewLoginHandler(Credentials{Login: "operator", Password: configured}, tokens)

			res, err := h.Handle(context.Background(), LoginCommand{Login: "operator", Password: "s3cret"})
			require.NoError(t, err)
			claims, err := tokens.Verify(res.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, "operator", claims.Login)

			for _, bad := range []LoginCommand{
				{Login: "operator", Password: "wrong"},
				{Login: "intruder", Password: "s3cret"},
				{Login: "", Password: ""},
			} {
				_, err := h.Handle(context.Background(), bad)
				assert.Equal(t, catalog.LoginFailure, apperror.KindOf(err))
				assert.Equal(t, 401, apperror.From(err).Status)
			}
		})
	}
}

func TestLoginIssuerFailure(t *testing.T) {
	h := NewLoginHandler(Credentials{Login: "operator", Password: "s3cret"}, failingIssuer{})

	_, err := h.Handle(context.Background(), LoginCommand{Login: "operator", Password: "s3cret"})
	assert.Equal(t, catalog.InternalError, apperror.KindOf(err))
}
