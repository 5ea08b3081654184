package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/favorites-service/pkg/catalog"
)

func TestErrorMessageAndStatus(t *testing.T) {
	err := NotFound(catalog.ClientNotFound, int64(5))
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Equal(t, "Client with id 5 not found", err.Message())
	assert.Equal(t, "client.client_not_found", err.Error())
}

func TestIsMatchesKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", Conflict(catalog.FavoriteAlreadyExists, int64(2)))
	assert.True(t, errors.Is(err, Conflict(catalog.FavoriteAlreadyExists)))
	assert.False(t, errors.Is(err, NotFound(catalog.FavoriteNotFound)))
	assert.Equal(t, catalog.FavoriteAlreadyExists, KindOf(err))
}

func TestFromUnknownErrorIsInternal(t *testing.T) {
	cause := errors.New("connection reset")
	appErr := From(cause)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Equal(t, "Internal server error", appErr.Message())
	assert.ErrorIs(t, appErr, cause)
	assert.Nil(t, From(nil))
}

func TestValidationCarriesDetail(t *testing.T) {
	err := Validation("email: Does not match format 'email'")
	assert.Equal(t, http.StatusUnprocessableEntity, err.Status)
	assert.Equal(t, "Validation failed: email: Does not match format 'email'", err.Message())
}
