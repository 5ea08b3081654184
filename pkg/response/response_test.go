package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/favorites-service/pkg/apperror"
	"github.com/tair/favorites-service/pkg/catalog"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusOK, catalog.FavoriteAdded, map[string]int{"product_id": 3}, int64(3))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decodeEnvelope(t, rec)
	assert.EqualValues(t, 200, body["status_code"])
	assert.Equal(t, "success", body["response_type"])
	assert.Equal(t, "Product 3 added to favorites", body["description"])
	assert.Equal(t, map[string]any{"product_id": float64(3)}, body["data"])
}

func TestSuccessEnvelopeAlwaysCarriesData(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusOK, catalog.ClientRemoved, true, int64(4))

	body := decodeEnvelope(t, rec)
	assert.Equal(t, true, body["data"])

	rec = httptest.NewRecorder()
	Success(rec, http.StatusOK, catalog.ClientRemoved, nil, int64(4))
	body = decodeEnvelope(t, rec)
	require.Contains(t, body, "data")
	assert.Nil(t, body["data"])
}

func TestErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, apperror.NotFound(catalog.ClientNotFound, int64(9)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "error", body["response_type"])
	assert.Equal(t, "Client with id 9 not found", body["description"])
	assert.NotContains(t, body, "data")
}

func TestErrorEnvelopeHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestDecodeBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/client", strings.NewReader(`{"id":1,"name":"A"}`))
	doc, raw, err := DecodeBody(req)
	require.NoError(t, err)
	assert.Contains(t, doc, "name")
	assert.NotEmpty(t, raw)

	for _, bad := range []string{"", "[]", "null", "{"} {
		req = httptest.NewRequest(http.MethodPost, "/client", strings.NewReader(bad))
		_, _, err = DecodeBody(req)
		assert.Equal(t, catalog.ValidationFailure, apperror.KindOf(err), bad)
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID("client_id", "42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = ParseID("client_id", "")
	assert.Equal(t, "Validation failed: client_id is required", apperror.From(err).Message())

	_, err = ParseID("id", "abc")
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.From(err).Status)
}
