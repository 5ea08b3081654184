package domain

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFavoriteHasIdentity(t *testing.T) {
	a := NewFavorite(1, 2)
	b := NewFavorite(1, 2)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestFavoriteJSONHidesIdentity(t *testing.T) {
	raw, err := json.Marshal(NewFavorite(1, 2))
	require.NoError(t, err)
	assert.JSONEq(t, `{"client_id":1,"product_id":2}`, string(raw))
}

func TestSelectorValidate(t *testing.T) {
	assert.NoError(t, ByClient(1).Validate())
	assert.NoError(t, ByProduct(1).Validate())
	assert.ErrorIs(t, Selector{}.Validate(), ErrInvalidSelector)

	c, p := int64(1), int64(2)
	assert.ErrorIs(t, Selector{ClientID: &c, ProductID: &p}.Validate(), ErrInvalidSelector)
}
