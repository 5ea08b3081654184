package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/favorites-service/pkg/apperror"
	"github.com/tair/favorites-service/pkg/catalog"
)

func TestNewCompilesAllSchemas(t *testing.T) {
	v, err := New()
	require.NoError(t, err)
	for _, id := range []string{ClientCreate, ClientUpdate, ProductCreate, ProductUpdate, AuthLogin} {
		assert.Contains(t, v.schemas, id)
	}
}

func TestValidate(t *testing.T) {
	v := MustNew()

	tests := []struct {
		name   string
		schema string
		doc    map[string]any
		valid  bool
		detail string
	}{
		{
			name:   "client ok",
			schema: ClientCreate,
			doc:    map[string]any{"id": 1, "name": "Ana", "email": "ana@example.com"},
			valid:  true,
		},
		{
			name:   "client bad email",
			schema: ClientCreate,
			doc:    map[string]any{"id": 1, "name": "Ana", "email": "not-an-email"},
			detail: "email",
		},
		{
			name:   "client missing id",
			schema: ClientCreate,
			doc:    map[string]any{"name": "Ana", "email": "ana@example.com"},
			detail: "id",
		},
		{
			name:   "client patch with null",
			schema: ClientUpdate,
			doc:    map[string]any{"name": nil, "email": "b@example.com"},
			valid:  true,
		},
		{
			name:   "product negative price",
			schema: ProductCreate,
			doc:    map[string]any{"id": 1, "title": "T", "price": -1.0, "image": "i", "brand": "b"},
			detail: "price",
		},
		{
			name:   "product without review score",
			schema: ProductCreate,
			doc:    map[string]any{"id": 1, "title": "T", "price": 10.5, "image": "i", "brand": "b"},
			valid:  true,
		},
		{
			name:   "product patch fractional id",
			schema: ProductUpdate,
			doc:    map[string]any{"id": 1.5},
			detail: "id",
		},
		{
			name:   "login by alias",
			schema: AuthLogin,
			doc:    map[string]any{"login": "operator", "password": "secret"},
			valid:  true,
		},
		{
			name:   "login without user",
			schema: AuthLogin,
			doc:    map[string]any{"password": "secret"},
			detail: "at least one schema",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.schema, tt.doc)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, catalog.ValidationFailure, apperror.KindOf(err))
			assert.Contains(t, apperror.From(err).Message(), tt.detail)
		})
	}
}

func TestValidateUnknownSchema(t *testing.T) {
	err := MustNew().Validate("nope", map[string]any{})
	assert.Equal(t, catalog.InternalError, apperror.KindOf(err))
}
