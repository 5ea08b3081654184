// Package validation checks request documents against embedded JSON schemas.
package validation

import (
	"embed"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/xeipuuv/gojsonschema"

	"github.com/tair/favorites-service/pkg/apperror"
)

// Schema ids.
const (
	ClientCreate  = "client.create"
	ClientUpdate  = "client.update"
	ProductCreate = "product.create"
	ProductUpdate = "product.update"
	AuthLogin     = "auth.login"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Validator holds the compiled schemas, keyed by $id.
type Validator struct {
	schemas map[string]*gojsonschema.Schema
}

// New compiles every embedded schema.
func New() (*Validator, error) {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return nil, fmt.Errorf("cannot read schemas: %w", err)
	}

	v := &Validator{schemas: make(map[string]*gojsonschema.Schema, len(entries))}
	for _, entry := range entries {
		raw, err := schemaFS.ReadFile("schemas/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("cannot read schema %s: %w", entry.Name(), err)
		}
		var header struct {
			ID string `json:"$id"`
		}
		if err := json.Unmarshal(raw, &header); err != nil || header.ID == "" {
			return nil, fmt.Errorf("schema %s has no $id", entry.Name())
		}
		schema, err := gojsonschema.NewSchemaLoader().Compile(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			return nil, fmt.Errorf("cannot compile schema %s: %w", header.ID, err)
		}
		v.schemas[header.ID] = schema
	}
	return v, nil
}

// MustNew is New for package-level wiring; it panics on a broken schema.
func MustNew() *Validator {
	v, err := New()
	if err != nil {
		panic(err)
	}
	return v
}

// Validate checks doc against schemaID and returns a validation *apperror.Error
// listing every violation.
func (v *Validator) Validate(schemaID string, doc any) error {
	schema, ok := v.schemas[schemaID]
	if !ok {
		return apperror.Internal(fmt.Errorf("unknown schema %s", schemaID))
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return apperror.Validation("request body is not valid JSON")
	}
	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		details = append(details, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
	}
	return apperror.Validation(strings.Join(details, "; "))
}
